package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mentorlink/api/internal/models"
)

type BookingRepository struct {
	pool *pgxpool.Pool
}

var _ BookingStore = (*BookingRepository)(nil)

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

func (r *BookingRepository) Create(ctx context.Context, booking models.Booking) error {
	const query = `
		INSERT INTO bookings (
			id, mentor_id, mentee_id, date, start_time, end_time, status, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)
	`

	_, err := r.pool.Exec(ctx, query,
		booking.ID,
		booking.MentorID,
		booking.MenteeID,
		booking.Date,
		booking.StartTime,
		booking.EndTime,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	return err
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (models.Booking, error) {
	const query = `
		SELECT id, mentor_id, mentee_id, date, start_time, end_time, status, created_at, updated_at
		FROM bookings WHERE id = $1
	`

	row := r.pool.QueryRow(ctx, query, id)
	var booking models.Booking
	if err := row.Scan(
		&booking.ID,
		&booking.MentorID,
		&booking.MenteeID,
		&booking.Date,
		&booking.StartTime,
		&booking.EndTime,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Booking{}, ErrBookingNotFound
		}
		return models.Booking{}, err
	}
	return booking, nil
}

// Update replaces the whole row. Insert-or-replace keyed by id keeps
// the ledger last-write-wins across concurrent mutations.
func (r *BookingRepository) Update(ctx context.Context, booking models.Booking) error {
	const query = `
		INSERT INTO bookings (
			id, mentor_id, mentee_id, date, start_time, end_time, status, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)
		ON CONFLICT (id)
		DO UPDATE SET
			mentor_id  = EXCLUDED.mentor_id,
			mentee_id  = EXCLUDED.mentee_id,
			date       = EXCLUDED.date,
			start_time = EXCLUDED.start_time,
			end_time   = EXCLUDED.end_time,
			status     = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.pool.Exec(ctx, query,
		booking.ID,
		booking.MentorID,
		booking.MenteeID,
		booking.Date,
		booking.StartTime,
		booking.EndTime,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	return err
}

func (r *BookingRepository) ListByParticipant(ctx context.Context, userID string) ([]models.Booking, error) {
	const query = `
		SELECT id, mentor_id, mentee_id, date, start_time, end_time, status, created_at, updated_at
		FROM bookings
		WHERE mentor_id = $1 OR mentee_id = $1
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var booking models.Booking
		if err := rows.Scan(
			&booking.ID,
			&booking.MentorID,
			&booking.MenteeID,
			&booking.Date,
			&booking.StartTime,
			&booking.EndTime,
			&booking.Status,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		); err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	return bookings, rows.Err()
}

func (r *BookingRepository) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM bookings`
	var count int
	if err := r.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
