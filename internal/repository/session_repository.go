package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"mentorlink/api/internal/models"
)

const sessionKeyPrefix = "session:"

// SessionRepository keeps login markers in redis, keyed by user id.
// The stored value is the user record as of login time. Keys carry no
// TTL: a marker lives until explicit logout.
type SessionRepository struct {
	client *redis.Client
}

var _ SessionStore = (*SessionRepository)(nil)

func NewSessionRepository(client *redis.Client) *SessionRepository {
	return &SessionRepository{client: client}
}

func (r *SessionRepository) Put(ctx context.Context, user models.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	// SET overwrites any prior marker: double login is not an error.
	return r.client.Set(ctx, sessionKey(user.ID), payload, 0).Err()
}

func (r *SessionRepository) Get(ctx context.Context, userID string) (models.User, error) {
	payload, err := r.client.Get(ctx, sessionKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.User{}, ErrSessionNotFound
		}
		return models.User{}, err
	}

	var user models.User
	if err := json.Unmarshal(payload, &user); err != nil {
		return models.User{}, fmt.Errorf("unmarshal session: %w", err)
	}
	return user, nil
}

func (r *SessionRepository) Delete(ctx context.Context, userID string) error {
	deleted, err := r.client.Del(ctx, sessionKey(userID)).Result()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func sessionKey(userID string) string {
	return sessionKeyPrefix + userID
}
