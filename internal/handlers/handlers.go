package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"mentorlink/api/internal/config"
	"mentorlink/api/internal/repository"
	"mentorlink/api/internal/security"
	"mentorlink/api/internal/service"
)

type HandlerSet struct {
	log       zerolog.Logger
	cfg       *config.AppConfig
	auth      *service.AuthService
	directory *service.DirectoryService
	bookings  *service.BookingService
	db        *pgxpool.Pool
	cache     *redis.Client
}

func NewHandlerSet(
	log zerolog.Logger,
	cfg *config.AppConfig,
	users repository.UserStore,
	bookingStore repository.BookingStore,
	sessions repository.SessionStore,
	db *pgxpool.Pool,
	cache *redis.Client,
) HandlerSet {
	var creds security.Credentials = security.PlaintextCredentials{}
	if cfg.Security.PasswordHashing {
		creds = security.NewArgon2Credentials()
	}

	auth := service.NewAuthService(users, sessions, creds, cfg, log)
	directory := service.NewDirectoryService(users)
	bookings := service.NewBookingService(users, bookingStore, sessions, cfg.Booking.StrictTransitions, log)

	return HandlerSet{
		log:       log,
		cfg:       cfg,
		auth:      auth,
		directory: directory,
		bookings:  bookings,
		db:        db,
		cache:     cache,
	}
}

func (h HandlerSet) Register(router *gin.RouterGroup) {
	router.GET("/healthz", h.Health)

	router.POST("/register", h.RegisterUser)
	router.POST("/login", h.Login)
	router.POST("/logout/:userId", h.Logout)

	router.GET("/users/:userId", h.GetUser)
	router.POST("/search", h.Search)

	router.POST("/book/:menteeId", h.CreateBooking)
	router.GET("/bookings/:bookingId", h.GetBooking)
	router.GET("/users/:userId/bookings", h.ListBookings)
	router.PATCH("/users/:userId/bookings/:bookingId/reschedule", h.Reschedule)
	router.PATCH("/users/:userId/bookings/:bookingId/cancel", h.Cancel)
	router.PATCH("/users/:userId/bookings/:bookingId/accept", h.Accept)
	router.PATCH("/users/:userId/bookings/:bookingId/reject", h.Reject)
}

// respondError maps the service and repository sentinels onto the
// REST statuses: 404 for absent entities, 401 for authorization
// failures, 409 for strict-mode transition violations.
func (h HandlerSet) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrUserNotFound),
		errors.Is(err, repository.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrNotLoggedIn),
		errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrTransitionNotAllowed):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUnknownExpertise):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
	}
}
