package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"mentorlink/api/internal/config"
	"mentorlink/api/internal/ids"
	"mentorlink/api/internal/models"
	"mentorlink/api/internal/repository"
	"mentorlink/api/internal/security"
)

type AuthService struct {
	users    repository.UserStore
	sessions repository.SessionStore
	creds    security.Credentials
	cfg      *config.AppConfig
	log      zerolog.Logger
}

func NewAuthService(
	users repository.UserStore,
	sessions repository.SessionStore,
	creds security.Credentials,
	cfg *config.AppConfig,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		creds:    creds,
		cfg:      cfg,
		log:      log,
	}
}

type RegisterInput struct {
	Username  string
	Password  string
	Role      models.UserRole
	Expertise *models.Expertise
}

// Register creates an account. Usernames are not checked for
// duplicates; FindByUsername resolves collisions first-match-wins.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (models.User, error) {
	stored, err := s.creds.Store(input.Password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:        ids.New(),
		Username:  input.Username,
		Password:  stored,
		Role:      input.Role,
		Expertise: input.Expertise,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return models.User{}, err
	}

	s.log.Debug().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("user registered")
	return user, nil
}

type LoginResult struct {
	User  models.User
	Token string
}

// Login verifies credentials and writes the session marker for the
// user id, overwriting any prior marker. The returned token is an
// optional credential; booking authorization still runs on the path
// user id plus the marker.
func (s *AuthService) Login(ctx context.Context, username, password string) (LoginResult, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, err
	}

	ok, err := s.creds.Verify(password, user.Password)
	if err != nil || !ok {
		return LoginResult{}, ErrInvalidCredentials
	}

	if err := s.sessions.Put(ctx, user); err != nil {
		return LoginResult{}, err
	}

	token, err := security.GenerateAccessToken(
		s.cfg.Security.JWTSecret,
		user.ID,
		string(user.Role),
		s.cfg.Security.JWTAccessTTL,
	)
	if err != nil {
		return LoginResult{}, err
	}

	s.log.Debug().Str("user_id", user.ID).Msg("user logged in")
	return LoginResult{User: user, Token: token}, nil
}

// Logout removes the session marker. A logout without an active
// session is ErrNotLoggedIn.
func (s *AuthService) Logout(ctx context.Context, userID string) error {
	if err := s.sessions.Delete(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return ErrNotLoggedIn
		}
		return err
	}

	s.log.Debug().Str("user_id", userID).Msg("user logged out")
	return nil
}
