package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"

	"github.com/taskhive/internal/config"
	"github.com/taskhive/internal/db"
	"github.com/taskhive/internal/domain"
	"github.com/taskhive/internal/validation"
)

// authService implements the AuthService interface
type authService struct {
	database *db.DB
	tokens   domain.TokenManager
	hasher   domain.CredentialHasher
	config   *config.Config
	logger   *slog.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	database *db.DB,
	tokens domain.TokenManager,
	hasher domain.CredentialHasher,
	cfg *config.Config,
	logger *slog.Logger,
) domain.AuthService {
	return &authService{
		database: database,
		tokens:   tokens,
		hasher:   hasher,
		config:   cfg,
		logger:   logger,
	}
}

// NormalizeEmail lowercases and trims an email so matching is case-insensitive
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup registers a new account and issues a token bound to a fresh session
func (s *authService) Signup(ctx context.Context, email, password string) (*db.User, string, error) {
	email = NormalizeEmail(email)

	if err := validation.ValidateEmail(email); err != nil {
		s.logger.WarnContext(ctx, "invalid signup email", "error", err)
		return nil, "", domain.WrapInvalidInput("email", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		s.logger.WarnContext(ctx, "invalid signup password", "error", err)
		return nil, "", domain.WrapInvalidInput("password", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.ErrorContext(ctx, "password hashing failed", "error", err)
		return nil, "", domain.WrapCredentialService(err)
	}

	user := db.NewUser(email, hash)
	if err := s.database.CreateUser(ctx, user); err != nil {
		// The unique index on email backs this, so the loser of a
		// concurrent signup race lands here too
		if db.IsUniqueConstraintError(err) {
			s.logger.WarnContext(ctx, "signup with registered email", "userID", user.ID)
			return nil, "", domain.WrapDuplicateEmail(err)
		}
		s.logger.ErrorContext(ctx, "failed to create user", "error", err)
		return nil, "", domain.WrapDatabaseOperation("create user", err)
	}

	token, err := s.issueSession(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}

	s.logger.InfoContext(ctx, "user signed up", "userID", user.ID)
	return user, token, nil
}

// Login verifies credentials and issues a token bound to a fresh session
func (s *authService) Login(ctx context.Context, email, password string) (*db.User, string, error) {
	email = NormalizeEmail(email)

	user, err := s.database.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Deliberately the same error as a password mismatch to
			// prevent account enumeration
			s.logger.WarnContext(ctx, "login with unknown email")
			return nil, "", domain.ErrInvalidCredentials
		}
		s.logger.ErrorContext(ctx, "failed to look up user", "error", err)
		return nil, "", domain.WrapDatabaseOperation("get user by email", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		s.logger.WarnContext(ctx, "login with wrong password", "userID", user.ID)
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.issueSession(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}

	s.logger.InfoContext(ctx, "user logged in", "userID", user.ID)
	return user, token, nil
}

// issueSession creates a session row and signs a token bound to it
func (s *authService) issueSession(ctx context.Context, userID string) (string, error) {
	session := db.NewSession(userID, s.config.Auth.SessionTTL)
	if err := s.database.CreateSession(ctx, session); err != nil {
		s.logger.ErrorContext(ctx, "failed to create session", "userID", userID, "error", err)
		return "", domain.WrapDatabaseOperation("create session", err)
	}

	token, err := s.tokens.Issue(userID, session.ID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to sign token", "userID", userID, "error", err)
		return "", domain.WrapCredentialService(err)
	}

	return token, nil
}

// Logout destroys all sessions for the user. Logging out with no active
// session is a no-op success.
func (s *authService) Logout(ctx context.Context, userID string) error {
	removed, err := s.database.DeleteSessionsByUserID(ctx, userID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to delete sessions", "userID", userID, "error", err)
		return domain.WrapDatabaseOperation("delete sessions", err)
	}

	s.logger.InfoContext(ctx, "user logged out", "userID", userID, "sessionsRemoved", removed)
	return nil
}

// Authenticate resolves a bearer token to a user ID. The token must carry a
// valid signature and name a live session owned by the same user.
func (s *authService) Authenticate(ctx context.Context, tokenString string) (string, error) {
	userID, sessionID, err := s.tokens.Parse(tokenString)
	if err != nil {
		s.logger.WarnContext(ctx, "token verification failed", "error", err)
		return "", domain.WrapUnauthorized(err)
	}

	session, err := s.database.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.logger.WarnContext(ctx, "token references revoked session", "userID", userID)
			return "", domain.WrapUnauthorized(err)
		}
		s.logger.ErrorContext(ctx, "failed to load session", "error", err)
		return "", domain.WrapDatabaseOperation("get session", err)
	}

	if session.UserID != userID {
		s.logger.WarnContext(ctx, "token subject does not own session", "userID", userID)
		return "", domain.ErrUnauthorized
	}

	if session.Expired() {
		// Opportunistic cleanup; the maintenance job sweeps the rest
		if err := s.database.DeleteSession(ctx, session.ID); err != nil {
			s.logger.WarnContext(ctx, "failed to delete expired session", "sessionID", session.ID, "error", err)
		}
		return "", domain.ErrUnauthorized
	}

	return userID, nil
}

// CurrentUser loads the user backing a resolved identity
func (s *authService) CurrentUser(ctx context.Context, userID string) (*db.User, error) {
	user, err := s.database.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.WrapUserNotFound(userID, err)
		}
		s.logger.ErrorContext(ctx, "failed to load user", "userID", userID, "error", err)
		return nil, domain.WrapDatabaseOperation("get user", err)
	}
	return user, nil
}
