package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/taskdeck-api/internal/domain"
	"github.com/phrazzld/taskdeck-api/internal/platform/logger"
	"github.com/phrazzld/taskdeck-api/internal/service/auth"
	"github.com/phrazzld/taskdeck-api/internal/store"
)

// AuthResult is returned by a successful registration or login.
type AuthResult struct {
	ID       uuid.UUID
	Username string
	Email    string
	Token    string
}

// AccountService registers users and authenticates them.
type AccountService interface {
	// Register creates an account and returns a fresh token for it.
	// Returns ErrMissingField if any input is empty and ErrDuplicateEmail if
	// the email is taken. Nothing is stored on failure.
	Register(ctx context.Context, username, email, password string) (*AuthResult, error)

	// Login verifies the credentials and returns a fresh token.
	// Returns ErrMissingField if email or password is empty and
	// ErrInvalidCredentials for an unknown email or a wrong password.
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}

type accountServiceImpl struct {
	users  store.UserStore
	hasher auth.PasswordHasher
	tokens auth.JWTService
	logger *slog.Logger
}

// NewAccountService creates an AccountService.
// It returns an error if any of the required dependencies are nil.
func NewAccountService(
	users store.UserStore,
	hasher auth.PasswordHasher,
	tokens auth.JWTService,
	logger *slog.Logger,
) (AccountService, error) {
	if users == nil {
		return nil, domain.NewValidationError("users", "cannot be nil", domain.ErrValidation)
	}
	if hasher == nil {
		return nil, domain.NewValidationError("hasher", "cannot be nil", domain.ErrValidation)
	}
	if tokens == nil {
		return nil, domain.NewValidationError("tokens", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &accountServiceImpl{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		logger: logger.With(slog.String("component", "account_service")),
	}, nil
}

// Register implements AccountService.Register.
func (s *accountServiceImpl) Register(
	ctx context.Context,
	username, email, password string,
) (*AuthResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	switch {
	case username == "":
		return nil, missingField("username")
	case email == "":
		return nil, missingField("email")
	case password == "":
		return nil, missingField("password")
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		log.Error("failed to hash password", slog.String("error", err.Error()))
		return nil, NewServiceError("register", "failed to hash password", err)
	}

	user, err := domain.NewUser(username, email, digest)
	if err != nil {
		return nil, err
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			log.Debug("registration rejected: email already registered")
			return nil, ErrDuplicateEmail
		}
		log.Error("failed to store user", slog.String("error", err.Error()))
		return nil, NewServiceError("register", "failed to store user", err)
	}

	log.Info("user registered", slog.String("user_id", user.ID.String()))
	return s.issue(ctx, "register", user)
}

// Login implements AccountService.Login.
func (s *accountServiceImpl) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	switch {
	case email == "":
		return nil, missingField("email")
	case password == "":
		return nil, missingField("password")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("login rejected: unknown email")
			return nil, ErrInvalidCredentials
		}
		log.Error("failed to look up user", slog.String("error", err.Error()))
		return nil, NewServiceError("login", "failed to look up user", err)
	}

	if err := s.hasher.Compare(user.HashedPassword, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			log.Debug("login rejected: wrong password", slog.String("user_id", user.ID.String()))
			return nil, ErrInvalidCredentials
		}
		log.Error("failed to verify password",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return nil, NewServiceError("login", "failed to verify password", err)
	}

	log.Debug("user logged in", slog.String("user_id", user.ID.String()))
	return s.issue(ctx, "login", user)
}

func (s *accountServiceImpl) issue(ctx context.Context, op string, user *domain.User) (*AuthResult, error) {
	token, err := s.tokens.GenerateToken(ctx, user.ID)
	if err != nil {
		return nil, NewServiceError(op, "failed to generate token", err)
	}

	return &AuthResult{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Token:    token,
	}, nil
}
