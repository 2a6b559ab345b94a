package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"eventguestbook/internal/domain"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type authService struct {
	userRepo     domain.UserRepository
	hasher       domain.PasswordHasher
	emailService domain.EmailService
	logger       *slog.Logger
}

// NewAuthService creates an AuthService with the given repository, hasher,
// and optional email service (nil disables the welcome email).
func NewAuthService(userRepo domain.UserRepository, hasher domain.PasswordHasher, emailService domain.EmailService, logger *slog.Logger) domain.AuthService {
	return &authService{
		userRepo:     userRepo,
		hasher:       hasher,
		emailService: emailService,
		logger:       logger,
	}
}

// Register creates a new account. The first account ever registered becomes
// the administrator; every later one is a regular user.
func (s *authService) Register(ctx context.Context, name, username, email, password, confirmPassword string) (*domain.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	username = strings.TrimSpace(username)
	if !emailRegexp.MatchString(email) {
		return nil, domain.ErrInvalidEmail
	}

	_, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, domain.ErrEmailTaken
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	if password != confirmPassword {
		return nil, domain.ErrPasswordMismatch
	}

	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	hash, err := s.hasher.Hash(salt, password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	now := time.Now()
	user := domain.NewUser(strings.TrimSpace(name), username, email, hash, salt, count == 0, now, now)
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Welcome email is best effort; registration already succeeded.
	if s.emailService != nil {
		data := &domain.WelcomeEmailData{Email: user.Email, Name: user.Name}
		if err := s.emailService.SendWelcome(ctx, data); err != nil {
			s.logger.WarnContext(ctx, "welcome email failed", "email", user.Email, "err", err)
		}
	}
	return user, nil
}

// Login checks the credentials for the given username. It distinguishes an
// unknown username from a wrong password so the caller can surface different
// statuses.
func (s *authService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if err := s.hasher.Compare(user.PasswordHash, user.Salt, password); err != nil {
		return nil, domain.ErrIncorrectPassword
	}
	return user, nil
}

func (s *authService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
