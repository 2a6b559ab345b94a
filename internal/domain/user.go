package domain

import (
	"context"
	"errors"
	"time"
)

// Errors returned by AuthService. Controllers turn these into user-visible
// status messages; they never reach the client as raw errors.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrIncorrectPassword = errors.New("incorrect password")
	ErrEmailTaken        = errors.New("a user with this email already exists")
	ErrPasswordMismatch  = errors.New("passwords do not match")
	ErrInvalidEmail      = errors.New("invalid email format")
)

// Errors mapped from unique-constraint violations by the user repository.
var (
	ErrDuplicateEmail    = errors.New("email already in use")
	ErrDuplicateUsername = errors.New("username already in use")
)

// User represents a registered account. The password credential is only ever
// stored as PasswordHash + Salt; IsAdmin is set once at registration and is
// immutable afterwards.
// swagger:model User
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewUser returns a new User with the given fields. ID is set by the repository on create.
func NewUser(name, username, email, passwordHash, salt string, isAdmin bool, createdAt, updatedAt time.Time) *User {
	return &User{
		Name:         name,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Salt:         salt,
		IsAdmin:      isAdmin,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

// PasswordHasher handles salt generation, hashing, and verification.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// UserRepository defines the interface for user storage.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Count(ctx context.Context) (int, error)
}

// AuthService defines registration, credential checks, and identity lookup.
// Session establishment itself is a delivery concern (cookie store); the
// service only decides whether an identity may be established.
type AuthService interface {
	Register(ctx context.Context, name, username, email, password, confirmPassword string) (*User, error)
	Login(ctx context.Context, username, password string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}
