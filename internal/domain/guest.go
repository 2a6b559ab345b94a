package domain

import (
	"context"
	"errors"
	"time"
)

// ErrMissingGuestDetails is returned when an RSVP lacks a name or email.
var ErrMissingGuestDetails = errors.New("guest name and email are required")

// Guest represents a person who RSVP'd to at least one event. Name, email,
// and phone are free-form; the same person may RSVP to several events.
// swagger:model Guest
type Guest struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	PlusOne   bool      `json:"plus_one"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// NewGuest returns a new Guest with the given fields. ID is set by the repository on create.
func NewGuest(name, email string, plusOne bool, phone string, createdAt time.Time) *Guest {
	return &Guest{
		Name:      name,
		Email:     email,
		PlusOne:   plusOne,
		Phone:     phone,
		CreatedAt: createdAt,
	}
}

// GuestRepository defines the interface for guest storage. Create persists
// the guest and its association to the target event in one transaction.
type GuestRepository interface {
	Create(ctx context.Context, guest *Guest, eventID string) error
	ListByEventID(ctx context.Context, eventID string) ([]*Guest, error)
}

// RSVPService defines the public RSVP flow: a guest is always created against
// exactly one existing event.
type RSVPService interface {
	AddGuest(ctx context.Context, eventID, name, email string, plusOne bool, phone string) (*Guest, error)
	ListEventsWithGuests(ctx context.Context) ([]*EventWithGuests, error)
}
