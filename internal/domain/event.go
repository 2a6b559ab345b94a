package domain

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a looked-up entity does not exist in the store.
var ErrNotFound = errors.New("not found")

// Validation errors for event date/time input. Both create and edit surface
// these to the caller instead of silently dropping the submission.
var (
	ErrInvalidDate = errors.New("invalid date, expected MM-DD-YYYY")
	ErrInvalidTime = errors.New("invalid time, expected HH:MM (24-hour)")
)

// Event represents a scheduled event guests can RSVP to. Date carries the
// calendar day and StartTime the clock time; they are parsed independently.
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	StartTime   time.Time `json:"start_time"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewEvent returns a new Event with the given fields. ID is set by the repository on create.
func NewEvent(title, description string, date, startTime, createdAt, updatedAt time.Time) *Event {
	return &Event{
		Title:       title,
		Description: description,
		Date:        date,
		StartTime:   startTime,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// EventWithGuests bundles an event with its RSVP'd guests for the guest-list view.
type EventWithGuests struct {
	Event  *Event   `json:"event"`
	Guests []*Guest `json:"guests"`
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id string) error
}

// EventService defines the business logic for event management. Date strings
// are parsed strictly as month-day-year and time strings as 24-hour
// hour:minute; parse failures return ErrInvalidDate / ErrInvalidTime and
// leave the store untouched.
type EventService interface {
	Create(ctx context.Context, title, description, dateStr, timeStr string) (*Event, error)
	Update(ctx context.Context, id, title, description, dateStr, timeStr string) (*Event, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
}
