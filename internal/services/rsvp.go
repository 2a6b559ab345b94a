package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nyaruka/phonenumbers"

	"eventguestbook/internal/domain"
)

type rsvpService struct {
	eventRepo domain.EventRepository
	guestRepo domain.GuestRepository
}

// NewRSVPService creates an RSVPService over the event and guest repositories.
func NewRSVPService(eventRepo domain.EventRepository, guestRepo domain.GuestRepository) domain.RSVPService {
	return &rsvpService{eventRepo: eventRepo, guestRepo: guestRepo}
}

// AddGuest records an RSVP against an existing event. Phone numbers are
// normalized to E.164 when they parse; otherwise the raw input is kept, since
// guest contact details are free-form.
func (s *rsvpService) AddGuest(ctx context.Context, eventID, name, email string, plusOne bool, phone string) (*domain.Guest, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))
	if name == "" || email == "" {
		return nil, domain.ErrMissingGuestDetails
	}

	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}

	guest := domain.NewGuest(name, email, plusOne, normalizePhone(phone), time.Now())
	if err := s.guestRepo.Create(ctx, guest, eventID); err != nil {
		return nil, fmt.Errorf("failed to create guest: %w", err)
	}
	return guest, nil
}

func (s *rsvpService) ListEventsWithGuests(ctx context.Context) ([]*domain.EventWithGuests, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	listing := make([]*domain.EventWithGuests, 0, len(events))
	for _, event := range events {
		guests, err := s.guestRepo.ListByEventID(ctx, event.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list guests for event %s: %w", event.ID, err)
		}
		listing = append(listing, &domain.EventWithGuests{Event: event, Guests: guests})
	}
	return listing, nil
}

func normalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}
	num, err := phonenumbers.Parse(phone, "US")
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return phone
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}
