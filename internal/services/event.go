package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"eventguestbook/internal/domain"
)

// Event input formats: month-day-year dates and 24-hour clock times.
const (
	eventDateLayout = "01-02-2006"
	eventTimeLayout = "15:04"
)

type eventService struct {
	eventRepo domain.EventRepository
}

// NewEventService creates an EventService backed by the given repository.
func NewEventService(eventRepo domain.EventRepository) domain.EventService {
	return &eventService{eventRepo: eventRepo}
}

// parseSchedule parses the date and time strings strictly. Both create and
// update go through here so the two operations reject bad input identically.
func parseSchedule(dateStr, timeStr string) (date, startTime time.Time, err error) {
	date, err = time.Parse(eventDateLayout, strings.TrimSpace(dateStr))
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrInvalidDate
	}
	startTime, err = time.Parse(eventTimeLayout, strings.TrimSpace(timeStr))
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrInvalidTime
	}
	return date, startTime, nil
}

func (s *eventService) Create(ctx context.Context, title, description, dateStr, timeStr string) (*domain.Event, error) {
	date, startTime, err := parseSchedule(dateStr, timeStr)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	event := domain.NewEvent(strings.TrimSpace(title), description, date, startTime, now, now)
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return event, nil
}

func (s *eventService) Update(ctx context.Context, id, title, description, dateStr, timeStr string) (*domain.Event, error) {
	date, startTime, err := parseSchedule(dateStr, timeStr)
	if err != nil {
		return nil, err
	}
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	event.Title = strings.TrimSpace(title)
	event.Description = description
	event.Date = date
	event.StartTime = startTime
	event.UpdatedAt = time.Now()
	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventService) Delete(ctx context.Context, id string) error {
	return s.eventRepo.Delete(ctx, id)
}

func (s *eventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.eventRepo.GetByID(ctx, id)
}

func (s *eventService) List(ctx context.Context) ([]*domain.Event, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}
