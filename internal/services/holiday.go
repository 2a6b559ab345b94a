package services

import (
	"context"
	"fmt"
	"time"

	"eventguestbook/internal/domain"
)

type holidayService struct {
	fetcher domain.HolidayFetcher
	now     func() time.Time
}

// NewHolidayService creates a HolidayService. The clock is injected so the
// current month is evaluated per call; a nil clock uses time.Now.
func NewHolidayService(fetcher domain.HolidayFetcher, now func() time.Time) domain.HolidayService {
	if now == nil {
		now = time.Now
	}
	return &holidayService{fetcher: fetcher, now: now}
}

func (s *holidayService) Upcoming(ctx context.Context) (*domain.MonthHolidays, error) {
	current := s.now()
	year, month := current.Year(), current.Month()
	holidays, err := s.fetcher.FetchMonth(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch holidays for %d-%02d: %w", year, int(month), err)
	}
	return &domain.MonthHolidays{Year: year, Month: month, Holidays: holidays}, nil
}
