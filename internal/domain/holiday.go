package domain

import (
	"context"
	"errors"
	"time"
)

// ErrHolidayProviderUnavailable is returned when the upstream holiday API
// cannot be reached, answers non-2xx, or returns a payload that does not parse.
var ErrHolidayProviderUnavailable = errors.New("holiday provider unavailable")

// Holiday is a single public holiday as shaped from the provider payload.
// swagger:model Holiday
type Holiday struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

// MonthHolidays is the holiday listing for one calendar month.
type MonthHolidays struct {
	Year     int        `json:"year"`
	Month    time.Month `json:"month"`
	Holidays []Holiday  `json:"holidays"`
}

// HolidayFetcher fetches the holidays of one month from the external provider.
type HolidayFetcher interface {
	FetchMonth(ctx context.Context, year int, month time.Month) ([]Holiday, error)
}

// HolidayService resolves the current month's holidays. The month is derived
// from a clock per call, never from process-start state.
type HolidayService interface {
	Upcoming(ctx context.Context) (*MonthHolidays, error)
}
