package calendarific

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"eventguestbook/internal/domain"
)

const defaultBaseURL = "https://calendarific.com/api/v2"

// Holidays are requested for this country; the provider needs it on every call.
const countryCode = "US"

type apiHoliday struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        struct {
		ISO string `json:"iso"`
	} `json:"date"`
}

type apiResponse struct {
	Response struct {
		Holidays []apiHoliday `json:"holidays"`
	} `json:"response"`
}

type httpFetcher struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewHTTPFetcher returns a fetcher that calls the Calendarific holidays API.
// The caller supplies the http.Client so the timeout is configured in one
// place; nil falls back to http.DefaultClient.
func NewHTTPFetcher(client *http.Client, apiKey string) domain.HolidayFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpFetcher{client: client, baseURL: defaultBaseURL, apiKey: apiKey}
}

func (f *httpFetcher) FetchMonth(ctx context.Context, year int, month time.Month) ([]domain.Holiday, error) {
	params := url.Values{}
	params.Set("api_key", f.apiKey)
	params.Set("country", countryCode)
	params.Set("year", strconv.Itoa(year))
	params.Set("month", strconv.Itoa(int(month)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"/holidays?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrHolidayProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrHolidayProviderUnavailable, resp.StatusCode)
	}

	var data apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %w", domain.ErrHolidayProviderUnavailable, err)
	}

	holidays := make([]domain.Holiday, 0, len(data.Response.Holidays))
	for _, h := range data.Response.Holidays {
		date, err := parseISODate(h.Date.ISO)
		if err != nil {
			return nil, fmt.Errorf("%w: bad holiday date %q: %w", domain.ErrHolidayProviderUnavailable, h.Date.ISO, err)
		}
		holidays = append(holidays, domain.Holiday{
			Name:        h.Name,
			Description: h.Description,
			Date:        date,
		})
	}
	return holidays, nil
}

// parseISODate accepts the provider's date forms: a bare day or a full
// timestamp with offset.
func parseISODate(iso string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", iso); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05-07:00", iso)
}
