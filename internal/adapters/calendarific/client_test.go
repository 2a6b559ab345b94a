package calendarific

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventguestbook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFetcher(t *testing.T, handler http.HandlerFunc) domain.HolidayFetcher {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	f := NewHTTPFetcher(srv.Client(), "test-key").(*httpFetcher)
	f.baseURL = srv.URL
	return f
}

func TestHTTPFetcher_FetchMonth(t *testing.T) {
	ctx := context.Background()

	f := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "test-key", q.Get("api_key"))
		assert.Equal(t, "US", q.Get("country"))
		assert.Equal(t, "2026", q.Get("year"))
		assert.Equal(t, "7", q.Get("month"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"response": {
				"holidays": [
					{"name": "Independence Day", "description": "Federal holiday", "date": {"iso": "2026-07-04"}},
					{"name": "Some Observance", "description": "", "date": {"iso": "2026-07-12T02:00:00-05:00"}}
				]
			}
		}`))
	})

	holidays, err := f.FetchMonth(ctx, 2026, time.July)
	require.NoError(t, err)
	require.Len(t, holidays, 2)
	assert.Equal(t, "Independence Day", holidays[0].Name)
	assert.Equal(t, "Federal holiday", holidays[0].Description)
	assert.Equal(t, time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC), holidays[0].Date)
	assert.Equal(t, 12, holidays[1].Date.Day())
}

func TestHTTPFetcher_FetchMonth_empty(t *testing.T) {
	f := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"response": {"holidays": []}}`))
	})

	holidays, err := f.FetchMonth(context.Background(), 2026, time.February)
	require.NoError(t, err)
	assert.Empty(t, holidays)
}

func TestHTTPFetcher_FetchMonth_upstream_errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-200 status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"response": {`))
			},
		},
		{
			name: "bad holiday date",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"response": {"holidays": [{"name": "X", "date": {"iso": "not-a-date"}}]}}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFetcher(t, tt.handler)
			_, err := f.FetchMonth(context.Background(), 2026, time.March)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrHolidayProviderUnavailable)
		})
	}
}

func TestHTTPFetcher_FetchMonth_context_cancelled(t *testing.T) {
	f := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := f.FetchMonth(ctx, 2026, time.March)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrHolidayProviderUnavailable)
}
