package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"eventguestbook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEventRepo implements domain.EventRepository for tests.
type fakeEventRepo struct {
	byID      map[string]*domain.Event
	order     []string
	createErr error
	nextID    int
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{byID: make(map[string]*domain.Event)}
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	e.ID = fmt.Sprintf("ev-%d", f.nextID)
	f.byID[e.ID] = e
	f.order = append(f.order, e.ID)
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if e, ok := f.byID[id]; ok {
		copied := *e
		return &copied, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) List(ctx context.Context) ([]*domain.Event, error) {
	events := make([]*domain.Event, 0, len(f.order))
	for _, id := range f.order {
		events = append(events, f.byID[id])
	}
	return events, nil
}

func (f *fakeEventRepo) Update(ctx context.Context, e *domain.Event) error {
	if _, ok := f.byID[e.ID]; !ok {
		return domain.ErrNotFound
	}
	f.byID[e.ID] = e
	return nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	for i, existing := range f.order {
		if existing == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func TestEventService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		dateStr string
		timeStr string
		wantErr error
	}{
		{"valid date and time", "01-13-2024", "14:30", nil},
		{"invalid month", "13-01-2024", "14:30", domain.ErrInvalidDate},
		{"garbage date", "next tuesday", "14:30", domain.ErrInvalidDate},
		{"invalid hour", "01-13-2024", "25:00", domain.ErrInvalidTime},
		{"twelve hour clock", "01-13-2024", "2:30 PM", domain.ErrInvalidTime},
		{"empty date", "", "14:30", domain.ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeEventRepo()
			svc := NewEventService(repo)

			event, err := svc.Create(ctx, "Launch Party", "Snacks provided", tt.dateStr, tt.timeStr)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, repo.byID, "a parse failure must not add an event")
				return
			}
			require.NoError(t, err)
			require.Len(t, repo.byID, 1)
			assert.Equal(t, "Launch Party", event.Title)
			assert.Equal(t, time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC), event.Date)
			assert.Equal(t, 14, event.StartTime.Hour())
			assert.Equal(t, 30, event.StartTime.Minute())
		})
	}
}

func TestEventService_Update(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) (*fakeEventRepo, string) {
		t.Helper()
		repo := newFakeEventRepo()
		svc := NewEventService(repo)
		event, err := svc.Create(ctx, "Original", "Original description", "01-13-2024", "14:30")
		require.NoError(t, err)
		return repo, event.ID
	}

	t.Run("success overwrites all fields", func(t *testing.T) {
		repo, id := seed(t)
		svc := NewEventService(repo)

		updated, err := svc.Update(ctx, id, "New Title", "New description", "02-14-2025", "09:15")
		require.NoError(t, err)
		assert.Equal(t, "New Title", updated.Title)
		assert.Equal(t, time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC), updated.Date)
		assert.Equal(t, 9, updated.StartTime.Hour())

		stored := repo.byID[id]
		assert.Equal(t, "New Title", stored.Title)
	})

	t.Run("invalid date rejected before any lookup", func(t *testing.T) {
		repo, id := seed(t)
		svc := NewEventService(repo)

		_, err := svc.Update(ctx, id, "New", "New", "14-01-2025", "09:15")
		require.ErrorIs(t, err, domain.ErrInvalidDate)
		assert.Equal(t, "Original", repo.byID[id].Title)
	})

	t.Run("missing event", func(t *testing.T) {
		repo, _ := seed(t)
		svc := NewEventService(repo)

		_, err := svc.Update(ctx, "ev-missing", "New", "New", "02-14-2025", "09:15")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestEventService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEventRepo()
	svc := NewEventService(repo)
	event, err := svc.Create(ctx, "Launch Party", "", "01-13-2024", "14:30")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, event.ID))
	assert.Empty(t, repo.byID)

	require.ErrorIs(t, svc.Delete(ctx, event.ID), domain.ErrNotFound)
}

func TestEventService_List(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEventRepo()
	svc := NewEventService(repo)

	events, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)

	_, err = svc.Create(ctx, "First", "", "01-13-2024", "14:30")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "Second", "", "01-14-2024", "09:00")
	require.NoError(t, err)

	events, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)
}
