package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"eventguestbook/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestGuestRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		guest   *domain.Guest
		eventID string
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr bool
	}{
		{
			name:    "success commits guest and association",
			guest:   domain.NewGuest("Jane", "jane@x.com", true, "+12025550123", now),
			eventID: "ev-1",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`INSERT INTO guests \(name, email, plus_one, phone, created_at\)`).
					WithArgs("Jane", "jane@x.com", true, "+12025550123", now).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("guest-uuid-1"))
				mock.ExpectExec(`INSERT INTO event_guests \(event_id, guest_id\)`).
					WithArgs("ev-1", "guest-uuid-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			wantID: "guest-uuid-1",
		},
		{
			name:    "guest insert fails rolls back",
			guest:   domain.NewGuest("Jane", "jane@x.com", false, "", now),
			eventID: "ev-1",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`INSERT INTO guests`).
					WillReturnError(sql.ErrConnDone)
				mock.ExpectRollback()
			},
			wantErr: true,
		},
		{
			name:    "association insert fails rolls back",
			guest:   domain.NewGuest("Jane", "jane@x.com", false, "", now),
			eventID: "ev-gone",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`INSERT INTO guests`).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("guest-uuid-2"))
				mock.ExpectExec(`INSERT INTO event_guests`).
					WillReturnError(sql.ErrConnDone)
				mock.ExpectRollback()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewGuestRepository(db)
			err = repo.Create(ctx, tt.guest, tt.eventID)
			if tt.wantErr {
				require.Error(t, err)
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, tt.guest.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGuestRepository_ListByEventID(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT g.id, g.name, g.email, g.plus_one, g.phone, g.created_at`).
		WithArgs("ev-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "plus_one", "phone", "created_at"}).
			AddRow("guest-1", "Jane", "jane@x.com", true, "+12025550123", now).
			AddRow("guest-2", "John", "john@x.com", false, "", now))

	repo := NewGuestRepository(db)
	guests, err := repo.ListByEventID(ctx, "ev-1")
	require.NoError(t, err)
	require.Len(t, guests, 2)
	require.Equal(t, "jane@x.com", guests[0].Email)
	require.Equal(t, "john@x.com", guests[1].Email)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGuestRepository_ListByEventID_empty(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT g.id, g.name, g.email, g.plus_one, g.phone, g.created_at`).
		WithArgs("ev-empty").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "plus_one", "phone", "created_at"}))

	repo := NewGuestRepository(db)
	guests, err := repo.ListByEventID(ctx, "ev-empty")
	require.NoError(t, err)
	require.Empty(t, guests)
	require.NoError(t, mock.ExpectationsWereMet())
}
