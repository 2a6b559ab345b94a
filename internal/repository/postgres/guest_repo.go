package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"eventguestbook/internal/domain"
)

type guestRepository struct {
	DB *sql.DB
}

func NewGuestRepository(db *sql.DB) domain.GuestRepository {
	return &guestRepository{DB: db}
}

// Create inserts the guest and its association to the target event in a
// single transaction, so a half-recorded RSVP is never visible.
func (r *guestRepository) Create(ctx context.Context, g *domain.Guest, eventID string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT INTO guests (name, email, plus_one, phone, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	if err := tx.QueryRowContext(ctx, query, g.Name, g.Email, g.PlusOne, g.Phone, g.CreatedAt).Scan(&g.ID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO event_guests (event_id, guest_id) VALUES ($1, $2)`, eventID, g.ID); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *guestRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Guest, error) {
	query := `
		SELECT g.id, g.name, g.email, g.plus_one, g.phone, g.created_at
		FROM guests g
		INNER JOIN event_guests eg ON eg.guest_id = g.id
		WHERE eg.event_id = $1
		ORDER BY g.created_at
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	guests := make([]*domain.Guest, 0)
	for rows.Next() {
		g := &domain.Guest{}
		if err := rows.Scan(&g.ID, &g.Name, &g.Email, &g.PlusOne, &g.Phone, &g.CreatedAt); err != nil {
			return nil, err
		}
		guests = append(guests, g)
	}
	return guests, rows.Err()
}
