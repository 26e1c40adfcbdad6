package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/Hiyashree/birthday-project/models"
)

type InviteStore struct {
	db *sql.DB
}

func NewInviteStore(db *sql.DB) *InviteStore {
	return &InviteStore{db: db}
}

func (s *InviteStore) Create(ctx context.Context, inv *models.Invite) error {
	inv.ID = uuid.New().String()
	inv.CreatedAt = time.Now()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO invites (id, from_addr, to_addr, date, time, place, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, inv.ID, inv.From, inv.To, inv.Date, inv.Time, inv.Place, inv.Message, inv.CreatedAt)
	return err
}
