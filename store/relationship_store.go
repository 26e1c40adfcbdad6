package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Hiyashree/birthday-project/models"
)

// ErrRequestNotPending is returned by Accept when the request row was not in
// the pending state at commit time.
var ErrRequestNotPending = errors.New("request is not pending")

// RelationshipStore owns the friend-request ledger and each account's
// denormalized friend-link list.
type RelationshipStore struct {
	db *sql.DB
}

func NewRelationshipStore(db *sql.DB) *RelationshipStore {
	return &RelationshipStore{db: db}
}

func (s *RelationshipStore) CreateRequest(ctx context.Context, fromID, toID string) (*models.FriendRequest, error) {
	now := time.Now()
	req := &models.FriendRequest{
		ID:        uuid.New().String(),
		FromID:    fromID,
		ToID:      toID,
		Status:    models.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO friend_requests (id, from_id, to_id, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, req.ID, req.FromID, req.ToID, req.Status, now, now)
	if err != nil {
		return nil, err
	}
	return req, nil
}

// RequestByID returns sql.ErrNoRows when the request does not exist.
func (s *RelationshipStore) RequestByID(ctx context.Context, id string) (*models.FriendRequest, error) {
	var r models.FriendRequest
	err := s.db.QueryRowContext(ctx, `
		SELECT id, from_id, to_id, status, created_at, updated_at
		FROM friend_requests WHERE id = ?
	`, id).Scan(&r.ID, &r.FromID, &r.ToID, &r.Status, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// HasPendingBetween reports whether a pending request exists in either
// direction between the two accounts.
func (s *RelationshipStore) HasPendingBetween(ctx context.Context, userA, userB string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM friend_requests
			WHERE status = 'pending'
			  AND ((from_id = ? AND to_id = ?) OR (from_id = ? AND to_id = ?))
		)
	`, userA, userB, userB, userA).Scan(&exists)
	return exists, err
}

// IncomingPending lists pending requests addressed to the account, newest
// first, with the sender's name and email joined in.
func (s *RelationshipStore) IncomingPending(ctx context.Context, toID string) ([]models.FriendRequestWithSender, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.from_id, r.to_id, r.status, r.created_at, r.updated_at,
			   u.id, u.name, u.email
		FROM friend_requests r
		JOIN users u ON u.id = r.from_id
		WHERE r.to_id = ? AND r.status = 'pending'
		ORDER BY r.created_at DESC
	`, toID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := []models.FriendRequestWithSender{}
	for rows.Next() {
		var r models.FriendRequestWithSender
		if err := rows.Scan(
			&r.ID, &r.FromID, &r.ToID, &r.Status, &r.CreatedAt, &r.UpdatedAt,
			&r.From.ID, &r.From.Name, &r.From.Email,
		); err != nil {
			return nil, err
		}
		requests = append(requests, r)
	}
	return requests, rows.Err()
}

func (s *RelationshipStore) HasAcceptedLink(ctx context.Context, userID, friendID string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM friend_links
			WHERE user_id = ? AND friend_id = ? AND status = 'accepted'
		)
	`, userID, friendID).Scan(&exists)
	return exists, err
}

// Accept flips the request to accepted and materializes both sides of the
// friendship in one transaction. Link insertion is idempotent on the
// (user_id, friend_id) key, so a re-run cannot duplicate links.
func (s *RelationshipStore) Accept(ctx context.Context, requestID, fromID, toID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	now := time.Now()

	result, err := tx.ExecContext(ctx,
		"UPDATE friend_requests SET status = 'accepted', updated_at = ? WHERE id = ? AND status = 'pending'",
		now, requestID,
	)
	if err != nil {
		tx.Rollback()
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		tx.Rollback()
		return err
	}
	if affected == 0 {
		tx.Rollback()
		return ErrRequestNotPending
	}

	for _, pair := range [][2]string{{fromID, toID}, {toID, fromID}} {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO friend_links (id, user_id, friend_id, status, created_at, updated_at)
			VALUES (?, ?, ?, 'accepted', ?, ?)
			ON DUPLICATE KEY UPDATE status = 'accepted', updated_at = ?
		`, uuid.New().String(), pair[0], pair[1], now, now, now)
		if err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

func (s *RelationshipStore) Reject(ctx context.Context, requestID string) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE friend_requests SET status = 'rejected', updated_at = ? WHERE id = ? AND status = 'pending'",
		time.Now(), requestID,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrRequestNotPending
	}
	return nil
}

// AcceptedFriends resolves the account's accepted links to user records. Links
// whose counterparty no longer exists drop out of the join.
func (s *RelationshipStore) AcceptedFriends(ctx context.Context, userID string) ([]models.User, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT u.id, u.name, u.email, u.password, u.birthday, u.profile_pic, u.bio, u.location, u.created_at, u.updated_at
		FROM friend_links l
		JOIN users u ON u.id = l.friend_id
		WHERE l.user_id = ? AND l.status = 'accepted'
		ORDER BY u.name
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var friends []models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		friends = append(friends, *u)
	}
	return friends, rows.Err()
}
