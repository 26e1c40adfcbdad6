package friendship

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Hiyashree/birthday-project/models"
	"github.com/Hiyashree/birthday-project/store"
)

// Directory resolves account identities for the workflow engine.
type Directory interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// Relationships is the persistence surface the workflow engine drives: the
// friend-request ledger plus the per-account friend-link lists.
type Relationships interface {
	CreateRequest(ctx context.Context, fromID, toID string) (*models.FriendRequest, error)
	RequestByID(ctx context.Context, id string) (*models.FriendRequest, error)
	HasPendingBetween(ctx context.Context, userA, userB string) (bool, error)
	IncomingPending(ctx context.Context, toID string) ([]models.FriendRequestWithSender, error)
	HasAcceptedLink(ctx context.Context, userID, friendID string) (bool, error)
	Accept(ctx context.Context, requestID, fromID, toID string) error
	Reject(ctx context.Context, requestID string) error
	AcceptedFriends(ctx context.Context, userID string) ([]models.User, error)
}

// Service enforces the friend-request lifecycle: a request is created pending
// and transitions exactly once to accepted or rejected.
type Service struct {
	directory     Directory
	relationships Relationships
}

func NewService(directory Directory, relationships Relationships) *Service {
	return &Service{directory: directory, relationships: relationships}
}

func (s *Service) resolve(ctx context.Context, email string) (*models.User, error) {
	user, err := s.directory.FindByEmail(ctx, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("user not found")
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// SendRequest creates a pending request from one account to another. Requests
// to yourself, requests duplicating a pending one in either direction, and
// requests to an existing friend are refused.
func (s *Service) SendRequest(ctx context.Context, fromEmail, toEmail string) error {
	from, err := s.resolve(ctx, fromEmail)
	if err != nil {
		return err
	}
	to, err := s.resolve(ctx, toEmail)
	if err != nil {
		return err
	}

	if from.ID == to.ID {
		return invalid("you cannot send a friend request to yourself")
	}

	pending, err := s.relationships.HasPendingBetween(ctx, from.ID, to.ID)
	if err != nil {
		return err
	}
	if pending {
		return conflict("friend request already sent")
	}

	friends, err := s.relationships.HasAcceptedLink(ctx, from.ID, to.ID)
	if err != nil {
		return err
	}
	if friends {
		return conflict("you are already friends")
	}

	_, err = s.relationships.CreateRequest(ctx, from.ID, to.ID)
	return err
}

// ListIncoming returns the account's pending requests with each sender's name
// and email populated.
func (s *Service) ListIncoming(ctx context.Context, email string) ([]models.FriendRequestWithSender, error) {
	user, err := s.resolve(ctx, email)
	if err != nil {
		return nil, err
	}
	return s.relationships.IncomingPending(ctx, user.ID)
}

// Respond applies the one-shot transition on a pending request. Accepting
// materializes the friendship on both sides atomically; rejecting only flips
// the request. Both outcomes are terminal.
func (s *Service) Respond(ctx context.Context, requestID, action string) error {
	req, err := s.relationships.RequestByID(ctx, requestID)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound("friend request not found")
	}
	if err != nil {
		return err
	}

	if req.Status != models.StatusPending {
		return invalid("friend request already handled")
	}

	switch action {
	case models.ActionAccept:
		err = s.relationships.Accept(ctx, req.ID, req.FromID, req.ToID)
	case models.ActionReject:
		err = s.relationships.Reject(ctx, req.ID)
	default:
		return invalid("unknown action")
	}

	if errors.Is(err, store.ErrRequestNotPending) {
		// lost a race with another responder
		return invalid("friend request already handled")
	}
	return err
}

// ListFriends returns the account's accepted friends as profile entries.
// Links whose counterparty no longer resolves are dropped silently.
func (s *Service) ListFriends(ctx context.Context, email string) ([]models.UserProfile, error) {
	user, err := s.resolve(ctx, email)
	if err != nil {
		return nil, err
	}

	friends, err := s.relationships.AcceptedFriends(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	profiles := []models.UserProfile{}
	for i := range friends {
		profiles = append(profiles, *friends[i].ToProfile())
	}
	return profiles, nil
}
