package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockRelationships(t *testing.T) (*RelationshipStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewRelationshipStore(db), mock
}

func TestAcceptCommitsRequestAndBothLinks(t *testing.T) {
	s, mock := newMockRelationships(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE friend_requests SET status = 'accepted'").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO friend_links").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO friend_links").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := s.Accept(context.Background(), "r1", "u1", "u2"); err != nil {
		t.Fatalf("accept: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestAcceptRollsBackWhenNotPending(t *testing.T) {
	s, mock := newMockRelationships(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE friend_requests SET status = 'accepted'").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := s.Accept(context.Background(), "r1", "u1", "u2")
	if !errors.Is(err, ErrRequestNotPending) {
		t.Fatalf("expected ErrRequestNotPending, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestAcceptRollsBackOnLinkInsertFailure(t *testing.T) {
	s, mock := newMockRelationships(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE friend_requests SET status = 'accepted'").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO friend_links").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	if err := s.Accept(context.Background(), "r1", "u1", "u2"); err == nil {
		t.Fatal("expected error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestRejectRequiresPending(t *testing.T) {
	s, mock := newMockRelationships(t)

	mock.ExpectExec("UPDATE friend_requests SET status = 'rejected'").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.Reject(context.Background(), "r1")
	if !errors.Is(err, ErrRequestNotPending) {
		t.Fatalf("expected ErrRequestNotPending, got %v", err)
	}
}

func TestHasPendingBetweenChecksBothDirections(t *testing.T) {
	s, mock := newMockRelationships(t)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("u1", "u2", "u2", "u1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	pending, err := s.HasPendingBetween(context.Background(), "u1", "u2")
	if err != nil {
		t.Fatalf("has pending: %v", err)
	}
	if !pending {
		t.Fatal("expected pending = true")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestIncomingPendingJoinsSender(t *testing.T) {
	s, mock := newMockRelationships(t)

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "from_id", "to_id", "status", "created_at", "updated_at",
		"id", "name", "email",
	}).AddRow("r1", "u1", "u2", "pending", now, now, "u1", "A", "a@x.com")

	mock.ExpectQuery("SELECT .* FROM friend_requests r").
		WithArgs("u2").
		WillReturnRows(rows)

	requests, err := s.IncomingPending(context.Background(), "u2")
	if err != nil {
		t.Fatalf("incoming pending: %v", err)
	}
	if len(requests) != 1 {
		t.Fatalf("expected 1 request, got %d", len(requests))
	}
	if requests[0].From.Name != "A" || requests[0].From.Email != "a@x.com" {
		t.Fatalf("sender not populated: %+v", requests[0].From)
	}
}
