package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/Hiyashree/birthday-project/models"
)

func newMockStore(t *testing.T) (*AccountStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewAccountStore(db), mock
}

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "email", "password", "birthday",
		"profile_pic", "bio", "location", "created_at", "updated_at",
	})
}

func TestFindByEmail(t *testing.T) {
	s, mock := newMockStore(t)

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM users WHERE email").
		WithArgs("a@x.com").
		WillReturnRows(userRows().AddRow("u1", "A", "a@x.com", "hash", "1990-06-15", "", "", "", now, now))

	user, err := s.FindByEmail(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("find by email: %v", err)
	}
	if user.ID != "u1" || user.Name != "A" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestFindByEmailMissing(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery("SELECT .* FROM users WHERE email").
		WithArgs("nobody@x.com").
		WillReturnRows(userRows())

	_, err := s.FindByEmail(context.Background(), "nobody@x.com")
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestSearchBlankQuerySkipsDatabase(t *testing.T) {
	s, mock := newMockStore(t)

	// no query expectations registered: a blank q must not reach the DB
	for _, q := range []string{"", "   "} {
		users, err := s.Search(context.Background(), q)
		if err != nil {
			t.Fatalf("search %q: %v", q, err)
		}
		if len(users) != 0 {
			t.Fatalf("search %q: expected empty result, got %d", q, len(users))
		}
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestSearchMatchesNameOrEmail(t *testing.T) {
	s, mock := newMockStore(t)

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM users").
		WithArgs("%ali%", "%ali%").
		WillReturnRows(userRows().
			AddRow("u1", "Alice", "alice@x.com", "hash", "1990-06-15", "", "", "", now, now).
			AddRow("u2", "Bob", "alistair@x.com", "hash", "1991-01-01", "", "", "", now, now))

	users, err := s.Search(context.Background(), "ali")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 results, got %d", len(users))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestCreateInsertsAllFields(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec("INSERT INTO users").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := s.Create(context.Background(), &models.User{
		ID:       "u1",
		Name:     "A",
		Email:    "a@x.com",
		Password: "hash",
		Birthday: "1990-06-15",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
