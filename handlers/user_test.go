package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Hiyashree/birthday-project/handlers"
	"github.com/Hiyashree/birthday-project/models"
	"github.com/Hiyashree/birthday-project/store"
)

func newUserRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	gin.SetMode(gin.TestMode)
	h := handlers.NewUserHandler(store.NewAccountStore(db), zap.NewNop().Sugar())

	r := gin.New()
	r.GET("/search-users", h.SearchUsers)
	return r, mock
}

func TestSearchUsersBlankQueryReturnsEmptyArray(t *testing.T) {
	r, mock := newUserRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/search-users?q=", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != "[]" {
		t.Fatalf("expected empty array, got %s", body)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("database should not be queried: %v", err)
	}
}

func TestSearchUsersReturnsProfiles(t *testing.T) {
	r, mock := newUserRouter(t)

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM users").
		WithArgs("%ali%", "%ali%").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "email", "password", "birthday",
			"profile_pic", "bio", "location", "created_at", "updated_at",
		}).
			AddRow("u1", "Alice", "alice@x.com", "hash", "1990-06-15", "", "", "", now, now).
			AddRow("u2", "Bob", "alistair@x.com", "hash", "1991-01-01", "", "", "", now, now))

	rec := doJSON(t, r, http.MethodGet, "/search-users?q=ali", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []models.UserProfile
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 results, got %d", len(resp))
	}
	// profiles only: no password or id in the payload
	if resp[0].Name != "Alice" || resp[1].Email != "alistair@x.com" {
		t.Fatalf("unexpected response: %s", rec.Body.String())
	}
}
