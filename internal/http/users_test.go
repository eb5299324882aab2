package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayayoy/lendhub/internal/database"
	"github.com/ayayoy/lendhub/internal/entities"
)

type fakeAccountStore struct {
	pending    []entities.User
	pendingErr error

	approvedID  uint
	approveDate time.Time
	approveErr  error

	rejectedID uint
	rejectErr  error
}

func (s *fakeAccountStore) ListPending() ([]entities.User, error) {
	return s.pending, s.pendingErr
}

func (s *fakeAccountStore) Approve(id uint, returnDate time.Time) error {
	if s.approveErr != nil {
		return s.approveErr
	}
	s.approvedID = id
	s.approveDate = returnDate
	return nil
}

func (s *fakeAccountStore) Reject(id uint) error {
	if s.rejectErr != nil {
		return s.rejectErr
	}
	s.rejectedID = id
	return nil
}

func setupAccountsRouter(store *fakeAccountStore) *gin.Engine {
	controller := NewAccountsController(store, nil)
	router := gin.New()
	router.GET("/books/users", controller.ListPending)
	router.PUT("/books/users/:id", controller.Approve)
	router.DELETE("/books/users/:id", controller.Reject)
	return router
}

func TestListPendingUsers(t *testing.T) {
	store := &fakeAccountStore{pending: []entities.User{
		{ID: 1, Email: "pending@example.com", Name: "Pending"},
	}}
	router := setupAccountsRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/books/users", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Msg   string          `json:"msg"`
		Users []entities.User `json:"users"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "these are users who registered", response.Msg)
	require.Len(t, response.Users, 1)
	assert.Equal(t, "pending@example.com", response.Users[0].Email)
}

func TestListPendingUsers_Empty(t *testing.T) {
	router := setupAccountsRouter(&fakeAccountStore{})

	req := httptest.NewRequest(http.MethodGet, "/books/users", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// An empty list is still a 200; only the borrow listings 404 when empty.
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestApproveUser(t *testing.T) {
	store := &fakeAccountStore{}
	router := setupAccountsRouter(store)

	body := bytes.NewBufferString(`{"return_date":"2026-10-01"}`)
	req := httptest.NewRequest(http.MethodPut, "/books/users/7", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user status updated successfully")
	assert.Equal(t, uint(7), store.approvedID)
	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), store.approveDate)
}

func TestApproveUser_MissingReturnDate(t *testing.T) {
	router := setupAccountsRouter(&fakeAccountStore{})

	req := httptest.NewRequest(http.MethodPut, "/books/users/7", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "return_date is required")
}

func TestApproveUser_MalformedDate(t *testing.T) {
	router := setupAccountsRouter(&fakeAccountStore{})

	body := bytes.NewBufferString(`{"return_date":"01/10/2026"}`)
	req := httptest.NewRequest(http.MethodPut, "/books/users/7", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "return_date must be a valid date")
}

func TestApproveUser_NotFound(t *testing.T) {
	store := &fakeAccountStore{approveErr: database.ErrUserNotFound}
	router := setupAccountsRouter(store)

	body := bytes.NewBufferString(`{"return_date":"2026-10-01"}`)
	req := httptest.NewRequest(http.MethodPut, "/books/users/999", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRejectUser(t *testing.T) {
	store := &fakeAccountStore{}
	router := setupAccountsRouter(store)

	req := httptest.NewRequest(http.MethodDelete, "/books/users/7", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user deleted successfully")
	assert.Equal(t, uint(7), store.rejectedID)
}

func TestRejectUser_NotFound(t *testing.T) {
	store := &fakeAccountStore{rejectErr: database.ErrUserNotFound}
	router := setupAccountsRouter(store)

	req := httptest.NewRequest(http.MethodDelete, "/books/users/999", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
