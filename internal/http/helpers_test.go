package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayayoy/lendhub/internal/database"
)

func TestParseIDParam(t *testing.T) {
	router := gin.New()
	router.GET("/things/:id", func(c *gin.Context) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id})
	})

	req := httptest.NewRequest(http.MethodGet, "/things/42", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":42`)

	for _, bad := range []string{"abc", "-1", "1.5"} {
		req = httptest.NewRequest(http.MethodGet, "/things/"+bad, nil)
		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, "id %q should be rejected", bad)
	}
}

func TestParseDate(t *testing.T) {
	date, err := parseDate("2026-10-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), date)

	_, err = parseDate("01/10/2026")
	assert.Error(t, err)
}

func TestRespondDomainError_Mapping(t *testing.T) {
	cases := []struct {
		err        error
		wantStatus int
	}{
		{database.ErrBookNotFound, http.StatusNotFound},
		{database.ErrUserNotFound, http.StatusNotFound},
		{database.ErrBorrowNotFound, http.StatusNotFound},
		{database.ErrDuplicateBorrow, http.StatusBadRequest},
		{database.ErrBorrowLimit, http.StatusBadRequest},
		{database.ErrBookBorrowed, http.StatusBadRequest},
		{database.ErrNotPending, http.StatusBadRequest},
		{database.ErrDuplicateISBN, http.StatusBadRequest},
		{assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			router := gin.New()
			router.GET("/fail", func(c *gin.Context) {
				respondDomainError(c, tc.err, "test")
			})

			req := httptest.NewRequest(http.MethodGet, "/fail", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.wantStatus, w.Code)
			if tc.wantStatus == http.StatusInternalServerError {
				assert.NotContains(t, w.Body.String(), tc.err.Error())
			} else {
				assert.Contains(t, w.Body.String(), tc.err.Error())
			}
		})
	}
}
