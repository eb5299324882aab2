package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeResolver struct {
	tokens map[string]uint
}

func (r *fakeResolver) ResolveToken(token string) (uint, error) {
	if id, ok := r.tokens[token]; ok {
		return id, nil
	}
	return 0, errors.New("unknown token")
}

func newTestRouter(m *Middleware, capability Capability) *gin.Engine {
	router := gin.New()
	router.Use(m.Handler())
	router.GET("/guarded", m.Require(capability), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"role":    GetRole(c).String(),
			"user_id": GetUserID(c),
		})
	})
	return router
}

func doRequest(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestMiddleware_ModeNoneGrantsAdmin(t *testing.T) {
	m := NewMiddleware(ModeNone, DefaultPolicy(), "", nil)
	router := newTestRouter(m, CapManageCatalog)

	w := doRequest(router, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"admin"`)
}

func TestMiddleware_TokenMode_AnonymousGetsUnauthorized(t *testing.T) {
	m := NewMiddleware(ModeToken, DefaultPolicy(), "", nil)
	router := newTestRouter(m, CapBorrow)

	w := doRequest(router, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMiddleware_TokenMode_AnonymousCanBrowse(t *testing.T) {
	m := NewMiddleware(ModeToken, DefaultPolicy(), "", nil)
	router := newTestRouter(m, CapBrowseCatalog)

	w := doRequest(router, "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMiddleware_TokenMode_UserToken(t *testing.T) {
	resolver := &fakeResolver{tokens: map[string]uint{"user-token": 42}}
	m := NewMiddleware(ModeToken, DefaultPolicy(), "", resolver)
	router := newTestRouter(m, CapBorrow)

	w := doRequest(router, "user-token")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":42`)
}

func TestMiddleware_TokenMode_UserLacksAdminCapability(t *testing.T) {
	resolver := &fakeResolver{tokens: map[string]uint{"user-token": 42}}
	m := NewMiddleware(ModeToken, DefaultPolicy(), "", resolver)
	router := newTestRouter(m, CapManageCatalog)

	w := doRequest(router, "user-token")

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestMiddleware_TokenMode_AdminToken(t *testing.T) {
	hash, err := HashToken("admin-secret", 4)
	require.NoError(t, err)

	m := NewMiddleware(ModeToken, DefaultPolicy(), hash, nil)
	router := newTestRouter(m, CapManageCatalog)

	w := doRequest(router, "admin-secret")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"admin"`)
}

func TestMiddleware_TokenMode_WrongAdminToken(t *testing.T) {
	hash, err := HashToken("admin-secret", 4)
	require.NoError(t, err)

	m := NewMiddleware(ModeToken, DefaultPolicy(), hash, nil)
	router := newTestRouter(m, CapManageCatalog)

	w := doRequest(router, "not-the-secret")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMiddleware_MalformedAuthorizationHeader(t *testing.T) {
	resolver := &fakeResolver{tokens: map[string]uint{"user-token": 42}}
	m := NewMiddleware(ModeToken, DefaultPolicy(), "", resolver)
	router := newTestRouter(m, CapBorrow)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "user-token") // no Bearer prefix
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHashToken_RoundTrip(t *testing.T) {
	hash, err := HashToken("some-token", 0)
	require.NoError(t, err)
	assert.NotEqual(t, "some-token", hash)
	assert.True(t, len(hash) > 0)
}
