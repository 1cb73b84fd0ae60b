package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel-frontdesk-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubSessions map[string]*service.UserResponse

func (s stubSessions) GetCurrentSession(_ context.Context, token string) (*service.UserResponse, error) {
	if user, ok := s[token]; ok {
		return user, nil
	}
	return nil, errors.New("no session")
}

func newGuardedRouter(handlerRan *bool) *gin.Engine {
	sessions := stubSessions{
		"staff-token": {ID: "u1", Email: "recepcion@hotel.test", Role: "staff"},
		"admin-token": {ID: "u2", Email: "jefa@hotel.test", Role: "admin"},
	}
	r := gin.New()
	guarded := r.Group("/", SessionGuard(sessions, zap.NewNop()))
	guarded.GET("/dashboard", func(c *gin.Context) {
		*handlerRan = true
		c.String(http.StatusOK, UserID(c))
	})
	guarded.PATCH("/rooms/:id/status", RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestSessionGuard_NoSessionRedirects(t *testing.T) {
	for _, header := range []string{"", "Bearer wrong", "Token staff-token"} {
		ran := false
		r := newGuardedRouter(&ran)

		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, header)
		assert.False(t, ran, "handler must not run without a session")

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "/", body["redirect"])
	}
}

func TestSessionGuard_ValidSession(t *testing.T) {
	ran := false
	r := newGuardedRouter(&ran)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Authorization", "Bearer staff-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, ran)
	assert.Equal(t, "u1", w.Body.String())
}

func TestRequireAdmin(t *testing.T) {
	ran := false
	r := newGuardedRouter(&ran)

	for token, want := range map[string]int{"staff-token": http.StatusForbidden, "admin-token": http.StatusNoContent} {
		req := httptest.NewRequest(http.MethodPatch, "/rooms/r1/status", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, want, w.Code, token)
	}
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"http://localhost:3000"}))
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://evil.test")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
