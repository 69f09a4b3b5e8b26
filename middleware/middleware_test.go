package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monipee-hotel/models"
	"monipee-hotel/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeSessions map[string]models.User

func (f fakeSessions) CurrentUser(_ context.Context, token string) (models.User, error) {
	if token == "broken" {
		return models.User{}, errors.New("backend down")
	}
	u, ok := f[token]
	if !ok {
		return models.User{}, services.ErrUnauthenticated
	}
	return u, nil
}

type fakeSettings struct{ maintenance bool }

func (f fakeSettings) Get(context.Context) (models.HotelSettings, error) {
	return models.HotelSettings{MaintenanceMode: f.maintenance}, nil
}

var sessions = fakeSessions{
	"guest-token": {ID: "user-1", Name: "Ama", Role: models.RoleCustomer},
	"admin-token": {ID: "admin-001", Name: "Admin", Role: models.RoleAdmin},
}

func do(r http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	r := gin.New()
	r.GET("/x", RequireAuth(sessions), func(c *gin.Context) {
		u, ok := CurrentUser(c)
		require.True(t, ok)
		c.String(http.StatusOK, u.ID+":"+SessionToken(c))
	})

	w := do(r, "guest-token")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1:guest-token", w.Body.String())

	w = do(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)

	w = do(r, "nope")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, "broken")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	r := gin.New()
	r.GET("/x", RequireAuth(sessions), RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	assert.Equal(t, http.StatusForbidden, do(r, "guest-token").Code)
	assert.Equal(t, http.StatusNoContent, do(r, "admin-token").Code)
}

func TestBearerToken(t *testing.T) {
	cases := map[string]string{
		"Bearer abc":   "abc",
		"bearer  abc ": "abc",
		"Basic abc":    "",
		"Bearer":       "",
		"":             "",
	}
	for header, want := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Request.Header.Set("Authorization", header)
		assert.Equal(t, want, BearerToken(c), header)
	}
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDKey)) })

	w := do(r, "")
	generated := w.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	clock := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return clock }

	r := gin.New()
	r.GET("/x", rl.Limit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, do(r, "").Code)
	assert.Equal(t, http.StatusOK, do(r, "").Code)
	assert.Equal(t, http.StatusTooManyRequests, do(r, "").Code)

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.RemoteAddr = "10.0.0.9:5555"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code, "limits are per client ip")
}

func TestRateLimiter_SweepsIdleVisitors(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	clock := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return clock }

	rl.getLimiter("1.1.1.1")
	clock = clock.Add(visitorIdleTTL + time.Minute)
	rl.getLimiter("2.2.2.2")

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.NotContains(t, rl.visitors, "1.1.1.1")
	assert.Contains(t, rl.visitors, "2.2.2.2")
}

func TestMaintenance(t *testing.T) {
	build := func(on bool) *gin.Engine {
		r := gin.New()
		r.GET("/x", RequireAuth(sessions), Maintenance(fakeSettings{maintenance: on}), func(c *gin.Context) {
			c.Status(http.StatusCreated)
		})
		return r
	}

	assert.Equal(t, http.StatusCreated, do(build(false), "guest-token").Code)
	assert.Equal(t, http.StatusServiceUnavailable, do(build(true), "guest-token").Code)
	assert.Equal(t, http.StatusCreated, do(build(true), "admin-token").Code)
}
