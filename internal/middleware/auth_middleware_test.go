package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/coursemart/coursemart-backend/internal/app/models"
	"github.com/coursemart/coursemart-backend/internal/pkg/apperrors"
	"github.com/coursemart/coursemart-backend/internal/pkg/auth"
)

type fakeUserFinder struct {
	users map[string]*models.User
}

func (f *fakeUserFinder) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func testRouter(t *testing.T, finder *fakeUserFinder, requiredRole models.RoleType) (*gin.Engine, *auth.TokenService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokenService := auth.NewTokenService(auth.TokenConfig{
		SecretKey: "test-secret",
		TokenTTL:  time.Minute,
	})
	m := NewAuthMiddleware(tokenService, finder, "token")

	router := gin.New()
	group := router.Group("", m.CookieAuth())
	group.GET("/open", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString(ContextUserEmail)})
	})
	group.GET("/guarded", m.RoleRequired(requiredRole), func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"role": string(user.Role)})
	})

	return router, tokenService
}

func doRequest(router *gin.Engine, path, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "token", Value: cookie})
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCookieAuthMissingCookie(t *testing.T) {
	router, _ := testRouter(t, &fakeUserFinder{}, models.RoleAdmin)

	w := doRequest(router, "/open", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestCookieAuthInvalidToken(t *testing.T) {
	router, _ := testRouter(t, &fakeUserFinder{}, models.RoleAdmin)

	w := doRequest(router, "/open", "garbage")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestCookieAuthValidToken(t *testing.T) {
	router, tokenService := testRouter(t, &fakeUserFinder{}, models.RoleAdmin)

	token, err := tokenService.Issue("s@example.com", "student")
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	w := doRequest(router, "/open", token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRoleRequiredUsesStoredRole(t *testing.T) {
	finder := &fakeUserFinder{users: map[string]*models.User{
		"s@example.com": {Email: "s@example.com", Role: models.RoleStudent},
	}}
	router, tokenService := testRouter(t, finder, models.RoleAdmin)

	// The token claims admin but the store says student; the store wins.
	token, err := tokenService.Issue("s@example.com", "admin")
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	w := doRequest(router, "/guarded", token)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for stale role claim, got %d", w.Code)
	}
}

func TestRoleRequiredMatch(t *testing.T) {
	finder := &fakeUserFinder{users: map[string]*models.User{
		"a@example.com": {Email: "a@example.com", Role: models.RoleAdmin},
	}}
	router, tokenService := testRouter(t, finder, models.RoleAdmin)

	token, err := tokenService.Issue("a@example.com", "admin")
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	w := doRequest(router, "/guarded", token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRoleRequiredUnknownUser(t *testing.T) {
	router, tokenService := testRouter(t, &fakeUserFinder{}, models.RoleAdmin)

	token, err := tokenService.Issue("ghost@example.com", "admin")
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	w := doRequest(router, "/guarded", token)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown user, got %d", w.Code)
	}
}
