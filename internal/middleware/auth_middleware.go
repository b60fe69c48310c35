package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursemart/coursemart-backend/internal/app/models"
	"github.com/coursemart/coursemart-backend/internal/app/models/dto"
	"github.com/coursemart/coursemart-backend/internal/pkg/auth"
	"github.com/coursemart/coursemart-backend/internal/pkg/logger"
)

// Context keys set by the auth middleware
const (
	ContextUserEmail = "userEmail"
	ContextUserRole  = "userRole"
	ContextUser      = "user"
)

// UserFinder re-resolves the requester from the user store. The role inside
// the token is advisory; authorization always checks the stored role.
type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthMiddleware guards routes with the cookie-delivered identity token
type AuthMiddleware struct {
	tokenService *auth.TokenService
	userRepo     UserFinder
	cookieName   string
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(tokenService *auth.TokenService, userRepo UserFinder, cookieName string) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
		userRepo:     userRepo,
		cookieName:   cookieName,
	}
}

// CookieAuth validates the identity token cookie and stores the verified
// email and advisory role on the request context
func (m *AuthMiddleware) CookieAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(m.cookieName)
		if err != nil || tokenString == "" {
			abortUnauthorized(c, dto.ErrorCodeTokenMissing, "Authentication required")
			return
		}

		claims, err := m.tokenService.Verify(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				abortUnauthorized(c, dto.ErrorCodeExpiredToken, "Token expired")
				return
			}
			abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Invalid token")
			return
		}

		c.Set(ContextUserEmail, claims.Email)
		c.Set(ContextUserRole, claims.Role)
		c.Next()
	}
}

// RoleRequired allows the request through only when the requester's stored
// role matches. The lookup goes to the user store on every request, so a
// demotion takes effect immediately even while an old token is still valid.
// A mismatch reads as a stale credential and yields 401.
func (m *AuthMiddleware) RoleRequired(role models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(ContextUserEmail)
		if email == "" {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Authentication required")
			return
		}

		user, err := m.userRepo.FindByEmail(c.Request.Context(), email)
		if err != nil {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Unauthorized access")
			return
		}
		if user.Role != role {
			logger.Warn().
				Str("email", email).
				Str("have", string(user.Role)).
				Str("want", string(role)).
				Msg("Role check failed")
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Unauthorized access")
			return
		}

		c.Set(ContextUser, user)
		c.Next()
	}
}

// CurrentUser returns the store-resolved requester set by RoleRequired
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(ContextUser)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

func abortUnauthorized(c *gin.Context, code dto.ErrorCode, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}
