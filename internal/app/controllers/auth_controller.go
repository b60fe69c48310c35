package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursemart/coursemart-backend/internal/app/models/dto"
	"github.com/coursemart/coursemart-backend/internal/middleware"
	"github.com/coursemart/coursemart-backend/internal/pkg/auth"
	"github.com/coursemart/coursemart-backend/internal/pkg/logger"
)

// AuthController issues and clears the identity token cookie
type AuthController struct {
	tokenService *auth.TokenService
	cookieName   string
	secureCookie bool
}

// NewAuthController creates a new AuthController. secureCookie should be
// true in production so the cookie only travels over HTTPS.
func NewAuthController(tokenService *auth.TokenService, cookieName string, secureCookie bool) *AuthController {
	return &AuthController{
		tokenService: tokenService,
		cookieName:   cookieName,
		secureCookie: secureCookie,
	}
}

// IssueToken handles POST /jwt. It signs an identity token for the given
// email and delivers it in an HTTP-only cookie. Every authenticated route
// reads the token back from that cookie.
func (c *AuthController) IssueToken(ctx *gin.Context) {
	var req dto.TokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	token, err := c.tokenService.Issue(req.Email, req.Role)
	if err != nil {
		logger.Error().Err(err).Str("email", req.Email).Msg("Failed to sign token")
		middleware.HandleAPIError(ctx, err)
		return
	}

	maxAge := int(c.tokenService.TokenTTL().Seconds())
	c.setCookie(ctx, token, maxAge)
	ctx.JSON(http.StatusOK, dto.TokenResponse{Success: true})
}

// ClearToken handles GET /logout by expiring the cookie
func (c *AuthController) ClearToken(ctx *gin.Context) {
	c.setCookie(ctx, "", -1)
	ctx.JSON(http.StatusOK, dto.TokenResponse{Success: true})
}

func (c *AuthController) setCookie(ctx *gin.Context, value string, maxAge int) {
	// SameSite=None is only valid on Secure cookies, so development falls
	// back to Lax.
	if c.secureCookie {
		ctx.SetSameSite(http.SameSiteNoneMode)
	} else {
		ctx.SetSameSite(http.SameSiteLaxMode)
	}
	ctx.SetCookie(c.cookieName, value, maxAge, "/", "", c.secureCookie, true)
}
