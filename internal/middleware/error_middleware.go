package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/coursemart/coursemart-backend/internal/app/models/dto"
	"github.com/coursemart/coursemart-backend/internal/pkg/apperrors"
	"github.com/coursemart/coursemart-backend/internal/pkg/logger"
)

// HandleAPIError maps an application error to its HTTP response. Controllers
// funnel every service error through here so status codes and machine codes
// stay consistent across the API.
func HandleAPIError(c *gin.Context, err error) {
	var customErr *apperrors.CustomError
	message := err.Error()
	if errors.As(err, &customErr) && customErr.Message != "" {
		message = customErr.Message
	}

	switch {
	case errors.Is(err, apperrors.ErrUnauthorized),
		errors.Is(err, apperrors.ErrTokenNotFound),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeUnauthorized, message)

	case errors.Is(err, apperrors.ErrInvalidSignature):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidSignature, message)

	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrCourseNotFound),
		errors.Is(err, apperrors.ErrOrderNotFound),
		errors.Is(err, apperrors.ErrAssignmentNotFound),
		errors.Is(err, apperrors.ErrCartItemNotFound),
		errors.Is(err, apperrors.ErrBookmarkNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, message)

	case errors.Is(err, apperrors.ErrAlreadyInCart),
		errors.Is(err, apperrors.ErrAlreadyBookmarked),
		errors.Is(err, apperrors.ErrDuplicateEntry):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeDuplicateEntry, message)

	case errors.Is(err, apperrors.ErrInvalidID):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeInvalidID, message)

	case errors.Is(err, apperrors.ErrCartOwnerMismatch),
		errors.Is(err, apperrors.ErrOrderAlreadyPaid),
		errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, message)

	case errors.Is(err, apperrors.ErrGatewayFailure):
		respondError(c, http.StatusInternalServerError, dto.ErrorCodeGatewayFailure, message)

	case errors.Is(err, apperrors.ErrDatabase):
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Database error")
		respondError(c, http.StatusInternalServerError, dto.ErrorCodeDatabaseError, "A database error occurred")

	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled error")
		respondError(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "An unexpected error occurred")
	}
}

// HandleValidationError maps a request-binding failure to a 400 response
func HandleValidationError(c *gin.Context, err error) {
	details := err.Error()
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		messages := make([]string, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			messages = append(messages, formatFieldError(fieldErr))
		}
		details = strings.Join(messages, "; ")
	}
	detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request payload").WithDetails(details)
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
}

// formatFieldError renders a single binding-tag failure in a readable form
func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case "gt":
		return e.Field() + " must be greater than " + e.Param()
	case "min":
		return e.Field() + " must be at least " + e.Param()
	default:
		return e.Field() + " failed " + e.Tag() + " validation"
	}
}

func respondError(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}
