package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/coursemart/coursemart-backend/internal/pkg/apperrors"
)

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"unauthorized", apperrors.ErrUnauthorized, http.StatusUnauthorized},
		{"missing token", apperrors.ErrTokenNotFound, http.StatusUnauthorized},
		{"invalid signature", apperrors.ErrInvalidSignature, http.StatusUnauthorized},
		{"course not found", apperrors.ErrCourseNotFound, http.StatusNotFound},
		{"order not found", apperrors.ErrOrderNotFound, http.StatusNotFound},
		{"duplicate cart row", apperrors.ErrAlreadyInCart, http.StatusBadRequest},
		{"invalid object id", apperrors.ErrInvalidID, http.StatusBadRequest},
		{"order already paid", apperrors.ErrOrderAlreadyPaid, http.StatusBadRequest},
		{"gateway failure", apperrors.NewCustomError(apperrors.ErrGatewayFailure, "gateway down"), http.StatusInternalServerError},
		{"database failure", apperrors.ErrDatabase, http.StatusInternalServerError},
		{"unknown error", http.ErrBodyNotAllowed, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tt.err)

			if recorder.Code != tt.wantStatus {
				t.Fatalf("HandleAPIError(%v) status = %d, want %d", tt.err, recorder.Code, tt.wantStatus)
			}
		})
	}
}
