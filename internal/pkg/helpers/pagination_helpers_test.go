package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func parse(t *testing.T, query string) (int64, int64) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/courses"+query, nil)
	return ParseSkipLimit(c)
}

func TestParseSkipLimitDefaults(t *testing.T) {
	skip, limit := parse(t, "")
	if skip != 0 || limit != DefaultLimit {
		t.Fatalf("unexpected defaults: skip=%d limit=%d", skip, limit)
	}
}

func TestParseSkipLimitValues(t *testing.T) {
	skip, limit := parse(t, "?skip=20&limit=50")
	if skip != 20 || limit != 50 {
		t.Fatalf("unexpected values: skip=%d limit=%d", skip, limit)
	}
}

func TestParseSkipLimitRejectsGarbage(t *testing.T) {
	skip, limit := parse(t, "?skip=-5&limit=abc")
	if skip != 0 || limit != DefaultLimit {
		t.Fatalf("garbage must fall back to defaults: skip=%d limit=%d", skip, limit)
	}
}

func TestParseSkipLimitCapsLimit(t *testing.T) {
	_, limit := parse(t, "?limit=5000")
	if limit != DefaultLimit {
		t.Fatalf("oversized limit must fall back, got %d", limit)
	}
}
