package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// ParseSkipLimit extracts skip/limit query parameters, falling back to sane
// defaults on missing or invalid values.
func ParseSkipLimit(c *gin.Context) (skip int64, limit int64) {
	skipStr := c.DefaultQuery("skip", "0")
	parsedSkip, err := strconv.ParseInt(skipStr, 10, 64)
	if err != nil || parsedSkip < 0 {
		parsedSkip = 0
	}

	limitStr := c.DefaultQuery("limit", strconv.Itoa(DefaultLimit))
	parsedLimit, err := strconv.ParseInt(limitStr, 10, 64)
	if err != nil || parsedLimit <= 0 || parsedLimit > MaxLimit {
		parsedLimit = DefaultLimit
	}

	return parsedSkip, parsedLimit
}
