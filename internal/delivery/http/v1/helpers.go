package v1

import (
	"strconv"
	"time"

	"cvconnect-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// pathID parses a numeric path parameter, attaching a 400 on failure.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid " + name))
		return 0, false
	}
	return id, true
}

// parseDate parses a required YYYY-MM-DD field.
func parseDate(value, field string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperror.Validation(map[string]string{
			field: "Date has wrong format. Use one of these formats instead: YYYY-MM-DD.",
		})
	}
	return t, nil
}

// parseOptionalDate parses an optional YYYY-MM-DD field, returning nil when
// the value is empty.
func parseOptionalDate(value, field string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := parseDate(value, field)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
