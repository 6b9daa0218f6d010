package handler

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/amirhossein-jamali/stars-roulette/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/stars-roulette/internal/domain/error"
	"github.com/gin-gonic/gin"
)

func invalidRequest(err error) error {
	return fmt.Errorf("%w: %s", domainerr.ErrInvalidRequest, err.Error())
}

func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", domainerr.ErrInvalidRequest, name)
	}
	return id, nil
}

// parseReferralFilter reads q, from and to. A non numeric q and unparsable
// dates are ignored. A date-only "to" covers the whole day.
func parseReferralFilter(c *gin.Context) entity.ReferralFilter {
	var filter entity.ReferralFilter

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		if id, err := strconv.ParseInt(q, 10, 64); err == nil {
			filter.Query = &id
		}
	}
	if from, _, ok := parseDate(c.Query("from")); ok {
		filter.From = &from
	}
	if to, dateOnly, ok := parseDate(c.Query("to")); ok {
		if dateOnly {
			to = to.Add(24*time.Hour - time.Nanosecond)
		}
		filter.To = &to
	}
	return filter
}

func parseDate(s string) (t time.Time, dateOnly bool, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, false, true
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, true, true
	}
	return time.Time{}, false, false
}
