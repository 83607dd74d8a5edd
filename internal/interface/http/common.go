package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/araddon/dateparse"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/gudimart-store/internal/application"
	"github.com/oksasatya/gudimart-store/internal/domain/repository"
	"github.com/oksasatya/gudimart-store/pkg/nullable"
	"github.com/oksasatya/gudimart-store/pkg/response"
	"github.com/oksasatya/gudimart-store/pkg/validation"
)

// pathID parses the named path parameter as a positive id. On failure it
// writes a 400 "Invalid <label> ID" response and returns false.
func pathID(c *gin.Context, param, label string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		response.Error[any](c, http.StatusBadRequest, "Invalid "+label+" ID", nil)
		return 0, false
	}
	return id, true
}

// bindJSON decodes and validates the body into req, answering 400 with
// per-field details when that fails.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "Invalid input", validation.ToDetails(err))
		return false
	}
	return true
}

func bindQuery(c *gin.Context, req any) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "Invalid query", validation.ToDetails(err))
		return false
	}
	return true
}

// writeError maps service and repository errors onto HTTP statuses.
func writeError(c *gin.Context, logger *logrus.Logger, err error) {
	switch {
	case errors.Is(err, application.ErrNotFound):
		response.Error[any](c, http.StatusNotFound, capitalize(err.Error()), nil)
	case errors.Is(err, repository.ErrConflict):
		response.Error[any](c, http.StatusConflict, "Already exists", err.Error())
	case errors.Is(err, repository.ErrInvalidQuantity):
		response.Error[any](c, http.StatusBadRequest, "Invalid input", map[string]string{"quantity": "must be at least 1"})
	case errors.Is(err, application.ErrGenerationFailed):
		if logger != nil {
			logger.WithError(err).WithField("path", c.FullPath()).Warn("upstream completion failed")
		}
		response.Error[any](c, http.StatusBadGateway, "Failed to generate content", nil)
	default:
		if logger != nil {
			logger.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "Internal server error", nil)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// fieldError answers 400 for a single malformed field.
func fieldError(c *gin.Context, field, msg string) {
	response.Error[any](c, http.StatusBadRequest, "Invalid input", map[string]string{field: msg})
}

// parseTime accepts RFC 3339 as well as the looser layouts browsers and
// humans tend to send ("2025-03-10", "03/10/2025 14:00"). Values without a
// zone are read as UTC.
func parseTime(s string) (time.Time, error) {
	return dateparse.ParseIn(strings.TrimSpace(s), time.UTC)
}

func parseOptionalTime(c *gin.Context, field string, s *string) (*time.Time, bool) {
	if s == nil {
		return nil, true
	}
	t, err := parseTime(*s)
	if err != nil {
		fieldError(c, field, "must be a valid date")
		return nil, false
	}
	return &t, true
}

// parseTimeField is parseOptionalTime for patch fields, where null clears.
func parseTimeField(c *gin.Context, field string, f nullable.Field[string]) (nullable.Field[time.Time], bool) {
	t, err := nullable.Map(f, parseTime)
	if err != nil {
		fieldError(c, field, "must be a valid date")
		return t, false
	}
	return t, true
}

// parseDate reads a calendar day. Full timestamps are cut to their UTC date.
func parseDate(s string) (civil.Date, error) {
	if d, err := civil.ParseDate(strings.TrimSpace(s)); err == nil {
		return d, nil
	}
	t, err := parseTime(s)
	if err != nil {
		return civil.Date{}, err
	}
	return civil.DateOf(t.UTC()), nil
}
