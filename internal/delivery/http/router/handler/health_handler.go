// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"time"

	"fitclub/internal/delivery/http/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// HealthCheck reports service liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service healthy")
}

// pathUUID parses a UUID path parameter.
func pathUUID(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

// parseDate parses a calendar date in YYYY-MM-DD form.
func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// parseClock parses a time of day in HH:MM form.
func parseClock(s string) (time.Time, error) {
	return time.Parse(clockLayout, s)
}
