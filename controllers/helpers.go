package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

func parseIDParam(c *gin.Context) (uint, bool) {
	raw := strings.TrimSpace(c.Param("id"))
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

const maxPageSize = 100

func parsePaging(c *gin.Context) (skip, limit int) {
	skip, _ = strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(maxPageSize)))
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > maxPageSize {
		limit = maxPageSize
	}
	return skip, limit
}

// statusForError maps service error conventions onto HTTP codes:
// "validation: ..." is a bad request, "*_not_found" is 404, state
// conflicts are 409, anything else is a server error.
func statusForError(err error) int {
	msg := err.Error()
	switch {
	case strings.HasPrefix(msg, "validation:"):
		return http.StatusBadRequest
	case strings.HasSuffix(msg, "_not_found") || strings.HasPrefix(msg, "booking_not_found"):
		return http.StatusNotFound
	case strings.HasPrefix(msg, "room_unavailable") ||
		strings.HasPrefix(msg, "duplicate_") ||
		strings.HasPrefix(msg, "room_not_checked_in") ||
		strings.HasPrefix(msg, "not_checked_in") ||
		strings.HasPrefix(msg, "not_booked") ||
		strings.HasPrefix(msg, "booking_closed") ||
		strings.HasPrefix(msg, "invalid_status"):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
