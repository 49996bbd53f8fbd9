package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func pagingFor(t *testing.T, query string) (int, int) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	return parsePaging(c)
}

func TestParsePaging(t *testing.T) {
	skip, limit := pagingFor(t, "")
	assert.Equal(t, 0, skip)
	assert.Equal(t, maxPageSize, limit)

	skip, limit = pagingFor(t, "skip=20&limit=50")
	assert.Equal(t, 20, skip)
	assert.Equal(t, 50, limit)

	// negative skip and zero limit fall back to sane values
	skip, limit = pagingFor(t, "skip=-5&limit=0")
	assert.Equal(t, 0, skip)
	assert.Equal(t, maxPageSize, limit)

	// an oversized limit is capped, never passed through
	skip, limit = pagingFor(t, "limit=1000000")
	assert.Equal(t, 0, skip)
	assert.Equal(t, maxPageSize, limit)
}

func TestStatusForError(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusForError(errors.New("validation: guest name is required")))
	assert.Equal(t, http.StatusNotFound, statusForError(errors.New("booking_not_found")))
	assert.Equal(t, http.StatusNotFound, statusForError(errors.New("expense_not_found")))
	assert.Equal(t, http.StatusConflict, statusForError(errors.New("room_unavailable: room 5 is not free for the selected dates")))
	assert.Equal(t, http.StatusConflict, statusForError(errors.New("room_not_checked_in: room 003 has no checked-in guest")))
	assert.Equal(t, http.StatusInternalServerError, statusForError(errors.New("db error loading room 1")))
}
