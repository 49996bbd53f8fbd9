package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"resort-backend/availability"
	"resort-backend/models"
)

func datePtr(t *testing.T, value string) *time.Time {
	t.Helper()
	d := availability.MustDate(value).Time
	return &d
}

func TestBookingSnapshot(t *testing.T) {
	b := models.Booking{
		ID:       100,
		Status:   "Checked-In",
		CheckIn:  datePtr(t, "2024-06-10"),
		CheckOut: datePtr(t, "2024-06-15"),
		Rooms: []models.BookingRoom{
			{RoomID: 1, Room: models.Room{Model: gorm.Model{ID: 1}, Number: "003"}},
			{RoomID: 2}, // room row not preloaded
		},
	}
	snap := bookingSnapshot(b)
	assert.Equal(t, int64(100), snap.ID)
	assert.False(t, snap.Package)
	assert.Equal(t, "2024-06-10", snap.CheckIn.String())
	assert.Equal(t, []availability.RoomRef{{ID: 1, Number: "003"}, {ID: 2}}, snap.Rooms)
}

func TestPackageBookingSnapshot(t *testing.T) {
	pb := models.PackageBooking{
		ID:       7,
		Status:   "booked",
		CheckIn:  datePtr(t, "2024-07-01"),
		CheckOut: datePtr(t, "2024-07-04"),
		Rooms: []models.PackageBookingRoom{
			{RoomID: 5, Room: models.Room{Model: gorm.Model{ID: 5}, Number: " 005 "}},
		},
	}
	snap := packageBookingSnapshot(pb)
	assert.True(t, snap.Package)
	assert.Equal(t, []availability.RoomRef{{ID: 5, Number: "005"}}, snap.Rooms)
}

func TestBookingSnapshotMissingDates(t *testing.T) {
	snap := bookingSnapshot(models.Booking{ID: 1, Status: "booked"})
	assert.True(t, snap.CheckIn.IsZero())
	assert.True(t, snap.CheckOut.IsZero())
	assert.Empty(t, snap.Rooms)
}

func TestRoomSnapshots(t *testing.T) {
	rooms := []models.Room{
		{Model: gorm.Model{ID: 3}, Number: "003", Status: "Available", Price: 120, Adults: 2},
	}
	snaps := roomSnapshots(rooms)
	assert.Equal(t, []availability.Room{
		{ID: 3, Number: "003", Status: "Available", Price: 120, Adults: 2},
	}, snaps)
}

func TestFirstUnavailableRoom(t *testing.T) {
	free := map[int64]bool{1: true, 2: false, 3: true}

	_, taken := firstUnavailableRoom(free, []uint{1, 3})
	assert.False(t, taken)

	rid, taken := firstUnavailableRoom(free, []uint{1, 2})
	assert.True(t, taken)
	assert.Equal(t, uint(2), rid)

	// a room the snapshot never saw counts as taken
	rid, taken = firstUnavailableRoom(free, []uint{9})
	assert.True(t, taken)
	assert.Equal(t, uint(9), rid)
}

func TestRecheckSeesCommittedOverlap(t *testing.T) {
	// two concurrent creates race for room 5: the first commits, so the
	// snapshot the second transaction reads must now report the room as
	// taken for any overlapping interval
	rooms := []availability.Room{{ID: 5, Number: "005", Status: "Booked"}}
	bookings := []availability.Booking{{
		ID:       1,
		Status:   "Booked",
		CheckIn:  availability.MustDate("2024-06-10"),
		CheckOut: availability.MustDate("2024-06-15"),
		Rooms:    []availability.RoomRef{{ID: 5}},
	}}

	free := availability.ResolveAvailability(rooms, bookings,
		availability.MustDate("2024-06-12"), availability.MustDate("2024-06-14"))
	rid, taken := firstUnavailableRoom(free, []uint{5})
	assert.True(t, taken)
	assert.Equal(t, uint(5), rid)

	// a non-overlapping interval stays bookable
	free = availability.ResolveAvailability(rooms, bookings,
		availability.MustDate("2024-06-15"), availability.MustDate("2024-06-18"))
	_, taken = firstUnavailableRoom(free, []uint{5})
	assert.False(t, taken)
}

func TestParseStayDatesValidation(t *testing.T) {
	_, _, err := parseStayDates("2024-06-15", "2024-06-10")
	assert.Error(t, err)
	_, _, err = parseStayDates("2024-06-10", "2024-06-10")
	assert.Error(t, err)
	ci, co, err := parseStayDates("2024-06-10", "2024-06-15")
	assert.NoError(t, err)
	assert.Equal(t, "2024-06-10", ci.String())
	assert.Equal(t, "2024-06-15", co.String())
}
