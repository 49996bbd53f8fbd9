package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindConflictsSharedRoom(t *testing.T) {
	bookings := []Booking{
		{
			ID:       1,
			Status:   "booked",
			CheckIn:  MustDate("2024-06-10"),
			CheckOut: MustDate("2024-06-15"),
			Rooms:    []RoomRef{{ID: 3, Number: "003"}},
		},
		{
			ID:       2,
			Status:   "checked-in",
			CheckIn:  MustDate("2024-06-12"),
			CheckOut: MustDate("2024-06-18"),
			Rooms:    []RoomRef{{ID: 3}},
			Package:  true,
		},
	}
	got := FindConflicts(bookings)
	require.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].RoomID)
	assert.Equal(t, "003", got[0].RoomNumber)
	assert.Equal(t, "BK-000001", got[0].BookingA)
	assert.Equal(t, "PK-000002", got[0].BookingB)
	assert.Equal(t, "2024-06-10 to 2024-06-15", got[0].RangeA)
}

func TestFindConflictsNoOverlap(t *testing.T) {
	bookings := []Booking{
		{ID: 1, Status: "booked", CheckIn: MustDate("2024-06-10"), CheckOut: MustDate("2024-06-15"), Rooms: []RoomRef{{ID: 3}}},
		{ID: 2, Status: "booked", CheckIn: MustDate("2024-06-15"), CheckOut: MustDate("2024-06-20"), Rooms: []RoomRef{{ID: 3}}},
	}
	assert.Empty(t, FindConflicts(bookings))
}

func TestFindConflictsIgnoresInactive(t *testing.T) {
	bookings := []Booking{
		{ID: 1, Status: "booked", CheckIn: MustDate("2024-06-10"), CheckOut: MustDate("2024-06-15"), Rooms: []RoomRef{{ID: 3}}},
		{ID: 2, Status: "cancelled", CheckIn: MustDate("2024-06-12"), CheckOut: MustDate("2024-06-18"), Rooms: []RoomRef{{ID: 3}}},
		{ID: 3, Status: "checked-out", CheckIn: MustDate("2024-06-12"), CheckOut: MustDate("2024-06-18"), Rooms: []RoomRef{{ID: 3}}},
	}
	assert.Empty(t, FindConflicts(bookings))
}

func TestFindConflictsDisjointRooms(t *testing.T) {
	bookings := []Booking{
		{ID: 1, Status: "booked", CheckIn: MustDate("2024-06-10"), CheckOut: MustDate("2024-06-15"), Rooms: []RoomRef{{ID: 1}}},
		{ID: 2, Status: "booked", CheckIn: MustDate("2024-06-12"), CheckOut: MustDate("2024-06-18"), Rooms: []RoomRef{{ID: 2}}},
	}
	assert.Empty(t, FindConflicts(bookings))
}

func TestFindConflictsMultipleCommonRooms(t *testing.T) {
	bookings := []Booking{
		{ID: 1, Status: "booked", CheckIn: MustDate("2024-06-10"), CheckOut: MustDate("2024-06-15"), Rooms: []RoomRef{{ID: 2, Number: "002"}, {ID: 1, Number: "001"}}},
		{ID: 2, Status: "booked", CheckIn: MustDate("2024-06-14"), CheckOut: MustDate("2024-06-16"), Rooms: []RoomRef{{ID: 1}, {ID: 2}}},
	}
	got := FindConflicts(bookings)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].RoomID)
	assert.Equal(t, int64(2), got[1].RoomID)
}
