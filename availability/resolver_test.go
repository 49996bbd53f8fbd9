package availability

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func occupiedIDs(rooms []Room) []int64 {
	ids := make([]int64, 0, len(rooms))
	for _, r := range rooms {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestOccupiedRoomsEmptyInput(t *testing.T) {
	assert.Empty(t, ResolveOccupiedRooms(nil, nil, StatusCheckedIn))
	assert.Empty(t, ResolveOccupiedRooms([]Room{}, []Booking{}, StatusCheckedIn))
}

func TestOccupiedRoomsCatalogStatus(t *testing.T) {
	rooms := []Room{
		{ID: 1, Number: "001", Status: "Checked-In"},
		{ID: 2, Number: "002", Status: "Available"},
		{ID: 3, Number: "003", Status: "checked_in"},
	}
	got := ResolveOccupiedRooms(rooms, nil, StatusCheckedIn)
	assert.Equal(t, []int64{1, 3}, occupiedIDs(got))
}

func TestOccupiedRoomsBookingEvidenceWins(t *testing.T) {
	// the room's own status says Available; a checked-in booking
	// referencing it wins via the union
	rooms := []Room{{ID: 1, Number: "003", Status: "Available"}}
	bookings := []Booking{{
		ID:     100,
		Status: "Checked-In",
		Rooms:  []RoomRef{{ID: 1}},
	}}
	got := ResolveOccupiedRooms(rooms, bookings, StatusCheckedIn)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, "003", got[0].Number)
}

func TestOccupiedRoomsIgnoresBookingDates(t *testing.T) {
	// occupancy is current-state: a checked-in booking counts even when
	// its date range is long past
	rooms := []Room{{ID: 4, Number: "004", Status: "Available"}}
	bookings := []Booking{{
		ID:       9,
		Status:   "checked-in",
		CheckIn:  MustDate("2020-01-01"),
		CheckOut: MustDate("2020-01-05"),
		Rooms:    []RoomRef{{ID: 4}},
	}}
	got := ResolveOccupiedRooms(rooms, bookings, StatusCheckedIn)
	assert.Equal(t, []int64{4}, occupiedIDs(got))
}

func TestOccupiedRoomsNumberBackfill(t *testing.T) {
	// booking reference has no number; the catalog supplies it by id
	rooms := []Room{{ID: 7, Number: "003", Status: "Available"}}
	bookings := []Booking{{ID: 1, Status: "Checked-In", Rooms: []RoomRef{{ID: 7}}}}
	got := ResolveOccupiedRooms(rooms, bookings, StatusCheckedIn)
	require.Len(t, got, 1)
	assert.Equal(t, "003", got[0].Number)
}

func TestOccupiedRoomsNumberReconciliation(t *testing.T) {
	// booking knows the room only as "3"; the catalog lists it as "003"
	// under a different id
	rooms := []Room{{ID: 12, Number: "003", Status: "Available"}}
	bookings := []Booking{{ID: 1, Status: "Checked-In", Rooms: []RoomRef{{ID: 99, Number: "3"}}}}
	got := ResolveOccupiedRooms(rooms, bookings, StatusCheckedIn)
	ids := occupiedIDs(got)
	assert.Contains(t, ids, int64(12))
	// the booking-only id resolves its canonical padding from the catalog
	assert.Contains(t, ids, int64(99))
	for _, room := range got {
		assert.Equal(t, "003", room.Number)
	}
}

func TestOccupiedRoomsFailClosedWithoutNumber(t *testing.T) {
	// id known only from booking evidence, no catalog entry, no number
	// anywhere: excluded rather than displayed wrong
	bookings := []Booking{{ID: 1, Status: "Checked-In", Rooms: []RoomRef{{ID: 42}}}}
	got := ResolveOccupiedRooms(nil, bookings, StatusCheckedIn)
	assert.Empty(t, got)
}

func TestOccupiedRoomsUnionMonotonic(t *testing.T) {
	rooms := []Room{{ID: 5, Number: "005", Status: "Available"}}
	bookings := []Booking{{ID: 1, Status: "Checked-In", Rooms: []RoomRef{{ID: 5}}}}
	base := ResolveOccupiedRooms(rooms, bookings, StatusCheckedIn)
	require.Equal(t, []int64{5}, occupiedIDs(base))

	// corroborating evidence never removes a room
	more := append(bookings, Booking{ID: 2, Status: "checked_in", Rooms: []RoomRef{{ID: 5, Number: "005"}}})
	got := ResolveOccupiedRooms(rooms, more, StatusCheckedIn)
	assert.Equal(t, []int64{5}, occupiedIDs(got))
}

func TestOccupiedRoomsSkipsMalformedBookings(t *testing.T) {
	rooms := []Room{{ID: 1, Number: "001", Status: "Checked-In"}}
	bookings := []Booking{
		{},                             // no status
		{ID: 2, Status: "Checked-In"},  // no rooms
		{ID: 3, Status: "checked-out"}, // wrong status
	}
	got := ResolveOccupiedRooms(rooms, bookings, StatusCheckedIn)
	assert.Equal(t, []int64{1}, occupiedIDs(got))
}

func TestOccupiedRoomsDefaultTarget(t *testing.T) {
	rooms := []Room{{ID: 1, Number: "001", Status: "Checked-In"}}
	assert.Equal(t, []int64{1}, occupiedIDs(ResolveOccupiedRooms(rooms, nil, "")))
}

func TestOccupiedRoomsTrace(t *testing.T) {
	var lines []string
	r := Resolver{Trace: func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}}
	rooms := []Room{{ID: 1, Number: "001", Status: "Checked-In"}}
	bookings := []Booking{{ID: 2, Status: "checked-in", Rooms: []RoomRef{{ID: 77}}}}
	r.OccupiedRooms(rooms, bookings, StatusCheckedIn)
	assert.NotEmpty(t, lines)
	assert.Contains(t, lines, "room id=77 excluded: no resolvable number")
}

func TestAvailabilityOverlap(t *testing.T) {
	room5 := Room{ID: 5, Number: "005"}
	booking := Booking{
		ID:       1,
		Status:   "checked-in",
		CheckIn:  MustDate("2024-06-10"),
		CheckOut: MustDate("2024-06-15"),
		Rooms:    []RoomRef{{ID: 5}},
	}

	got := ResolveAvailability([]Room{room5}, []Booking{booking}, MustDate("2024-06-12"), MustDate("2024-06-13"))
	assert.Equal(t, map[int64]bool{5: false}, got)

	// back-to-back checkout/check-in is not a conflict
	got = ResolveAvailability([]Room{room5}, []Booking{booking}, MustDate("2024-06-15"), MustDate("2024-06-20"))
	assert.Equal(t, map[int64]bool{5: true}, got)
}

func TestAvailabilityExcludesCancelledAndCheckedOut(t *testing.T) {
	room9 := Room{ID: 9, Number: "009"}
	mk := func(status string) Booking {
		return Booking{
			ID:       1,
			Status:   status,
			CheckIn:  MustDate("2024-06-10"),
			CheckOut: MustDate("2024-06-15"),
			Rooms:    []RoomRef{{ID: 9}},
		}
	}
	for _, status := range []string{"cancelled", "CANCELLED", "Checked-Out", "checked_out"} {
		got := ResolveAvailability([]Room{room9}, []Booking{mk(status)}, MustDate("2024-06-11"), MustDate("2024-06-12"))
		assert.Equal(t, map[int64]bool{9: true}, got, "status %q", status)
	}
}

func TestAvailabilityOtherRoomsUnaffected(t *testing.T) {
	rooms := []Room{{ID: 1, Number: "001"}, {ID: 2, Number: "002"}}
	bookings := []Booking{{
		ID:       1,
		Status:   "booked",
		CheckIn:  MustDate("2024-06-10"),
		CheckOut: MustDate("2024-06-15"),
		Rooms:    []RoomRef{{ID: 1}},
	}}
	got := ResolveAvailability(rooms, bookings, MustDate("2024-06-10"), MustDate("2024-06-12"))
	assert.Equal(t, map[int64]bool{1: false, 2: true}, got)
}

func TestAvailabilityEmptyInput(t *testing.T) {
	got := ResolveAvailability(nil, nil, MustDate("2024-06-10"), MustDate("2024-06-12"))
	assert.Empty(t, got)
}

func TestAvailabilityMissingBookingDates(t *testing.T) {
	rooms := []Room{{ID: 3, Number: "003"}}
	bookings := []Booking{{ID: 1, Status: "booked", Rooms: []RoomRef{{ID: 3}}}}
	got := ResolveAvailability(rooms, bookings, MustDate("2024-06-10"), MustDate("2024-06-12"))
	assert.Equal(t, map[int64]bool{3: true}, got)
}

func TestAvailabilityDeterministic(t *testing.T) {
	rooms := []Room{{ID: 1, Number: "001"}, {ID: 2, Number: "002"}}
	bookings := []Booking{{
		ID:       1,
		Status:   "booked",
		CheckIn:  MustDate("2024-06-10"),
		CheckOut: MustDate("2024-06-15"),
		Rooms:    []RoomRef{{ID: 2}},
	}}
	first := ResolveAvailability(rooms, bookings, MustDate("2024-06-11"), MustDate("2024-06-13"))
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ResolveAvailability(rooms, bookings, MustDate("2024-06-11"), MustDate("2024-06-13")))
	}
}
