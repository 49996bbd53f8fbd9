package availability

import (
	"fmt"
	"sort"
	"strings"
)

// Conflict reports two active bookings holding the same room for
// overlapping dates.
type Conflict struct {
	RoomID     int64  `json:"room_id"`
	RoomNumber string `json:"room_number"`
	BookingA   string `json:"booking_a"`
	BookingB   string `json:"booking_b"`
	RangeA     string `json:"range_a"`
	RangeB     string `json:"range_b"`
}

func bookingLabel(b Booking) string {
	if b.Package {
		return fmt.Sprintf("PK-%06d", b.ID)
	}
	return fmt.Sprintf("BK-%06d", b.ID)
}

func dateRange(b Booking) string {
	return fmt.Sprintf("%s to %s", b.CheckIn, b.CheckOut)
}

// FindConflicts scans active bookings (booked or checked-in) pairwise
// and reports every room held by two of them for overlapping
// intervals. Regular and package bookings are checked against each
// other as well as among themselves.
func FindConflicts(bookings []Booking) []Conflict {
	active := make([]Booking, 0, len(bookings))
	for _, b := range bookings {
		switch NormalizeStatus(b.Status) {
		case StatusBooked, StatusCheckedIn:
			active = append(active, b)
		}
	}

	var conflicts []Conflict
	for i := 0; i < len(active); i++ {
		for j := i + 1; j < len(active); j++ {
			a, b := active[i], active[j]
			if !Overlaps(a.CheckIn, a.CheckOut, b.CheckIn, b.CheckOut) {
				continue
			}
			for _, id := range commonRooms(a, b) {
				conflicts = append(conflicts, Conflict{
					RoomID:     id,
					RoomNumber: refNumber(id, a, b),
					BookingA:   bookingLabel(a),
					BookingB:   bookingLabel(b),
					RangeA:     dateRange(a),
					RangeB:     dateRange(b),
				})
			}
		}
	}
	return conflicts
}

func commonRooms(a, b Booking) []int64 {
	seen := make(map[int64]bool, len(a.Rooms))
	for _, ref := range a.Rooms {
		if ref.ID != 0 {
			seen[ref.ID] = true
		}
	}
	var common []int64
	for _, ref := range b.Rooms {
		if ref.ID != 0 && seen[ref.ID] {
			common = append(common, ref.ID)
			seen[ref.ID] = false
		}
	}
	sort.Slice(common, func(i, j int) bool { return common[i] < common[j] })
	return common
}

func refNumber(id int64, bookings ...Booking) string {
	for _, b := range bookings {
		for _, ref := range b.Rooms {
			if ref.ID == id && strings.TrimSpace(ref.Number) != "" {
				return strings.TrimSpace(ref.Number)
			}
		}
	}
	return fmt.Sprintf("Room %d", id)
}
