package availability

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// TraceFunc receives a line describing why a room was included or
// excluded during resolution. Nil means silent.
type TraceFunc func(format string, args ...any)

// Resolver answers two questions over a snapshot of rooms and
// bookings: which rooms are currently in a given occupancy state, and
// which rooms are free for a requested interval. It is pure and keeps
// no state between calls, so a zero Resolver is ready to use and safe
// to share.
type Resolver struct {
	Trace TraceFunc
}

func (r Resolver) tracef(format string, args ...any) {
	if r.Trace != nil {
		r.Trace(format, args...)
	}
}

// numberForms expands a room number label into the spellings it may
// carry across records: the literal trimmed string plus, when the
// label is numeric, the unpadded and zero-padded-to-3 forms so "3",
// "03" and "003" all reconcile.
func numberForms(number string) []string {
	label := strings.TrimSpace(number)
	if label == "" {
		return nil
	}
	forms := []string{label}
	if v, err := strconv.Atoi(label); err == nil {
		plain := strconv.Itoa(v)
		padded := fmt.Sprintf("%03d", v)
		if plain != label {
			forms = append(forms, plain)
		}
		if padded != label && padded != plain {
			forms = append(forms, padded)
		}
	}
	return forms
}

// OccupiedRooms returns the rooms currently in targetStatus (default
// "checkedin"), unioning three evidence sources because any one of
// them may be incomplete upstream: the room's own catalog status, any
// booking whose status matches (its date range deliberately ignored;
// occupancy is current-state, not date-scoped), and a room-number
// reconciliation pass between booking references and the catalog.
// Rooms whose number cannot be resolved are excluded: a room we cannot
// label safely must not be offered for staff assignment.
func (r Resolver) OccupiedRooms(rooms []Room, bookings []Booking, targetStatus string) []Room {
	target := NormalizeStatus(targetStatus)
	if target == "" {
		target = StatusCheckedIn
	}

	ids := make(map[int64]bool)
	numbers := make(map[string]bool)

	for _, room := range rooms {
		if NormalizeStatus(room.Status) != target {
			continue
		}
		ids[room.ID] = true
		for _, f := range numberForms(room.Number) {
			numbers[f] = true
		}
		r.tracef("room %s (id=%d) included: catalog status %q", room.Number, room.ID, room.Status)
	}

	for _, booking := range bookings {
		if NormalizeStatus(booking.Status) != target {
			continue
		}
		for _, ref := range booking.Rooms {
			if ref.ID != 0 {
				ids[ref.ID] = true
				r.tracef("room id=%d included: booking %d status %q", ref.ID, booking.ID, booking.Status)
			}
			for _, f := range numberForms(ref.Number) {
				numbers[f] = true
			}
		}
	}

	// reconcile by number: booking references may carry a number whose
	// id does not line up with the catalog
	if len(numbers) > 0 {
		for _, room := range rooms {
			if ids[room.ID] {
				continue
			}
			for _, f := range numberForms(room.Number) {
				if numbers[f] {
					ids[room.ID] = true
					r.tracef("room %s (id=%d) included: number match", room.Number, room.ID)
					break
				}
			}
		}
	}

	if len(ids) == 0 {
		return []Room{}
	}

	catalogByID := make(map[int64]Room, len(rooms))
	catalogByNumber := make(map[string]Room)
	for _, room := range rooms {
		catalogByID[room.ID] = room
		for _, f := range numberForms(room.Number) {
			if _, seen := catalogByNumber[f]; !seen {
				catalogByNumber[f] = room
			}
		}
	}

	// best-effort record per id: catalog wins, booking refs fill gaps
	merged := make(map[int64]Room, len(ids))
	for id := range ids {
		if room, ok := catalogByID[id]; ok {
			merged[id] = room
		}
	}
	for _, booking := range bookings {
		if NormalizeStatus(booking.Status) != target {
			continue
		}
		for _, ref := range booking.Rooms {
			if ref.ID == 0 || !ids[ref.ID] {
				continue
			}
			rec, ok := merged[ref.ID]
			if !ok {
				merged[ref.ID] = Room{ID: ref.ID, Number: strings.TrimSpace(ref.Number)}
				continue
			}
			if strings.TrimSpace(rec.Number) == "" && strings.TrimSpace(ref.Number) != "" {
				rec.Number = strings.TrimSpace(ref.Number)
				merged[ref.ID] = rec
			}
		}
	}

	out := make([]Room, 0, len(merged))
	for id, rec := range merged {
		if strings.TrimSpace(rec.Number) == "" {
			if cat, ok := catalogByID[id]; ok && strings.TrimSpace(cat.Number) != "" {
				rec.Number = strings.TrimSpace(cat.Number)
			}
		} else if _, ok := catalogByID[id]; !ok {
			// id unknown to the catalog: adopt the catalog's canonical
			// padding when a number-form match exists
			for _, f := range numberForms(rec.Number) {
				if cat, ok := catalogByNumber[f]; ok && strings.TrimSpace(cat.Number) != "" {
					rec.Number = strings.TrimSpace(cat.Number)
					break
				}
			}
		}
		if strings.TrimSpace(rec.Number) == "" {
			r.tracef("room id=%d excluded: no resolvable number", id)
			continue
		}
		out = append(out, rec)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Availability reports, for each candidate room, whether it is free
// for the half-open interval [checkIn, checkOut). A room is
// unavailable when any booking that is neither cancelled nor checked
// out references it for an overlapping range. Absence of a conflicting
// record means free.
func (r Resolver) Availability(rooms []Room, bookings []Booking, checkIn, checkOut Date) map[int64]bool {
	out := make(map[int64]bool, len(rooms))
	for _, room := range rooms {
		conflict := false
		for _, booking := range bookings {
			status := NormalizeStatus(booking.Status)
			if status == StatusCancelled || status == StatusCheckedOut {
				continue
			}
			if !booking.hasRoom(room.ID) {
				continue
			}
			if Overlaps(checkIn, checkOut, booking.CheckIn, booking.CheckOut) {
				r.tracef("room %s (id=%d) unavailable: booking %d %s to %s",
					room.Number, room.ID, booking.ID, booking.CheckIn, booking.CheckOut)
				conflict = true
				break
			}
		}
		out[room.ID] = !conflict
	}
	return out
}

// ResolveOccupiedRooms runs OccupiedRooms on a zero Resolver.
func ResolveOccupiedRooms(rooms []Room, bookings []Booking, targetStatus string) []Room {
	return Resolver{}.OccupiedRooms(rooms, bookings, targetStatus)
}

// ResolveAvailability runs Availability on a zero Resolver.
func ResolveAvailability(rooms []Room, bookings []Booking, checkIn, checkOut Date) map[int64]bool {
	return Resolver{}.Availability(rooms, bookings, checkIn, checkOut)
}
