package availability

import "encoding/json"

// Room is a snapshot record from the room catalog. ID is the only
// reliable identity; Number is a display label that may be missing or
// padded differently across records ("3", "03", "003").
type Room struct {
	ID       int64   `json:"id"`
	Number   string  `json:"number"`
	Type     string  `json:"type,omitempty"`
	Status   string  `json:"status,omitempty"`
	Adults   int     `json:"adults,omitempty"`
	Children int     `json:"children,omitempty"`
	Price    float64 `json:"price,omitempty"`
}

// Booking is a snapshot of a regular or package booking. Rooms holds
// canonical references regardless of which upstream shape carried
// them.
type Booking struct {
	ID       int64     `json:"id"`
	Status   string    `json:"status"`
	CheckIn  Date      `json:"check_in"`
	CheckOut Date      `json:"check_out"`
	Package  bool      `json:"is_package,omitempty"`
	Rooms    []RoomRef `json:"rooms"`
}

// UnmarshalJSON tolerates the known upstream quirks: a missing rooms
// array, a bare room_ids list instead of room objects, and malformed
// records (which decode to a zero Booking and are skipped downstream).
func (b *Booking) UnmarshalJSON(data []byte) error {
	*b = Booking{}

	type alias Booking
	aux := struct {
		*alias
		RoomIDs []int64 `json:"room_ids"`
	}{alias: (*alias)(b)}

	if err := json.Unmarshal(data, &aux); err != nil {
		*b = Booking{}
		return nil
	}

	for _, id := range aux.RoomIDs {
		if id == 0 || b.hasRoom(id) {
			continue
		}
		b.Rooms = append(b.Rooms, RoomRef{ID: id})
	}
	return nil
}

func (b *Booking) hasRoom(id int64) bool {
	for _, ref := range b.Rooms {
		if ref.ID == id {
			return true
		}
	}
	return false
}
