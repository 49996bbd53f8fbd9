package availability

import (
	"encoding/json"
	"strconv"
	"strings"
)

// RoomRef is the canonical form of a room reference embedded in a
// booking payload. Upstream emits two shapes: regular bookings inline
// the room object, package bookings wrap it as {"room": {...}} or ship
// a bare room_id. UnmarshalJSON folds all of them into this one form
// so the resolver never has to sniff shapes.
type RoomRef struct {
	ID     int64
	Number string
}

func (r *RoomRef) UnmarshalJSON(data []byte) error {
	*r = RoomRef{}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		// not an object: skip the reference rather than fail the payload
		return nil
	}

	actual := raw
	if inner, ok := raw["room"]; ok {
		var nested map[string]json.RawMessage
		if err := json.Unmarshal(inner, &nested); err == nil && nested != nil {
			actual = nested
		}
	}

	r.ID = intField(actual, "id")
	if r.ID == 0 {
		r.ID = intField(raw, "room_id")
	}
	if r.ID == 0 {
		r.ID = intField(raw, "id")
	}

	r.Number = stringField(actual, "number")
	if r.Number == "" {
		r.Number = stringField(raw, "number")
	}
	if r.Number == "" {
		// stitched payloads occasionally nest one level deeper
		if inner, ok := actual["room"]; ok {
			var nested map[string]json.RawMessage
			if err := json.Unmarshal(inner, &nested); err == nil {
				r.Number = stringField(nested, "number")
			}
		}
	}
	if r.Number == "" {
		r.Number = stringField(raw, "room_number")
	}
	return nil
}

func (r RoomRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID     int64  `json:"id"`
		Number string `json:"number,omitempty"`
	}{r.ID, r.Number})
}

func intField(m map[string]json.RawMessage, key string) int64 {
	raw, ok := m[key]
	if !ok {
		return 0
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		if v, err := n.Int64(); err == nil {
			return v
		}
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
			return v
		}
	}
	return 0
}

func stringField(m map[string]json.RawMessage, key string) string {
	raw, ok := m[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}
