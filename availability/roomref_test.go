package availability

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomRefShapes(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want RoomRef
	}{
		{"inline room object", `{"id": 5, "number": "005", "type": "Deluxe"}`, RoomRef{ID: 5, Number: "005"}},
		{"wrapped room object", `{"room": {"id": 2, "number": "003"}}`, RoomRef{ID: 2, Number: "003"}},
		{"bare room_id", `{"room_id": 7}`, RoomRef{ID: 7}},
		{"wrapper with room_id and empty room", `{"room_id": 4, "room": {}}`, RoomRef{ID: 4}},
		{"room_number fallback", `{"room_id": 9, "room_number": "009"}`, RoomRef{ID: 9, Number: "009"}},
		{"numeric number", `{"id": 3, "number": 3}`, RoomRef{ID: 3, Number: "3"}},
		{"string id", `{"id": "11", "number": "011"}`, RoomRef{ID: 11, Number: "011"}},
		{"doubly nested number", `{"room": {"id": 6, "room": {"number": "006"}}}`, RoomRef{ID: 6, Number: "006"}},
		{"whitespace trimmed", `{"id": 8, "number": " 008 "}`, RoomRef{ID: 8, Number: "008"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var ref RoomRef
			require.NoError(t, json.Unmarshal([]byte(tc.raw), &ref))
			assert.Equal(t, tc.want, ref)
		})
	}
}

func TestRoomRefMalformed(t *testing.T) {
	var ref RoomRef
	require.NoError(t, json.Unmarshal([]byte(`42`), &ref))
	assert.Zero(t, ref)
	require.NoError(t, json.Unmarshal([]byte(`{"id": "abc"}`), &ref))
	assert.Zero(t, ref)
}

func TestBookingUnmarshal(t *testing.T) {
	raw := `{
		"id": 100,
		"status": "Checked-In",
		"check_in": "2024-06-10",
		"check_out": "2024-06-15",
		"rooms": [{"room": {"id": 1, "number": "003"}}, {"id": 2, "number": "005"}]
	}`
	var b Booking
	require.NoError(t, json.Unmarshal([]byte(raw), &b))
	assert.Equal(t, int64(100), b.ID)
	assert.Equal(t, "Checked-In", b.Status)
	assert.Equal(t, "2024-06-10", b.CheckIn.String())
	assert.Equal(t, []RoomRef{{ID: 1, Number: "003"}, {ID: 2, Number: "005"}}, b.Rooms)
}

func TestBookingUnmarshalRoomIDsFallback(t *testing.T) {
	raw := `{"id": 7, "status": "booked", "room_ids": [4, 5], "rooms": [{"id": 4}]}`
	var b Booking
	require.NoError(t, json.Unmarshal([]byte(raw), &b))
	// room_ids fills in rooms missing from the array without duplicating
	assert.Equal(t, []RoomRef{{ID: 4}, {ID: 5}}, b.Rooms)
}

func TestBookingUnmarshalMalformed(t *testing.T) {
	var b Booking
	require.NoError(t, json.Unmarshal([]byte(`{"id": "nope", "status": 3}`), &b))
	assert.Zero(t, b.ID)
	assert.Empty(t, b.Rooms)
}
