package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-06-10")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-10", d.String())

	// time-of-day and zone components are truncated away
	d, err = ParseDate("2024-06-10T23:45:00+07:00")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-10", d.String())

	_, err = ParseDate("")
	assert.Error(t, err)
	_, err = ParseDate("10/06/2024")
	assert.Error(t, err)
}

func TestDateOfTruncates(t *testing.T) {
	late := time.Date(2024, 6, 10, 23, 59, 59, 0, time.UTC)
	early := time.Date(2024, 6, 10, 0, 0, 1, 0, time.UTC)
	assert.Equal(t, DateOf(late), DateOf(early))
}

func TestOverlapsHalfOpen(t *testing.T) {
	jun10 := MustDate("2024-06-10")
	jun12 := MustDate("2024-06-12")
	jun13 := MustDate("2024-06-13")
	jun15 := MustDate("2024-06-15")
	jun20 := MustDate("2024-06-20")

	assert.True(t, Overlaps(jun12, jun13, jun10, jun15))
	// back-to-back checkout/check-in is not a conflict
	assert.False(t, Overlaps(jun15, jun20, jun10, jun15))
	assert.False(t, Overlaps(jun10, jun12, jun12, jun15))
	// missing endpoints never overlap
	assert.False(t, Overlaps(Date{}, jun13, jun10, jun15))
	assert.False(t, Overlaps(jun12, jun13, jun10, Date{}))
	// empty interval overlaps nothing
	assert.False(t, Overlaps(jun13, jun13, jun10, jun15))
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := MustDate("2024-06-10")
	raw, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"2024-06-10"`, string(raw))

	var parsed Date
	require.NoError(t, parsed.UnmarshalJSON(raw))
	assert.Equal(t, d, parsed)

	// null and garbage degrade to a zero date instead of erroring
	require.NoError(t, parsed.UnmarshalJSON([]byte(`null`)))
	assert.True(t, parsed.IsZero())
	require.NoError(t, parsed.UnmarshalJSON([]byte(`"soon"`)))
	assert.True(t, parsed.IsZero())
}
