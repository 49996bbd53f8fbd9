package availability

import "strings"

// Canonical status tokens. Upstream data carries every imaginable
// spelling ("Checked-In", "checked_in", "CHECKED IN"), so comparisons
// always go through NormalizeStatus first.
const (
	StatusBooked     = "booked"
	StatusCheckedIn  = "checkedin"
	StatusCheckedOut = "checkedout"
	StatusCancelled  = "cancelled"
)

var statusStripper = strings.NewReplacer("-", "", "_", "", " ", "", "\t", "", "\n", "", "\r", "")

// NormalizeStatus lowercases a status string and strips hyphens,
// underscores and whitespace. Normalizing an already normalized token
// is a no-op.
func NormalizeStatus(status string) string {
	return statusStripper.Replace(strings.ToLower(strings.TrimSpace(status)))
}
