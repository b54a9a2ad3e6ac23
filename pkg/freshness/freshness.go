package freshness

import (
	"time"
)

type Band string

const (
	Critical Band = "Critical"
	Warning  Band = "Warning"
	Fresh    Band = "Fresh"
)

const day = 24 * time.Hour

// Classify maps an expiry timestamp to a freshness band. Under two days
// left is Critical, up to five days is Warning, anything beyond is Fresh.
// The caller supplies now, so results are deterministic.
func Classify(expiry, now time.Time) Band {
	daysLeft := float64(expiry.Sub(now)) / float64(day)

	switch {
	case daysLeft < 2:
		return Critical
	case daysLeft <= 5:
		return Warning
	default:
		return Fresh
	}
}
