// Scanner walks a directory tree, asks an Extractor for each certificate's
// "not valid after" instant and reports the ones expiring within a threshold.
package certexpiry

import (
	"fmt"
	"time"
)

// produced only for certificates that fall within the threshold
type ExpiryReport struct {
	Path          string    `json:"path"`
	NotAfter      time.Time `json:"not_after"`
	DaysRemaining int       `json:"days_remaining"` // negative when already expired
}

func (e ExpiryReport) String() string {
	return fmt.Sprintf("%s expires at %s, which is in %d days", e.Path, e.NotAfter, e.DaysRemaining)
}

type ScanResult struct {
	Inspected int // certificate files handed to the Extractor
	Flagged   int
}
