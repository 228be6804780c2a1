package certexpiry

import (
	"time"
)

const day = 24 * time.Hour

// certificate is reported when it expires strictly sooner than thresholdDays from now
func Check(path string, notAfter time.Time, now time.Time, thresholdDays int) (ExpiryReport, bool) {
	delta := notAfter.Sub(now)

	if delta >= time.Duration(thresholdDays)*day {
		return ExpiryReport{}, false
	}

	return ExpiryReport{
		Path:          path,
		NotAfter:      notAfter,
		DaysRemaining: wholeDays(delta),
	}, true
}

// truncates toward negative infinity: -1s => -1 days
func wholeDays(delta time.Duration) int {
	days := delta / day
	if delta%day < 0 {
		days--
	}

	return int(days)
}
