package utils

import (
	"time"
)

// istLocation is a fixed UTC+05:30 zone so date math does not depend on tzdata.
var istLocation = time.FixedZone("IST", 5*60*60+30*60)

// GetISTTimeLocation returns the IST location used for market dates.
func GetISTTimeLocation() *time.Location {
	return istLocation
}

// TimeNowIST returns the current time in IST.
func TimeNowIST() time.Time {
	return time.Now().In(istLocation)
}

// ISTDate formats the given time as an IST calendar date (YYYY-MM-DD).
func ISTDate(t time.Time) string {
	return t.In(istLocation).Format("2006-01-02")
}

// IsMarketHours reports whether t falls within NSE trading hours,
// 09:15-15:30 IST, Monday to Friday.
func IsMarketHours(t time.Time) bool {
	ist := t.In(istLocation)
	switch ist.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	minutes := ist.Hour()*60 + ist.Minute()
	return minutes >= 9*60+15 && minutes <= 15*60+30
}

// PrettyDate formats a time for human-readable notifications.
func PrettyDate(t time.Time) string {
	return t.In(istLocation).Format("02 Jan 2006 15:04 MST")
}
