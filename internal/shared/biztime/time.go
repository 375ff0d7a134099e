// Package biztime provides the municipality's business timezone.
// Storage uses UTC; the business timezone is only applied when a date is shown
// to a citizen (receipts) or when computing "today" for dashboard counters.
package biztime

import (
	"fmt"
	"sync"
	"time"
	_ "time/tzdata"
)

const (
	// DefaultTimezone is the default business timezone.
	DefaultTimezone = "America/Mexico_City"

	// ReceiptDateLayout is the dd/mm/yyyy layout printed on receipts.
	ReceiptDateLayout = "02/01/2006"
)

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Init initializes the business timezone. Should be called once at startup.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// Location returns the business timezone, initializing the default on first use.
func Location() *time.Location {
	if bizLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to auto-initialize with default timezone: %v", err))
		}
	}
	return bizLocation
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// StartOfDayUTC returns the UTC instant at which t's business day begins.
func StartOfDayUTC(t time.Time) time.Time {
	local := t.In(Location())
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, Location()).UTC()
}

// FormatReceiptDate formats t as dd/mm/yyyy in the business timezone.
func FormatReceiptDate(t time.Time) string {
	return t.In(Location()).Format(ReceiptDateLayout)
}
