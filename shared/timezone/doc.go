// Package timezone keeps the application clock in one location.
//
// Booking numbers, perform dates and ETA strings are calendar dates at the
// border gate, so they are formatted and parsed in the configured zone rather
// than in UTC.
//
//	now := timezone.Now()
//	day := timezone.Format(now, timezone.DateLayout)
//	t, err := timezone.ParseDate("2025-03-14")
//
// The zone comes from APP_TIMEZONE and defaults to Asia/Ho_Chi_Minh. Use IANA
// names only.
package timezone
