// Package timezone renders stored timestamps in the configured application timezone.
//
//	formatted := timezone.WallClock(row.CreatedAt).Format(time.RFC3339)
//
// The zone comes from APP_TIMEZONE (an IANA name such as "UTC" or "Asia/Jakarta") and is
// loaded when the package is imported. An unknown name falls back to UTC.
package timezone
