// Package timezone resolves IANA zone names and renders wall-clock times.
//
// Usage:
//
//	v := timezone.Validate("Europe/London")
//	if !v.Valid() {
//		// v.Err explains why
//	}
//
//	clock := timezone.SystemClock{}
//	formatted, ok := timezone.Format(clock, "Europe/London", "03:04 PM")
//	if !ok {
//		// the zone no longer resolves
//	}
//
// Only canonical database names are accepted: "UTC", "Asia/Jakarta",
// "America/New_York". The empty string and "Local" are rejected even though
// time.LoadLocation maps them to UTC and the host zone.
package timezone
