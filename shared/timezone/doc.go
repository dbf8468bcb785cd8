// Package timezone provides timezone utilities for the application.
//
// Two concerns live here:
//
//  1. The application timezone, configured via APP_TIMEZONE and loaded once
//     on package import. Now, ToAppTime, Format and Parse operate in that
//     location and are used wherever rows are timestamped.
//
//  2. Per-monitor timezone handling for notification payloads: Resolve maps
//     an IANA identifier to its continent/country/display-name triple, and
//     FormatWeekday, FormatDate and FormatClockTime render a UTC instant in
//     the monitor's local time.
//
// Only standard IANA timezone database names are supported ("UTC",
// "Asia/Jakarta", "America/New_York", "Europe/Amsterdam"). Lookups are
// exact-match; deprecated aliases are not normalized.
package timezone
