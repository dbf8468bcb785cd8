package timezone

import (
	"time"

	"github.com/rs/zerolog/log"
)

const (
	weekdayLayout = "Monday"
	dateLayout    = "Jan 02, 2006"
	clockLayout   = "15:04:05"
)

// FormatWeekday renders the full weekday name of a UTC instant in the given
// IANA timezone. Missing or unparseable input yields an empty string.
func FormatWeekday(utc, tz string) string {
	return formatIn(utc, tz, weekdayLayout)
}

// FormatDate renders a UTC instant as "Jan 02, 2006" in the given IANA timezone.
func FormatDate(utc, tz string) string {
	return formatIn(utc, tz, dateLayout)
}

// FormatClockTime renders a UTC instant as a 24-hour "15:04:05" clock time
// in the given IANA timezone.
func FormatClockTime(utc, tz string) string {
	return formatIn(utc, tz, clockLayout)
}

func formatIn(utc, tz, layout string) string {
	if utc == "" || tz == "" {
		log.Debug().Str("utc", utc).Str("timezone", tz).Msg("Missing input for local time formatting")

		return ""
	}

	instant, err := time.Parse(time.RFC3339, utc)
	if err != nil {
		log.Debug().Err(err).Str("utc", utc).Msg("Failed to parse UTC instant")

		return ""
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Debug().Err(err).Str("timezone", tz).Msg("Failed to load timezone for local time formatting")

		return ""
	}

	return instant.In(loc).Format(layout)
}
