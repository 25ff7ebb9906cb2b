package timezone

import (
	"time"
	"usertodo/config"

	"github.com/rs/zerolog/log"
)

var (
	appLocation *time.Location
)

func init() {
	appLocation = Load(config.Get().App.Timezone)
}

// Load resolves an IANA zone name, falling back to UTC.
func Load(name string) *time.Location {
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")

		return time.UTC
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, falling back to UTC")

		return time.UTC
	}

	log.Debug().Str("timezone", loc.String()).Msg("Application timezone initialized")

	return loc
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	if appLocation == nil {
		return time.UTC
	}

	return appLocation
}

// WallClock reads a TIMESTAMP WITHOUT TIME ZONE value, which the driver labels UTC, as a
// wall clock in the application timezone. APP_TIMEZONE is expected to match the
// database session TimeZone.
func WallClock(t time.Time) time.Time {
	return WallClockIn(t, GetLocation())
}

// WallClockIn keeps the date and clock reading of t and attaches loc.
func WallClockIn(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}
