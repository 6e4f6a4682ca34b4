package timezone

import (
	"fmt"
	"sync"
	"time"

	"clearance/config"

	"github.com/rs/zerolog/log"
)

const (
	DefaultZone = "Asia/Ho_Chi_Minh"
	DateLayout  = "2006-01-02"
	// CompactDateLayout is used inside booking numbers.
	CompactDateLayout = "20060102"
)

var (
	mu          sync.RWMutex
	appLocation *time.Location
)

func init() {
	name := config.Get().App.Timezone
	if name == "" {
		name = DefaultZone
	}

	if err := SetLocation(name); err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, falling back to UTC")

		setLocation(time.UTC)

		return
	}

	log.Debug().Str("timezone", name).Msg("Application timezone initialized")
}

// SetLocation switches the application zone by IANA name.
func SetLocation(name string) error {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return fmt.Errorf("failed to load location %q: %w", name, err)
	}

	setLocation(loc)

	return nil
}

func setLocation(loc *time.Location) {
	mu.Lock()
	defer mu.Unlock()

	appLocation = loc
}

// GetLocation returns the current application zone, UTC when unset.
func GetLocation() *time.Location {
	mu.RLock()
	defer mu.RUnlock()

	if appLocation == nil {
		return time.UTC
	}

	return appLocation
}

func Now() time.Time {
	return time.Now().In(GetLocation())
}

func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

func Parse(layout, value string) (time.Time, error) {
	t, err := time.ParseInLocation(layout, value, GetLocation())
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse time: %w", err)
	}

	return t, nil
}

// ParseDate parses a YYYY-MM-DD calendar date at midnight in the application zone.
func ParseDate(value string) (time.Time, error) {
	return Parse(DateLayout, value)
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
