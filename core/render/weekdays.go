package render

import (
	"fmt"
	"time"
)

// Weekdays holds display labels indexed by time.Weekday.
type Weekdays [7]string

var (
	EnglishWeekdays = Weekdays{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	SpanishWeekdays = Weekdays{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}
)

// WeekdaysFor returns the labels for a locale ("en" or "es").
// An empty locale means English.
func WeekdaysFor(locale string) (Weekdays, error) {
	switch locale {
	case "", "en", "en_US":
		return EnglishWeekdays, nil
	case "es", "es_ES":
		return SpanishWeekdays, nil
	default:
		return Weekdays{}, fmt.Errorf("unsupported weekday locale %q", locale)
	}
}

// Label returns the label for d.
func (w Weekdays) Label(d time.Weekday) string {
	return w[d]
}
