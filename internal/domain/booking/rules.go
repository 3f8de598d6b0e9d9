package booking

import (
	"fmt"
	"time"

	"github.com/biras/biras-api/internal/pkg/validator"
)

// Rules is the booking rule table: operating window, slot spacing and the
// per-weekday exceptions. Immutable after construction; both the slot
// generator and the validators read from the same value.
type Rules struct {
	OpenTime            string
	CloseTime           string
	SpecialDayCloseTime string
	SlotInterval        time.Duration
	ExcludedDays        map[time.Weekday]bool
	SpecialDays         map[time.Weekday]bool

	openMin         int
	closeMin        int
	specialCloseMin int
}

// NewRules parses and validates a rule table. Day names are English weekday
// names ("Sunday"); a day cannot be both excluded and special.
func NewRules(openTime, closeTime, specialCloseTime string, interval time.Duration, excludedDays, specialDays []string) (Rules, error) {
	r := Rules{
		OpenTime:            openTime,
		CloseTime:           closeTime,
		SpecialDayCloseTime: specialCloseTime,
		SlotInterval:        interval,
	}

	var err error
	if r.openMin, err = parseClock(openTime); err != nil {
		return Rules{}, fmt.Errorf("open time: %w", err)
	}
	if r.closeMin, err = parseClock(closeTime); err != nil {
		return Rules{}, fmt.Errorf("close time: %w", err)
	}
	if r.specialCloseMin, err = parseClock(specialCloseTime); err != nil {
		return Rules{}, fmt.Errorf("special close time: %w", err)
	}

	if r.openMin >= r.closeMin {
		return Rules{}, fmt.Errorf("open time %s must be before close time %s", openTime, closeTime)
	}
	if r.openMin >= r.specialCloseMin {
		return Rules{}, fmt.Errorf("open time %s must be before special close time %s", openTime, specialCloseTime)
	}
	if interval < time.Minute {
		return Rules{}, fmt.Errorf("slot interval must be at least one minute, got %s", interval)
	}
	if interval%time.Minute != 0 {
		return Rules{}, fmt.Errorf("slot interval must be a whole number of minutes, got %s", interval)
	}

	if r.ExcludedDays, err = parseWeekdays(excludedDays); err != nil {
		return Rules{}, err
	}
	if r.SpecialDays, err = parseWeekdays(specialDays); err != nil {
		return Rules{}, err
	}
	for d := range r.SpecialDays {
		if r.ExcludedDays[d] {
			return Rules{}, fmt.Errorf("day %s cannot be both excluded and special", d)
		}
	}

	return r, nil
}

// closeMinFor returns the closing minute-of-day for a weekday.
func (r Rules) closeMinFor(day time.Weekday) int {
	if r.SpecialDays[day] {
		return r.specialCloseMin
	}
	return r.closeMin
}

// parseClock parses a 24-hour HH:MM string into a minute-of-day.
func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid wall-clock time %q", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func formatClock(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

func parseWeekdays(names []string) (map[time.Weekday]bool, error) {
	days := make(map[time.Weekday]bool, len(names))
	for _, name := range names {
		if err := validator.ValidateVar(name, "weekday"); err != nil {
			return nil, fmt.Errorf("unknown weekday %q", name)
		}
		for d := time.Sunday; d <= time.Saturday; d++ {
			if name == d.String() {
				days[d] = true
				break
			}
		}
	}
	return days, nil
}
