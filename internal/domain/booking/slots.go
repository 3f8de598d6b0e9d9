package booking

import (
	"time"
)

// dateLayout is the calendar date format used throughout the booking flow.
const dateLayout = "2006-01-02"

// Engine computes bookable slots and validates selections against one rule
// table. The clock is a field so tests can pin "now".
type Engine struct {
	rules Rules
	now   func() time.Time
}

// NewEngine creates an engine over the given rules.
func NewEngine(rules Rules) *Engine {
	return &Engine{
		rules: rules,
		now:   time.Now,
	}
}

// Rules returns the engine's rule table.
func (e *Engine) Rules() Rules {
	return e.rules
}

// Slots returns the ordered bookable start times for a date as 24-hour HH:MM
// strings. Empty for an unset or unparsable date and for excluded weekdays.
// For today, slots at or before the current wall-clock time are dropped.
func (e *Engine) Slots(date string) []string {
	if date == "" {
		return nil
	}
	day, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		return nil
	}

	if e.rules.ExcludedDays[day.Weekday()] {
		return nil
	}
	closeMin := e.rules.closeMinFor(day.Weekday())

	now := e.now()
	today := sameDate(day, now)
	// A table that bypassed NewRules can carry a step that rounds to zero.
	step := int(e.rules.SlotInterval / time.Minute)
	if step <= 0 {
		return nil
	}

	var slots []string
	for min := e.rules.openMin; min < closeMin; min += step {
		if today && !day.Add(time.Duration(min)*time.Minute).After(now) {
			continue
		}
		slots = append(slots, formatClock(min))
	}
	return slots
}

// HasSlot reports whether t is one of the generated slots for date.
func (e *Engine) HasSlot(date, t string) bool {
	for _, slot := range e.Slots(date) {
		if slot == t {
			return true
		}
	}
	return false
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
