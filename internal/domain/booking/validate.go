package booking

import (
	"fmt"
	"time"
)

// Participant count domain for a single booking.
const (
	minParticipants = 1
	maxParticipants = 10
)

// Validation messages shown inline next to the field. Empty string means the
// field is valid.
const (
	msgDateRequired  = "date required"
	msgDateInPast    = "must be a future date"
	msgTimeRequired  = "time required"
	msgTimeInPast    = "must be a future time"
	msgTooFewPeople  = "at least one participant required"
	msgTooManyPeople = "maximum 10 participants"
	msgDayClosed     = "we are closed on the selected day"
	msgOutsideHours  = "selected time is outside opening hours"
)

// ValidateDate checks the selected calendar date. Same-day is allowed; an
// unparsable value counts as unset.
func (e *Engine) ValidateDate(date string) string {
	if date == "" {
		return msgDateRequired
	}
	day, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		return msgDateRequired
	}

	now := e.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	if day.Before(today) {
		return msgDateInPast
	}
	return ""
}

// ValidateTime checks the selected slot time against the combined date+time
// instant. The date's own problems are reported by ValidateDate; an absent or
// unparsable date leaves only the presence check here.
func (e *Engine) ValidateTime(t, date string) string {
	if t == "" {
		return msgTimeRequired
	}

	instant, err := combine(date, t)
	if err != nil {
		return ""
	}
	if !instant.After(e.now()) {
		return msgTimeInPast
	}
	return ""
}

// ValidateParticipants checks the participant count domain.
func (e *Engine) ValidateParticipants(count int) string {
	if count < minParticipants {
		return msgTooFewPeople
	}
	if count > maxParticipants {
		return msgTooManyPeople
	}
	return ""
}

// ValidateBookingWindow re-derives the weekday and rejects selections whose
// time falls on an excluded day or outside the open/close window for that
// day. Guards against a slot value that went stale after the date or rules
// changed under it.
func (e *Engine) ValidateBookingWindow(date, t string) string {
	if date == "" || t == "" {
		return ""
	}
	day, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		return ""
	}

	if e.rules.ExcludedDays[day.Weekday()] {
		return msgDayClosed
	}

	min, err := parseClock(t)
	if err != nil {
		return msgOutsideHours
	}
	if min < e.rules.openMin || min >= e.rules.closeMinFor(day.Weekday()) {
		return msgOutsideHours
	}
	return ""
}

func combine(date, t string) (time.Time, error) {
	if date == "" || t == "" {
		return time.Time{}, fmt.Errorf("incomplete date/time")
	}
	return time.ParseInLocation(dateLayout+" 15:04", date+" "+t, time.Local)
}
