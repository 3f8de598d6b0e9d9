package booking

import (
	"testing"
	"time"
)

func testRules(t *testing.T) Rules {
	t.Helper()
	rules, err := NewRules("09:00", "17:00", "15:00", time.Hour, []string{"Sunday"}, []string{"Friday"})
	if err != nil {
		t.Fatalf("NewRules: %v", err)
	}
	return rules
}

func testEngine(t *testing.T, now time.Time) *Engine {
	t.Helper()
	e := NewEngine(testRules(t))
	e.now = func() time.Time { return now }
	return e
}

// 2026-03-04 is a Wednesday.
var wednesdayNoon = time.Date(2026, 3, 4, 12, 30, 0, 0, time.Local)

func TestSlots_RegularDay(t *testing.T) {
	e := testEngine(t, wednesdayNoon)

	slots := e.Slots("2026-03-05") // Thursday
	want := []string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00"}
	assertSlots(t, slots, want)
}

func TestSlots_ExcludedDayIsEmpty(t *testing.T) {
	e := testEngine(t, wednesdayNoon)

	if slots := e.Slots("2026-03-08"); len(slots) != 0 { // Sunday
		t.Fatalf("expected no slots on excluded day, got %v", slots)
	}
}

func TestSlots_SpecialDayUsesEarlyClose(t *testing.T) {
	e := testEngine(t, wednesdayNoon)

	slots := e.Slots("2026-03-06") // Friday
	want := []string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00"}
	assertSlots(t, slots, want)
	for _, s := range slots {
		if s >= "15:00" {
			t.Fatalf("slot %s is not before the special close time", s)
		}
	}
}

func TestSlots_TodayDropsPastSlots(t *testing.T) {
	e := testEngine(t, wednesdayNoon)

	slots := e.Slots("2026-03-04")
	want := []string{"13:00", "14:00", "15:00", "16:00"}
	assertSlots(t, slots, want)
}

func TestSlots_TodayDropsSlotEqualToNow(t *testing.T) {
	e := testEngine(t, time.Date(2026, 3, 4, 13, 0, 0, 0, time.Local))

	slots := e.Slots("2026-03-04")
	assertSlots(t, slots, []string{"14:00", "15:00", "16:00"})
}

func TestSlots_UnsetOrBadDate(t *testing.T) {
	e := testEngine(t, wednesdayNoon)

	if slots := e.Slots(""); slots != nil {
		t.Fatalf("expected nil for unset date, got %v", slots)
	}
	if slots := e.Slots("not-a-date"); slots != nil {
		t.Fatalf("expected nil for unparsable date, got %v", slots)
	}
}

func TestSlots_IntervalNotDividingWindow(t *testing.T) {
	rules, err := NewRules("09:00", "17:00", "15:00", 150*time.Minute, nil, nil)
	if err != nil {
		t.Fatalf("NewRules: %v", err)
	}
	e := NewEngine(rules)
	e.now = func() time.Time { return wednesdayNoon }

	// 09:00, 11:30, 14:00; 16:30 is before close but the next step is not
	// emitted past it.
	slots := e.Slots("2026-03-05")
	assertSlots(t, slots, []string{"09:00", "11:30", "14:00", "16:30"})
}

func TestSlots_CloseBeforeOpenIsEmpty(t *testing.T) {
	// NewRules rejects this; build the table directly to exercise the
	// defensive path.
	rules := Rules{
		SlotInterval: time.Hour,
		openMin:      17 * 60,
		closeMin:     9 * 60,
	}
	e := NewEngine(rules)
	e.now = func() time.Time { return wednesdayNoon }

	if slots := e.Slots("2026-03-05"); len(slots) != 0 {
		t.Fatalf("expected no slots when close precedes open, got %v", slots)
	}
}

func TestHasSlot(t *testing.T) {
	e := testEngine(t, wednesdayNoon)

	if !e.HasSlot("2026-03-05", "09:00") {
		t.Fatal("expected 09:00 to be a Thursday slot")
	}
	if e.HasSlot("2026-03-06", "16:00") {
		t.Fatal("16:00 is past the Friday special close, must not be a slot")
	}
	if e.HasSlot("2026-03-08", "09:00") {
		t.Fatal("expected no slots on the excluded day")
	}
}

func TestNewRules_Invariants(t *testing.T) {
	cases := []struct {
		name     string
		open     string
		close    string
		special  string
		interval time.Duration
	}{
		{"open after close", "18:00", "17:00", "15:00", time.Hour},
		{"open equals close", "17:00", "17:00", "15:00", time.Hour},
		{"open after special close", "16:00", "17:00", "15:00", time.Hour},
		{"zero interval", "09:00", "17:00", "15:00", 0},
		{"sub-minute interval", "09:00", "17:00", "15:00", 30 * time.Second},
		{"fractional minutes", "09:00", "17:00", "15:00", 90 * time.Second},
		{"bad clock", "9am", "17:00", "15:00", time.Hour},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewRules(tc.open, tc.close, tc.special, tc.interval, nil, nil); err == nil {
				t.Fatal("expected an error")
			}
		})
	}

	if _, err := NewRules("09:00", "17:00", "15:00", time.Hour, []string{"Funday"}, nil); err == nil {
		t.Fatal("expected an error for an unknown weekday name")
	}
	if _, err := NewRules("09:00", "17:00", "15:00", time.Hour, []string{"Friday"}, []string{"Friday"}); err == nil {
		t.Fatal("expected an error for a day both excluded and special")
	}
}

func TestSlots_SubMinuteIntervalTableIsEmpty(t *testing.T) {
	// NewRules rejects this; a hand-built table must not loop in place.
	rules := Rules{
		SlotInterval: 30 * time.Second,
		openMin:      9 * 60,
		closeMin:     17 * 60,
	}
	e := NewEngine(rules)
	e.now = func() time.Time { return wednesdayNoon }

	if slots := e.Slots("2026-03-05"); len(slots) != 0 {
		t.Fatalf("expected no slots for a sub-minute interval, got %v", slots)
	}
}

func assertSlots(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("slot %d: got %s, want %s (full: %v)", i, got[i], want[i], got)
		}
	}
}
