package booking

import (
	"testing"

	"github.com/biras/biras-api/internal/domain/catalog"
)

var testOffering = catalog.Offering{
	ID:        "juggling-sets",
	ServiceID: "juggling",
	Title:     "Beginner juggling sets",
	Duration:  "Immediate",
	Price:     "Starting at $24",
}

func TestFlow_StateProgression(t *testing.T) {
	e := testEngine(t, wednesdayNoon)
	f := newFlow(testOffering)

	if f.state != StateEmpty {
		t.Fatalf("new flow state = %s, want %s", f.state, StateEmpty)
	}

	f.setDate(e, "2026-03-05")
	if f.state != StatePartial {
		t.Fatalf("after date only, state = %s, want %s", f.state, StatePartial)
	}

	f.setTime(e, "14:00")
	if f.state != StateValid {
		t.Fatalf("after date+time, state = %s, want %s (errors: %v)", f.state, StateValid, f.fieldErrors(e))
	}

	f.setParticipants(e, 11)
	if f.state != StatePartial {
		t.Fatalf("with 11 participants, state = %s, want %s", f.state, StatePartial)
	}
}

func TestFlow_DateChangeKeepsTimeStillInSequence(t *testing.T) {
	e := testEngine(t, wednesdayNoon)
	f := newFlow(testOffering)

	f.setDate(e, "2026-03-05")
	f.setTime(e, "14:00")

	// Friday still has a 14:00 slot before its early close.
	f.setDate(e, "2026-03-06")
	if f.selection.Time != "14:00" {
		t.Fatalf("time cleared although still bookable, got %q", f.selection.Time)
	}
}

func TestFlow_DateChangeClearsStaleTime(t *testing.T) {
	e := testEngine(t, wednesdayNoon)
	f := newFlow(testOffering)

	f.setDate(e, "2026-03-05")
	f.setTime(e, "16:00")

	// 16:00 is past the Friday special close.
	f.setDate(e, "2026-03-06")
	if f.selection.Time != "" {
		t.Fatalf("expected stale time to be cleared, got %q", f.selection.Time)
	}

	f.setTime(e, "10:00")
	// Sunday has no slots at all.
	f.setDate(e, "2026-03-08")
	if f.selection.Time != "" {
		t.Fatalf("expected time cleared on excluded day, got %q", f.selection.Time)
	}
}

func TestFlow_ChangeOfferingResetsSelection(t *testing.T) {
	e := testEngine(t, wednesdayNoon)
	f := newFlow(testOffering)

	f.setDate(e, "2026-03-05")
	f.setTime(e, "14:00")
	f.setParticipants(e, 4)
	f.setNote(e, "birthday")

	other := catalog.Offering{ID: "art-workshops", Title: "Art technique workshops", Price: "$89 per session"}
	f.changeOffering(e, other)

	if f.offering.ID != "art-workshops" {
		t.Fatalf("offering not changed, got %s", f.offering.ID)
	}
	if f.selection.Date != "" || f.selection.Time != "" || f.selection.Note != "" {
		t.Fatalf("selection not reset: %+v", f.selection)
	}
	if f.selection.Participants != 1 {
		t.Fatalf("participants not reset to 1, got %d", f.selection.Participants)
	}
	if f.state != StateEmpty {
		t.Fatalf("state = %s, want %s", f.state, StateEmpty)
	}
}

func TestFlow_ViewPricing(t *testing.T) {
	e := testEngine(t, wednesdayNoon)
	f := newFlow(testOffering)
	f.setParticipants(e, 3)

	v := f.view(e)
	if v.BasePrice != 24 {
		t.Fatalf("base price = %d, want 24", v.BasePrice)
	}
	if v.Total != 72 {
		t.Fatalf("total = %d, want 72", v.Total)
	}
}

func TestFlow_WindowErrorMapsToField(t *testing.T) {
	e := testEngine(t, wednesdayNoon)
	f := newFlow(testOffering)

	// Sunday with a time set: the date field carries the closed-day message.
	f.setDate(e, "2026-03-08")
	f.setTime(e, "10:00")

	errs := f.fieldErrors(e)
	if errs["date"] != msgDayClosed {
		t.Fatalf("date error = %q, want %q", errs["date"], msgDayClosed)
	}
}
