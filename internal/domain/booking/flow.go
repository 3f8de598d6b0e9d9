package booking

import (
	"github.com/google/uuid"

	"github.com/biras/biras-api/internal/domain/catalog"
)

// Flow is one user's journey from selection to submission for a single
// booking attempt. Not safe for concurrent use; the service serializes
// access.
type Flow struct {
	ID        uuid.UUID
	offering  catalog.Offering
	selection Selection
	state     State
	banner    string
	touched   bool
}

func newFlow(offering catalog.Offering) *Flow {
	return &Flow{
		ID:       uuid.New(),
		offering: offering,
		selection: Selection{
			Participants: minParticipants,
		},
		state: StateEmpty,
	}
}

// setDate selects a date. Slots are date-dependent, so a previously selected
// time survives only if the new date's slot sequence still contains it.
func (f *Flow) setDate(e *Engine, date string) {
	f.selection.Date = date
	if f.selection.Time != "" && !e.HasSlot(date, f.selection.Time) {
		f.selection.Time = ""
	}
	f.touched = true
	f.refreshState(e)
}

func (f *Flow) setTime(e *Engine, t string) {
	f.selection.Time = t
	f.touched = true
	f.refreshState(e)
}

func (f *Flow) setParticipants(e *Engine, count int) {
	f.selection.Participants = count
	f.touched = true
	f.refreshState(e)
}

func (f *Flow) setNote(e *Engine, note string) {
	f.selection.Note = note
	f.touched = true
	f.refreshState(e)
}

// changeOffering swaps the active offering and resets the whole selection.
func (f *Flow) changeOffering(e *Engine, offering catalog.Offering) {
	f.offering = offering
	f.selection = Selection{Participants: minParticipants}
	f.banner = ""
	f.touched = false
	f.refreshState(e)
}

// succeed clears the selection after a confirmed submission. The succeeded
// state sticks until the next edit moves the flow along again.
func (f *Flow) succeed() {
	f.selection = Selection{Participants: minParticipants}
	f.banner = ""
	f.touched = false
	f.state = StateSucceeded
}

// fieldErrors runs all four checks and maps failures to field names. The
// window check only reports on a field that passed its own check, so the more
// specific message wins.
func (f *Flow) fieldErrors(e *Engine) map[string]string {
	errs := make(map[string]string)
	if msg := e.ValidateDate(f.selection.Date); msg != "" {
		errs["date"] = msg
	}
	if msg := e.ValidateTime(f.selection.Time, f.selection.Date); msg != "" {
		errs["time"] = msg
	}
	if msg := e.ValidateParticipants(f.selection.Participants); msg != "" {
		errs["participants"] = msg
	}

	if msg := e.ValidateBookingWindow(f.selection.Date, f.selection.Time); msg != "" {
		switch msg {
		case msgDayClosed:
			if _, taken := errs["date"]; !taken {
				errs["date"] = msg
			}
		default:
			if _, taken := errs["time"]; !taken {
				errs["time"] = msg
			}
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// refreshState recomputes the derived state after a field change. Submitting
// and succeeded are transition states owned by the service, never derived.
func (f *Flow) refreshState(e *Engine) {
	if f.state == StateSubmitting {
		return
	}
	switch {
	case !f.touched:
		f.state = StateEmpty
	case f.fieldErrors(e) == nil:
		f.state = StateValid
	default:
		f.state = StatePartial
	}
}

// view snapshots the flow for the client.
func (f *Flow) view(e *Engine) FlowView {
	base := ExtractPrice(f.offering.Price)
	total := 0
	if f.selection.Participants >= minParticipants {
		total = base * f.selection.Participants
	}
	return FlowView{
		ID:        f.ID.String(),
		State:     f.state,
		Offering:  f.offering,
		Selection: f.selection,
		Slots:     f.slots(e),
		Errors:    f.fieldErrors(e),
		Banner:    f.banner,
		BasePrice: base,
		Total:     total,
	}
}

func (f *Flow) slots(e *Engine) []string {
	slots := e.Slots(f.selection.Date)
	if slots == nil {
		slots = []string{}
	}
	return slots
}
