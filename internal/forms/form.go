package forms

import "errors"

// State is the lifecycle position of a draft form.
//
// Empty: created for a create flow, nothing entered yet.
// Editing: the user is mutating fields.
// Submitting: a request is in flight and the form is locked.
//
// Failure returns the form to Editing; success discards the draft.
type State int

const (
	StateEmpty State = iota
	StateEditing
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateEditing:
		return "editing"
	case StateSubmitting:
		return "submitting"
	}
	return "unknown"
}

var (
	// ErrSubmitInFlight is returned when a submit is attempted while a
	// previous one has not resolved yet.
	ErrSubmitInFlight = errors.New("submit already in flight")

	// ErrInvalid is returned when a submit is rejected by client-side
	// validation. No request is issued in that case.
	ErrInvalid = errors.New("draft has validation errors")
)

// lifecycle tracks the form state. Drafts embed it; the console drives it
// around every submit attempt.
type lifecycle struct {
	state State
}

func (l *lifecycle) State() State { return l.state }

// edit marks the draft as touched.
func (l *lifecycle) edit() {
	if l.state == StateEmpty {
		l.state = StateEditing
	}
}

// beginSubmit locks the form. It fails if another submit is in flight.
func (l *lifecycle) beginSubmit() error {
	if l.state == StateSubmitting {
		return ErrSubmitInFlight
	}
	l.state = StateSubmitting
	return nil
}

// endSubmit unlocks the form after the request resolves. The caller discards
// the draft on success, so unlocking back to Editing is always correct.
func (l *lifecycle) endSubmit() {
	l.state = StateEditing
}
