package editor

import (
	"context"

	"github.com/tastebud-labs/foodadmin/internal/client"
	"github.com/tastebud-labs/foodadmin/internal/validate"
	"github.com/tastebud-labs/foodadmin/internal/xerrors"
)

// State of the single edit session a screen owns.
type State int

const (
	Idle State = iota
	Editing
	Submitting
)

func (s State) String() string {
	switch s {
	case Editing:
		return "editing"
	case Submitting:
		return "submitting"
	default:
		return "idle"
	}
}

// Screen parameterizes the editor per entity type: how to identify a
// record, which fields an edit form carries, how to validate the
// draft, how to push it to the API, and how to fold the accepted
// draft back into the record.
type Screen[T any] struct {
	// ID extracts the record identifier.
	ID func(T) string
	// Seed copies the record's editable fields into a fresh draft.
	Seed func(T) validate.Form
	// Validate returns the first failure for the draft, or nil.
	Validate func(validate.Form) error
	// Update issues the remote update carrying only this screen's
	// relevant fields.
	Update func(ctx context.Context, id string, draft validate.Form) (client.Outcome, error)
	// Merge applies the accepted draft onto the original record.
	// Fields outside the draft are preserved from the original.
	Merge func(T, validate.Form) T
	// Fallback is the user-facing message when the server provides
	// none.
	Fallback string
}

// Editor is the per-screen edit state machine:
// Idle -> Editing -> Submitting -> (Idle on success | Editing on
// failure). Only one session exists per screen; opening a new edit
// replaces the prior draft silently.
type Editor[T any] struct {
	screen  Screen[T]
	items   *[]T
	state   State
	id      string
	draft   validate.Form
	failure string
}

func New[T any](screen Screen[T], items *[]T) *Editor[T] {
	return &Editor[T]{screen: screen, items: items, state: Idle}
}

func (e *Editor[T]) State() State { return e.state }

// Failure is the message of the last validation or remote failure,
// cleared on close and on a successful submit.
func (e *Editor[T]) Failure() string { return e.failure }

// SelectedID is the identifier of the record under edit, empty when
// idle.
func (e *Editor[T]) SelectedID() string { return e.id }

// OpenEdit starts (or silently restarts) an edit session seeded from
// the record's editable fields.
func (e *Editor[T]) OpenEdit(record T) error {
	id := e.screen.ID(record)
	if id == "" {
		e.failure = "Cannot edit: invalid record"
		return xerrors.ErrInvalidRecord
	}
	if e.state == Submitting {
		return xerrors.ErrBusy
	}
	e.id = id
	e.draft = e.screen.Seed(record)
	e.state = Editing
	e.failure = ""
	return nil
}

// SetField is a pure draft update; nothing is validated until submit.
func (e *Editor[T]) SetField(name, value string) {
	if e.state != Editing {
		return
	}
	e.draft[name] = value
}

func (e *Editor[T]) Field(name string) string {
	return e.draft[name]
}

// Draft returns a copy of the form state.
func (e *Editor[T]) Draft() validate.Form {
	out := make(validate.Form, len(e.draft))
	for k, v := range e.draft {
		out[k] = v
	}
	return out
}

// Submit validates the draft, pushes it to the API and, once the
// server confirms, patches the in-memory collection by identifier
// match. On any failure the session returns to Editing with the
// failure message exposed; local state is only touched after a
// confirmed success.
func (e *Editor[T]) Submit(ctx context.Context) error {
	if e.state != Editing {
		return xerrors.ErrBusy
	}

	if err := e.screen.Validate(e.Draft()); err != nil {
		e.state = Editing
		e.failure = xerrors.UserMessage(err, e.screen.Fallback)
		return err
	}

	e.state = Submitting
	outcome, err := e.screen.Update(ctx, e.id, e.Draft())
	if err != nil {
		e.state = Editing
		e.failure = xerrors.UserMessage(err, e.screen.Fallback)
		return err
	}
	if !outcome.OK {
		e.state = Editing
		e.failure = firstNonEmpty(outcome.Message, e.screen.Fallback)
		return &xerrors.RemoteError{Op: "submit", Message: e.failure}
	}

	items := *e.items
	for i := range items {
		if e.screen.ID(items[i]) == e.id {
			items[i] = e.screen.Merge(items[i], e.draft)
			break
		}
	}

	e.reset()
	return nil
}

// Close discards the form state from any state and clears the
// selected record.
func (e *Editor[T]) Close() {
	e.reset()
}

func (e *Editor[T]) reset() {
	e.state = Idle
	e.id = ""
	e.draft = nil
	e.failure = ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
