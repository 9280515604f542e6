package toggle

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tastebud-labs/foodadmin/internal/client"
	"github.com/tastebud-labs/foodadmin/internal/debounce"
	"github.com/tastebud-labs/foodadmin/internal/xerrors"
)

// Notifier surfaces transient outcome notifications to the operator.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Screen parameterizes the controller per entity type.
type Screen[T any] struct {
	// Noun names the entity in notifications ("Restaurant", "Sub-admin").
	Noun string
	// ID extracts the record identifier.
	ID func(T) string
	// Active reads the current flag.
	Active func(T) bool
	// SetActive returns the record with the flag replaced.
	SetActive func(T, bool) T
	// Update issues the remote status change.
	Update func(ctx context.Context, id string, active bool) (client.Outcome, error)
	// Fallback is the user-facing message when the server provides none.
	Fallback string
}

// Controller flips active flags pessimistically: the in-memory record
// is patched only after the server confirms. Rapid repeated
// invocations for the same record within the debounce window collapse
// to the last requested state and produce exactly one remote call,
// and a record with a request in flight rejects further toggles until
// it resolves.
type Controller[T any] struct {
	screen Screen[T]
	items  *[]T
	notify Notifier
	deb    *debounce.Debouncer

	mu       sync.Mutex
	inflight map[string]bool
	done     sync.WaitGroup
}

func New[T any](screen Screen[T], items *[]T, notify Notifier, window time.Duration) *Controller[T] {
	return &Controller[T]{
		screen:   screen,
		items:    items,
		notify:   notify,
		deb:      debounce.New(window),
		inflight: make(map[string]bool),
	}
}

// Toggle requests the inverse of the record's current flag. The
// dispatch is debounced per record id; the last requested state inside
// the window wins.
func (c *Controller[T]) Toggle(ctx context.Context, record T) error {
	id := c.screen.ID(record)
	if id == "" {
		return xerrors.ErrInvalidRecord
	}

	c.mu.Lock()
	if c.inflight[id] {
		c.mu.Unlock()
		return xerrors.ErrBusy
	}
	c.mu.Unlock()

	desired := !c.screen.Active(record)
	c.deb.Trigger(id, func() { c.dispatch(ctx, id, desired) })
	return nil
}

// Flush fires a pending toggle immediately, for one-shot callers.
func (c *Controller[T]) Flush(id string) {
	c.deb.Flush(id)
}

// Wait blocks until every dispatched request has resolved.
func (c *Controller[T]) Wait() {
	c.done.Wait()
}

func (c *Controller[T]) dispatch(ctx context.Context, id string, desired bool) {
	c.mu.Lock()
	if c.inflight[id] {
		c.mu.Unlock()
		return
	}
	c.inflight[id] = true
	c.mu.Unlock()

	c.done.Add(1)
	go func() {
		defer c.done.Done()
		defer func() {
			c.mu.Lock()
			delete(c.inflight, id)
			c.mu.Unlock()
		}()

		outcome, err := c.screen.Update(ctx, id, desired)
		if err != nil {
			c.notify.Error(xerrors.UserMessage(err, c.screen.Fallback))
			return
		}
		if !outcome.OK {
			msg := outcome.Message
			if msg == "" {
				msg = c.screen.Fallback
			}
			c.notify.Error(msg)
			return
		}

		c.mu.Lock()
		items := *c.items
		for i := range items {
			if c.screen.ID(items[i]) == id {
				items[i] = c.screen.SetActive(items[i], desired)
				break
			}
		}
		c.mu.Unlock()

		verb := "deactivated"
		if desired {
			verb = "activated"
		}
		c.notify.Success(fmt.Sprintf("%s %s successfully!", c.screen.Noun, verb))
	}()
}

// Stop cancels pending debounced toggles; in-flight requests resolve
// on their own.
func (c *Controller[T]) Stop() {
	c.deb.Stop()
}
