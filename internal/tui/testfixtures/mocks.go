package testfixtures

import (
	"context"
	"sync"
)

// Dispatcher records dispatched messages and returns Err from every call.
// It satisfies composer.Dispatcher.
type Dispatcher struct {
	mu       sync.Mutex
	messages []string

	Err error
}

// NewDispatcher returns a Dispatcher that fails with err, or succeeds when
// err is nil.
func NewDispatcher(err error) *Dispatcher {
	return &Dispatcher{Err: err}
}

// Dispatch records message.
func (d *Dispatcher) Dispatch(ctx context.Context, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.messages = append(d.messages, message)
	return d.Err
}

// Messages returns the dispatched messages in order.
func (d *Dispatcher) Messages() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.messages...)
}

// Calls returns the number of dispatches.
func (d *Dispatcher) Calls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.messages)
}
