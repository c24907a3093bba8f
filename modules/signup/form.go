package signup

import (
	"context"
	"errors"
	"sync"

	"github.com/apiflowstudio/landing/pkg/statemachine"
)

// ErrSubmitInFlight is returned when Submit is called while a previous
// submission has not completed.
var ErrSubmitInFlight = errors.New("signup: submission already in progress")

// Notifier delivers a signup to the notification endpoint.
// Non-success responses are reported as *APIError; any other error is treated
// as a transport failure.
type Notifier interface {
	Notify(ctx context.Context, email string) error
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, email string) error

func (f NotifierFunc) Notify(ctx context.Context, email string) error { return f(ctx, email) }

// Form is the signup form. It issues at most one request per submission and
// rejects new submissions while one is in flight.
type Form struct {
	notifier Notifier
	machine  *statemachine.Machine[Status, Event]

	mu    sync.RWMutex
	state State
}

// NewForm creates a Form in the idle state.
func NewForm(n Notifier) *Form {
	f := &Form{
		notifier: n,
		state:    State{Status: StatusIdle},
	}

	settled := []Status{StatusIdle, StatusSuccess, StatusError}
	apply := statemachine.WithAction[Status, Event](f.apply)
	// Loading is only entered with an address to send.
	hasEmail := statemachine.WithGuard[Status, Event](func(_ context.Context, _ Status, _ Event, data any) bool {
		addr, _ := data.(string)
		return addr != ""
	})

	f.machine = statemachine.MustNew(StatusIdle,
		statemachine.WithTransitionFrom(settled, StatusError, EventSubmitEmpty, apply),
		statemachine.WithTransitionFrom(settled, StatusLoading, EventSubmitStart, hasEmail, apply),
		statemachine.WithTransition(StatusLoading, StatusSuccess, EventResponseOK, apply),
		statemachine.WithTransition(StatusLoading, StatusError, EventResponseError, apply),
		statemachine.WithTransition(StatusLoading, StatusError, EventNetworkError, apply),
	)
	return f
}

// State returns a snapshot of the form.
func (f *Form) State() State {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.state
}

// Submit sends email to the notifier and returns the settled state.
// An empty email fails locally without a request.
func (f *Form) Submit(ctx context.Context, email string) (State, error) {
	start := EventSubmitStart
	if email == "" {
		start = EventSubmitEmpty
	}
	if err := f.machine.Fire(ctx, start, email); err != nil {
		if statemachine.IsNoTransition(err) {
			return f.State(), ErrSubmitInFlight
		}
		return f.State(), err
	}
	if start == EventSubmitEmpty {
		return f.State(), nil
	}

	event, data := outcome(f.notifier.Notify(ctx, email))
	if err := f.machine.Fire(ctx, event, data); err != nil {
		return f.State(), err
	}
	return f.State(), nil
}

// outcome maps a notifier result to the event that settles the form and the
// message it carries.
func outcome(err error) (Event, any) {
	if err == nil {
		return EventResponseOK, nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message == "" {
			return EventResponseError, MsgSomethingWrong
		}
		return EventResponseError, apiErr.Message
	}

	if msg := err.Error(); msg != "" {
		return EventNetworkError, msg
	}
	return EventNetworkError, MsgSubmitFailed
}

// apply updates the rendered state. It runs inside every transition.
func (f *Form) apply(_ context.Context, _, to Status, event Event, data any) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.state.Status = to
	switch event {
	case EventSubmitEmpty:
		f.state.Message = MsgEmailRequired
		f.state.Email = ""
	case EventSubmitStart:
		f.state.Message = ""
		f.state.Email, _ = data.(string)
	case EventResponseOK:
		f.state.Message = MsgSubscribed
		f.state.Email = ""
	case EventResponseError, EventNetworkError:
		f.state.Message, _ = data.(string)
	}
	return nil
}
