// Package statemachine implements a small, concurrency-safe finite state
// machine over comparable state and event types.
//
// States and events are usually string-based enums declared by the caller:
//
//	type Status string
//	type Event string
//
//	const (
//		Idle    Status = "idle"
//		Loading Status = "loading"
//		Submit  Event  = "submit"
//	)
//
//	m := statemachine.MustNew(Idle,
//		statemachine.WithTransition(Idle, Loading, Submit),
//	)
//	err := m.Fire(ctx, Submit, nil)
//
// # Guards and Actions
//
// Several transitions may share a source state and event. Fire picks the first
// one whose guards all pass. Actions run in order before the state changes;
// an action error aborts the transition and leaves the state untouched.
//
// # Errors
//
// Fire reports a missing transition with *NoTransitionError and a transition
// vetoed by guards with *RejectedError. Use IsNoTransition and IsRejected to
// tell them apart.
package statemachine
