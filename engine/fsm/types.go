package fsm

import "time"

// StateID is a unique identifier for a node, ordered: transitions only move to a higher ID
type StateID int

const StateNone StateID = -1

// Machine is a flat, forward-only finite state machine
// T is the context type passed to actions and guards (e.g., *sim.Sim)
type Machine[T any] struct {
	// Graph Data (immutable after Init)
	nodes map[StateID]*Node[T]

	// Runtime State
	activeID    StateID
	timeInState time.Duration
	initialized bool
}

// Node represents a state
type Node[T any] struct {
	ID   StateID
	Name string

	// Lifecycle Actions
	OnEnter  []ActionFunc[T]
	OnUpdate []ActionFunc[T]
	OnExit   []ActionFunc[T]

	// Transitions in evaluation priority order
	Transitions []Transition[T]
}

// Transition defines a tick-evaluated link between states
type Transition[T any] struct {
	TargetID StateID
	Guard    GuardFunc[T] // nil = Always true
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T)
