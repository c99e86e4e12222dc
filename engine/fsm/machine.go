package fsm

import (
	"fmt"
	"time"
)

// NewMachine creates a new FSM instance
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes:    make(map[StateID]*Node[T]),
		activeID: StateNone,
	}
}

// AddState adds a node to the machine
func (m *Machine[T]) AddState(id StateID, name string) *Node[T] {
	node := &Node[T]{
		ID:   id,
		Name: name,
	}
	m.nodes[id] = node
	return node
}

// AddTransition links source to target; backward and self transitions are rejected
func (m *Machine[T]) AddTransition(sourceID, targetID StateID, guard GuardFunc[T]) error {
	source, ok := m.nodes[sourceID]
	if !ok {
		return fmt.Errorf("source state %d not found", sourceID)
	}
	if _, ok := m.nodes[targetID]; !ok {
		return fmt.Errorf("target state %d not found", targetID)
	}
	if targetID <= sourceID {
		return fmt.Errorf("transition %s -> %d is not forward", source.Name, targetID)
	}
	source.Transitions = append(source.Transitions, Transition[T]{TargetID: targetID, Guard: guard})
	return nil
}

// Init enters the initial state, running its OnEnter actions
func (m *Machine[T]) Init(ctx T, initialID StateID) error {
	node, ok := m.nodes[initialID]
	if !ok {
		return fmt.Errorf("initial state ID %d not found", initialID)
	}
	m.activeID = initialID
	m.timeInState = 0
	m.initialized = true
	for _, action := range node.OnEnter {
		action(ctx)
	}
	return nil
}

// Update advances the FSM by dt: OnUpdate actions of the active state, then the first
// transition whose guard passes. At most one transition per update
func (m *Machine[T]) Update(ctx T, dt time.Duration) {
	if !m.initialized {
		return
	}

	m.timeInState += dt
	node := m.nodes[m.activeID]
	for _, action := range node.OnUpdate {
		action(ctx)
	}

	for _, trans := range node.Transitions {
		if trans.Guard == nil || trans.Guard(ctx) {
			m.transition(ctx, trans.TargetID)
			return
		}
	}
}

// transition performs state change, running exit then enter actions
func (m *Machine[T]) transition(ctx T, targetID StateID) {
	if m.activeID == targetID {
		return
	}

	target, ok := m.nodes[targetID]
	if !ok {
		panic(fmt.Sprintf("FSM: Attempted transition to unknown state ID %d", targetID))
	}

	for _, action := range m.nodes[m.activeID].OnExit {
		action(ctx)
	}

	m.activeID = targetID
	m.timeInState = 0

	for _, action := range target.OnEnter {
		action(ctx)
	}
}

// State returns the active StateID, StateNone before Init
func (m *Machine[T]) State() StateID {
	return m.activeID
}

// StateName returns the active state's name
func (m *Machine[T]) StateName() string {
	if node, ok := m.nodes[m.activeID]; ok {
		return node.Name
	}
	return ""
}

// TimeInState returns time elapsed since the active state was entered
func (m *Machine[T]) TimeInState() time.Duration {
	return m.timeInState
}
