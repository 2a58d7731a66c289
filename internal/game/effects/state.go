package effects

import (
	"github.com/google/uuid"

	"github.com/vgcsim/battle-engine-go/internal/id"
)

// State is the per-holder instance record of an active effect.
// Only the owning effect's handlers mutate it.
type State struct {
	ID          string
	EffectID    id.ID
	EffectOrder int

	// Target is the holder the effect is attached to; Source is whatever applied it.
	Target any
	Source any

	duration    int
	hasDuration bool
	ended       bool
	data        map[string]any
}

func newState(effect Effect, order int, target, source any) *State {
	st := &State{
		ID:          uuid.NewString(),
		EffectOrder: order,
		Target:      target,
		Source:      source,
	}
	if effect != nil {
		st.EffectID = effect.EffectID()
	}
	return st
}

// Duration returns the remaining duration, if the effect has one.
func (s *State) Duration() (int, bool) {
	return s.duration, s.hasDuration
}

// SetDuration sets the remaining duration.
func (s *State) SetDuration(turns int) {
	s.duration = turns
	s.hasDuration = true
}

// ClearDuration makes the effect last until explicitly ended.
func (s *State) ClearDuration() {
	s.duration = 0
	s.hasDuration = false
}

// tick decrements the duration and reports whether it ran out.
func (s *State) tick() bool {
	if !s.hasDuration || s.duration <= 0 {
		return false
	}
	s.duration--
	return s.duration <= 0
}

// Ended reports whether the effect was removed from its holder.
func (s *State) Ended() bool {
	return s.ended
}

// Get reads a handler-defined field.
func (s *State) Get(key string) (any, bool) {
	v, ok := s.data[key]
	return v, ok
}

// Int reads a handler-defined integer field, zero when absent.
func (s *State) Int(key string) int {
	v, _ := s.data[key].(int)
	return v
}

// Set writes a handler-defined field.
func (s *State) Set(key string, v any) {
	if s.data == nil {
		s.data = make(map[string]any)
	}
	s.data[key] = v
}

// Delete removes a handler-defined field.
func (s *State) Delete(key string) {
	delete(s.data, key)
}

// StateSet keeps at most one State per effect for a single holder,
// in the order the effects were attached.
type StateSet struct {
	keys    []string
	entries map[string]stateEntry
}

type stateEntry struct {
	effect Effect
	state  *State
}

// Get returns the state attached for effect.
func (s *StateSet) Get(effect Effect) (*State, bool) {
	if s == nil || s.entries == nil || effect == nil {
		return nil, false
	}
	e, ok := s.entries[effectKey(effect)]
	return e.state, ok
}

// Has reports whether effect is attached.
func (s *StateSet) Has(effect Effect) bool {
	_, ok := s.Get(effect)
	return ok
}

// Len returns the number of attached effects.
func (s *StateSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}

// Each visits attached effects in attachment order.
func (s *StateSet) Each(fn func(Effect, *State)) {
	if s == nil {
		return
	}
	for _, k := range s.keys {
		e := s.entries[k]
		fn(e.effect, e.state)
	}
}

func (s *StateSet) put(effect Effect, st *State) {
	if s.entries == nil {
		s.entries = make(map[string]stateEntry)
	}
	k := effectKey(effect)
	if _, exists := s.entries[k]; !exists {
		s.keys = append(s.keys, k)
	}
	s.entries[k] = stateEntry{effect: effect, state: st}
}

func (s *StateSet) remove(effect Effect) (*State, bool) {
	if s == nil || s.entries == nil {
		return nil, false
	}
	k := effectKey(effect)
	e, ok := s.entries[k]
	if !ok {
		return nil, false
	}
	delete(s.entries, k)
	for i, key := range s.keys {
		if key == k {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}
	e.state.ended = true
	return e.state, true
}
