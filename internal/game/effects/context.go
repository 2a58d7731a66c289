package effects

import (
	"go.uber.org/zap"

	"github.com/vgcsim/battle-engine-go/internal/game/rules"
)

// MaxDepth bounds nested dispatches.
const MaxDepth = 8

// Event describes the event currently being dispatched.
type Event struct {
	ID           rules.EventID
	Target       any
	Source       any
	SourceEffect Effect
}

type frame struct {
	effect Effect
	state  *State
	event  Event
}

// contextStack holds the executing frame on top of the frames it interrupted.
// The zero frame at the bottom is the idle context.
type contextStack struct {
	frames []frame
}

func newContextStack() contextStack {
	return contextStack{frames: make([]frame, 1, MaxDepth+1)}
}

func (s *contextStack) depth() int {
	return len(s.frames) - 1
}

func (s *contextStack) current() frame {
	return s.frames[len(s.frames)-1]
}

func (s *contextStack) push(f frame) {
	s.frames = append(s.frames, f)
}

func (s *contextStack) pop() {
	s.frames[len(s.frames)-1] = frame{}
	s.frames = s.frames[:len(s.frames)-1]
}

// swap replaces the top frame's effect and state and returns a restore func.
func (s *contextStack) swap(effect Effect, state *State) func() {
	top := &s.frames[len(s.frames)-1]
	prevEffect, prevState := top.effect, top.state
	top.effect, top.state = effect, state
	return func() {
		top := &s.frames[len(s.frames)-1]
		top.effect, top.state = prevEffect, prevState
	}
}

// root returns the outermost event in flight, or the current one when idle.
func (s *contextStack) root() rules.EventID {
	if len(s.frames) > 1 {
		return s.frames[1].event.ID
	}
	return s.frames[0].event.ID
}

// Context is what a handler sees of the engine while it runs.
type Context struct {
	engine *Engine

	Effect Effect
	State  *State
	Event  Event
}

// Engine returns the dispatching engine.
func (c *Context) Engine() *Engine {
	return c.engine
}

// Dispatch runs a nested single-effect event.
func (c *Context) Dispatch(call Single) (any, error) {
	return c.engine.Dispatch(call)
}

// RunEvent runs a nested aggregated event.
func (c *Context) RunEvent(scene Scene, run Run) (any, error) {
	return c.engine.RunEvent(scene, run)
}

// Add appends a battle log line.
func (c *Context) Add(parts ...string) {
	c.engine.log.Add(parts...)
}

// Logger returns the engine logger annotated with the running effect.
func (c *Context) Logger() *zap.Logger {
	if c.Effect == nil {
		return c.engine.logger
	}
	return c.engine.logger.With(zap.String("effect_id", c.Effect.EffectID().String()))
}
