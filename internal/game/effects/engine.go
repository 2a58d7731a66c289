package effects

import (
	"go.uber.org/zap"

	"github.com/vgcsim/battle-engine-go/internal/game/rules"
)

// DefaultMaxLogLines bounds log growth between checkpoints.
const DefaultMaxLogLines = 1000

// Engine dispatches events to effect handlers for one battle.
// It is not safe for concurrent use; callers serialize turns.
type Engine struct {
	logger      *zap.Logger
	env         Environment
	log         *Log
	shuffler    Shuffler
	maxLogLines int
	gen         int

	stack       contextStack
	effectOrder int
}

// Option configures an Engine.
type Option func(*Engine)

// WithEnvironment sets the battle-wide suppression queries.
func WithEnvironment(env Environment) Option {
	return func(e *Engine) {
		if env != nil {
			e.env = env
		}
	}
}

// WithLog sets the battle log the line guard watches.
func WithLog(l *Log) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithMaxLogLines overrides DefaultMaxLogLines.
func WithMaxLogLines(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxLogLines = n
		}
	}
}

// WithShuffler randomizes full ties in aggregated events.
func WithShuffler(s Shuffler) Option {
	return func(e *Engine) {
		e.shuffler = s
	}
}

// WithGen sets the mechanics generation. From generation 5 on, abilities and
// items that declare no SwitchIn handler run Start on switch-in. Zero means
// the current generation.
func WithGen(gen int) Option {
	return func(e *Engine) {
		e.gen = gen
	}
}

// NewEngine creates an engine.
func NewEngine(logger *zap.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Engine{
		logger:      logger,
		env:         noEnvironment{},
		log:         NewLog(),
		maxLogLines: DefaultMaxLogLines,
		stack:       newContextStack(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Log returns the battle log.
func (e *Engine) Log() *Log {
	return e.log
}

// Depth returns the number of dispatches in flight.
func (e *Engine) Depth() int {
	return e.stack.depth()
}

// Current returns the executing effect, its state and the event in flight.
func (e *Engine) Current() (Effect, *State, Event) {
	f := e.stack.current()
	return f.effect, f.state, f.event
}

// InitState creates a fresh state for effect on target with the next effect order.
// The state is not attached to any holder.
func (e *Engine) InitState(effect Effect, target, source any) *State {
	e.effectOrder++
	return newState(effect, e.effectOrder, target, source)
}

// Single is a single-effect dispatch request.
type Single struct {
	Event  rules.EventID
	Effect Effect
	// State defaults to a fresh, unattached state.
	State        *State
	Target       any
	Source       any
	SourceEffect Effect
	// Relay defaults to true; a nil Relay also changes the argument shape.
	Relay any
	// Override bypasses the effect's own slot.
	Override *Handler
}

// Dispatch invokes one effect's handler for one event.
//
// Suppression and an empty slot both return the relay unchanged. A handler
// returning nil also yields the relay. The only errors are integrity errors
// and errors returned by handlers.
func (e *Engine) Dispatch(call Single) (any, error) {
	if err := e.checkIntegrity(call.Event); err != nil {
		return nil, err
	}

	relay := call.Relay
	hasRelay := relay != nil
	if !hasRelay {
		relay = true
	}
	if call.Effect == nil {
		return relay, nil
	}

	if reason := e.suppressed(suppressSingle, call.Event, call.Effect, call.Target); reason != "" {
		e.logSuppressed(call.Event, call.Effect, reason)
		return relay, nil
	}

	var h Handler
	if call.Override != nil {
		h = *call.Override
	} else {
		var ok bool
		h, ok = call.Effect.EffectHandlers().Lookup(ScopeSelf, call.Event)
		if !ok {
			return relay, nil
		}
	}
	if h.IsConstant() {
		if h.value == nil {
			return relay, nil
		}
		return h.value, nil
	}
	if h.fn == nil {
		return relay, nil
	}

	state := call.State
	if state == nil {
		state = e.InitState(call.Effect, call.Target, call.Source)
	}
	ev := Event{
		ID:           call.Event,
		Target:       call.Target,
		Source:       call.Source,
		SourceEffect: call.SourceEffect,
	}
	e.stack.push(frame{effect: call.Effect, state: state, event: ev})
	defer e.stack.pop()

	result, err := h.fn(&Context{engine: e, Effect: call.Effect, State: state, Event: ev}, Args{
		Relay:        relay,
		HasRelay:     hasRelay,
		Target:       call.Target,
		Source:       call.Source,
		SourceEffect: call.SourceEffect,
	})
	if err != nil {
		return nil, err
	}
	if result == nil {
		return relay, nil
	}
	return result, nil
}

// checkIntegrity trips before a dispatch that would exceed the nesting bound,
// or when the log has grown past its bound since the last checkpoint.
func (e *Engine) checkIntegrity(ev rules.EventID) error {
	if e.stack.depth() >= MaxDepth {
		return e.integrityFailure(ErrStackLimit, ev, "STACK LIMIT EXCEEDED")
	}
	if e.log.Pending() > e.maxLogLines {
		return e.integrityFailure(ErrLineLimit, ev, "LINE LIMIT EXCEEDED")
	}
	return nil
}

func (e *Engine) integrityFailure(cause error, ev rules.EventID, message string) error {
	err := &IntegrityError{
		Err:    cause,
		Event:  ev,
		Parent: e.stack.current().event.ID,
		Root:   e.stack.root(),
		Depth:  e.stack.depth(),
		Lines:  e.log.Pending(),
	}
	e.logger.Error("engine integrity guard tripped",
		zap.String("event", ev.String()),
		zap.String("parent_event", err.Parent.String()),
		zap.String("root_event", err.Root.String()),
		zap.Int("depth", err.Depth),
		zap.Int("pending_lines", err.Lines),
		zap.Error(cause),
	)
	e.log.Add("message", message)
	return err
}

func (e *Engine) logSuppressed(ev rules.EventID, effect Effect, reason string) {
	if ce := e.logger.Check(zap.DebugLevel, "handler suppressed"); ce != nil {
		ce.Write(
			zap.String("event", ev.String()),
			zap.String("effect_id", effect.EffectID().String()),
			zap.String("effect_kind", effect.EffectKind().String()),
			zap.String("reason", reason),
		)
	}
}
