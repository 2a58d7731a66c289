package effects

import (
	"github.com/vgcsim/battle-engine-go/internal/game/rules"
)

// Scope selects which relationship between a handler's holder and the event
// target a handler set answers for.
type Scope uint8

const (
	ScopeSelf Scope = iota
	ScopeAlly
	ScopeFoe
	ScopeSource
	ScopeAny
	scopeCount
)

func (s Scope) String() string {
	switch s {
	case ScopeSelf:
		return "self"
	case ScopeAlly:
		return "ally"
	case ScopeFoe:
		return "foe"
	case ScopeSource:
		return "source"
	case ScopeAny:
		return "any"
	default:
		return "unknown"
	}
}

// Func is an invocable handler. A nil result means "no explicit value".
type Func func(c *Context, a Args) (any, error)

// Handler fills one event slot: either a constant or a callable, plus the
// ordering keys the aggregator sorts by.
type Handler struct {
	Priority int
	Order    int
	SubOrder int

	fn       Func
	value    any
	constant bool
}

// Const declares a slot whose answer never depends on the event.
func Const(v any) Handler {
	return Handler{value: v, constant: true}
}

// Call declares an invocable slot.
func Call(fn Func) Handler {
	return Handler{fn: fn}
}

// WithPriority returns a copy of h with the given priority.
func (h Handler) WithPriority(p int) Handler {
	h.Priority = p
	return h
}

// WithOrder returns a copy of h with the given order.
func (h Handler) WithOrder(o int) Handler {
	h.Order = o
	return h
}

// WithSubOrder returns a copy of h with the given sub-order.
func (h Handler) WithSubOrder(s int) Handler {
	h.SubOrder = s
	return h
}

// IsConstant reports whether h is a constant slot.
func (h Handler) IsConstant() bool {
	return h.constant
}

// Value returns the constant of a constant slot.
func (h Handler) Value() any {
	return h.value
}

func (h Handler) empty() bool {
	return !h.constant && h.fn == nil
}

// HandlerSet maps events to the handlers of one scope.
type HandlerSet struct {
	slots map[rules.EventID]Handler
}

// Get returns the handler for ev, if the slot is filled.
func (s *HandlerSet) Get(ev rules.EventID) (Handler, bool) {
	if s == nil || s.slots == nil {
		return Handler{}, false
	}
	h, ok := s.slots[ev]
	return h, ok
}

// Set fills the slot for ev. An empty handler clears it.
func (s *HandlerSet) Set(ev rules.EventID, h Handler) {
	if h.empty() {
		delete(s.slots, ev)
		return
	}
	if s.slots == nil {
		s.slots = make(map[rules.EventID]Handler)
	}
	s.slots[ev] = h
}

// Len returns the number of filled slots.
func (s *HandlerSet) Len() int {
	return len(s.slots)
}

// Events returns the filled event ids in ascending order.
func (s *HandlerSet) Events() []rules.EventID {
	out := make([]rules.EventID, 0, len(s.slots))
	for ev := rules.EventID(0); int(ev) < rules.EventCount; ev++ {
		if _, ok := s.slots[ev]; ok {
			out = append(out, ev)
		}
	}
	return out
}

func (s HandlerSet) clone() HandlerSet {
	if s.slots == nil {
		return HandlerSet{}
	}
	out := HandlerSet{slots: make(map[rules.EventID]Handler, len(s.slots))}
	for ev, h := range s.slots {
		out.slots[ev] = h
	}
	return out
}

// Handlers holds one HandlerSet per scope. Content records embed it by value.
type Handlers struct {
	sets [scopeCount]HandlerSet
}

// Scoped returns the set for scope.
func (h *Handlers) Scoped(scope Scope) *HandlerSet {
	if scope >= scopeCount {
		return nil
	}
	return &h.sets[scope]
}

// Lookup returns the handler declared for ev in scope.
func (h *Handlers) Lookup(scope Scope, ev rules.EventID) (Handler, bool) {
	if h == nil || scope >= scopeCount {
		return Handler{}, false
	}
	return h.sets[scope].Get(ev)
}

// On declares a self-scoped handler.
func (h *Handlers) On(ev rules.EventID, handler Handler) *Handlers {
	h.sets[ScopeSelf].Set(ev, handler)
	return h
}

// OnAlly declares a handler for events targeting the holder's allies (and itself).
func (h *Handlers) OnAlly(ev rules.EventID, handler Handler) *Handlers {
	h.sets[ScopeAlly].Set(ev, handler)
	return h
}

// OnFoe declares a handler for events targeting the holder's foes.
func (h *Handlers) OnFoe(ev rules.EventID, handler Handler) *Handlers {
	h.sets[ScopeFoe].Set(ev, handler)
	return h
}

// OnSource declares a handler for events the holder is the source of.
func (h *Handlers) OnSource(ev rules.EventID, handler Handler) *Handlers {
	h.sets[ScopeSource].Set(ev, handler)
	return h
}

// OnAny declares a handler for events targeting any active combatant.
func (h *Handlers) OnAny(ev rules.EventID, handler Handler) *Handlers {
	h.sets[ScopeAny].Set(ev, handler)
	return h
}

// Len returns the total number of filled slots across scopes.
func (h *Handlers) Len() int {
	n := 0
	for i := range h.sets {
		n += h.sets[i].Len()
	}
	return n
}

// Clone copies the slot maps so the copy can be changed independently.
func (h Handlers) Clone() Handlers {
	var out Handlers
	for i := range h.sets {
		out.sets[i] = h.sets[i].clone()
	}
	return out
}

// Args is what a handler receives.
type Args struct {
	// Relay is the value threaded through the chain. HasRelay is false when the
	// caller supplied none and Relay holds the default true.
	Relay    any
	HasRelay bool

	Target       any
	Source       any
	SourceEffect Effect
}

// Positional returns the argument list in call order: the relay first when one
// was supplied, then target, source and source effect.
func (a Args) Positional() []any {
	out := make([]any, 0, 4)
	if a.HasRelay {
		out = append(out, a.Relay)
	}
	return append(out, a.Target, a.Source, a.SourceEffect)
}

type nullValue struct{}

func (nullValue) String() string { return "null" }

// Null is an explicit falsy result that is not false, used by handlers that
// fail an action without the caller reporting a failure.
var Null any = nullValue{}

// Truthy reports whether a relay value lets a chain continue.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil, nullValue:
		return false
	case bool:
		return x
	case int:
		return x != 0
	case int64:
		return x != 0
	case float64:
		return x != 0
	case string:
		return x != ""
	default:
		return true
	}
}
