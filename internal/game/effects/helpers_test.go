package effects

import (
	"github.com/vgcsim/battle-engine-go/internal/id"
)

type testEffect struct {
	id        id.ID
	kind      Kind
	category  Category
	breakable bool
	duration  int
	handlers  Handlers
}

func newTestEffect(name string, kind Kind) *testEffect {
	return &testEffect{id: id.ToID(name), kind: kind}
}

func (t *testEffect) EffectID() id.ID           { return t.id }
func (t *testEffect) EffectName() string        { return string(t.id) }
func (t *testEffect) EffectKind() Kind          { return t.kind }
func (t *testEffect) EffectCategory() Category  { return t.category }
func (t *testEffect) EffectHandlers() *Handlers { return &t.handlers }
func (t *testEffect) Breakable() bool           { return t.breakable }
func (t *testEffect) DefaultDuration() int      { return t.duration }

type testHolder struct {
	name            string
	kind            HolderKind
	team            int
	speed           int
	status          id.ID
	ignoringAbility bool
	ignoringItem    bool

	engine *Engine
	states StateSet
}

func newCombatant(name string, team, speed int) *testHolder {
	return &testHolder{name: name, kind: HolderCombatant, team: team, speed: speed}
}

func (h *testHolder) HolderKind() HolderKind { return h.kind }
func (h *testHolder) Team() int              { return h.team }
func (h *testHolder) Speed() int             { return h.speed }
func (h *testHolder) StatusID() id.ID        { return h.status }
func (h *testHolder) IgnoringAbility() bool  { return h.ignoringAbility }
func (h *testHolder) IgnoringItem() bool     { return h.ignoringItem }

func (h *testHolder) Attachments() []Attachment {
	var out []Attachment
	h.states.Each(func(e Effect, st *State) {
		out = append(out, Attachment{
			Effect: e,
			State:  st,
			End: func() error {
				_, err := h.engine.RemoveEffect(&h.states, h, e)
				return err
			},
		})
	})
	return out
}

// attach records effect without running Start.
func (h *testHolder) attach(e *Engine, effect Effect) *State {
	h.engine = e
	st := e.InitState(effect, h, nil)
	h.states.put(effect, st)
	return st
}

type testScene struct {
	holders []Holder
}

func (s *testScene) Holders() []Holder { return s.holders }

type testEnv struct {
	suppressAbility bool
	suppressWeather bool
}

func (t testEnv) SuppressingAbility(any) bool { return t.suppressAbility }
func (t testEnv) SuppressingWeather() bool    { return t.suppressWeather }

// reverseShuffler reverses every tied run so tests can see that it was applied.
type reverseShuffler struct {
	calls int
}

func (r *reverseShuffler) Shuffle(n int, swap func(i, j int)) {
	r.calls++
	for i := 0; i < n/2; i++ {
		swap(i, n-1-i)
	}
}

// recorder returns a handler that appends label to *log and passes the relay on.
func recorder(log *[]string, label string) Handler {
	return Call(func(c *Context, a Args) (any, error) {
		*log = append(*log, label)
		return nil, nil
	})
}
