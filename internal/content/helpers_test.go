package content

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/vgcsim/battle-engine-go/internal/dex"
	"github.com/vgcsim/battle-engine-go/internal/game/effects"
	"github.com/vgcsim/battle-engine-go/internal/id"
)

// holder is a minimal battle-state object for exercising bundled handlers.
type holder struct {
	name   string
	kind   effects.HolderKind
	team   int
	speed  int
	hp     int
	maxHP  int
	types  []string
	status id.ID
	chance bool
	boosts map[dex.StatID]int

	engine *effects.Engine
	states effects.StateSet
}

func newMon(name string, team, speed, hp int, types ...string) *holder {
	return &holder{
		name:   name,
		kind:   effects.HolderCombatant,
		team:   team,
		speed:  speed,
		hp:     hp,
		maxHP:  hp,
		types:  types,
		boosts: make(map[dex.StatID]int),
	}
}

func newField() *holder {
	return &holder{kind: effects.HolderField, team: -1}
}

func newSide(name string, team int) *holder {
	return &holder{name: name, kind: effects.HolderSide, team: team}
}

func (h *holder) HolderKind() effects.HolderKind { return h.kind }
func (h *holder) Team() int                      { return h.team }
func (h *holder) Speed() int                     { return h.speed }
func (h *holder) StatusID() id.ID                { return h.status }
func (h *holder) Name() string                   { return h.name }
func (h *holder) HP() int                        { return h.hp }
func (h *holder) MaxHP() int                     { return h.maxHP }
func (h *holder) Types() []string                { return h.types }
func (h *holder) RandomChance(_, _ int) bool     { return h.chance }
func (h *holder) Random(min, _ int) int          { return min }

func (h *holder) Heal(n int) int {
	before := h.hp
	h.hp = min(h.maxHP, h.hp+n)
	return h.hp - before
}

func (h *holder) Damage(n int) int {
	before := h.hp
	h.hp = max(0, h.hp-n)
	return before - h.hp
}

func (h *holder) Boost(stat dex.StatID, stages int) bool {
	h.boosts[stat] += stages
	return true
}

func (h *holder) Attachments() []effects.Attachment {
	var out []effects.Attachment
	h.states.Each(func(e effects.Effect, st *effects.State) {
		out = append(out, effects.Attachment{
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

// add attaches effect through the engine, running Start.
func (h *holder) add(t *testing.T, e *effects.Engine, effect effects.Effect) {
	t.Helper()
	h.engine = e
	if c, ok := effect.(*dex.Condition); ok && c.Category == effects.CategoryStatus {
		h.status = c.ID
	}
	ok, err := e.AddEffect(&h.states, h, effect, nil, nil)
	require.NoError(t, err)
	require.True(t, ok)
}

type scene []effects.Holder

func (s scene) Holders() []effects.Holder { return s }

type env struct {
	ability bool
	weather bool
}

func (e env) SuppressingAbility(any) bool { return e.ability }
func (e env) SuppressingWeather() bool    { return e.weather }

func newRegistry(t *testing.T) *dex.Registry {
	t.Helper()
	r, err := NewRegistry(zaptest.NewLogger(t))
	require.NoError(t, err)
	return r
}

func newEngine(t *testing.T, opts ...effects.Option) *effects.Engine {
	t.Helper()
	return effects.NewEngine(zaptest.NewLogger(t), opts...)
}
