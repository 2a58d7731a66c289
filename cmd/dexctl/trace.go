package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/vgcsim/battle-engine-go/internal/game/effects"
	"github.com/vgcsim/battle-engine-go/internal/game/rules"
)

// maxTraceTurns stops conditions that never expire.
const maxTraceTurns = 20

// conditionHolder hosts field or side conditions for a trace.
type conditionHolder struct {
	kind   effects.HolderKind
	team   int
	engine *effects.Engine
	states effects.StateSet
}

func (h *conditionHolder) HolderKind() effects.HolderKind { return h.kind }
func (h *conditionHolder) Team() int                      { return h.team }
func (h *conditionHolder) Speed() int                     { return 0 }

func (h *conditionHolder) Attachments() []effects.Attachment {
	out := make([]effects.Attachment, 0, h.states.Len())
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

type traceScene []effects.Holder

func (s traceScene) Holders() []effects.Holder { return s }

// trace attaches each condition to the field or the first side and runs
// residual turns until they have all ended, printing the battle log.
func (a *app) trace(names []string) error {
	engine := effects.NewEngine(a.logger,
		effects.WithMaxLogLines(a.cfg.Engine.MaxLogLines),
		effects.WithGen(a.dex.Gen()),
	)
	field := &conditionHolder{kind: effects.HolderField, team: -1, engine: engine}
	side := &conditionHolder{kind: effects.HolderSide, team: 0, engine: engine}
	scene := traceScene{field, side}

	for _, name := range names {
		cond := a.dex.Condition(name)
		if !cond.Exists() {
			return fmt.Errorf("condition %q not found in mod %s", name, a.dex.Name())
		}
		holder := field
		switch cond.Category {
		case effects.CategoryWeather, effects.CategoryTerrain, effects.CategoryPseudoWeather:
		case effects.CategorySideCondition:
			holder = side
		default:
			return fmt.Errorf("%s is a %s condition; only field and side conditions can be traced", cond.Name, cond.Category)
		}
		ok, err := engine.AddEffect(&holder.states, holder, cond, nil, nil)
		if err != nil {
			return err
		}
		if !ok {
			a.logger.Warn("condition did not start", zap.String("condition", cond.Name))
		}
	}

	turn := 0
	for field.states.Len()+side.states.Len() > 0 && turn < maxTraceTurns {
		turn++
		engine.Log().Add("turn", fmt.Sprint(turn))
		if err := engine.FieldEvent(scene, rules.EventResidual); err != nil {
			return fmt.Errorf("turn %d: %w", turn, err)
		}
		engine.Log().Checkpoint()
	}

	for _, line := range engine.Log().Lines() {
		if _, err := fmt.Fprintln(a.out, line); err != nil {
			return err
		}
	}
	a.logger.Debug("trace finished", zap.Int("turns", turn), zap.String("mod", a.dex.Name()))
	return nil
}

var _ effects.Holder = (*conditionHolder)(nil)
