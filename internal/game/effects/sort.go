package effects

import (
	"sort"

	"github.com/vgcsim/battle-engine-go/internal/game/rules"
)

// candidate is one collected handler with everything needed to sort and run it.
type candidate struct {
	handler Handler
	effect  Effect
	state   *State
	holder  Holder
	end     func() error
	event   rules.EventID
	speed   int
}

func (c candidate) effectOrder() int {
	if c.state == nil {
		return 0
	}
	return c.state.EffectOrder
}

// compareCandidates orders by priority (desc), order (asc), sub-order (asc),
// then speed (desc) and effect order (asc) when the event uses them.
func compareCandidates(a, b candidate, info rules.EventInfo) int {
	if a.handler.Priority != b.handler.Priority {
		if a.handler.Priority > b.handler.Priority {
			return -1
		}
		return 1
	}
	if a.handler.Order != b.handler.Order {
		if a.handler.Order < b.handler.Order {
			return -1
		}
		return 1
	}
	if a.handler.SubOrder != b.handler.SubOrder {
		if a.handler.SubOrder < b.handler.SubOrder {
			return -1
		}
		return 1
	}
	if info.UsesSpeed && a.speed != b.speed {
		if a.speed > b.speed {
			return -1
		}
		return 1
	}
	if info.UsesEffectOrder && a.effectOrder() != b.effectOrder() {
		if a.effectOrder() < b.effectOrder() {
			return -1
		}
		return 1
	}
	return 0
}

// sortCandidates sorts stably, then shuffles each run of full ties when a
// shuffler is configured.
func (e *Engine) sortCandidates(cands []candidate, ev rules.EventID) {
	info := ev.Info()
	sort.SliceStable(cands, func(i, j int) bool {
		return compareCandidates(cands[i], cands[j], info) < 0
	})
	if e.shuffler == nil {
		return
	}
	for start := 0; start < len(cands); {
		end := start + 1
		for end < len(cands) && compareCandidates(cands[start], cands[end], info) == 0 {
			end++
		}
		if end-start > 1 {
			run := cands[start:end]
			e.shuffler.Shuffle(len(run), func(i, j int) {
				run[i], run[j] = run[j], run[i]
			})
		}
		start = end
	}
}
