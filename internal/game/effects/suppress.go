package effects

import "github.com/vgcsim/battle-engine-go/internal/game/rules"

type suppressMode uint8

const (
	// suppressSingle checks the event target of a single dispatch.
	suppressSingle suppressMode = iota
	// suppressAggregate checks the holder of each collected handler.
	suppressAggregate
)

// suppressed returns why effect must not answer ev for subject, or "" when it may.
// Checks run in a fixed order and the first match wins.
func (e *Engine) suppressed(mode suppressMode, ev rules.EventID, effect Effect, subject any) string {
	kind := effect.EffectKind()

	if effect.EffectCategory() == CategoryStatus {
		if sb, ok := subject.(StatusBearer); ok && sb.StatusID() != effect.EffectID() {
			return "status changed"
		}
	}

	if kind == KindAbility && isBreakable(effect) {
		if (mode == suppressAggregate || ev == rules.EventSwitchIn) && e.env.SuppressingAbility(subject) {
			return "ability bypassed"
		}
	}

	if kind == KindItem && ev != rules.EventStart && ev != rules.EventTakeItem &&
		(mode == suppressSingle || ev != rules.EventSwitchIn) {
		if ib, ok := subject.(ItemBearer); ok && ib.IgnoringItem() {
			return "item ignored"
		}
	}

	if kind == KindAbility && ev != rules.EventEnd {
		if ab, ok := subject.(AbilityBearer); ok && ab.IgnoringAbility() {
			return "ability ignored"
		}
	}

	if mode == suppressAggregate {
		if (effect.EffectCategory() == CategoryWeather || ev == rules.EventWeather) &&
			ev != rules.EventResidual && ev != rules.EventEnd && e.env.SuppressingWeather() {
			return "weather suppressed"
		}
	} else if effect.EffectCategory() == CategoryWeather && !ev.IsFieldLifecycle() && e.env.SuppressingWeather() {
		return "weather suppressed"
	}

	return ""
}
