package effects

import "github.com/vgcsim/battle-engine-go/internal/game/rules"

// Run is an aggregated event request.
type Run struct {
	Event rules.EventID
	// Target is nil for battle-wide events.
	Target       Holder
	Source       Holder
	SourceEffect Effect
	// Relay defaults to true; a nil Relay also changes the argument shape.
	Relay any
	// OnEffect adds the source effect's own handler, held by the target, to the
	// collected ones. It sorts with them and wins full ties.
	OnEffect bool
	// FastExit stops at the first handler that returns a value.
	FastExit bool
}

// RunEvent collects every handler in scene that answers run.Event for the
// relationship between its holder and the target, sorts them, and runs them
// in order threading the relay value. A falsy result ends the chain.
func (e *Engine) RunEvent(scene Scene, run Run) (any, error) {
	if err := e.checkIntegrity(run.Event); err != nil {
		return nil, err
	}

	relay := run.Relay
	hasRelay := relay != nil
	if !hasRelay {
		relay = true
	}

	var cands []candidate
	if run.OnEffect && run.SourceEffect != nil {
		if h, ok := run.SourceEffect.EffectHandlers().Lookup(ScopeSelf, run.Event); ok {
			own := candidate{handler: h, effect: run.SourceEffect, holder: run.Target, event: run.Event}
			if run.Target != nil {
				own.speed = run.Target.Speed()
			}
			cands = append(cands, own)
		}
	}
	cands = append(cands, e.collect(scene, run)...)
	e.sortCandidates(cands, run.Event)
	if len(cands) == 0 {
		return relay, nil
	}

	ev := Event{
		ID:           run.Event,
		Target:       holderArg(run.Target),
		Source:       holderArg(run.Source),
		SourceEffect: run.SourceEffect,
	}
	cur := e.stack.current()
	e.stack.push(frame{effect: cur.effect, state: cur.state, event: ev})
	defer e.stack.pop()

	for _, c := range cands {
		if c.state != nil && c.state.Ended() {
			continue
		}
		if reason := e.suppressed(suppressAggregate, c.event, c.effect, holderArg(c.holder)); reason != "" {
			e.logSuppressed(c.event, c.effect, reason)
			continue
		}

		var result any
		if c.handler.IsConstant() {
			result = c.handler.value
		} else {
			state := c.state
			if state == nil {
				state = e.InitState(c.effect, holderArg(c.holder), nil)
			}
			restore := e.stack.swap(c.effect, state)
			var err error
			result, err = c.handler.fn(&Context{engine: e, Effect: c.effect, State: state, Event: ev}, Args{
				Relay:        relay,
				HasRelay:     hasRelay,
				Target:       ev.Target,
				Source:       ev.Source,
				SourceEffect: run.SourceEffect,
			})
			restore()
			if err != nil {
				return nil, err
			}
		}

		if result == nil {
			continue
		}
		relay = result
		if !Truthy(relay) || run.FastExit {
			break
		}
	}
	return relay, nil
}

// PriorityEvent runs an aggregated event that stops at the first answer.
func (e *Engine) PriorityEvent(scene Scene, run Run) (any, error) {
	run.FastExit = true
	return e.RunEvent(scene, run)
}

func (e *Engine) collect(scene Scene, run Run) []candidate {
	if scene == nil {
		return nil
	}
	unscoped := run.Event.Info().Unscoped
	var cands []candidate
	buf := make([]Scope, 0, int(scopeCount))
	for _, h := range scene.Holders() {
		scopes := relationScopes(h, run.Target, run.Source, buf)
		if len(scopes) == 0 {
			continue
		}
		speed := h.Speed()
		for _, att := range h.Attachments() {
			if att.Effect == nil {
				continue
			}
			handlers := att.Effect.EffectHandlers()
			for _, scope := range scopes {
				if unscoped && scope != ScopeSelf {
					continue
				}
				hd, ok := handlers.Lookup(scope, run.Event)
				if !ok && scope == ScopeSelf && h.HolderKind() == HolderCombatant {
					hd, ok = e.switchInFallback(att.Effect, run.Event)
				}
				if !ok {
					continue
				}
				cands = append(cands, candidate{
					handler: hd,
					effect:  att.Effect,
					state:   att.State,
					holder:  h,
					end:     att.End,
					event:   run.Event,
					speed:   speed,
				})
			}
		}
	}
	return cands
}

// relationScopes returns which handler scopes of holder h answer an event on
// target raised by source.
func relationScopes(h, target, source Holder, buf []Scope) []Scope {
	scopes := buf[:0]
	hk := h.HolderKind()
	neutral := hk == HolderField || hk == HolderBattle

	switch {
	case target == nil, target.HolderKind() == HolderField, target.HolderKind() == HolderBattle:
		if neutral {
			scopes = append(scopes, ScopeSelf)
		}
	case target.HolderKind() == HolderSide:
		switch {
		case hk == HolderSide && h.Team() == target.Team():
			scopes = append(scopes, ScopeSelf, ScopeAny)
		case hk == HolderSide:
			scopes = append(scopes, ScopeFoe, ScopeAny)
		case neutral:
			scopes = append(scopes, ScopeSelf)
		}
	default:
		switch {
		case hk == HolderCombatant && h == target:
			scopes = append(scopes, ScopeSelf, ScopeAlly, ScopeAny)
		case hk == HolderCombatant && h.Team() == target.Team():
			scopes = append(scopes, ScopeAlly, ScopeAny)
		case hk == HolderCombatant:
			scopes = append(scopes, ScopeFoe, ScopeAny)
		case hk == HolderSide && h.Team() == target.Team():
			scopes = append(scopes, ScopeSelf, ScopeAny)
		case hk == HolderSide:
			scopes = append(scopes, ScopeFoe, ScopeAny)
		default:
			scopes = append(scopes, ScopeSelf)
		}
	}

	if source != nil && h == source {
		scopes = append(scopes, ScopeSource)
	}
	return scopes
}

// switchInFallback lets abilities and items from generation 5 on run Start on
// switch-in when they declare neither SwitchIn nor AnySwitchIn.
func (e *Engine) switchInFallback(effect Effect, ev rules.EventID) (Handler, bool) {
	if ev != rules.EventSwitchIn || (e.gen != 0 && e.gen < 5) {
		return Handler{}, false
	}
	if k := effect.EffectKind(); k != KindAbility && k != KindItem {
		return Handler{}, false
	}
	handlers := effect.EffectHandlers()
	if _, has := handlers.Lookup(ScopeAny, rules.EventSwitchIn); has {
		return Handler{}, false
	}
	return handlers.Lookup(ScopeSelf, rules.EventStart)
}

// holderArg converts a possibly nil Holder to a plain value so that a missing
// holder compares equal to nil.
func holderArg(h Holder) any {
	if h == nil {
		return nil
	}
	return h
}
