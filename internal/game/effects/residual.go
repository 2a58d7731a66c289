package effects

import "github.com/vgcsim/battle-engine-go/internal/game/rules"

// FieldEvent runs a turn-boundary event across every holder in scene. Field and
// side holders answer the field and side variants of ev.
//
// For Residual, every attached effect with a duration ticks before its handler
// runs; when the duration runs out the attachment's End callback runs instead.
// Effects ended earlier in the same pass are skipped.
func (e *Engine) FieldEvent(scene Scene, ev rules.EventID) error {
	if scene == nil {
		return nil
	}
	ticking := ev == rules.EventResidual

	var cands []candidate
	for _, h := range scene.Holders() {
		hev := ev
		switch h.HolderKind() {
		case HolderField:
			hev = ev.ForField()
		case HolderSide:
			hev = ev.ForSide()
		}
		speed := h.Speed()
		for _, att := range h.Attachments() {
			if att.Effect == nil {
				continue
			}
			hd, ok := att.Effect.EffectHandlers().Lookup(ScopeSelf, hev)
			if !ok {
				if !ticking || att.End == nil || att.State == nil {
					continue
				}
				if _, has := att.State.Duration(); !has {
					continue
				}
			}
			cands = append(cands, candidate{
				handler: hd,
				effect:  att.Effect,
				state:   att.State,
				holder:  h,
				end:     att.End,
				event:   hev,
				speed:   speed,
			})
		}
	}
	e.sortCandidates(cands, ev)

	for _, c := range cands {
		if c.state != nil && c.state.Ended() {
			continue
		}
		if ticking && c.end != nil && c.state != nil && c.state.tick() {
			if err := c.end(); err != nil {
				return err
			}
			continue
		}
		if c.handler.empty() {
			continue
		}
		h := c.handler
		if _, err := e.Dispatch(Single{
			Event:    c.event,
			Effect:   c.effect,
			State:    c.state,
			Target:   c.holder,
			Override: &h,
		}); err != nil {
			return err
		}
	}
	return nil
}
