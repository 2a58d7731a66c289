package rules

import "fmt"

// EventID identifies a battle event. Handler slots on effects are keyed by it,
// so lookups never build names at call time.
type EventID uint16

const (
	EventNone EventID = iota

	// Lifecycle
	EventStart
	EventRestart
	EventEnd
	EventSwitchIn
	EventSwitchOut
	EventBeforeSwitchIn
	EventBeforeSwitchOut
	EventFaint
	EventTakeItem
	EventUseItem
	EventEatItem
	EventTryEatItem
	EventDuration

	// Field and side variants
	EventFieldStart
	EventFieldRestart
	EventFieldResidual
	EventFieldEnd
	EventSideStart
	EventSideRestart
	EventSideResidual
	EventSideEnd

	// Turn flow
	EventBeforeTurn
	EventResidual
	EventUpdate
	EventWeather
	EventWeatherChange
	EventTerrainChange

	// Move resolution
	EventModifyPriority
	EventFractionalPriority
	EventBeforeMove
	EventLockMove
	EventDisableMove
	EventModifyMove
	EventModifyType
	EventTryMove
	EventRedirectTarget
	EventInvulnerability
	EventTryHit
	EventAccuracy
	EventImmunity
	EventNegateImmunity
	EventBasePower
	EventCriticalHit
	EventModifyDamage
	EventSourceModifyDamage
	EventDamage
	EventDamagingHit
	EventHit
	EventAfterMoveSecondary
	EventAfterMove
	EventFlinch

	// Stats
	EventModifyAtk
	EventModifyDef
	EventModifySpA
	EventModifySpD
	EventModifySpe
	EventModifyAccuracy
	EventBoost
	EventTryBoost

	// Status and conditions
	EventSetStatus
	EventAfterSetStatus
	EventTryAddVolatile
	EventTryHeal
	EventTrapPokemon
	EventEntryHazard

	eventCount
)

var eventNames = [eventCount]string{
	EventNone:               "None",
	EventStart:              "Start",
	EventRestart:            "Restart",
	EventEnd:                "End",
	EventSwitchIn:           "SwitchIn",
	EventSwitchOut:          "SwitchOut",
	EventBeforeSwitchIn:     "BeforeSwitchIn",
	EventBeforeSwitchOut:    "BeforeSwitchOut",
	EventFaint:              "Faint",
	EventTakeItem:           "TakeItem",
	EventUseItem:            "UseItem",
	EventEatItem:            "EatItem",
	EventTryEatItem:         "TryEatItem",
	EventDuration:           "Duration",
	EventFieldStart:         "FieldStart",
	EventFieldRestart:       "FieldRestart",
	EventFieldResidual:      "FieldResidual",
	EventFieldEnd:           "FieldEnd",
	EventSideStart:          "SideStart",
	EventSideRestart:        "SideRestart",
	EventSideResidual:       "SideResidual",
	EventSideEnd:            "SideEnd",
	EventBeforeTurn:         "BeforeTurn",
	EventResidual:           "Residual",
	EventUpdate:             "Update",
	EventWeather:            "Weather",
	EventWeatherChange:      "WeatherChange",
	EventTerrainChange:      "TerrainChange",
	EventModifyPriority:     "ModifyPriority",
	EventFractionalPriority: "FractionalPriority",
	EventBeforeMove:         "BeforeMove",
	EventLockMove:           "LockMove",
	EventDisableMove:        "DisableMove",
	EventModifyMove:         "ModifyMove",
	EventModifyType:         "ModifyType",
	EventTryMove:            "TryMove",
	EventRedirectTarget:     "RedirectTarget",
	EventInvulnerability:    "Invulnerability",
	EventTryHit:             "TryHit",
	EventAccuracy:           "Accuracy",
	EventImmunity:           "Immunity",
	EventNegateImmunity:     "NegateImmunity",
	EventBasePower:          "BasePower",
	EventCriticalHit:        "CriticalHit",
	EventModifyDamage:       "ModifyDamage",
	EventSourceModifyDamage: "SourceModifyDamage",
	EventDamage:             "Damage",
	EventDamagingHit:        "DamagingHit",
	EventHit:                "Hit",
	EventAfterMoveSecondary: "AfterMoveSecondary",
	EventAfterMove:          "AfterMove",
	EventFlinch:             "Flinch",
	EventModifyAtk:          "ModifyAtk",
	EventModifyDef:          "ModifyDef",
	EventModifySpA:          "ModifySpA",
	EventModifySpD:          "ModifySpD",
	EventModifySpe:          "ModifySpe",
	EventModifyAccuracy:     "ModifyAccuracy",
	EventBoost:              "Boost",
	EventTryBoost:           "TryBoost",
	EventSetStatus:          "SetStatus",
	EventAfterSetStatus:     "AfterSetStatus",
	EventTryAddVolatile:     "TryAddVolatile",
	EventTryHeal:            "TryHeal",
	EventTrapPokemon:        "TrapPokemon",
	EventEntryHazard:        "EntryHazard",
}

// String returns the event name used in logs and diagnostics.
func (e EventID) String() string {
	if e < eventCount {
		return eventNames[e]
	}
	return fmt.Sprintf("EventID(%d)", uint16(e))
}

// Valid reports whether e is a declared event.
func (e EventID) Valid() bool {
	return e > EventNone && e < eventCount
}

// ParseEventID resolves an event name as written in content files.
func ParseEventID(name string) (EventID, bool) {
	ev, ok := eventsByName[name]
	return ev, ok
}

var eventsByName = func() map[string]EventID {
	m := make(map[string]EventID, eventCount)
	for i := EventID(1); i < eventCount; i++ {
		m[eventNames[i]] = i
	}
	return m
}()

// EventCount is the number of declared events, for sizing per-event tables.
const EventCount = int(eventCount)

// EventInfo carries sorting and routing metadata for one event.
type EventInfo struct {
	// UsesSpeed makes holder speed a tie-break.
	UsesSpeed bool
	// UsesEffectOrder makes the state's effect order a tie-break after speed.
	UsesEffectOrder bool
	// Unscoped events never collect ally/foe/source/any handlers.
	Unscoped bool
	// FieldVariant and SideVariant are the events dispatched to field and side
	// holders in place of this one.
	FieldVariant EventID
	SideVariant  EventID
}

var eventInfo = func() [eventCount]EventInfo {
	var info [eventCount]EventInfo
	for i := range info {
		info[i].UsesSpeed = true
	}
	info[EventSwitchIn].UsesEffectOrder = true
	info[EventRedirectTarget].UsesEffectOrder = true

	for _, ev := range []EventID{EventBeforeTurn, EventUpdate, EventWeather, EventWeatherChange, EventTerrainChange} {
		info[ev].Unscoped = true
	}

	info[EventStart].FieldVariant, info[EventStart].SideVariant = EventFieldStart, EventSideStart
	info[EventRestart].FieldVariant, info[EventRestart].SideVariant = EventFieldRestart, EventSideRestart
	info[EventResidual].FieldVariant, info[EventResidual].SideVariant = EventFieldResidual, EventSideResidual
	info[EventEnd].FieldVariant, info[EventEnd].SideVariant = EventFieldEnd, EventSideEnd
	return info
}()

// Info returns the metadata for e. Unknown events get the zero value.
func (e EventID) Info() EventInfo {
	if e < eventCount {
		return eventInfo[e]
	}
	return EventInfo{}
}

// ForField returns the variant dispatched to field holders.
func (e EventID) ForField() EventID {
	if v := e.Info().FieldVariant; v != EventNone {
		return v
	}
	return e
}

// ForSide returns the variant dispatched to side holders.
func (e EventID) ForSide() EventID {
	if v := e.Info().SideVariant; v != EventNone {
		return v
	}
	return e
}

// IsFieldLifecycle reports whether e is one of the field start/residual/end events.
func (e EventID) IsFieldLifecycle() bool {
	return e == EventFieldStart || e == EventFieldResidual || e == EventFieldEnd
}
