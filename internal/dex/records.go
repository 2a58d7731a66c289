package dex

import (
	"github.com/vgcsim/battle-engine-go/internal/game/effects"
)

// Flags is a set of named boolean properties, e.g. "breakable" or "contact".
type Flags map[string]bool

// Ability is a combatant's innate effect.
type Ability struct {
	Base            `yaml:",inline"`
	Rating          float64 `yaml:"rating,omitempty" json:"rating,omitempty"`
	Flags           Flags   `yaml:"flags,omitempty" json:"flags,omitempty"`
	SuppressWeather bool    `yaml:"suppressWeather,omitempty" json:"suppressWeather,omitempty"`

	Events effects.Handlers `yaml:"-" json:"-"`
}

func (a *Ability) RecordKind() Kind                  { return Abilities }
func (a *Ability) EffectKind() effects.Kind          { return effects.KindAbility }
func (a *Ability) EffectCategory() effects.Category  { return effects.CategoryNone }
func (a *Ability) EffectHandlers() *effects.Handlers { return &a.Events }

// Breakable reports whether ability-bypassing moves ignore this ability.
func (a *Ability) Breakable() bool { return a.Flags["breakable"] }

func (a *Ability) Clone() Record {
	c := *a
	c.Flags = cloneMap(a.Flags)
	c.Events = a.Events.Clone()
	return &c
}

// NaturalGift is the berry data used by Natural Gift.
type NaturalGift struct {
	BasePower int    `yaml:"basePower" json:"basePower"`
	Type      string `yaml:"type" json:"type"`
}

// Item is a held item.
type Item struct {
	Base           `yaml:",inline"`
	FlingBasePower int          `yaml:"flingBasePower,omitempty" json:"flingBasePower,omitempty"`
	IsBerry        bool         `yaml:"isBerry,omitempty" json:"isBerry,omitempty"`
	IsChoice       bool         `yaml:"isChoice,omitempty" json:"isChoice,omitempty"`
	IgnoreKlutz    bool         `yaml:"ignoreKlutz,omitempty" json:"ignoreKlutz,omitempty"`
	MegaStone      string       `yaml:"megaStone,omitempty" json:"megaStone,omitempty"`
	MegaEvolves    string       `yaml:"megaEvolves,omitempty" json:"megaEvolves,omitempty"`
	ItemUser       []string     `yaml:"itemUser,omitempty" json:"itemUser,omitempty"`
	NaturalGift    *NaturalGift `yaml:"naturalGift,omitempty" json:"naturalGift,omitempty"`

	Events effects.Handlers `yaml:"-" json:"-"`
}

func (i *Item) RecordKind() Kind                  { return Items }
func (i *Item) EffectKind() effects.Kind          { return effects.KindItem }
func (i *Item) EffectCategory() effects.Category  { return effects.CategoryNone }
func (i *Item) EffectHandlers() *effects.Handlers { return &i.Events }

func (i *Item) Clone() Record {
	c := *i
	c.ItemUser = cloneStrings(i.ItemUser)
	if i.NaturalGift != nil {
		ng := *i.NaturalGift
		c.NaturalGift = &ng
	}
	c.Events = i.Events.Clone()
	return &c
}

// Secondary is a chance-based extra effect of a move.
type Secondary struct {
	Chance         int            `yaml:"chance,omitempty" json:"chance,omitempty"`
	Status         string         `yaml:"status,omitempty" json:"status,omitempty"`
	VolatileStatus string         `yaml:"volatileStatus,omitempty" json:"volatileStatus,omitempty"`
	Boosts         map[string]int `yaml:"boosts,omitempty" json:"boosts,omitempty"`
}

// Move is an action a combatant can use.
type Move struct {
	Base `yaml:",inline"`
	// Accuracy is a percentage; zero means the move never misses.
	Accuracy       int        `yaml:"accuracy,omitempty" json:"accuracy,omitempty"`
	BasePower      int        `yaml:"basePower,omitempty" json:"basePower,omitempty"`
	Category       string     `yaml:"category,omitempty" json:"category,omitempty"`
	Type           string     `yaml:"type,omitempty" json:"type,omitempty"`
	PP             int        `yaml:"pp,omitempty" json:"pp,omitempty"`
	Priority       int        `yaml:"priority,omitempty" json:"priority,omitempty"`
	Target         string     `yaml:"target,omitempty" json:"target,omitempty"`
	Flags          Flags      `yaml:"flags,omitempty" json:"flags,omitempty"`
	Status         string     `yaml:"status,omitempty" json:"status,omitempty"`
	VolatileStatus string     `yaml:"volatileStatus,omitempty" json:"volatileStatus,omitempty"`
	SideCondition  string     `yaml:"sideCondition,omitempty" json:"sideCondition,omitempty"`
	Weather        string     `yaml:"weather,omitempty" json:"weather,omitempty"`
	PseudoWeather  string     `yaml:"pseudoWeather,omitempty" json:"pseudoWeather,omitempty"`
	Secondary      *Secondary `yaml:"secondary,omitempty" json:"secondary,omitempty"`
	// Condition is the effect this move leaves behind, looked up as a condition by the move's id.
	Condition *Condition `yaml:"condition,omitempty" json:"condition,omitempty"`

	Events effects.Handlers `yaml:"-" json:"-"`
}

func (m *Move) RecordKind() Kind                  { return Moves }
func (m *Move) EffectKind() effects.Kind          { return effects.KindMove }
func (m *Move) EffectCategory() effects.Category  { return effects.CategoryNone }
func (m *Move) EffectHandlers() *effects.Handlers { return &m.Events }

func (m *Move) Clone() Record {
	c := *m
	c.Flags = cloneMap(m.Flags)
	if m.Secondary != nil {
		s := *m.Secondary
		s.Boosts = cloneMap(m.Secondary.Boosts)
		c.Secondary = &s
	}
	if m.Condition != nil {
		c.Condition = m.Condition.Clone().(*Condition)
	}
	c.Events = m.Events.Clone()
	return &c
}

// Condition is a status, volatile, weather, terrain or side/slot condition.
type Condition struct {
	Base     `yaml:",inline"`
	Category effects.Category `yaml:"effectType,omitempty" json:"effectType,omitempty"`
	Duration int              `yaml:"duration,omitempty" json:"duration,omitempty"`

	Events effects.Handlers `yaml:"-" json:"-"`
}

func (c *Condition) RecordKind() Kind                  { return Conditions }
func (c *Condition) EffectKind() effects.Kind          { return effects.KindCondition }
func (c *Condition) EffectCategory() effects.Category  { return c.Category }
func (c *Condition) EffectHandlers() *effects.Handlers { return &c.Events }
func (c *Condition) DefaultDuration() int              { return c.Duration }

func (c *Condition) Clone() Record {
	out := *c
	out.Events = c.Events.Clone()
	return &out
}

// Nature raises one stat and lowers another by ten percent.
type Nature struct {
	Base  `yaml:",inline"`
	Plus  StatID `yaml:"plus,omitempty" json:"plus,omitempty"`
	Minus StatID `yaml:"minus,omitempty" json:"minus,omitempty"`
}

func (n *Nature) RecordKind() Kind { return Natures }

func (n *Nature) Clone() Record {
	c := *n
	return &c
}

// SpeciesData is a species or forme entry.
type SpeciesData struct {
	Base           `yaml:",inline"`
	BaseSpecies    string            `yaml:"baseSpecies,omitempty" json:"baseSpecies,omitempty"`
	Forme          string            `yaml:"forme,omitempty" json:"forme,omitempty"`
	Types          []string          `yaml:"types" json:"types"`
	BaseStats      StatsTable        `yaml:"baseStats" json:"baseStats"`
	Abilities      map[string]string `yaml:"abilities,omitempty" json:"abilities,omitempty"`
	HeightM        float64           `yaml:"heightm,omitempty" json:"heightm,omitempty"`
	WeightKg       float64           `yaml:"weightkg,omitempty" json:"weightkg,omitempty"`
	Color          string            `yaml:"color,omitempty" json:"color,omitempty"`
	Prevo          string            `yaml:"prevo,omitempty" json:"prevo,omitempty"`
	Evos           []string          `yaml:"evos,omitempty" json:"evos,omitempty"`
	OtherFormes    []string          `yaml:"otherFormes,omitempty" json:"otherFormes,omitempty"`
	CosmeticFormes []string          `yaml:"cosmeticFormes,omitempty" json:"cosmeticFormes,omitempty"`
	RequiredItem   string            `yaml:"requiredItem,omitempty" json:"requiredItem,omitempty"`
	Tier           string            `yaml:"tier,omitempty" json:"tier,omitempty"`

	Events effects.Handlers `yaml:"-" json:"-"`
}

func (s *SpeciesData) RecordKind() Kind                  { return Species }
func (s *SpeciesData) EffectKind() effects.Kind          { return effects.KindSpecies }
func (s *SpeciesData) EffectCategory() effects.Category  { return effects.CategoryNone }
func (s *SpeciesData) EffectHandlers() *effects.Handlers { return &s.Events }

func (s *SpeciesData) Clone() Record {
	c := *s
	c.Types = cloneStrings(s.Types)
	c.Abilities = cloneMap(s.Abilities)
	c.Evos = cloneStrings(s.Evos)
	c.OtherFormes = cloneStrings(s.OtherFormes)
	c.CosmeticFormes = cloneStrings(s.CosmeticFormes)
	c.Events = s.Events.Clone()
	return &c
}

// TypeInfo is one row of the type chart: how much damage this type takes from
// each attacking type or special source.
type TypeInfo struct {
	Base        `yaml:",inline"`
	DamageTaken map[string]int `yaml:"damageTaken" json:"damageTaken"`
}

func (t *TypeInfo) RecordKind() Kind { return Types }

func (t *TypeInfo) Clone() Record {
	c := *t
	c.DamageTaken = cloneMap(t.DamageTaken)
	return &c
}

// Format is a ruleset; it hosts battle-wide handlers.
type Format struct {
	Base      `yaml:",inline"`
	Mod       string   `yaml:"mod,omitempty" json:"mod,omitempty"`
	GameType  string   `yaml:"gameType,omitempty" json:"gameType,omitempty"`
	Ruleset   []string `yaml:"ruleset,omitempty" json:"ruleset,omitempty"`
	Banlist   []string `yaml:"banlist,omitempty" json:"banlist,omitempty"`
	Unbanlist []string `yaml:"unbanlist,omitempty" json:"unbanlist,omitempty"`

	Events effects.Handlers `yaml:"-" json:"-"`
}

func (f *Format) RecordKind() Kind                  { return Formats }
func (f *Format) EffectKind() effects.Kind          { return effects.KindFormat }
func (f *Format) EffectCategory() effects.Category  { return effects.CategoryNone }
func (f *Format) EffectHandlers() *effects.Handlers { return &f.Events }

func (f *Format) Clone() Record {
	c := *f
	c.Ruleset = cloneStrings(f.Ruleset)
	c.Banlist = cloneStrings(f.Banlist)
	c.Unbanlist = cloneStrings(f.Unbanlist)
	c.Events = f.Events.Clone()
	return &c
}

var (
	_ effects.Effect    = (*Ability)(nil)
	_ effects.Effect    = (*Item)(nil)
	_ effects.Effect    = (*Move)(nil)
	_ effects.Effect    = (*Condition)(nil)
	_ effects.Effect    = (*SpeciesData)(nil)
	_ effects.Effect    = (*Format)(nil)
	_ effects.Breakable = (*Ability)(nil)
	_ effects.Durable   = (*Condition)(nil)
)
