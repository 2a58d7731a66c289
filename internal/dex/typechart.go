package dex

// Damage-taken codes in a type chart row.
const (
	DamageNeutral = 0
	DamageWeak    = 1
	DamageResist  = 2
	DamageImmune  = 3
)

// GetImmunity reports whether attacks or effects of source can affect a
// target with the given types. source is a type name ("Ground") or a special
// key such as "par" or "sandstorm". Unknown target types are ignored.
func (d *Dex) GetImmunity(source string, targets ...string) bool {
	for _, t := range targets {
		info := d.Type(t)
		if !info.Exists() {
			continue
		}
		if info.DamageTaken[source] == DamageImmune {
			return false
		}
	}
	return true
}

// GetEffectiveness returns the log2 damage multiplier of source against
// the target types: +1 per weakness, -1 per resistance. Immunity is not
// reflected here; check GetImmunity first.
func (d *Dex) GetEffectiveness(source string, targets ...string) int {
	total := 0
	for _, t := range targets {
		info := d.Type(t)
		if !info.Exists() {
			continue
		}
		switch info.DamageTaken[source] {
		case DamageWeak:
			total++
		case DamageResist:
			total--
		}
	}
	return total
}
