package dex

// genThresholds lists, per kind, the first num introduced in each generation
// from newest to oldest.
var genThresholds = map[Kind][]struct{ num, gen int }{
	Abilities: {{268, 9}, {234, 8}, {192, 7}, {165, 6}, {124, 5}, {77, 4}, {1, 3}},
	Moves:     {{827, 9}, {743, 8}, {622, 7}, {560, 6}, {468, 5}, {355, 4}, {252, 3}, {166, 2}, {1, 1}},
	Items:     {{1124, 9}, {927, 8}, {689, 7}, {577, 6}, {537, 5}, {377, 4}, {1, 3}},
	Species:   {{906, 9}, {810, 8}, {722, 7}, {650, 6}, {494, 5}, {387, 4}, {252, 3}, {152, 2}, {1, 1}},
}

// inferGen derives the introduction generation from a record's number.
// It returns 0 when the kind has no numbering or num is not positive.
func inferGen(kind Kind, num int) int {
	for _, t := range genThresholds[kind] {
		if num >= t.num {
			return t.gen
		}
	}
	return 0
}
