package engine

// Score computes the rarity-weighted value of an inventory: the sum of
// scoreWeight(tier) x count over every tier present. An empty or nil
// inventory scores 0. Unknown keys carry no weight.
func Score(inventory map[Rarity]int) int {
	total := 0
	for tier, count := range inventory {
		total += scoreWeight[tier] * count
	}
	return total
}
