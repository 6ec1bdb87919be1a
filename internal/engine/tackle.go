package engine

// Rarity is one of the seven fixed catch tiers.
type Rarity string

const (
	Common    Rarity = "common"
	Uncommon  Rarity = "uncommon"
	Rare      Rarity = "rare"
	SuperRare Rarity = "super_rare"
	Epic      Rarity = "epic"
	Legendary Rarity = "legendary"
	Mythical  Rarity = "mythical"
)

// TierOrder is the fixed iteration order for every weighted draw and
// probability table. Draw selection depends on this order being stable.
var TierOrder = [...]Rarity{Common, Uncommon, Rare, SuperRare, Epic, Legendary, Mythical}

// scoreWeight is the per-tier scoring weight.
var scoreWeight = map[Rarity]int{
	Common:    1,
	Uncommon:  2,
	Rare:      3,
	SuperRare: 4,
	Epic:      5,
	Legendary: 6,
	Mythical:  7,
}

// baseProbability is the unbaited catch weight per tier. The table is
// independent of scoreWeight even where values look related.
var baseProbability = map[Rarity]float64{
	Common:    50,
	Uncommon:  25,
	Rare:      12,
	SuperRare: 6,
	Epic:      4,
	Legendary: 2,
	Mythical:  1,
}

// baitInfluence[bait][target] is the additive weight bonus a consumed
// bait grants a target tier. No bait boosts Common; stronger bait tiers
// boost every other tier harder.
var baitInfluence = map[Rarity]map[Rarity]float64{
	Common:    {Uncommon: 10, Rare: 5, SuperRare: 2, Epic: 1, Legendary: 0.5, Mythical: 0.1},
	Uncommon:  {Uncommon: 15, Rare: 7, SuperRare: 3, Epic: 1.5, Legendary: 1, Mythical: 0.2},
	Rare:      {Uncommon: 20, Rare: 10, SuperRare: 5, Epic: 3, Legendary: 2, Mythical: 0.5},
	SuperRare: {Uncommon: 25, Rare: 15, SuperRare: 8, Epic: 5, Legendary: 3, Mythical: 1},
	Epic:      {Uncommon: 30, Rare: 20, SuperRare: 10, Epic: 7, Legendary: 5, Mythical: 2},
	Legendary: {Uncommon: 35, Rare: 25, SuperRare: 15, Epic: 10, Legendary: 7, Mythical: 3},
	Mythical:  {Uncommon: 40, Rare: 30, SuperRare: 20, Epic: 15, Legendary: 10, Mythical: 5},
}

// ParseRarity maps a wire string onto a tier.
func ParseRarity(s string) (Rarity, bool) {
	switch Rarity(s) {
	case Common, Uncommon, Rare, SuperRare, Epic, Legendary, Mythical:
		return Rarity(s), true
	default:
		return "", false
	}
}
