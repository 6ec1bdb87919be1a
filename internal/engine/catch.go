package engine

import "math/rand"

// Resolver draws catches from the tier probability tables. The random
// source is injected so tests can seed it.
type Resolver struct {
	rnd *rand.Rand
}

func NewResolver(rnd *rand.Rand) *Resolver {
	return &Resolver{rnd: rnd}
}

// Resolve picks a tier for one catch. Each tier's effective weight is
// its base probability plus the bait bonus when bait is selected; the
// draw is uniform over [0, total) and walks TierOrder cumulatively.
func (r *Resolver) Resolve(bait *Rarity) Rarity {
	total := 0.0
	for _, tier := range TierOrder {
		total += effectiveWeight(tier, bait)
	}

	draw := r.rnd.Float64() * total
	accumulated := 0.0
	for _, tier := range TierOrder {
		accumulated += effectiveWeight(tier, bait)
		if draw <= accumulated {
			return tier
		}
	}
	// Rounding can leave the draw a hair past the last cumulative sum.
	return Common
}

func effectiveWeight(tier Rarity, bait *Rarity) float64 {
	w := baseProbability[tier]
	if bait != nil {
		w += baitInfluence[*bait][tier]
	}
	return w
}
