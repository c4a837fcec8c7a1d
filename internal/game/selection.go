package game

import "math/rand/v2"

// For reports the multiplier for one tier.
func (b TierBonuses) For(r Rarity) float64 {
	switch r {
	case RarityCommon:
		return b.Common
	case RarityUncommon:
		return b.Uncommon
	case RarityRare:
		return b.Rare
	case RarityEpic:
		return b.Epic
	case RarityLegendary:
		return b.Legendary
	}
	return 1
}

func (b TierBonuses) mul(o TierBonuses) TierBonuses {
	return TierBonuses{
		Common:    b.Common * o.Common,
		Uncommon:  b.Uncommon * o.Uncommon,
		Rare:      b.Rare * o.Rare,
		Epic:      b.Epic * o.Epic,
		Legendary: b.Legendary * o.Legendary,
	}
}

// CombinedBonuses folds the player's equipped gear into one multiplier
// vector: bait and lure bonuses apply to every tier, the rod's rare chance
// only to the top three.
func CombinedBonuses(p *Profile) TierBonuses {
	out := NeutralBonuses()
	if p.EquippedBaitID != "" {
		if bait, ok := BaitByID(p.EquippedBaitID); ok && p.BaitCounts[p.EquippedBaitID] > 0 {
			out = out.mul(bait.Bonuses)
		}
	}
	if p.EquippedLureID != "" {
		if lure, ok := LureByID(p.EquippedLureID); ok {
			out = out.mul(lure.Bonuses)
		}
	}
	rod := p.EquippedRod()
	out.Rare *= rod.RareChance
	out.Epic *= rod.RareChance
	out.Legendary *= rod.RareChance
	return out
}

// SelectFish draws a catch in two stages: first a rarity tier by adjusted
// weight, then a species within the tier by species weight. Both stages fall
// back to their first candidate if the roll runs past the end, which can
// only happen through floating point residue.
func SelectFish(rng *rand.Rand, bonuses TierBonuses) FishSpecies {
	tier := selectRarity(rng, bonuses)
	pool := SpeciesOfRarity(tier)

	total := 0.0
	for _, sp := range pool {
		total += sp.Weight
	}
	roll := rng.Float64() * total
	for _, sp := range pool {
		roll -= sp.Weight
		if roll < 0 {
			return sp
		}
	}
	return pool[0]
}

func selectRarity(rng *rand.Rand, bonuses TierBonuses) Rarity {
	total := 0.0
	for _, r := range AllRarities {
		total += SettingFor(r).Weight * bonuses.For(r)
	}
	roll := rng.Float64() * total
	for _, r := range AllRarities {
		roll -= SettingFor(r).Weight * bonuses.For(r)
		if roll < 0 {
			return r
		}
	}
	return AllRarities[0]
}
