package game

import (
	"math"
	"testing"
)

func TestSelectFishNeutralDistribution(t *testing.T) {
	rng := NewRNG(42)
	const draws = 100000

	counts := make(map[Rarity]int)
	for i := 0; i < draws; i++ {
		sp := SelectFish(rng, NeutralBonuses())
		counts[sp.Rarity]++
	}

	want := map[Rarity]float64{
		RarityCommon:    0.50,
		RarityUncommon:  0.30,
		RarityRare:      0.14,
		RarityEpic:      0.05,
		RarityLegendary: 0.01,
	}
	for rarity, expected := range want {
		got := float64(counts[rarity]) / draws
		if math.Abs(got-expected) > 0.01 {
			t.Fatalf("%s frequency = %.4f, want %.2f +/- 0.01", rarity, got, expected)
		}
	}
}

func TestSelectFishLegendaryBonusShiftsOdds(t *testing.T) {
	const draws = 100000

	countLegendary := func(seed int64, bonuses TierBonuses) int {
		rng := NewRNG(seed)
		n := 0
		for i := 0; i < draws; i++ {
			if SelectFish(rng, bonuses).Rarity == RarityLegendary {
				n++
			}
		}
		return n
	}

	base := countLegendary(7, NeutralBonuses())
	boosted := NeutralBonuses()
	boosted.Legendary = 5.0
	bumped := countLegendary(7, boosted)

	// 5x weight moves the legendary share from ~1% toward ~4.8%.
	baseRate := float64(base) / draws
	bumpedRate := float64(bumped) / draws
	if bumpedRate < baseRate*3 {
		t.Fatalf("legendary rate only moved from %.4f to %.4f with a 5x bonus", baseRate, bumpedRate)
	}
}

func TestSelectFishAlwaysReturnsSpecies(t *testing.T) {
	rng := NewRNG(1)
	zeroed := TierBonuses{} // all-zero weights force the fallback path
	sp := SelectFish(rng, zeroed)
	if sp.ID == "" {
		t.Fatalf("fallback returned empty species")
	}
}

func TestCombinedBonusesRodOnlyBoostsTopTiers(t *testing.T) {
	p := NewProfile("t")
	p.OwnedRods = append(p.OwnedRods, "rod_legendary")
	p.EquippedRodID = "rod_legendary"

	b := CombinedBonuses(p)
	if b.Common != 1 || b.Uncommon != 1 {
		t.Fatalf("rod must not touch common/uncommon, got %v/%v", b.Common, b.Uncommon)
	}
	rod, _ := RodByID("rod_legendary")
	if b.Rare != rod.RareChance || b.Epic != rod.RareChance || b.Legendary != rod.RareChance {
		t.Fatalf("rod rare chance not applied to top tiers: %+v", b)
	}
}

func TestCombinedBonusesBaitRequiresUnits(t *testing.T) {
	p := NewProfile("t")
	p.EquippedBaitID = "bait_golden"
	// No units in the pouch: the bait must not contribute.
	b := CombinedBonuses(p)
	if b.Legendary != 1 {
		t.Fatalf("empty bait pouch still contributed: %v", b.Legendary)
	}

	p.BaitCounts["bait_golden"] = 3
	bait, _ := BaitByID("bait_golden")
	b = CombinedBonuses(p)
	if b.Legendary != bait.Bonuses.Legendary {
		t.Fatalf("equipped bait not applied: got %v want %v", b.Legendary, bait.Bonuses.Legendary)
	}
}

func TestCombinedBonusesStack(t *testing.T) {
	p := NewProfile("t")
	p.BaitCounts["bait_worm"] = 5
	p.EquippedBaitID = "bait_worm"
	p.OwnedLures = []string{"lure_spoon"}
	p.EquippedLureID = "lure_spoon"

	bait, _ := BaitByID("bait_worm")
	lure, _ := LureByID("lure_spoon")
	rod, _ := RodByID(StarterRodID)

	b := CombinedBonuses(p)
	wantRare := bait.Bonuses.Rare * lure.Bonuses.Rare * rod.RareChance
	if math.Abs(b.Rare-wantRare) > 1e-12 {
		t.Fatalf("stacked rare bonus = %v, want %v", b.Rare, wantRare)
	}
}
