package game

import "testing"

func TestCatalogIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	add := func(id string) {
		if seen[id] {
			t.Fatalf("duplicate catalog id %q", id)
		}
		seen[id] = true
	}
	for _, r := range AllRods() {
		add(r.ID)
	}
	for _, b := range AllBaits() {
		add(b.ID)
	}
	for _, l := range AllLures() {
		add(l.ID)
	}
	for _, b := range AllBags() {
		add(b.ID)
	}
}

func TestRodCatalogProgression(t *testing.T) {
	rods := AllRods()
	if len(rods) != 5 {
		t.Fatalf("rod catalog has %d entries, want 5", len(rods))
	}
	if rods[0].ID != StarterRodID || rods[0].Price != 0 {
		t.Fatalf("first rod must be the free starter, got %+v", rods[0])
	}
	for i := 1; i < len(rods); i++ {
		prev, cur := rods[i-1], rods[i]
		if cur.Price <= prev.Price {
			t.Fatalf("rod %s price %d not above %s price %d", cur.ID, cur.Price, prev.ID, prev.Price)
		}
		if cur.CastDistance < prev.CastDistance || cur.CatchRateBonus < prev.CatchRateBonus || cur.RareChance < prev.RareChance {
			t.Fatalf("rod %s is not an upgrade over %s", cur.ID, prev.ID)
		}
	}
}

func TestNextRodChain(t *testing.T) {
	rods := AllRods()
	for i := 0; i < len(rods)-1; i++ {
		next, ok := NextRod(rods[i].ID)
		if !ok || next.ID != rods[i+1].ID {
			t.Fatalf("NextRod(%s) = %v %v, want %s", rods[i].ID, next.ID, ok, rods[i+1].ID)
		}
	}
	if _, ok := NextRod(rods[len(rods)-1].ID); ok {
		t.Fatalf("top rod must have no successor")
	}
	if _, ok := NextRod("rod_unknown"); ok {
		t.Fatalf("unknown rod must have no successor")
	}
}

func TestNextBagChain(t *testing.T) {
	bags := AllBags()
	if bags[0].ID != StarterBagID {
		t.Fatalf("first bag must be the starter, got %s", bags[0].ID)
	}
	for i := 0; i < len(bags)-1; i++ {
		next, ok := NextBag(bags[i].ID)
		if !ok || next.ID != bags[i+1].ID {
			t.Fatalf("NextBag(%s) = %v %v, want %s", bags[i].ID, next.ID, ok, bags[i+1].ID)
		}
		if next.SlotCount <= bags[i].SlotCount {
			t.Fatalf("bag %s does not add slots over %s", next.ID, bags[i].ID)
		}
	}
	if _, ok := NextBag(bags[len(bags)-1].ID); ok {
		t.Fatalf("largest bag must have no successor")
	}
}

func TestBaitCatalogShape(t *testing.T) {
	for _, b := range AllBaits() {
		if b.Quantity <= 0 {
			t.Fatalf("bait %s sold with no units", b.ID)
		}
		if b.Price <= 0 {
			t.Fatalf("bait %s has no price", b.ID)
		}
		bs := b.Bonuses
		for _, v := range []float64{bs.Common, bs.Uncommon, bs.Rare, bs.Epic, bs.Legendary} {
			if v <= 0 {
				t.Fatalf("bait %s has a non-positive tier bonus", b.ID)
			}
		}
	}
}

func TestTierBonusesFor(t *testing.T) {
	bs := TierBonuses{Common: 1, Uncommon: 2, Rare: 3, Epic: 4, Legendary: 5}
	cases := []struct {
		r    Rarity
		want float64
	}{
		{RarityCommon, 1},
		{RarityUncommon, 2},
		{RarityRare, 3},
		{RarityEpic, 4},
		{RarityLegendary, 5},
	}
	for _, c := range cases {
		if got := bs.For(c.r); got != c.want {
			t.Fatalf("For(%s) = %v, want %v", c.r, got, c.want)
		}
	}
}
