package game

import "testing"

func unlockedIDs(defs []AchievementDef) map[string]bool {
	out := make(map[string]bool, len(defs))
	for _, a := range defs {
		out[a.ID] = true
	}
	return out
}

func TestAchievementCatalogIntegrity(t *testing.T) {
	seen := map[string]bool{}
	for _, a := range AllAchievements() {
		if a.ID == "" || a.Name == "" || a.Category == "" {
			t.Fatalf("achievement missing identity: %+v", a)
		}
		if seen[a.ID] {
			t.Fatalf("duplicate achievement id %q", a.ID)
		}
		seen[a.ID] = true
		if a.Condition.Target <= 0 {
			t.Fatalf("achievement %s has no target", a.ID)
		}
	}
}

func TestAchievementCountTargetsTrackCatalogs(t *testing.T) {
	cases := []struct {
		id   string
		want int
	}{
		{"equipment_all_rods", len(AllRods())},
		{"equipment_all_baits", len(AllBaits())},
		{"equipment_all_lures", len(AllLures())},
		{"equipment_complete", len(AllRods()) + len(AllBaits()) + len(AllLures())},
		{"rarity_common_master", RealSpeciesCountOfRarity(RarityCommon)},
	}
	for _, c := range cases {
		a, ok := AchievementByID(c.id)
		if !ok {
			t.Fatalf("missing achievement %s", c.id)
		}
		if a.Condition.Target != c.want {
			t.Fatalf("%s target = %d, want %d", c.id, a.Condition.Target, c.want)
		}
	}
}

func TestEvaluateFirstCatch(t *testing.T) {
	p := NewProfile("t")
	rng := NewRNG(1)
	sp := mustSpecies(t, "fish_crucian_carp")
	p.ResolveCatch(rng, sp)

	moneyBefore := p.Currency
	newly := unlockedIDs(EvaluateAchievements(p))
	if !newly["catch_first"] {
		t.Fatalf("first catch did not unlock catch_first, got %v", newly)
	}
	first, _ := AchievementByID("catch_first")
	if p.Currency < moneyBefore+first.Reward.Money {
		t.Fatalf("reward money not paid")
	}
	if !p.Awards["catch_first"].Unlocked {
		t.Fatalf("unlock not recorded on the profile")
	}
}

func TestEvaluateRewardsGrantedOnce(t *testing.T) {
	p := NewProfile("t")
	p.TotalCatches = 1
	EvaluateAchievements(p)
	money := p.Currency
	exp := p.Exp

	if again := EvaluateAchievements(p); len(again) != 0 {
		t.Fatalf("second pass re-unlocked %d achievements", len(again))
	}
	if p.Currency != money || p.Exp != exp {
		t.Fatalf("reward granted twice")
	}
}

func TestEvaluateRecordsProgressShortOfTarget(t *testing.T) {
	p := NewProfile("t")
	p.TotalCatches = 7
	EvaluateAchievements(p)

	a, _ := AchievementByID("catch_10")
	progress, target, unlocked := AchievementProgress(p, a)
	if unlocked {
		t.Fatalf("catch_10 unlocked at 7 catches")
	}
	if progress != 7 || target != 10 {
		t.Fatalf("progress = %d/%d, want 7/10", progress, target)
	}
}

func TestEvaluateProgressTracksCurrentValue(t *testing.T) {
	p := NewProfile("t")
	p.ConsecutiveCatches = 4
	EvaluateAchievements(p)
	p.ConsecutiveCatches = 0
	EvaluateAchievements(p)

	a, _ := AchievementByID("special_consecutive_5")
	progress, _, _ := AchievementProgress(p, a)
	if progress != 0 {
		t.Fatalf("streak progress = %d after reset, want 0", progress)
	}
}

func TestEvaluateCategoryFilter(t *testing.T) {
	p := NewProfile("t")
	p.TotalCatches = 1
	p.Exp = RequiredExp(5)
	p.Level = LevelForExp(p.Exp)

	newly := unlockedIDs(EvaluateAchievements(p, "level"))
	if !newly["level_5"] {
		t.Fatalf("filtered pass skipped its own category, got %v", newly)
	}
	if newly["catch_first"] {
		t.Fatalf("filtered pass unlocked outside the category")
	}
	if st := p.Awards["catch_first"]; st != nil && st.Unlocked {
		t.Fatalf("catch_first unlocked by a level-only pass")
	}

	newly = unlockedIDs(EvaluateAchievements(p, "catch"))
	if !newly["catch_first"] {
		t.Fatalf("catch category pass missed catch_first")
	}
}

func TestEvaluateRewardExpCascadesIntoLevelMilestones(t *testing.T) {
	p := NewProfile("t")
	// Just short of level 5 (1050 exp), with enough catches that unlocking the
	// catch milestones pays exp over the line in the same evaluation.
	p.Exp = 1040
	p.Level = LevelForExp(p.Exp)
	p.TotalCatches = 100
	if p.Level >= 5 {
		t.Fatalf("setup broken: already level %d", p.Level)
	}

	newly := unlockedIDs(EvaluateAchievements(p))
	if !newly["catch_100"] {
		t.Fatalf("catch_100 not unlocked")
	}
	if p.Level < 5 {
		t.Fatalf("reward exp did not raise the level, still %d", p.Level)
	}
	if !newly["level_5"] {
		t.Fatalf("level_5 must unlock in the same evaluation once reward exp lands")
	}
}

func TestEvaluateRewardMoneyDoesNotFeedEarnings(t *testing.T) {
	p := NewProfile("t")
	p.TotalCatches = 1
	EvaluateAchievements(p)
	if p.TotalCurrencyEarned != 0 {
		t.Fatalf("reward money counted as earnings: %d", p.TotalCurrencyEarned)
	}
}

func TestEvaluateFirstRarity(t *testing.T) {
	p := NewProfile("t")
	rng := NewRNG(2)
	p.ResolveCatch(rng, mustSpecies(t, "fish_koi"))

	newly := unlockedIDs(EvaluateAchievements(p))
	if !newly["rarity_epic_first"] {
		t.Fatalf("epic catch did not unlock rarity_epic_first")
	}
	if newly["rarity_legendary_first"] {
		t.Fatalf("legendary first unlocked without a legendary catch")
	}
}
