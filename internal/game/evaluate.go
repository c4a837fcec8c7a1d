package game

// conditionValue reads the live metric behind one achievement condition.
func conditionValue(p *Profile, c AchievementCondition) int {
	switch c.Type {
	case CondTotalCaught:
		return p.TotalCatches
	case CondLevel:
		return p.Level
	case CondTotalMoneyEarned:
		return p.TotalCurrencyEarned
	case CondCollectionCount:
		return p.DiscoveredCount()
	case CondCollectionComplete:
		if p.DiscoveredCount() >= RealSpeciesCount() {
			return 1
		}
		return 0
	case CondFirstRarity:
		if p.DiscoveredOfRarity(c.Rarity) > 0 {
			return 1
		}
		return 0
	case CondAllOfRarity:
		return p.DiscoveredOfRarity(c.Rarity)
	case CondAllRods:
		return len(p.OwnedRods)
	case CondAllBaits:
		n := 0
		for _, b := range baitCatalog {
			if p.BaitCounts[b.ID] > 0 {
				n++
			}
		}
		return n
	case CondAllLures:
		return len(p.OwnedLures)
	case CondAllEquipment:
		n := len(p.OwnedRods) + len(p.OwnedLures)
		for _, b := range baitCatalog {
			if p.BaitCounts[b.ID] > 0 {
				n++
			}
		}
		return n
	case CondConsecutive:
		return p.ConsecutiveCatches
	case CondJunkCaught:
		return p.JunkCaught
	}
	return 0
}

// EvaluateAchievements records progress for every achievement and unlocks
// those whose target is met, granting each reward exactly once. Passing
// categories restricts the pass to achievements in those categories. Reward
// exp can push the level past a milestone, so evaluation repeats until a
// pass unlocks nothing. Reward money goes to Currency, not the earnings
// total, so it never feeds the money achievements.
func EvaluateAchievements(p *Profile, categories ...string) []AchievementDef {
	var wanted map[string]bool
	if len(categories) > 0 {
		wanted = make(map[string]bool, len(categories))
		for _, c := range categories {
			wanted[c] = true
		}
	}
	var newly []AchievementDef
	for {
		unlockedThisPass := false
		for _, a := range achievementCatalog {
			if wanted != nil && !wanted[a.Category] {
				continue
			}
			st := p.Awards[a.ID]
			if st == nil {
				st = &AchievementState{}
				p.Awards[a.ID] = st
			}
			// Stored progress always mirrors the live value, so metrics that
			// can fall (the catch streak) show their current count, not a
			// high-water mark.
			st.Progress = conditionValue(p, a.Condition)
			if st.Unlocked || st.Progress < a.Condition.Target {
				continue
			}
			st.Unlocked = true
			p.Currency += a.Reward.Money
			if a.Reward.Exp > 0 {
				p.GrantExp(a.Reward.Exp)
			}
			newly = append(newly, a)
			unlockedThisPass = true
		}
		if !unlockedThisPass {
			return newly
		}
	}
}

// AchievementProgress reports stored progress and target for display.
func AchievementProgress(p *Profile, a AchievementDef) (progress, target int, unlocked bool) {
	target = a.Condition.Target
	if st := p.Awards[a.ID]; st != nil {
		return min(st.Progress, target), target, st.Unlocked
	}
	return 0, target, false
}
