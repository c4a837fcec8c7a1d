package game

// Achievement condition types. Boolean-style conditions report 0 or 1 and
// unlock at target 1.
const (
	CondTotalCaught        = "total_caught"
	CondLevel              = "level"
	CondTotalMoneyEarned   = "total_money_earned"
	CondCollectionCount    = "collection_count"
	CondCollectionComplete = "collection_complete"
	CondFirstRarity        = "first_rarity"
	CondAllOfRarity        = "all_rarity"
	CondAllRods            = "all_rods"
	CondAllBaits           = "all_baits"
	CondAllLures           = "all_lures"
	CondAllEquipment       = "all_equipment"
	CondConsecutive        = "consecutive_success"
	CondJunkCaught         = "junk_caught"
)

type AchievementCondition struct {
	Type   string
	Target int
	Rarity Rarity // only for first_rarity / all_rarity
}

type AchievementReward struct {
	Money int
	Exp   int
	// ItemType/ItemID are a recognized extension point; no current
	// achievement grants an item and the evaluator reports them unsupported.
	ItemType string
	ItemID   string
}

type AchievementDef struct {
	ID          string
	Category    string
	Name        string
	Description string
	Condition   AchievementCondition
	Reward      AchievementReward
}

// achievementCatalog is built in init so that count-based targets (all of a
// tier, all equipment, the full bestiary) always track the live catalogs
// instead of drifting behind hard-coded numbers.
var achievementCatalog []AchievementDef

func init() {
	achievementCatalog = []AchievementDef{
		// Catch totals.
		{ID: "catch_first", Category: "catch", Name: "First Catch", Description: "Land your first fish", Condition: AchievementCondition{Type: CondTotalCaught, Target: 1}, Reward: AchievementReward{Money: 50, Exp: 10}},
		{ID: "catch_10", Category: "catch", Name: "Ten Landed", Description: "Land 10 catches in total", Condition: AchievementCondition{Type: CondTotalCaught, Target: 10}, Reward: AchievementReward{Money: 100, Exp: 20}},
		{ID: "catch_100", Category: "catch", Name: "Hundred Landed", Description: "Land 100 catches in total", Condition: AchievementCondition{Type: CondTotalCaught, Target: 100}, Reward: AchievementReward{Money: 500, Exp: 50}},
		{ID: "catch_500", Category: "catch", Name: "Five Hundred", Description: "Land 500 catches in total", Condition: AchievementCondition{Type: CondTotalCaught, Target: 500}, Reward: AchievementReward{Money: 2000, Exp: 200}},
		{ID: "catch_1000", Category: "catch", Name: "Thousand Landed", Description: "Land 1000 catches in total", Condition: AchievementCondition{Type: CondTotalCaught, Target: 1000}, Reward: AchievementReward{Money: 5000, Exp: 500}},
		{ID: "catch_5000", Category: "catch", Name: "Old Salt", Description: "Land 5000 catches in total", Condition: AchievementCondition{Type: CondTotalCaught, Target: 5000}, Reward: AchievementReward{Money: 20000, Exp: 2000}},

		// Rarity firsts and completions.
		{ID: "rarity_rare_first", Category: "rarity", Name: "Rare Find", Description: "Catch your first rare fish", Condition: AchievementCondition{Type: CondFirstRarity, Target: 1, Rarity: RarityRare}, Reward: AchievementReward{Money: 300, Exp: 100}},
		{ID: "rarity_epic_first", Category: "rarity", Name: "Epic Hunter", Description: "Catch your first epic fish", Condition: AchievementCondition{Type: CondFirstRarity, Target: 1, Rarity: RarityEpic}, Reward: AchievementReward{Money: 1000, Exp: 300}},
		{ID: "rarity_legendary_first", Category: "rarity", Name: "Legend Touched", Description: "Catch your first legendary fish", Condition: AchievementCondition{Type: CondFirstRarity, Target: 1, Rarity: RarityLegendary}, Reward: AchievementReward{Money: 5000, Exp: 1000}},
		{ID: "rarity_common_master", Category: "rarity", Name: "Common Master", Description: "Catch every common species", Condition: AchievementCondition{Type: CondAllOfRarity, Target: RealSpeciesCountOfRarity(RarityCommon), Rarity: RarityCommon}, Reward: AchievementReward{Money: 500, Exp: 150}},
		{ID: "rarity_uncommon_master", Category: "rarity", Name: "Uncommon Master", Description: "Catch every uncommon species", Condition: AchievementCondition{Type: CondAllOfRarity, Target: RealSpeciesCountOfRarity(RarityUncommon), Rarity: RarityUncommon}, Reward: AchievementReward{Money: 1500, Exp: 400}},
		{ID: "rarity_rare_master", Category: "rarity", Name: "Rare Master", Description: "Catch every rare species", Condition: AchievementCondition{Type: CondAllOfRarity, Target: RealSpeciesCountOfRarity(RarityRare), Rarity: RarityRare}, Reward: AchievementReward{Money: 3000, Exp: 800}},
		{ID: "rarity_epic_master", Category: "rarity", Name: "Epic Master", Description: "Catch every epic species", Condition: AchievementCondition{Type: CondAllOfRarity, Target: RealSpeciesCountOfRarity(RarityEpic), Rarity: RarityEpic}, Reward: AchievementReward{Money: 8000, Exp: 2000}},
		{ID: "rarity_legendary_master", Category: "rarity", Name: "Legendary Master", Description: "Catch every legendary species", Condition: AchievementCondition{Type: CondAllOfRarity, Target: RealSpeciesCountOfRarity(RarityLegendary), Rarity: RarityLegendary}, Reward: AchievementReward{Money: 20000, Exp: 5000}},

		// Bestiary.
		{ID: "collection_5", Category: "collection", Name: "Field Notes", Description: "Record 5 species in the bestiary", Condition: AchievementCondition{Type: CondCollectionCount, Target: 5}, Reward: AchievementReward{Money: 200, Exp: 50}},
		{ID: "collection_10", Category: "collection", Name: "Collector", Description: "Record 10 species in the bestiary", Condition: AchievementCondition{Type: CondCollectionCount, Target: 10}, Reward: AchievementReward{Money: 500, Exp: 150}},
		{ID: "collection_20", Category: "collection", Name: "Naturalist", Description: "Record 20 species in the bestiary", Condition: AchievementCondition{Type: CondCollectionCount, Target: 20}, Reward: AchievementReward{Money: 2000, Exp: 500}},
		{ID: "collection_all", Category: "collection", Name: "Complete Bestiary", Description: "Record every species in the bestiary", Condition: AchievementCondition{Type: CondCollectionComplete, Target: 1}, Reward: AchievementReward{Money: 10000, Exp: 3000}},

		// Level milestones.
		{ID: "level_5", Category: "level", Name: "Level 5", Description: "Reach level 5", Condition: AchievementCondition{Type: CondLevel, Target: 5}, Reward: AchievementReward{Money: 300, Exp: 100}},
		{ID: "level_10", Category: "level", Name: "Level 10", Description: "Reach level 10", Condition: AchievementCondition{Type: CondLevel, Target: 10}, Reward: AchievementReward{Money: 1000, Exp: 300}},
		{ID: "level_20", Category: "level", Name: "Level 20", Description: "Reach level 20", Condition: AchievementCondition{Type: CondLevel, Target: 20}, Reward: AchievementReward{Money: 3000, Exp: 1000}},
		{ID: "level_30", Category: "level", Name: "Level 30", Description: "Reach level 30", Condition: AchievementCondition{Type: CondLevel, Target: 30}, Reward: AchievementReward{Money: 8000, Exp: 2500}},
		{ID: "level_50", Category: "level", Name: "Level 50", Description: "Reach level 50", Condition: AchievementCondition{Type: CondLevel, Target: 50}, Reward: AchievementReward{Money: 20000, Exp: 5000}},

		// Earnings.
		{ID: "money_100", Category: "money", Name: "First Earnings", Description: "Earn 100 G in sales", Condition: AchievementCondition{Type: CondTotalMoneyEarned, Target: 100}, Reward: AchievementReward{Money: 50, Exp: 20}},
		{ID: "money_10000", Category: "money", Name: "Comfortable", Description: "Earn 10,000 G in sales", Condition: AchievementCondition{Type: CondTotalMoneyEarned, Target: 10000}, Reward: AchievementReward{Money: 500, Exp: 200}},
		{ID: "money_100000", Category: "money", Name: "Wealthy", Description: "Earn 100,000 G in sales", Condition: AchievementCondition{Type: CondTotalMoneyEarned, Target: 100000}, Reward: AchievementReward{Money: 5000, Exp: 2000}},
		{ID: "money_500000", Category: "money", Name: "Magnate", Description: "Earn 500,000 G in sales", Condition: AchievementCondition{Type: CondTotalMoneyEarned, Target: 500000}, Reward: AchievementReward{Money: 20000, Exp: 8000}},
		{ID: "money_1000000", Category: "money", Name: "Millionaire", Description: "Earn 1,000,000 G in sales", Condition: AchievementCondition{Type: CondTotalMoneyEarned, Target: 1000000}, Reward: AchievementReward{Money: 50000, Exp: 20000}},

		// Equipment collections.
		{ID: "equipment_all_rods", Category: "equipment", Name: "Rod Collector", Description: "Own every rod", Condition: AchievementCondition{Type: CondAllRods, Target: len(rodCatalog)}, Reward: AchievementReward{Money: 2000, Exp: 500}},
		{ID: "equipment_all_baits", Category: "equipment", Name: "Bait Master", Description: "Buy every kind of bait", Condition: AchievementCondition{Type: CondAllBaits, Target: len(baitCatalog)}, Reward: AchievementReward{Money: 1000, Exp: 300}},
		{ID: "equipment_all_lures", Category: "equipment", Name: "Lure Master", Description: "Own every lure", Condition: AchievementCondition{Type: CondAllLures, Target: len(lureCatalog)}, Reward: AchievementReward{Money: 5000, Exp: 1000}},
		{ID: "equipment_complete", Category: "equipment", Name: "Fully Equipped", Description: "Own every rod, bait, and lure", Condition: AchievementCondition{Type: CondAllEquipment, Target: len(rodCatalog) + len(baitCatalog) + len(lureCatalog)}, Reward: AchievementReward{Money: 10000, Exp: 3000}},

		// Specials.
		{ID: "special_consecutive_5", Category: "special", Name: "Hot Streak", Description: "Land 5 catches in a row", Condition: AchievementCondition{Type: CondConsecutive, Target: 5}, Reward: AchievementReward{Money: 300, Exp: 100}},
		{ID: "special_consecutive_10", Category: "special", Name: "Perfect Run", Description: "Land 10 catches in a row", Condition: AchievementCondition{Type: CondConsecutive, Target: 10}, Reward: AchievementReward{Money: 1000, Exp: 500}},
		{ID: "special_junk_first", Category: "special", Name: "Bad Luck Begins", Description: "Reel in junk for the first time", Condition: AchievementCondition{Type: CondJunkCaught, Target: 1}, Reward: AchievementReward{Money: 10, Exp: 5}},
		{ID: "special_junk_10", Category: "special", Name: "Pond Cleaner", Description: "Reel in 10 pieces of junk", Condition: AchievementCondition{Type: CondJunkCaught, Target: 10}, Reward: AchievementReward{Money: 100, Exp: 50}},
	}
}

func AllAchievements() []AchievementDef {
	return achievementCatalog
}

func AchievementByID(id string) (AchievementDef, bool) {
	for _, a := range achievementCatalog {
		if a.ID == id {
			return a, true
		}
	}
	return AchievementDef{}, false
}

func AchievementCategories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, a := range achievementCatalog {
		if _, ok := seen[a.Category]; ok {
			continue
		}
		seen[a.Category] = struct{}{}
		out = append(out, a.Category)
	}
	return out
}
