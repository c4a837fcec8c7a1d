package game

import "strings"

const junkIDPrefix = "junk_"

// FishSpecies is one immutable catalog row. Weight is the relative selection
// weight within the species' own rarity tier, not across the whole catalog.
// The five fight parameters drive the bar minigame: CatchRate scales gauge
// fill, EscapeRate scales gauge drain, Speed and Erratic shape the fish's
// bar motion, and the move interval bounds how often it picks a new target.
type FishSpecies struct {
	ID          string
	Name        string
	Description string
	Rarity      Rarity
	Price       int
	Weight      float64
	MaxSizeCm   int

	CatchRate       float64
	EscapeRate      float64
	Speed           float64
	Erratic         float64
	MoveIntervalMin float64
	MoveIntervalMax float64
}

func (f FishSpecies) IsJunk() bool {
	return IsJunkID(f.ID)
}

func IsJunkID(id string) bool {
	return strings.HasPrefix(id, junkIDPrefix)
}

var speciesCatalog = []FishSpecies{
	// Common.
	{ID: "fish_goby", Name: "Goby", Description: "A small fish of estuaries and shallows. A fine first catch.", Rarity: RarityCommon, Price: 30, Weight: 40, MaxSizeCm: 25, CatchRate: 1.5, EscapeRate: 0.5, Speed: 0.2, Erratic: 0.1, MoveIntervalMin: 2.0, MoveIntervalMax: 4.0},
	{ID: "fish_crucian_carp", Name: "Crucian Carp", Description: "Found in almost any fresh water.", Rarity: RarityCommon, Price: 50, Weight: 35, MaxSizeCm: 35, CatchRate: 1.3, EscapeRate: 0.6, Speed: 0.25, Erratic: 0.15, MoveIntervalMin: 1.8, MoveIntervalMax: 3.5},
	{ID: "fish_carp", Name: "Carp", Description: "A big resident of ponds and slow rivers.", Rarity: RarityCommon, Price: 80, Weight: 30, MaxSizeCm: 80, CatchRate: 1.2, EscapeRate: 0.7, Speed: 0.3, Erratic: 0.2, MoveIntervalMin: 1.5, MoveIntervalMax: 3.0},
	{ID: "fish_sweetfish", Name: "Sweetfish", Description: "A fragrant fish of clear streams.", Rarity: RarityCommon, Price: 100, Weight: 25, MaxSizeCm: 30, CatchRate: 1.1, EscapeRate: 0.8, Speed: 0.4, Erratic: 0.25, MoveIntervalMin: 1.2, MoveIntervalMax: 2.5},
	{ID: "fish_killifish", Name: "Ricefish", Description: "Tiny and charming. Endangered in the wild.", Rarity: RarityCommon, Price: 20, Weight: 35, MaxSizeCm: 4, CatchRate: 1.6, EscapeRate: 0.4, Speed: 0.15, Erratic: 0.1, MoveIntervalMin: 2.5, MoveIntervalMax: 4.5},
	{ID: "fish_loach", Name: "Pond Loach", Description: "A slender mud-dweller with barbels.", Rarity: RarityCommon, Price: 40, Weight: 30, MaxSizeCm: 20, CatchRate: 1.3, EscapeRate: 0.6, Speed: 0.2, Erratic: 0.3, MoveIntervalMin: 1.5, MoveIntervalMax: 3.0},
	{ID: "fish_bluegill", Name: "Bluegill", Description: "An invasive sunfish with a blue gill flap.", Rarity: RarityCommon, Price: 25, Weight: 35, MaxSizeCm: 25, CatchRate: 1.4, EscapeRate: 0.5, Speed: 0.25, Erratic: 0.2, MoveIntervalMin: 1.8, MoveIntervalMax: 3.5},
	{ID: "fish_crucian_herabuna", Name: "Herabuna", Description: "A deep-bodied crucian prized by anglers. Fights hard.", Rarity: RarityCommon, Price: 90, Weight: 20, MaxSizeCm: 45, CatchRate: 1.1, EscapeRate: 0.8, Speed: 0.35, Erratic: 0.25, MoveIntervalMin: 1.5, MoveIntervalMax: 3.0},
	{ID: "fish_sea_bass", Name: "Sea Bass", Description: "Moves between sea and river as it grows.", Rarity: RarityCommon, Price: 120, Weight: 20, MaxSizeCm: 90, CatchRate: 1.0, EscapeRate: 0.9, Speed: 0.45, Erratic: 0.3, MoveIntervalMin: 1.0, MoveIntervalMax: 2.5},
	{ID: "fish_goldfish", Name: "Goldfish", Description: "Somebody's released pet. Bites anyway.", Rarity: RarityCommon, Price: 70, Weight: 15, MaxSizeCm: 20, CatchRate: 1.3, EscapeRate: 0.5, Speed: 0.2, Erratic: 0.15, MoveIntervalMin: 2.0, MoveIntervalMax: 4.0},

	// Uncommon.
	{ID: "fish_catfish", Name: "Catfish", Description: "A whiskered night feeder.", Rarity: RarityUncommon, Price: 180, Weight: 30, MaxSizeCm: 70, CatchRate: 1.0, EscapeRate: 0.9, Speed: 0.3, Erratic: 0.4, MoveIntervalMin: 1.5, MoveIntervalMax: 3.0},
	{ID: "fish_black_bass", Name: "Black Bass", Description: "A popular game fish with a strong pull.", Rarity: RarityUncommon, Price: 200, Weight: 35, MaxSizeCm: 60, CatchRate: 1.0, EscapeRate: 1.0, Speed: 0.5, Erratic: 0.35, MoveIntervalMin: 1.0, MoveIntervalMax: 2.5},
	{ID: "fish_rainbow_trout", Name: "Rainbow Trout", Description: "Carries a beautiful iridescent band.", Rarity: RarityUncommon, Price: 250, Weight: 25, MaxSizeCm: 75, CatchRate: 0.95, EscapeRate: 1.1, Speed: 0.55, Erratic: 0.3, MoveIntervalMin: 0.8, MoveIntervalMax: 2.0},
	{ID: "fish_eel", Name: "Eel", Description: "A slippery delicacy. Hard to keep hold of.", Rarity: RarityUncommon, Price: 400, Weight: 20, MaxSizeCm: 100, CatchRate: 0.9, EscapeRate: 1.3, Speed: 0.45, Erratic: 0.6, MoveIntervalMin: 0.5, MoveIntervalMax: 1.5},
	{ID: "fish_char", Name: "Char", Description: "King of the mountain stream. Likes cold, clear water.", Rarity: RarityUncommon, Price: 300, Weight: 25, MaxSizeCm: 60, CatchRate: 0.95, EscapeRate: 1.1, Speed: 0.5, Erratic: 0.35, MoveIntervalMin: 1.0, MoveIntervalMax: 2.5},
	{ID: "fish_yamame", Name: "Yamame Trout", Description: "The queen of the stream.", Rarity: RarityUncommon, Price: 280, Weight: 25, MaxSizeCm: 35, CatchRate: 0.95, EscapeRate: 1.1, Speed: 0.55, Erratic: 0.3, MoveIntervalMin: 0.8, MoveIntervalMax: 2.0},
	{ID: "fish_snakehead", Name: "Snakehead", Description: "A big-mouthed ambush predator.", Rarity: RarityUncommon, Price: 220, Weight: 20, MaxSizeCm: 85, CatchRate: 0.9, EscapeRate: 1.2, Speed: 0.4, Erratic: 0.5, MoveIntervalMin: 0.8, MoveIntervalMax: 2.0},
	{ID: "fish_rockfish", Name: "Rockfish", Description: "A spiny bottom-dweller. Excellent simmered.", Rarity: RarityUncommon, Price: 180, Weight: 25, MaxSizeCm: 30, CatchRate: 1.0, EscapeRate: 1.0, Speed: 0.3, Erratic: 0.4, MoveIntervalMin: 1.5, MoveIntervalMax: 3.0},
	{ID: "fish_flatfish", Name: "Flounder", Description: "A flat sand-hider, eyes on the left.", Rarity: RarityUncommon, Price: 220, Weight: 25, MaxSizeCm: 50, CatchRate: 1.0, EscapeRate: 0.9, Speed: 0.25, Erratic: 0.35, MoveIntervalMin: 1.5, MoveIntervalMax: 3.5},
	{ID: "fish_amago", Name: "Amago Trout", Description: "Like the yamame but flecked with red.", Rarity: RarityUncommon, Price: 260, Weight: 20, MaxSizeCm: 35, CatchRate: 0.95, EscapeRate: 1.1, Speed: 0.5, Erratic: 0.35, MoveIntervalMin: 0.9, MoveIntervalMax: 2.2},

	// Rare.
	{ID: "fish_salmon", Name: "Salmon", Description: "Runs the river with real power.", Rarity: RarityRare, Price: 500, Weight: 35, MaxSizeCm: 90, CatchRate: 0.85, EscapeRate: 1.2, Speed: 0.6, Erratic: 0.4, MoveIntervalMin: 0.8, MoveIntervalMax: 2.0},
	{ID: "fish_yellowtail", Name: "Yellowtail", Description: "Changes name as it grows. A prized catch.", Rarity: RarityRare, Price: 700, Weight: 30, MaxSizeCm: 110, CatchRate: 0.8, EscapeRate: 1.3, Speed: 0.65, Erratic: 0.45, MoveIntervalMin: 0.6, MoveIntervalMax: 1.8},
	{ID: "fish_sea_bream", Name: "Sea Bream", Description: "The centerpiece of any celebration.", Rarity: RarityRare, Price: 800, Weight: 25, MaxSizeCm: 100, CatchRate: 0.75, EscapeRate: 1.4, Speed: 0.55, Erratic: 0.5, MoveIntervalMin: 0.7, MoveIntervalMax: 1.5},
	{ID: "fish_horse_mackerel", Name: "Horse Mackerel", Description: "A schooling migrant. Superb as sashimi.", Rarity: RarityRare, Price: 550, Weight: 30, MaxSizeCm: 40, CatchRate: 0.9, EscapeRate: 1.1, Speed: 0.6, Erratic: 0.4, MoveIntervalMin: 0.8, MoveIntervalMax: 2.0},

	// Epic.
	{ID: "fish_koi", Name: "Nishikigoi", Description: "A living jewel of patterned color.", Rarity: RarityEpic, Price: 1800, Weight: 25, MaxSizeCm: 90, CatchRate: 0.75, EscapeRate: 1.5, Speed: 0.55, Erratic: 0.5, MoveIntervalMin: 0.6, MoveIntervalMax: 1.5},
	{ID: "fish_tuna", Name: "Tuna", Description: "Ruler of the open sea. Swims with tremendous force.", Rarity: RarityEpic, Price: 2000, Weight: 35, MaxSizeCm: 250, CatchRate: 0.65, EscapeRate: 1.6, Speed: 0.85, Erratic: 0.55, MoveIntervalMin: 0.3, MoveIntervalMax: 1.0},
	{ID: "fish_sturgeon", Name: "Sturgeon", Description: "An ancient fish, source of caviar.", Rarity: RarityEpic, Price: 3000, Weight: 25, MaxSizeCm: 250, CatchRate: 0.75, EscapeRate: 1.4, Speed: 0.5, Erratic: 0.7, MoveIntervalMin: 0.5, MoveIntervalMax: 1.5},

	// Legendary.
	{ID: "fish_golden_koi", Name: "Golden Koi", Description: "A legendary carp that glitters gold. Brings luck to whoever sees it.", Rarity: RarityLegendary, Price: 10000, Weight: 40, MaxSizeCm: 100, CatchRate: 0.6, EscapeRate: 1.8, Speed: 0.7, Erratic: 0.8, MoveIntervalMin: 0.3, MoveIntervalMax: 0.8},
	{ID: "fish_arowana", Name: "Arowana", Description: "A survivor from another age, called the dragon fish.", Rarity: RarityLegendary, Price: 15000, Weight: 30, MaxSizeCm: 120, CatchRate: 0.5, EscapeRate: 2.0, Speed: 0.9, Erratic: 0.9, MoveIntervalMin: 0.2, MoveIntervalMax: 0.6},

	// Junk. Never gets a size, sells flat, and barely fights.
	{ID: "junk_boot", Name: "Old Boot", Description: "Somebody's discarded boot. Bites anyway.", Rarity: RarityCommon, Price: 5, Weight: 15, CatchRate: 2.0, EscapeRate: 0, Speed: 0, Erratic: 0, MoveIntervalMin: 10, MoveIntervalMax: 10},
	{ID: "junk_can", Name: "Empty Can", Description: "Pack out what you pack in.", Rarity: RarityCommon, Price: 2, Weight: 10, CatchRate: 2.0, EscapeRate: 0, Speed: 0, Erratic: 0, MoveIntervalMin: 10, MoveIntervalMax: 10},
	{ID: "junk_tire", Name: "Worn Tire", Description: "Heavy. How did this get here?", Rarity: RarityCommon, Price: 10, Weight: 5, CatchRate: 2.0, EscapeRate: 0, Speed: 0, Erratic: 0, MoveIntervalMin: 10, MoveIntervalMax: 10},
}

func AllSpecies() []FishSpecies {
	return speciesCatalog
}

func SpeciesByID(id string) (FishSpecies, bool) {
	for _, sp := range speciesCatalog {
		if sp.ID == id {
			return sp, true
		}
	}
	return FishSpecies{}, false
}

// SpeciesOfRarity returns the catalog subset in catalog order, junk included.
func SpeciesOfRarity(r Rarity) []FishSpecies {
	out := make([]FishSpecies, 0, len(speciesCatalog))
	for _, sp := range speciesCatalog {
		if sp.Rarity == r {
			out = append(out, sp)
		}
	}
	return out
}

// RealSpeciesCount is the bestiary denominator: junk never counts.
func RealSpeciesCount() int {
	n := 0
	for _, sp := range speciesCatalog {
		if !sp.IsJunk() {
			n++
		}
	}
	return n
}

func RealSpeciesCountOfRarity(r Rarity) int {
	n := 0
	for _, sp := range speciesCatalog {
		if sp.Rarity == r && !sp.IsJunk() {
			n++
		}
	}
	return n
}
