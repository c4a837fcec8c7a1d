package game

// RodSpec multipliers all default to 1.0 for the starter rod. CastDistance
// multiplies the power-derived cast length, CatchRateBonus multiplies gauge
// fill during a fight, and RareChanceBonus multiplies the Rare/Epic/Legendary
// tier weights at selection time.
type RodSpec struct {
	ID          string
	Name        string
	Description string
	Price       int

	CastDistance   float64
	CatchRateBonus float64
	RareChance     float64
}

// BaitSpec is consumable: a purchase grants Quantity units and one unit is
// spent each time a bite is answered. The five bonuses multiply the matching
// tier weights.
type BaitSpec struct {
	ID          string
	Name        string
	Description string
	Price       int
	Quantity    int

	Bonuses TierBonuses
}

// LureSpec is permanent once bought and toggles on and off.
type LureSpec struct {
	ID          string
	Name        string
	Description string
	Price       int

	Bonuses TierBonuses
}

type BagSpec struct {
	ID          string
	Name        string
	Description string
	Price       int
	SlotCount   int
}

// TierBonuses is the five-tier occurrence multiplier vector. The zero value
// is not neutral; use NeutralBonuses for that.
type TierBonuses struct {
	Common    float64
	Uncommon  float64
	Rare      float64
	Epic      float64
	Legendary float64
}

func NeutralBonuses() TierBonuses {
	return TierBonuses{Common: 1, Uncommon: 1, Rare: 1, Epic: 1, Legendary: 1}
}

const (
	StarterRodID = "rod_basic"
	StarterBagID = "bag_9"
)

var rodCatalog = []RodSpec{
	{ID: "rod_basic", Name: "Wooden Rod", Description: "A beginner's rod.", Price: 0, CastDistance: 1.0, CatchRateBonus: 1.0, RareChance: 1.0},
	{ID: "rod_bamboo", Name: "Bamboo Rod", Description: "Supple and forgiving.", Price: 500, CastDistance: 1.1, CatchRateBonus: 1.1, RareChance: 1.0},
	{ID: "rod_carbon", Name: "Carbon Rod", Description: "Light, stiff, high performance.", Price: 2000, CastDistance: 1.2, CatchRateBonus: 1.2, RareChance: 1.1},
	{ID: "rod_master", Name: "Master's Rod", Description: "Once held by a legendary angler.", Price: 8000, CastDistance: 1.3, CatchRateBonus: 1.3, RareChance: 1.2},
	{ID: "rod_legendary", Name: "Virtuoso Rod", Description: "Only a true master can handle it.", Price: 30000, CastDistance: 1.5, CatchRateBonus: 1.5, RareChance: 1.5},
}

var baitCatalog = []BaitSpec{
	{ID: "bait_worm", Name: "Worms", Description: "Basic bait. Common fish bite more.", Price: 30, Quantity: 20,
		Bonuses: TierBonuses{Common: 2.0, Uncommon: 1.2, Rare: 1.0, Epic: 1.0, Legendary: 1.0}},
	{ID: "bait_shrimp", Name: "Small Shrimp", Description: "Works on mid-size fish.", Price: 80, Quantity: 15,
		Bonuses: TierBonuses{Common: 0.7, Uncommon: 2.5, Rare: 1.5, Epic: 1.0, Legendary: 1.0}},
	{ID: "bait_minnow", Name: "Live Minnow", Description: "Live bait for the big ones.", Price: 200, Quantity: 10,
		Bonuses: TierBonuses{Common: 0.5, Uncommon: 0.8, Rare: 2.5, Epic: 2.0, Legendary: 1.5}},
	{ID: "bait_golden", Name: "Golden Grub", Description: "Said to tempt even legends.", Price: 500, Quantity: 5,
		Bonuses: TierBonuses{Common: 0.3, Uncommon: 0.5, Rare: 2.0, Epic: 3.0, Legendary: 5.0}},
}

var lureCatalog = []LureSpec{
	{ID: "lure_spoon", Name: "Spoon", Description: "A simple flasher. Slightly better odds of rares.", Price: 800,
		Bonuses: TierBonuses{Common: 1.0, Uncommon: 1.1, Rare: 1.2, Epic: 1.1, Legendary: 1.0}},
	{ID: "lure_minnow", Name: "Minnow Plug", Description: "Imitates a baitfish. Draws larger fish.", Price: 3000,
		Bonuses: TierBonuses{Common: 0.9, Uncommon: 1.2, Rare: 1.4, Epic: 1.3, Legendary: 1.2}},
	{ID: "lure_popper", Name: "Popper", Description: "Splashes on the surface to call fish up.", Price: 5000,
		Bonuses: TierBonuses{Common: 0.85, Uncommon: 1.25, Rare: 1.5, Epic: 1.4, Legendary: 1.3}},
	{ID: "lure_spinner", Name: "Spinner", Description: "A rotating blade that catches the light.", Price: 10000,
		Bonuses: TierBonuses{Common: 0.8, Uncommon: 1.3, Rare: 1.6, Epic: 1.5, Legendary: 1.4}},
}

var bagCatalog = []BagSpec{
	{ID: "bag_9", Name: "Basic Bag", Description: "Nine slots.", Price: 0, SlotCount: 9},
	{ID: "bag_12", Name: "Sturdy Bag", Description: "Twelve slots.", Price: 1000, SlotCount: 12},
	{ID: "bag_15", Name: "Large Bag", Description: "Fifteen slots.", Price: 3000, SlotCount: 15},
	{ID: "bag_18", Name: "Angler's Pack", Description: "Eighteen slots, pro grade.", Price: 8000, SlotCount: 18},
}

func AllRods() []RodSpec   { return rodCatalog }
func AllBaits() []BaitSpec { return baitCatalog }
func AllLures() []LureSpec { return lureCatalog }
func AllBags() []BagSpec   { return bagCatalog }

func RodByID(id string) (RodSpec, bool) {
	for _, r := range rodCatalog {
		if r.ID == id {
			return r, true
		}
	}
	return RodSpec{}, false
}

func BaitByID(id string) (BaitSpec, bool) {
	for _, b := range baitCatalog {
		if b.ID == id {
			return b, true
		}
	}
	return BaitSpec{}, false
}

func LureByID(id string) (LureSpec, bool) {
	for _, l := range lureCatalog {
		if l.ID == id {
			return l, true
		}
	}
	return LureSpec{}, false
}

func BagByID(id string) (BagSpec, bool) {
	for _, b := range bagCatalog {
		if b.ID == id {
			return b, true
		}
	}
	return BagSpec{}, false
}

// NextRod returns the catalog successor of the given rod, for the shop's
// "next upgrade" hint.
func NextRod(currentID string) (RodSpec, bool) {
	for i, r := range rodCatalog {
		if r.ID == currentID && i+1 < len(rodCatalog) {
			return rodCatalog[i+1], true
		}
	}
	return RodSpec{}, false
}

// NextBag returns the catalog successor of the given bag. The catalog is
// ordered by size.
func NextBag(currentID string) (BagSpec, bool) {
	for i, b := range bagCatalog {
		if b.ID == currentID && i+1 < len(bagCatalog) {
			return bagCatalog[i+1], true
		}
	}
	return BagSpec{}, false
}
