package game

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// AllRarities is the canonical tier order. Weighted selection subtracts tier
// weights in this order, so it must stay stable.
var AllRarities = []Rarity{
	RarityCommon,
	RarityUncommon,
	RarityRare,
	RarityEpic,
	RarityLegendary,
}

type RGB struct {
	R, G, B uint8
}

// RaritySetting carries the global occurrence weight and the display
// treatment for one tier. Weights sum to 100.
type RaritySetting struct {
	Weight float64
	Color  RGB
	Stars  int
}

var raritySettings = map[Rarity]RaritySetting{
	RarityCommon:    {Weight: 50, Color: RGB{170, 170, 170}, Stars: 1},
	RarityUncommon:  {Weight: 30, Color: RGB{85, 255, 85}, Stars: 2},
	RarityRare:      {Weight: 14, Color: RGB{85, 85, 255}, Stars: 3},
	RarityEpic:      {Weight: 5, Color: RGB{170, 85, 255}, Stars: 4},
	RarityLegendary: {Weight: 1, Color: RGB{255, 170, 0}, Stars: 5},
}

func SettingFor(r Rarity) RaritySetting {
	if s, ok := raritySettings[r]; ok {
		return s
	}
	return raritySettings[RarityCommon]
}

func (r Rarity) Stars() string {
	n := SettingFor(r).Stars
	out := make([]rune, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, '*')
	}
	return string(out)
}

func (r Rarity) Valid() bool {
	_, ok := raritySettings[r]
	return ok
}

// ExpForRarity is the experience granted per successful catch. Unknown tiers
// fall back to the common award rather than zero.
func ExpForRarity(r Rarity) int {
	switch r {
	case RarityCommon:
		return 10
	case RarityUncommon:
		return 25
	case RarityRare:
		return 50
	case RarityEpic:
		return 100
	case RarityLegendary:
		return 200
	default:
		return 10
	}
}
