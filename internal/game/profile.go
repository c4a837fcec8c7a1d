package game

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// CaughtFish is one bag slot. Junk entries carry SizeCm 0.
type CaughtFish struct {
	SpeciesID string `json:"species_id"`
	SizeCm    int    `json:"size_cm"`
}

// SpeciesRecord is the bestiary entry for one discovered species.
type SpeciesRecord struct {
	Caught     int `json:"caught"`
	BestSizeCm int `json:"best_size_cm"`
}

// AchievementState tracks one achievement across evaluations. Progress is
// re-recorded every evaluation; Unlocked flips once and stays set.
type AchievementState struct {
	Unlocked bool `json:"unlocked"`
	Progress int  `json:"progress"`
}

// Profile is the whole persistent state of one player. It is plain data with
// methods; nothing in it touches the screen or the clock.
type Profile struct {
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Exp      int    `json:"exp"`
	Currency int    `json:"currency"`

	OwnedRods      []string       `json:"owned_rods"`
	EquippedRodID  string         `json:"equipped_rod_id"`
	BaitCounts     map[string]int `json:"bait_counts"`
	EquippedBaitID string         `json:"equipped_bait_id"`
	OwnedLures     []string       `json:"owned_lures"`
	EquippedLureID string         `json:"equipped_lure_id"`
	BagID          string         `json:"bag_id"`

	Inventory []CaughtFish                 `json:"inventory"`
	Bestiary  map[string]SpeciesRecord     `json:"bestiary"`
	Awards    map[string]*AchievementState `json:"awards"`

	TotalCatches        int `json:"total_catches"`
	TotalCurrencyEarned int `json:"total_currency_earned"`
	ConsecutiveCatches  int `json:"consecutive_catches"`
	JunkCaught          int `json:"junk_caught"`
}

// NewProfile returns a fresh player: level 1, 100 G, the starter rod owned
// and equipped, the smallest bag, nothing caught.
func NewProfile(name string) *Profile {
	return &Profile{
		Name:          name,
		Level:         1,
		Currency:      100,
		OwnedRods:     []string{StarterRodID},
		EquippedRodID: StarterRodID,
		BaitCounts:    make(map[string]int),
		BagID:         StarterBagID,
		Bestiary:      make(map[string]SpeciesRecord),
		Awards:        make(map[string]*AchievementState),
	}
}

// Normalize repairs maps and defaults that an older or hand-edited save may
// lack, so callers never see nil maps or an empty equipped rod.
func (p *Profile) Normalize() {
	if p.Level < 1 {
		p.Level = 1
	}
	if p.BaitCounts == nil {
		p.BaitCounts = make(map[string]int)
	}
	if p.Bestiary == nil {
		p.Bestiary = make(map[string]SpeciesRecord)
	}
	if p.Awards == nil {
		p.Awards = make(map[string]*AchievementState)
	}
	if len(p.OwnedRods) == 0 {
		p.OwnedRods = []string{StarterRodID}
	}
	if p.EquippedRodID == "" {
		p.EquippedRodID = StarterRodID
	}
	if _, ok := BagByID(p.BagID); !ok {
		p.BagID = StarterBagID
	}
}

// BagCapacity reports the slot count of the equipped bag.
func (p *Profile) BagCapacity() int {
	if bag, ok := BagByID(p.BagID); ok {
		return bag.SlotCount
	}
	return bagCatalog[0].SlotCount
}

// OwnsRod reports whether the rod has been bought.
func (p *Profile) OwnsRod(id string) bool {
	for _, r := range p.OwnedRods {
		if r == id {
			return true
		}
	}
	return false
}

// OwnsLure reports whether the lure has been bought.
func (p *Profile) OwnsLure(id string) bool {
	for _, l := range p.OwnedLures {
		if l == id {
			return true
		}
	}
	return false
}

// EquippedRod resolves the equipped rod spec, falling back to the starter rod
// if the save references an unknown id.
func (p *Profile) EquippedRod() RodSpec {
	if rod, ok := RodByID(p.EquippedRodID); ok {
		return rod
	}
	rod, _ := RodByID(StarterRodID)
	return rod
}

// RollSize draws a catch size uniformly between half and full grown for the
// species. Junk has no size.
func RollSize(rng *rand.Rand, sp FishSpecies) int {
	if sp.IsJunk() || sp.MaxSizeCm <= 0 {
		return 0
	}
	ratio := 0.5 + rng.Float64()*0.5
	return int(math.Round(ratio * float64(sp.MaxSizeCm)))
}

// SalePrice values a catch: base price plus up to half again for a fully
// grown specimen. Junk always sells at base.
func SalePrice(sp FishSpecies, sizeCm int) int {
	if sp.IsJunk() || sp.MaxSizeCm <= 0 {
		return sp.Price
	}
	ratio := float64(sizeCm) / float64(sp.MaxSizeCm)
	return int(math.Round(float64(sp.Price) + ratio*0.5*float64(sp.Price)))
}

// CatchResult reports what ResolveCatch did with a landed fish.
type CatchResult struct {
	Species   FishSpecies
	SizeCm    int
	NewRecord bool
	AutoSold  bool
	SoldFor   int
	ExpGained int
	LeveledUp bool
	NewLevel  int
}

// ResolveCatch applies one successful landing: rolls a size, banks the fish
// (or auto-sells it at base price when the bag is full), updates the
// bestiary, grants experience, and advances the catch counters. Auto-sold
// catches still count for discovery, totals, and experience.
func (p *Profile) ResolveCatch(rng *rand.Rand, sp FishSpecies) CatchResult {
	res := CatchResult{Species: sp}
	res.SizeCm = RollSize(rng, sp)

	rec := p.Bestiary[sp.ID]
	rec.Caught++
	if res.SizeCm > rec.BestSizeCm {
		rec.BestSizeCm = res.SizeCm
		res.NewRecord = rec.Caught > 1
	}
	p.Bestiary[sp.ID] = rec

	if len(p.Inventory) >= p.BagCapacity() {
		res.AutoSold = true
		res.SoldFor = sp.Price
		p.Currency += sp.Price
		p.TotalCurrencyEarned += sp.Price
	} else {
		p.Inventory = append(p.Inventory, CaughtFish{SpeciesID: sp.ID, SizeCm: res.SizeCm})
	}

	p.TotalCatches++
	p.ConsecutiveCatches++
	if sp.IsJunk() {
		p.JunkCaught++
	}

	res.ExpGained = ExpForRarity(sp.Rarity)
	before := p.Level
	p.Exp += res.ExpGained
	p.Level = LevelForExp(p.Exp)
	res.LeveledUp = p.Level > before
	res.NewLevel = p.Level
	return res
}

// RegisterEscape resets the success streak after a fish gets away.
func (p *Profile) RegisterEscape() {
	p.ConsecutiveCatches = 0
}

// GrantExp adds experience from a non-catch source and recomputes the level.
func (p *Profile) GrantExp(exp int) (leveledUp bool) {
	before := p.Level
	p.Exp += exp
	p.Level = LevelForExp(p.Exp)
	return p.Level > before
}

// SellOne sells the oldest banked specimen of the species and reports the
// price. Bag order is first-in first-out.
func (p *Profile) SellOne(speciesID string) (int, error) {
	for i, c := range p.Inventory {
		if c.SpeciesID != speciesID {
			continue
		}
		sp, ok := SpeciesByID(speciesID)
		if !ok {
			return 0, fmt.Errorf("sell: unknown species %q", speciesID)
		}
		price := SalePrice(sp, c.SizeCm)
		p.Inventory = append(p.Inventory[:i], p.Inventory[i+1:]...)
		p.Currency += price
		p.TotalCurrencyEarned += price
		return price, nil
	}
	return 0, fmt.Errorf("sell: no %q in bag", speciesID)
}

// SellAll empties the bag and reports the total paid out.
func (p *Profile) SellAll() int {
	total := 0
	for _, c := range p.Inventory {
		sp, ok := SpeciesByID(c.SpeciesID)
		if !ok {
			continue
		}
		total += SalePrice(sp, c.SizeCm)
	}
	p.Inventory = p.Inventory[:0]
	p.Currency += total
	p.TotalCurrencyEarned += total
	return total
}

// InventoryCount reports banked specimens of one species.
func (p *Profile) InventoryCount(speciesID string) int {
	n := 0
	for _, c := range p.Inventory {
		if c.SpeciesID == speciesID {
			n++
		}
	}
	return n
}

// ConsumeBait spends one unit of the equipped bait, unequipping it when the
// last unit goes. It is a no-op with no bait equipped.
func (p *Profile) ConsumeBait() {
	if p.EquippedBaitID == "" {
		return
	}
	n := p.BaitCounts[p.EquippedBaitID]
	if n <= 1 {
		delete(p.BaitCounts, p.EquippedBaitID)
		p.EquippedBaitID = ""
		return
	}
	p.BaitCounts[p.EquippedBaitID] = n - 1
}

// BuyRod buys the rod and equips it. Owning a rod already is an error; the
// shop equips owned rods for free via EquipRod.
func (p *Profile) BuyRod(id string) error {
	rod, ok := RodByID(id)
	if !ok {
		return fmt.Errorf("buy rod: unknown rod %q", id)
	}
	if p.OwnsRod(id) {
		return fmt.Errorf("buy rod: already own %q", id)
	}
	if p.Currency < rod.Price {
		return fmt.Errorf("buy rod: need %d G, have %d", rod.Price, p.Currency)
	}
	p.Currency -= rod.Price
	p.OwnedRods = append(p.OwnedRods, id)
	p.EquippedRodID = id
	return nil
}

// EquipRod switches to an owned rod.
func (p *Profile) EquipRod(id string) error {
	if !p.OwnsRod(id) {
		return fmt.Errorf("equip rod: do not own %q", id)
	}
	p.EquippedRodID = id
	return nil
}

// BuyBait buys one pack of bait, adds its quantity to the pouch, and equips
// it. Bait is consumable, so repeat purchases stack.
func (p *Profile) BuyBait(id string) error {
	bait, ok := BaitByID(id)
	if !ok {
		return fmt.Errorf("buy bait: unknown bait %q", id)
	}
	if p.Currency < bait.Price {
		return fmt.Errorf("buy bait: need %d G, have %d", bait.Price, p.Currency)
	}
	p.Currency -= bait.Price
	p.BaitCounts[id] += bait.Quantity
	p.EquippedBaitID = id
	return nil
}

// EquipBait switches the equipped bait to one with remaining units, or
// unequips with an empty id.
func (p *Profile) EquipBait(id string) error {
	if id == "" {
		p.EquippedBaitID = ""
		return nil
	}
	if p.BaitCounts[id] <= 0 {
		return fmt.Errorf("equip bait: none of %q left", id)
	}
	p.EquippedBaitID = id
	return nil
}

// BuyLure buys the lure and equips it.
func (p *Profile) BuyLure(id string) error {
	lure, ok := LureByID(id)
	if !ok {
		return fmt.Errorf("buy lure: unknown lure %q", id)
	}
	if p.OwnsLure(id) {
		return fmt.Errorf("buy lure: already own %q", id)
	}
	if p.Currency < lure.Price {
		return fmt.Errorf("buy lure: need %d G, have %d", lure.Price, p.Currency)
	}
	p.Currency -= lure.Price
	p.OwnedLures = append(p.OwnedLures, id)
	p.EquippedLureID = id
	return nil
}

// ToggleLure equips an owned lure, or unequips it if it is already on.
func (p *Profile) ToggleLure(id string) error {
	if !p.OwnsLure(id) {
		return fmt.Errorf("equip lure: do not own %q", id)
	}
	if p.EquippedLureID == id {
		p.EquippedLureID = ""
	} else {
		p.EquippedLureID = id
	}
	return nil
}

// BuyBagUpgrade buys the next bag size up. Buying with the largest bag
// equipped is an error.
func (p *Profile) BuyBagUpgrade() error {
	next, ok := NextBag(p.BagID)
	if !ok {
		return fmt.Errorf("buy bag: already carrying the largest bag")
	}
	if p.Currency < next.Price {
		return fmt.Errorf("buy bag: need %d G, have %d", next.Price, p.Currency)
	}
	p.Currency -= next.Price
	p.BagID = next.ID
	return nil
}

// DiscoveredCount reports distinct real species in the bestiary. Junk does
// not count toward the collection.
func (p *Profile) DiscoveredCount() int {
	n := 0
	for id := range p.Bestiary {
		if !IsJunkID(id) {
			n++
		}
	}
	return n
}

// DiscoveredOfRarity reports distinct discovered species of one tier.
func (p *Profile) DiscoveredOfRarity(r Rarity) int {
	n := 0
	for id := range p.Bestiary {
		sp, ok := SpeciesByID(id)
		if ok && !sp.IsJunk() && sp.Rarity == r {
			n++
		}
	}
	return n
}
