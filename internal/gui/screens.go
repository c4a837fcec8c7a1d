//go:build cgo
// +build cgo

package gui

import (
	"context"
	"fmt"
	"time"

	"github.com/appengine-ltd/pondside/internal/game"
	"github.com/appengine-ltd/pondside/internal/store"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func recordLine(c store.Catch) string {
	name := c.SpeciesID
	if sp, ok := game.SpeciesByID(c.SpeciesID); ok {
		name = sp.Name
	}
	name = truncateForUI(name, 22)
	when := c.CaughtAt.Local().Format("Jan 2 15:04")
	if c.SizeCm > 0 {
		return fmt.Sprintf("%-22s %3d cm  %s", name, c.SizeCm, when)
	}
	return fmt.Sprintf("%-22s   -     %s", name, when)
}

// bagEntry is one distinct species in the bag with its banked count.
type bagEntry struct {
	Species game.FishSpecies
	Count   int
}

func (ui *gameUI) bagEntries() []bagEntry {
	order := make([]string, 0, len(ui.profile.Inventory))
	counts := make(map[string]int)
	for _, c := range ui.profile.Inventory {
		if counts[c.SpeciesID] == 0 {
			order = append(order, c.SpeciesID)
		}
		counts[c.SpeciesID]++
	}
	out := make([]bagEntry, 0, len(order))
	for _, id := range order {
		if sp, ok := game.SpeciesByID(id); ok {
			out = append(out, bagEntry{Species: sp, Count: counts[id]})
		}
	}
	return out
}

func (ui *gameUI) updateBag() {
	entries := ui.bagEntries()
	if rl.IsKeyPressed(rl.KeyEscape) || rl.IsKeyPressed(rl.KeyI) {
		ui.screen = screenRun
		return
	}
	if rl.IsKeyPressed(rl.KeyDown) {
		ui.bag.Cursor = wrapIndex(ui.bag.Cursor+1, max(len(entries), 1))
	}
	if rl.IsKeyPressed(rl.KeyUp) {
		ui.bag.Cursor = wrapIndex(ui.bag.Cursor-1, max(len(entries), 1))
	}
	if rl.IsKeyPressed(rl.KeyEnter) && ui.bag.Cursor < len(entries) {
		ui.session.SellOne(entries[ui.bag.Cursor].Species.ID)
		if ui.bag.Cursor >= len(ui.bagEntries()) && ui.bag.Cursor > 0 {
			ui.bag.Cursor--
		}
	}
	if rl.IsKeyPressed(rl.KeyE) {
		ui.session.SellAll()
		ui.bag.Cursor = 0
	}
	for _, m := range ui.session.DrainMessages() {
		ui.pushFeed(m)
	}
	ui.session.DrainUnlocked()
}

func (ui *gameUI) drawBag() {
	rect := rl.NewRectangle(40, 40, float32(ui.width-80), float32(ui.height-80))
	title := fmt.Sprintf("Bag  %d/%d", len(ui.profile.Inventory), ui.profile.BagCapacity())
	drawPanel(rect, title)

	entries := ui.bagEntries()
	if len(entries) == 0 {
		drawTextCentered("Nothing in the bag. Go catch something.", rect, int32(rect.Height/2), 22, colorDim)
	}
	y := int32(rect.Y) + 60
	for i, e := range entries {
		if y > int32(rect.Y+rect.Height)-80 {
			break
		}
		if i == ui.bag.Cursor {
			rl.DrawRectangleRounded(rl.NewRectangle(rect.X+10, float32(y-6), rect.Width-20, 34), 0.3, 6, rl.Fade(colorAccent, 0.2))
		}
		label := fmt.Sprintf("%s %s x%d", e.Species.Name, e.Species.Rarity.Stars(), e.Count)
		rl.DrawText(label, int32(rect.X)+20, y, 22, rarityColor(e.Species.Rarity))
		price := fmt.Sprintf("~%d G each", e.Species.Price)
		rl.DrawText(price, int32(rect.X+rect.Width)-170, y, 20, colorDim)
		y += 38
	}
	drawTextCentered("Enter sell one | E sell everything | Esc back", rect, int32(rect.Height)-40, 18, colorDim)
}

func (ui *gameUI) updateBook() {
	species := game.AllSpecies()
	if rl.IsKeyPressed(rl.KeyEscape) || rl.IsKeyPressed(rl.KeyB) {
		ui.screen = screenRun
		return
	}
	if rl.IsKeyPressed(rl.KeyDown) {
		ui.book.Cursor = wrapIndex(ui.book.Cursor+1, len(species))
	}
	if rl.IsKeyPressed(rl.KeyUp) {
		ui.book.Cursor = wrapIndex(ui.book.Cursor-1, len(species))
	}
	ui.refreshBookLog(species)
}

// refreshBookLog pulls the top logged sizes for the selected species, once
// per cursor change.
func (ui *gameUI) refreshBookLog(species []game.FishSpecies) {
	sp := species[clampInt(ui.book.Cursor, 0, len(species)-1)]
	if ui.book.LogID == sp.ID {
		return
	}
	ui.book.LogID = sp.ID
	ui.book.LogBest = nil
	if ui.catches == nil || sp.IsJunk() {
		return
	}
	if _, seen := ui.profile.Bestiary[sp.ID]; !seen {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if top, err := ui.catches.TopBySizeForSpecies(ctx, ui.profile.Name, sp.ID, 3); err == nil {
		ui.book.LogBest = top
	}
}

func (ui *gameUI) drawBook() {
	rect := rl.NewRectangle(40, 40, float32(ui.width-80), float32(ui.height-80))
	title := fmt.Sprintf("Fish Book  %d/%d", ui.profile.DiscoveredCount(), game.RealSpeciesCount())
	drawPanel(rect, title)

	left := rl.NewRectangle(rect.X, rect.Y, rect.Width*0.55, rect.Height)
	right := rl.NewRectangle(rect.X+left.Width+10, rect.Y+50, rect.Width-left.Width-30, rect.Height-70)
	rl.DrawRectangleRoundedLinesEx(right, 0.04, 8, 1.5, colorBorder)

	species := game.AllSpecies()
	perPage := int(left.Height-120) / 30
	if perPage < 1 {
		perPage = 1
	}
	page := ui.book.Cursor / perPage
	y := int32(left.Y) + 60
	for i := page * perPage; i < len(species) && i < (page+1)*perPage; i++ {
		sp := species[i]
		rec, seen := ui.profile.Bestiary[sp.ID]
		name := "???"
		clr := colorDim
		if seen {
			name = sp.Name
			clr = rarityColor(sp.Rarity)
		}
		if i == ui.book.Cursor {
			rl.DrawRectangleRounded(rl.NewRectangle(left.X+10, float32(y-5), left.Width-20, 28), 0.3, 6, rl.Fade(colorAccent, 0.2))
		}
		rl.DrawText(fmt.Sprintf("%-3d %s %s", i+1, name, sp.Rarity.Stars()), int32(left.X)+20, y, 20, clr)
		if seen && rec.Caught > 0 {
			rl.DrawText(fmt.Sprintf("x%d", rec.Caught), int32(left.X+left.Width)-70, y, 18, colorDim)
		}
		y += 30
	}

	sp := species[clampInt(ui.book.Cursor, 0, len(species)-1)]
	rec, seen := ui.profile.Bestiary[sp.ID]
	if !seen {
		drawTextCentered("Not yet caught", right, int32(right.Height/2), 22, colorDim)
	} else {
		lines := []string{
			sp.Name,
			sp.Rarity.Stars() + "  " + string(sp.Rarity),
			"",
			sp.Description,
			"",
			fmt.Sprintf("Caught: %d", rec.Caught),
		}
		if !sp.IsJunk() {
			lines = append(lines,
				fmt.Sprintf("Best size: %d cm (max %d)", rec.BestSizeCm, sp.MaxSizeCm),
				fmt.Sprintf("Base price: %d G", sp.Price),
			)
			if len(ui.book.LogBest) > 0 {
				lines = append(lines, "", "Logged sizes:")
				for _, c := range ui.book.LogBest {
					lines = append(lines, fmt.Sprintf("  %d cm  %s", c.SizeCm, c.CaughtAt.Format("2006-01-02")))
				}
			}
		} else {
			lines = append(lines, fmt.Sprintf("Scrap value: %d G", sp.Price))
		}
		drawLines(right, 30, 20, lines, colorText)
	}
	drawTextCentered("Arrows browse | Esc back", rect, int32(rect.Height)-40, 18, colorDim)
}

func (ui *gameUI) shopRows() int {
	switch ui.shop.Tab {
	case shopTabRods:
		return len(game.AllRods())
	case shopTabBaits:
		return len(game.AllBaits())
	case shopTabLures:
		return len(game.AllLures())
	default:
		return 1
	}
}

func (ui *gameUI) updateShop() {
	if rl.IsKeyPressed(rl.KeyEscape) || rl.IsKeyPressed(rl.KeyS) {
		ui.screen = screenRun
		return
	}
	if rl.IsKeyPressed(rl.KeyLeft) {
		ui.shop.Tab = shopTab(wrapIndex(int(ui.shop.Tab)-1, 4))
		ui.shop.Cursor = 0
	}
	if rl.IsKeyPressed(rl.KeyRight) {
		ui.shop.Tab = shopTab(wrapIndex(int(ui.shop.Tab)+1, 4))
		ui.shop.Cursor = 0
	}
	rows := ui.shopRows()
	if rl.IsKeyPressed(rl.KeyDown) {
		ui.shop.Cursor = wrapIndex(ui.shop.Cursor+1, rows)
	}
	if rl.IsKeyPressed(rl.KeyUp) {
		ui.shop.Cursor = wrapIndex(ui.shop.Cursor-1, rows)
	}
	if rl.IsKeyPressed(rl.KeyEnter) {
		ui.shopBuy()
	}
	for _, m := range ui.session.DrainMessages() {
		ui.pushFeed(m)
	}
	ui.session.DrainUnlocked()
}

// shopBuy mirrors the counter: rods equip for free once owned, bait restocks
// and auto-equips, lures toggle, the bag upgrades straight to the next size.
func (ui *gameUI) shopBuy() {
	switch ui.shop.Tab {
	case shopTabRods:
		rod := game.AllRods()[ui.shop.Cursor]
		if ui.profile.OwnsRod(rod.ID) {
			if err := ui.profile.EquipRod(rod.ID); err == nil {
				ui.pushFeed("Equipped " + rod.Name + ".")
			}
			return
		}
		if err := ui.session.Purchase(func(p *game.Profile) error { return p.BuyRod(rod.ID) }); err == nil {
			ui.pushFeed("Bought " + rod.Name + "!")
		}
	case shopTabBaits:
		bait := game.AllBaits()[ui.shop.Cursor]
		if err := ui.session.Purchase(func(p *game.Profile) error { return p.BuyBait(bait.ID) }); err == nil {
			ui.pushFeed(fmt.Sprintf("Bought %d %s!", bait.Quantity, bait.Name))
		}
	case shopTabLures:
		lure := game.AllLures()[ui.shop.Cursor]
		if ui.profile.OwnsLure(lure.ID) {
			_ = ui.profile.ToggleLure(lure.ID)
			if ui.profile.EquippedLureID == lure.ID {
				ui.pushFeed("Attached " + lure.Name + ".")
			} else {
				ui.pushFeed("Removed " + lure.Name + ".")
			}
			return
		}
		if err := ui.session.Purchase(func(p *game.Profile) error { return p.BuyLure(lure.ID) }); err == nil {
			ui.pushFeed("Bought " + lure.Name + "!")
		}
	case shopTabBags:
		next, ok := game.NextBag(ui.profile.BagID)
		if !ok {
			ui.pushFeed("Already carrying the largest bag.")
			return
		}
		if err := ui.session.Purchase(func(p *game.Profile) error { return p.BuyBagUpgrade() }); err == nil {
			ui.pushFeed(fmt.Sprintf("Bought %s! Now %d slots.", next.Name, next.SlotCount))
		}
	}
}

func (ui *gameUI) drawShop() {
	rect := rl.NewRectangle(40, 40, float32(ui.width-80), float32(ui.height-80))
	drawPanel(rect, fmt.Sprintf("Shop  (%d G)", ui.profile.Currency))

	tabs := []string{"Rods", "Bait", "Lures", "Bags"}
	x := int32(rect.X) + 20
	for i, tab := range tabs {
		clr := colorDim
		if shopTab(i) == ui.shop.Tab {
			clr = colorAccent
		}
		rl.DrawText(tab, x, int32(rect.Y)+44, 24, clr)
		x += rl.MeasureText(tab, 24) + 36
	}

	y := int32(rect.Y) + 92
	row := func(i int, name, detail string, price int, owned, equipped bool) {
		if i == ui.shop.Cursor {
			rl.DrawRectangleRounded(rl.NewRectangle(rect.X+10, float32(y-6), rect.Width-20, 58), 0.2, 6, rl.Fade(colorAccent, 0.2))
		}
		label := name
		if equipped {
			label += "  [equipped]"
		} else if owned {
			label += "  [owned]"
		}
		rl.DrawText(label, int32(rect.X)+20, y, 23, colorText)
		rl.DrawText(detail, int32(rect.X)+20, y+26, 18, colorDim)
		if !owned {
			rl.DrawText(fmt.Sprintf("%d G", price), int32(rect.X+rect.Width)-140, y, 22, colorWarn)
		}
		y += 64
	}

	switch ui.shop.Tab {
	case shopTabRods:
		for i, rod := range game.AllRods() {
			detail := fmt.Sprintf("%s  cast x%.1f | hold x%.1f | rare x%.1f", rod.Description, rod.CastDistance, rod.CatchRateBonus, rod.RareChance)
			row(i, rod.Name, detail, rod.Price, ui.profile.OwnsRod(rod.ID), ui.profile.EquippedRodID == rod.ID)
		}
	case shopTabBaits:
		for i, bait := range game.AllBaits() {
			detail := fmt.Sprintf("%s  (%d per pack, %d left)", bait.Description, bait.Quantity, ui.profile.BaitCounts[bait.ID])
			row(i, bait.Name, detail, bait.Price, false, ui.profile.EquippedBaitID == bait.ID)
		}
	case shopTabLures:
		for i, lure := range game.AllLures() {
			row(i, lure.Name, lure.Description, lure.Price, ui.profile.OwnsLure(lure.ID), ui.profile.EquippedLureID == lure.ID)
		}
	case shopTabBags:
		if next, ok := game.NextBag(ui.profile.BagID); ok {
			detail := fmt.Sprintf("%s  (now %d slots)", next.Description, ui.profile.BagCapacity())
			row(0, next.Name, detail, next.Price, false, false)
		} else {
			drawTextCentered("You carry the largest bag already.", rect, int32(rect.Height/2), 22, colorDim)
		}
	}
	drawTextCentered("Left/Right tabs | Enter buy/equip | Esc back", rect, int32(rect.Height)-40, 18, colorDim)
}

func (ui *gameUI) updateAwards() {
	defs := game.AllAchievements()
	if rl.IsKeyPressed(rl.KeyEscape) || rl.IsKeyPressed(rl.KeyA) {
		ui.screen = screenRun
		return
	}
	if rl.IsKeyPressed(rl.KeyDown) {
		ui.awards.Cursor = wrapIndex(ui.awards.Cursor+1, len(defs))
	}
	if rl.IsKeyPressed(rl.KeyUp) {
		ui.awards.Cursor = wrapIndex(ui.awards.Cursor-1, len(defs))
	}
}

func (ui *gameUI) drawAwards() {
	rect := rl.NewRectangle(40, 40, float32(ui.width-80), float32(ui.height-80))
	defs := game.AllAchievements()
	unlockedCount := 0
	for _, a := range defs {
		if _, _, done := game.AchievementProgress(ui.profile, a); done {
			unlockedCount++
		}
	}
	drawPanel(rect, fmt.Sprintf("Achievements  %d/%d", unlockedCount, len(defs)))

	perPage := int(rect.Height-140) / 46
	if perPage < 1 {
		perPage = 1
	}
	page := ui.awards.Cursor / perPage
	y := int32(rect.Y) + 60
	for i := page * perPage; i < len(defs) && i < (page+1)*perPage; i++ {
		a := defs[i]
		progress, target, unlocked := game.AchievementProgress(ui.profile, a)
		if i == ui.awards.Cursor {
			rl.DrawRectangleRounded(rl.NewRectangle(rect.X+10, float32(y-6), rect.Width-20, 42), 0.2, 6, rl.Fade(colorAccent, 0.2))
		}
		clr := colorDim
		mark := "[ ]"
		if unlocked {
			clr = colorText
			mark = "[x]"
		}
		rl.DrawText(fmt.Sprintf("%s %s", mark, a.Name), int32(rect.X)+20, y, 22, clr)
		rl.DrawText(a.Description, int32(rect.X)+240, y+2, 18, colorDim)
		rl.DrawText(fmt.Sprintf("%d/%d", progress, target), int32(rect.X+rect.Width)-130, y, 20, clr)
		y += 46
	}
	drawTextCentered("Arrows browse | Esc back", rect, int32(rect.Height)-40, 18, colorDim)
}

func (ui *gameUI) openRecords(from screen) {
	ui.records = recordsState{}
	if ui.catches == nil {
		ui.records.Err = fmt.Errorf("catch log disabled")
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		top, err := ui.catches.TopBySize(ctx, ui.profile.Name, 10)
		if err == nil {
			ui.records.Entries = top
			ui.records.Recent, err = ui.catches.Recent(ctx, ui.profile.Name, 10)
		}
		ui.records.Err = err
	}
	ui.recordsReturn = from
	ui.screen = screenRecords
}

func (ui *gameUI) updateRecords() {
	if rl.IsKeyPressed(rl.KeyEscape) || rl.IsKeyPressed(rl.KeyR) || rl.IsKeyPressed(rl.KeyEnter) {
		ui.screen = ui.recordsReturn
	}
}

func (ui *gameUI) drawRecords() {
	rect := rl.NewRectangle(40, 40, float32(ui.width-80), float32(ui.height-80))
	drawPanel(rect, "Records")

	if ui.records.Err != nil {
		drawTextCentered(ui.records.Err.Error(), rect, int32(rect.Height/2), 22, colorWarn)
		drawTextCentered("Esc back", rect, int32(rect.Height)-40, 18, colorDim)
		return
	}

	left := rl.NewRectangle(rect.X, rect.Y, rect.Width/2, rect.Height)
	right := rl.NewRectangle(rect.X+rect.Width/2, rect.Y, rect.Width/2, rect.Height)
	rl.DrawText("Biggest Catches", int32(left.X)+20, int32(left.Y)+50, 24, colorAccent)
	rl.DrawText("Recent Catches", int32(right.X)+20, int32(right.Y)+50, 24, colorAccent)

	y := int32(left.Y) + 90
	for _, c := range ui.records.Entries {
		rl.DrawText(recordLine(c), int32(left.X)+20, y, 20, colorText)
		y += 30
	}
	if len(ui.records.Entries) == 0 {
		rl.DrawText("No catches logged yet.", int32(left.X)+20, y, 20, colorDim)
	}

	y = int32(right.Y) + 90
	for _, c := range ui.records.Recent {
		rl.DrawText(recordLine(c), int32(right.X)+20, y, 20, colorText)
		y += 30
	}
	if len(ui.records.Recent) == 0 {
		rl.DrawText("No catches logged yet.", int32(right.X)+20, y, 20, colorDim)
	}

	drawTextCentered("Esc back", rect, int32(rect.Height)-40, 18, colorDim)
}
