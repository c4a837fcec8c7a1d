//go:build cgo
// +build cgo

package gui

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/appengine-ltd/pondside/internal/game"
	"github.com/appengine-ltd/pondside/internal/parser"
	"github.com/appengine-ltd/pondside/internal/store"
	"github.com/appengine-ltd/pondside/internal/world"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const walkSpeed = 220.0

func (ui *gameUI) updateRun(delta time.Duration) {
	dt := delta.Seconds()
	if dt > 0.1 {
		dt = 0.1
	}

	for i := range ui.feed {
		ui.feed[i].TTL -= dt
	}
	for len(ui.feed) > 0 && ui.feed[0].TTL <= 0 {
		ui.feed = ui.feed[1:]
	}

	if ui.console.Open {
		ui.updateConsole()
		return
	}

	state := ui.session.State()

	if state == game.StateIdle {
		if ui.handleRunHotkeys() {
			return
		}
		ui.handleMovement(dt)
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		ui.session.ConfirmPressed()
	}
	if rl.IsKeyReleased(rl.KeySpace) {
		ui.session.ConfirmReleased()
	}
	ui.session.Tick(dt, rl.IsKeyDown(rl.KeySpace))

	for _, m := range ui.session.DrainMessages() {
		ui.pushFeed(m)
	}
	ui.session.DrainUnlocked()
	ui.logNewCatch()
}

// handleRunHotkeys opens overlay screens. Only reachable while idle so a
// menu can never swallow a bite.
func (ui *gameUI) handleRunHotkeys() bool {
	switch {
	case rl.IsKeyPressed(rl.KeyEscape):
		ui.screen = screenMenu
	case rl.IsKeyPressed(rl.KeyI):
		ui.bag.Cursor = 0
		ui.screen = screenBag
	case rl.IsKeyPressed(rl.KeyB):
		ui.book.Cursor = 0
		ui.screen = screenBook
	case rl.IsKeyPressed(rl.KeyS):
		ui.screen = screenShop
	case rl.IsKeyPressed(rl.KeyA):
		ui.awards.Cursor = 0
		ui.screen = screenAwards
	case rl.IsKeyPressed(rl.KeyR):
		ui.openRecords(screenRun)
	case rl.IsKeyPressed(rl.KeyE):
		ui.session.SellAll()
	case rl.IsKeyPressed(rl.KeyT):
		ui.console.Open = true
		ui.console.Buffer = ""
		ui.console.Reply = ""
	default:
		return false
	}
	return true
}

func (ui *gameUI) handleMovement(dt float64) {
	var dx, dy float64
	if rl.IsKeyDown(rl.KeyLeft) {
		dx -= 1
		ui.facing = world.FaceLeft
	} else if rl.IsKeyDown(rl.KeyRight) {
		dx += 1
		ui.facing = world.FaceRight
	}
	if rl.IsKeyDown(rl.KeyUp) {
		dy -= 1
		ui.facing = world.FaceUp
	} else if rl.IsKeyDown(rl.KeyDown) {
		dy += 1
		ui.facing = world.FaceDown
	}
	if dx == 0 && dy == 0 {
		return
	}
	if dx != 0 && dy != 0 {
		norm := math.Sqrt2 / 2
		dx *= norm
		dy *= norm
	}
	next := world.Vec{X: ui.playerPos.X + dx*walkSpeed*dt, Y: ui.playerPos.Y + dy*walkSpeed*dt}
	next = world.ClampToMap(next)
	if world.InsideWater(next) {
		next = world.PushOut(next)
	}
	ui.playerPos = next
}

// logNewCatch appends each landed catch to the SQLite log exactly once.
func (ui *gameUI) logNewCatch() {
	last := ui.session.LastCatch()
	if last == nil || last == ui.loggedCatch || ui.catches == nil {
		return
	}
	ui.loggedCatch = last
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	err := ui.catches.Add(ctx, store.Catch{
		Profile:   ui.profile.Name,
		SpeciesID: last.Species.ID,
		SizeCm:    last.SizeCm,
		AutoSold:  last.AutoSold,
	})
	if err != nil {
		ui.pushFeed("catch log write failed: " + err.Error())
	}
}

func (ui *gameUI) updateConsole() {
	captureTextInput(&ui.console.Buffer, 80)
	if rl.IsKeyPressed(rl.KeyEscape) {
		ui.console.Open = false
		return
	}
	if !rl.IsKeyPressed(rl.KeyEnter) {
		return
	}
	line := strings.TrimSpace(ui.console.Buffer)
	ui.console.Buffer = ""
	if line == "" {
		ui.console.Open = false
		return
	}
	ui.console.Reply = ui.runConsoleCommand(line)
}

func (ui *gameUI) consoleContext() parser.ParseContext {
	known := make([]string, 0, 32)
	for _, c := range ui.profile.Inventory {
		if sp, ok := game.SpeciesByID(c.SpeciesID); ok {
			known = append(known, sp.Name)
		}
	}
	for _, id := range ui.profile.OwnedRods {
		if rod, ok := game.RodByID(id); ok {
			known = append(known, rod.Name)
		}
	}
	for id := range ui.profile.BaitCounts {
		if bait, ok := game.BaitByID(id); ok {
			known = append(known, bait.Name)
		}
	}
	for _, id := range ui.profile.OwnedLures {
		if lure, ok := game.LureByID(id); ok {
			known = append(known, lure.Name)
		}
	}
	return parser.ParseContext{KnownItems: known}
}

func (ui *gameUI) runConsoleCommand(line string) string {
	intent := ui.parse.Parse(ui.consoleContext(), line)
	if intent.Clarify != nil {
		return intent.Clarify.Prompt
	}

	switch intent.Verb {
	case "help":
		return "sell [fish] | sell all | equip <rod> | bait <name> | lure <name> | bag | book | shop | stats | records | achievements | menu"
	case "sell":
		if intent.Quantity != nil && intent.Quantity.All {
			ui.session.SellAll()
			return lastFeedText(ui)
		}
		if len(intent.Args) == 0 {
			ui.session.SellAll()
			return lastFeedText(ui)
		}
		sp, ok := speciesByName(intent.Args[0])
		if !ok {
			return fmt.Sprintf("I don't know a fish called %q.", intent.Args[0])
		}
		ui.session.SellOne(sp.ID)
		return lastFeedText(ui)
	case "sell all":
		ui.session.SellAll()
		return lastFeedText(ui)
	case "equip":
		return ui.consoleEquip(intent.Args[0])
	case "bait":
		if len(intent.Args) == 0 {
			return baitSummary(ui.profile)
		}
		return ui.consoleEquipBait(intent.Args[0])
	case "lure":
		if len(intent.Args) == 0 {
			return lureSummary(ui.profile)
		}
		return ui.consoleToggleLure(intent.Args[0])
	case "bag":
		ui.console.Open = false
		ui.screen = screenBag
		return ""
	case "book":
		ui.console.Open = false
		ui.screen = screenBook
		return ""
	case "shop":
		ui.console.Open = false
		ui.screen = screenShop
		return ""
	case "achievements":
		ui.console.Open = false
		ui.screen = screenAwards
		return ""
	case "records":
		ui.console.Open = false
		ui.openRecords(screenRun)
		return ""
	case "stats":
		return statsSummary(ui.profile)
	case "menu":
		ui.console.Open = false
		ui.screen = screenMenu
		return ""
	}
	return "Nothing happened."
}

func (ui *gameUI) consoleEquip(name string) string {
	for _, rod := range game.AllRods() {
		if !strings.EqualFold(rod.Name, name) {
			continue
		}
		if err := ui.profile.EquipRod(rod.ID); err != nil {
			return err.Error()
		}
		return "Equipped " + rod.Name + "."
	}
	return fmt.Sprintf("No rod called %q.", name)
}

func (ui *gameUI) consoleEquipBait(name string) string {
	for _, bait := range game.AllBaits() {
		if !strings.EqualFold(bait.Name, name) {
			continue
		}
		if err := ui.profile.EquipBait(bait.ID); err != nil {
			return err.Error()
		}
		return fmt.Sprintf("Using %s (%d left).", bait.Name, ui.profile.BaitCounts[bait.ID])
	}
	return fmt.Sprintf("No bait called %q.", name)
}

func (ui *gameUI) consoleToggleLure(name string) string {
	for _, lure := range game.AllLures() {
		if !strings.EqualFold(lure.Name, name) {
			continue
		}
		if err := ui.profile.ToggleLure(lure.ID); err != nil {
			return err.Error()
		}
		if ui.profile.EquippedLureID == lure.ID {
			return "Attached " + lure.Name + "."
		}
		return "Removed " + lure.Name + "."
	}
	return fmt.Sprintf("No lure called %q.", name)
}

func speciesByName(name string) (game.FishSpecies, bool) {
	for _, sp := range game.AllSpecies() {
		if strings.EqualFold(sp.Name, name) {
			return sp, true
		}
	}
	return game.FishSpecies{}, false
}

func lastFeedText(ui *gameUI) string {
	for _, m := range ui.session.DrainMessages() {
		ui.pushFeed(m)
	}
	if len(ui.feed) == 0 {
		return ""
	}
	return ui.feed[len(ui.feed)-1].Text
}

func baitSummary(p *game.Profile) string {
	if p.EquippedBaitID == "" {
		return "No bait equipped."
	}
	bait, ok := game.BaitByID(p.EquippedBaitID)
	if !ok {
		return "No bait equipped."
	}
	return fmt.Sprintf("Using %s (%d left).", bait.Name, p.BaitCounts[bait.ID])
}

func lureSummary(p *game.Profile) string {
	if p.EquippedLureID == "" {
		return "No lure attached."
	}
	if lure, ok := game.LureByID(p.EquippedLureID); ok {
		return "Using " + lure.Name + "."
	}
	return "No lure attached."
}

func statsSummary(p *game.Profile) string {
	into, span := game.ExpProgress(p.Exp)
	return fmt.Sprintf("Lv %d (%d/%d exp) | %d G | %d caught | streak %d | earned %d G",
		p.Level, into, span, p.Currency, p.TotalCatches, p.ConsecutiveCatches, p.TotalCurrencyEarned)
}

// --- rendering ---

func (ui *gameUI) cameraOffset() (float32, float32) {
	ox := float32(ui.width)/2 - float32(ui.playerPos.X)
	oy := float32(ui.height)/2 - float32(ui.playerPos.Y)
	return ox, oy
}

func (ui *gameUI) drawRun() {
	ox, oy := ui.cameraOffset()

	rl.DrawRectangle(int32(ox), int32(oy), world.MapWidth, world.MapHeight, colorGrass)
	for _, a := range world.Areas() {
		if a.IsEllipse() {
			rl.DrawEllipse(int32(float32(a.X)+ox), int32(float32(a.Y)+oy), float32(a.Width/2), float32(a.Height/2), colorWater)
		} else {
			rl.DrawRectangle(int32(float32(a.X)+ox), int32(float32(a.Y)+oy), int32(a.Width), int32(a.Height), colorWater)
		}
	}

	px := int32(float32(ui.playerPos.X) + ox)
	py := int32(float32(ui.playerPos.Y) + oy)
	rl.DrawRectangle(px-12, py-12, 24, 24, colorPlayer)
	rl.DrawRectangleLines(px-12, py-12, 24, 24, colorBorder)

	state := ui.session.State()

	if state == game.StateWaiting || state == game.StateBite || state == game.StateFighting {
		end := world.CastPoint(ui.playerPos, ui.facing, ui.session.CastDistance())
		ex := float32(end.X) + ox
		ey := float32(end.Y) + oy
		drawUILine(float32(px), float32(py), ex, ey, 2, rl.White)
		rl.DrawCircle(int32(ex), int32(ey), 6, rl.Red)
		rl.DrawCircleLines(int32(ex), int32(ey), 6, rl.White)
	}

	if state == game.StateBite {
		pulse := 1 + float32(math.Sin(float64(time.Now().UnixMilli())/50))*0.2
		rl.DrawText("!", px-4, py-58-int32(10*pulse), int32(40*pulse), colorWarn)
	}

	ui.drawStatusBar()

	switch state {
	case game.StateCasting:
		ui.drawCastGauge()
		ui.drawHint("Release SPACE to cast!")
	case game.StateWaiting:
		ui.drawHint("Waiting for a bite...")
	case game.StateBite:
		ui.drawHint("Press SPACE now!")
	case game.StateFighting:
		ui.drawFight()
		ui.drawHint("Hold SPACE to keep the fish in your bar")
	case game.StateIdle:
		ui.drawHint("SPACE cast | I bag | B book | S shop | A awards | R records | E sell all | T console")
	}

	ui.drawFeed()

	if ui.console.Open {
		ui.drawConsole()
	}
}

func (ui *gameUI) drawStatusBar() {
	text := fmt.Sprintf("%d G | Bag %d/%d | Book %d/%d | Lv %d",
		ui.profile.Currency,
		len(ui.profile.Inventory), ui.profile.BagCapacity(),
		ui.profile.DiscoveredCount(), game.RealSpeciesCount(),
		ui.profile.Level)
	w := rl.MeasureText(text, 19)
	rl.DrawRectangle(ui.width-w-28, 8, w+20, 32, rl.Fade(colorBG, 0.8))
	rl.DrawText(text, ui.width-w-18, 14, 19, colorText)
}

func (ui *gameUI) drawHint(text string) {
	drawTextCentered(text, rl.NewRectangle(0, 0, float32(ui.width), 60), 28, 20, colorText)
}

func (ui *gameUI) drawCastGauge() {
	gw := float32(260)
	gh := float32(22)
	x := float32(ui.width)/2 - gw/2
	y := float32(ui.height) - 70
	rl.DrawRectangleRec(rl.NewRectangle(x, y, gw, gh), rl.Fade(colorBG, 0.85))
	power := float32(ui.session.CastPower())
	fill := rl.NewRectangle(x+2, y+2, (gw-4)*power, gh-4)
	r := uint8(power * 255)
	g := uint8((1 - power*0.5) * 255)
	rl.DrawRectangleRec(fill, rl.NewColor(r, g, 0, 255))
	rl.DrawRectangleLinesEx(rl.NewRectangle(x, y, gw, gh), 2, colorBorder)
}

// drawFight renders the vertical chase: fish marker, player window, and the
// progress gauge rising from the bottom.
func (ui *gameUI) drawFight() {
	view := ui.session.FightView()
	h := float32(420)
	w := float32(46)
	x := float32(ui.width) - 120
	y := float32(ui.height)/2 - h/2

	mapY := func(pos float64) float32 {
		return y + h - float32(pos)*h
	}

	rl.DrawRectangleRec(rl.NewRectangle(x, y, w, h), rl.Fade(colorBG, 0.9))
	rl.DrawRectangleLinesEx(rl.NewRectangle(x, y, w, h), 2, colorBorder)

	// player window
	top := mapY(view.PlayerPos + view.WindowHeight)
	winColor := rl.Fade(colorWarn, 0.55)
	if view.InWindow {
		winColor = rl.Fade(colorGaugeOK, 0.55)
	}
	rl.DrawRectangleRec(rl.NewRectangle(x+2, top, w-4, float32(view.WindowHeight)*h), winColor)

	// fish marker, tinted by rarity
	rl.DrawCircle(int32(x+w/2), int32(mapY(view.FishPos)), 9, rarityColor(view.Rarity))

	// progress gauge
	gx := x - 26
	rl.DrawRectangleRec(rl.NewRectangle(gx, y, 16, h), rl.Fade(colorBG, 0.9))
	ph := float32(view.Progress) * (h - 4)
	rl.DrawRectangleRec(rl.NewRectangle(gx+2, y+h-2-ph, 12, ph), colorGaugeOK)
	rl.DrawRectangleLinesEx(rl.NewRectangle(gx, y, 16, h), 2, colorBorder)
}

func (ui *gameUI) drawFeed() {
	y := ui.height - 40 - int32(len(ui.feed))*26
	for _, line := range ui.feed {
		alpha := float32(1.0)
		if line.TTL < 1 {
			alpha = float32(line.TTL)
		}
		rl.DrawText(line.Text, 16, y, 20, rl.Fade(colorText, alpha))
		y += 26
	}
}

func (ui *gameUI) drawConsole() {
	r := rl.NewRectangle(20, float32(ui.height)-130, float32(ui.width)-40, 110)
	drawPanel(r, "Console")
	rl.DrawText("> "+ui.console.Buffer+"_", int32(r.X)+14, int32(r.Y)+38, 22, colorText)
	if ui.console.Reply != "" {
		drawWrappedText(ui.console.Reply, r, 68, 18, colorDim)
	}
}
