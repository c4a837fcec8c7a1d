//go:build cgo
// +build cgo

package gui

import (
	"fmt"
	"time"

	"github.com/appengine-ltd/pondside/internal/game"
	"github.com/appengine-ltd/pondside/internal/parser"
	"github.com/appengine-ltd/pondside/internal/store"
	"github.com/appengine-ltd/pondside/internal/world"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string

	Seed        int64
	ProfilePath string
	TuningPath  string
	CatchLogOff bool
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	ui, err := newGameUI(a.cfg)
	if err != nil {
		return err
	}
	defer ui.close()
	return ui.Run()
}

type screen int

const (
	screenMenu screen = iota
	screenRun
	screenBag
	screenBook
	screenShop
	screenAwards
	screenRecords
	screenHelp
)

type menuAction int

const (
	actionPlay menuAction = iota
	actionRecords
	actionHelp
	actionQuit
)

type menuItem struct {
	Label  string
	Action menuAction
}

type bagState struct {
	Cursor int
}

type bookState struct {
	Cursor  int
	LogID   string
	LogBest []store.Catch
}

type shopTab int

const (
	shopTabRods shopTab = iota
	shopTabBaits
	shopTabLures
	shopTabBags
)

type shopState struct {
	Tab    shopTab
	Cursor int
}

type awardsState struct {
	Cursor int
}

type recordsState struct {
	Entries []store.Catch
	Recent  []store.Catch
	Err     error
}

type consoleState struct {
	Open   bool
	Buffer string
	Reply  string
}

type feedLine struct {
	Text string
	TTL  float64
}

type gameUI struct {
	cfg    AppConfig
	width  int32
	height int32
	quit   bool

	screen     screen
	menuCursor int

	tuning  game.Tuning
	profile *game.Profile
	session *game.Session
	catches store.Store
	parse   *parser.Parser

	playerPos world.Vec
	facing    world.Facing

	bag           bagState
	book          bookState
	shop          shopState
	awards        awardsState
	records       recordsState
	recordsReturn screen
	console       consoleState

	feed        []feedLine
	status      string
	loggedCatch *game.CatchResult

	lastTick time.Time
}

var (
	colorBG      = rl.NewColor(10, 16, 24, 255)
	colorPanel   = rl.NewColor(16, 26, 38, 255)
	colorBorder  = rl.NewColor(45, 110, 170, 255)
	colorText    = rl.NewColor(205, 228, 245, 255)
	colorDim     = rl.NewColor(115, 150, 175, 255)
	colorAccent  = rl.NewColor(90, 195, 255, 255)
	colorWarn    = rl.NewColor(255, 198, 96, 255)
	colorGrass   = rl.NewColor(74, 125, 60, 255)
	colorWater   = rl.NewColor(54, 120, 186, 255)
	colorPlayer  = rl.NewColor(255, 224, 189, 255)
	colorGaugeOK = rl.NewColor(70, 220, 110, 255)
)

func newGameUI(cfg AppConfig) (*gameUI, error) {
	tuning, err := game.LoadTuning(cfg.TuningPath)
	if err != nil {
		return nil, err
	}

	profile, err := loadProfile(cfg.ProfilePath)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if profile == nil {
		profile = game.NewProfile("Angler")
	}

	ui := &gameUI{
		cfg:       cfg,
		width:     1280,
		height:    860,
		screen:    screenMenu,
		tuning:    tuning,
		profile:   profile,
		parse:     parser.New(),
		playerPos: world.Vec{X: 600, Y: 500},
		facing:    world.FaceDown,
		lastTick:  time.Now(),
	}

	if !cfg.CatchLogOff {
		catches, err := store.OpenSQLite(defaultCatchLogFile)
		if err != nil {
			ui.pushFeed("catch log unavailable: " + err.Error())
		} else {
			ui.catches = catches
		}
	}

	rng := game.NewRNG(cfg.Seed)
	save := func(p *game.Profile) error {
		return saveProfile(cfg.ProfilePath, p)
	}
	ui.session = game.NewSession(profile, tuning, rng, probeFunc(func() bool {
		return world.NearWater(ui.playerPos)
	}), save)

	return ui, nil
}

// probeFunc adapts a closure to game.WaterProbe.
type probeFunc func() bool

func (f probeFunc) NearWater() bool { return f() }

func (ui *gameUI) close() {
	if ui.catches != nil {
		_ = ui.catches.Close()
	}
}

func (ui *gameUI) Run() error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(ui.width, ui.height, "pondside")
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)
	defaultFont := rl.GetFontDefault()
	rl.SetTextureFilter(defaultFont.Texture, rl.FilterBilinear)

	for !ui.quit && !rl.WindowShouldClose() {
		now := time.Now()
		delta := now.Sub(ui.lastTick)
		if delta < 0 {
			delta = 0
		}
		ui.lastTick = now

		ui.width = int32(rl.GetScreenWidth())
		ui.height = int32(rl.GetScreenHeight())

		ui.update(delta)

		rl.BeginDrawing()
		rl.ClearBackground(colorBG)
		ui.draw()
		rl.EndDrawing()
	}

	rl.CloseWindow()
	return nil
}

func (ui *gameUI) update(delta time.Duration) {
	switch ui.screen {
	case screenMenu:
		ui.updateMenu()
	case screenRun:
		ui.updateRun(delta)
	case screenBag:
		ui.updateBag()
	case screenBook:
		ui.updateBook()
	case screenShop:
		ui.updateShop()
	case screenAwards:
		ui.updateAwards()
	case screenRecords:
		ui.updateRecords()
	case screenHelp:
		ui.updateHelp()
	}
}

func (ui *gameUI) draw() {
	switch ui.screen {
	case screenMenu:
		ui.drawMenu()
	case screenRun:
		ui.drawRun()
	case screenBag:
		ui.drawBag()
	case screenBook:
		ui.drawBook()
	case screenShop:
		ui.drawShop()
	case screenAwards:
		ui.drawAwards()
	case screenRecords:
		ui.drawRecords()
	case screenHelp:
		ui.drawHelp()
	}
}

func (ui *gameUI) menuItems() []menuItem {
	return []menuItem{
		{Label: "Go Fishing", Action: actionPlay},
		{Label: "Records", Action: actionRecords},
		{Label: "Help", Action: actionHelp},
		{Label: "Quit", Action: actionQuit},
	}
}

func (ui *gameUI) updateMenu() {
	items := ui.menuItems()
	if rl.IsKeyPressed(rl.KeyDown) {
		ui.menuCursor = wrapIndex(ui.menuCursor+1, len(items))
	}
	if rl.IsKeyPressed(rl.KeyUp) {
		ui.menuCursor = wrapIndex(ui.menuCursor-1, len(items))
	}
	if rl.IsKeyPressed(rl.KeyEnter) {
		switch items[ui.menuCursor].Action {
		case actionPlay:
			ui.screen = screenRun
		case actionRecords:
			ui.openRecords(screenMenu)
		case actionHelp:
			ui.screen = screenHelp
		case actionQuit:
			ui.quit = true
		}
	}
	if rl.IsKeyPressed(rl.KeyQ) {
		ui.quit = true
	}
}

func (ui *gameUI) drawMenu() {
	titleRect := rl.NewRectangle(20, 20, float32(ui.width-40), 120)
	drawPanel(titleRect, "PONDSIDE")
	drawTextCentered(fmt.Sprintf("v%s (%s) %s", ui.cfg.Version, ui.cfg.Commit, ui.cfg.BuildDate), titleRect, 42, 18, colorDim)
	drawTextCentered(fmt.Sprintf("%s | Lv %d | %d G", ui.profile.Name, ui.profile.Level, ui.profile.Currency), titleRect, 72, 18, colorText)

	items := ui.menuItems()
	menuRect := rl.NewRectangle(float32(ui.width/2-230), 185, 460, float32(150+len(items)*72))
	drawPanel(menuRect, "Main Menu")
	for i, item := range items {
		y := int32(menuRect.Y) + 70 + int32(i*72)
		r := rl.NewRectangle(menuRect.X+36, float32(y), menuRect.Width-72, 52)
		if i == ui.menuCursor {
			rl.DrawRectangleRounded(r, 0.3, 8, rl.Fade(colorAccent, 0.2))
			rl.DrawRectangleRoundedLinesEx(r, 0.3, 8, 2, colorAccent)
			rl.DrawText(item.Label, int32(r.X)+18, y+14, 28, colorAccent)
		} else {
			rl.DrawRectangleRounded(r, 0.3, 8, rl.Fade(colorPanel, 0.7))
			rl.DrawRectangleRoundedLinesEx(r, 0.3, 8, 1.5, colorBorder)
			rl.DrawText(item.Label, int32(r.X)+18, y+14, 28, colorText)
		}
	}
	drawTextCentered("Arrows move | Enter select | Q quit", menuRect, int32(menuRect.Height)-40, 17, colorDim)
}

func (ui *gameUI) updateHelp() {
	if rl.IsKeyPressed(rl.KeyEscape) || rl.IsKeyPressed(rl.KeyEnter) {
		ui.screen = screenMenu
	}
}

func (ui *gameUI) drawHelp() {
	rect := rl.NewRectangle(40, 40, float32(ui.width-80), float32(ui.height-80))
	drawPanel(rect, "How To Play")
	lines := []string{
		"Walk to the water's edge with the arrow keys.",
		"Hold SPACE to wind up a cast; release to throw. Further casts need better timing.",
		"Wait for the \"!\" over your head, then press SPACE fast to hook the fish.",
		"During the fight, hold SPACE to raise your bar and keep the fish inside it.",
		"The gauge fills while the fish is covered and drains while it isn't.",
		"",
		"I bag | B fish book | S shop | A achievements | R records | E sell all",
		"T opens the console: sell, equip, bait, lure, stats, and more.",
		"",
		"Better rods cast further and hold fish better. Bait and lures shift what bites.",
		"A full bag auto-sells new catches at base price, so upgrade it early.",
	}
	drawLines(rect, 60, 20, lines, colorText)
	drawTextCentered("Esc back", rect, int32(rect.Height)-40, 17, colorDim)
}

func (ui *gameUI) pushFeed(text string) {
	ui.feed = append(ui.feed, feedLine{Text: text, TTL: 4.0})
	if len(ui.feed) > 6 {
		ui.feed = ui.feed[len(ui.feed)-6:]
	}
}
