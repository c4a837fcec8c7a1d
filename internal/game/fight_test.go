package game

import "testing"

// slowFish never retargets during short tests and tracks gently.
var slowFish = FishSpecies{
	ID: "fish_test", Name: "Test Fish", Rarity: RarityCommon,
	CatchRate: 1.0, EscapeRate: 1.0, Speed: 0.0, Erratic: 0.0,
	MoveIntervalMin: 100, MoveIntervalMax: 100,
}

func TestFightFloorStopsPlayer(t *testing.T) {
	tn := DefaultTuning()
	f := newFightState(tn, slowFish)
	rng := NewRNG(1)

	// Never holding: gravity drags the bar to the floor.
	for i := 0; i < 120; i++ {
		f.tick(rng, tn, 1.0/60, false, 1, 1.0)
	}
	if f.playerPos != 0 {
		t.Fatalf("player pos = %v, want pinned at 0", f.playerPos)
	}
	if f.playerVel != 0 {
		t.Fatalf("velocity = %v, want zeroed at the floor", f.playerVel)
	}
}

func TestFightCeilingBounces(t *testing.T) {
	tn := DefaultTuning()
	f := newFightState(tn, slowFish)
	f.playerPos = tn.Fight.MotionCeiling - 0.001
	f.playerVel = 2.0
	rng := NewRNG(1)

	f.tick(rng, tn, 1.0/60, false, 1, 1.0)
	if f.playerPos != tn.Fight.MotionCeiling {
		t.Fatalf("player pos = %v, want clamped to ceiling %v", f.playerPos, tn.Fight.MotionCeiling)
	}
	if f.playerVel >= 0 {
		t.Fatalf("velocity = %v, want reflected downward", f.playerVel)
	}
}

func TestFightWinWhenFishStaysInWindow(t *testing.T) {
	tn := DefaultTuning()
	// A window taller than the whole bar: the fish can never leave it.
	tn.Fight.WindowHeight = 1.0
	f := newFightState(tn, slowFish)
	rng := NewRNG(1)

	outcome := FightOngoing
	for i := 0; i < 60*30 && outcome == FightOngoing; i++ {
		outcome = f.tick(rng, tn, 1.0/60, false, 1, 1.0)
	}
	if outcome != FightWon {
		t.Fatalf("outcome = %v, want FightWon", outcome)
	}
	if f.progress != 1 {
		t.Fatalf("progress = %v, want clamped to 1", f.progress)
	}
}

func TestFightLossWhenFishEscapesWindow(t *testing.T) {
	tn := DefaultTuning()
	tn.Fight.FirstRetarget = 1000
	f := newFightState(tn, slowFish)
	// Park the fish far above a grounded player bar.
	f.fishPos = tn.Fight.MotionCeiling
	f.fishTarget = tn.Fight.MotionCeiling
	f.playerPos = 0
	rng := NewRNG(1)

	outcome := FightOngoing
	for i := 0; i < 60*30 && outcome == FightOngoing; i++ {
		outcome = f.tick(rng, tn, 1.0/60, false, 1, 1.0)
	}
	if outcome != FightLost {
		t.Fatalf("outcome = %v, want FightLost", outcome)
	}
	if f.progress != 0 {
		t.Fatalf("progress = %v, want clamped to 0", f.progress)
	}
}

func TestFightLevelWidensWindow(t *testing.T) {
	tn := DefaultTuning()
	f := newFightState(tn, slowFish)

	v1 := f.view(tn, 1)
	v10 := f.view(tn, 10)
	if v10.WindowHeight <= v1.WindowHeight {
		t.Fatalf("window at level 10 (%v) not wider than level 1 (%v)", v10.WindowHeight, v1.WindowHeight)
	}
	if want := tn.Fight.WindowHeight + 9*0.01; !closeTo(v10.WindowHeight, want) {
		t.Fatalf("window at level 10 = %v, want %v", v10.WindowHeight, want)
	}
}

func TestFightViewReportsWindowMembership(t *testing.T) {
	tn := DefaultTuning()
	f := newFightState(tn, slowFish)
	f.playerPos = 0.3
	f.fishPos = 0.35

	v := f.view(tn, 1)
	if !v.InWindow {
		t.Fatalf("fish at %v should be inside window [%v, %v]", f.fishPos, f.playerPos, f.playerPos+v.WindowHeight)
	}
	f.fishPos = 0.3 + v.WindowHeight + 0.01
	if f.view(tn, 1).InWindow {
		t.Fatalf("fish above the window reported in-window")
	}
}

func TestFightWindowCappedAtFullBar(t *testing.T) {
	tn := DefaultTuning()
	tn.Fight.WindowHeight = 0.9
	f := newFightState(tn, slowFish)

	// Level 31 adds a 0.30 bonus, which would push the window past the bar.
	v := f.view(tn, 31)
	if v.WindowHeight != 1 {
		t.Fatalf("window = %v, want capped at 1", v.WindowHeight)
	}
}
