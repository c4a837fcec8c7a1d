package game

import "math/rand/v2"

// FightOutcome is the per-tick verdict of the bar chase.
type FightOutcome int

const (
	FightOngoing FightOutcome = iota
	FightWon
	FightLost
)

// fightState is the bar-chase minigame: the player bar rises while the
// button is held and falls under gravity, the fish wanders between random
// targets, and the gauge fills while the fish sits inside the player's
// window. Positions live in [0, ceiling] with 0 at the bottom.
type fightState struct {
	fishPos    float64
	fishTarget float64
	moveTimer  float64

	playerPos float64
	playerVel float64

	progress float64

	species FishSpecies
}

func newFightState(t Tuning, sp FishSpecies) *fightState {
	return &fightState{
		fishPos:    t.Fight.FishStart,
		fishTarget: t.Fight.FishStart,
		moveTimer:  t.Fight.FirstRetarget,
		playerPos:  t.Fight.PlayerStart,
		progress:   t.Fight.InitialProgress,
		species:    sp,
	}
}

// tick advances one frame. held is the reel button, level widens the window
// and speeds the gauge, rodBonus is the equipped rod's catch multiplier.
func (f *fightState) tick(rng *rand.Rand, t Tuning, dt float64, held bool, level int, rodBonus float64) FightOutcome {
	if held {
		f.playerVel += t.Fight.Lift * dt
	}
	f.playerVel -= t.Fight.Gravity * dt
	f.playerPos += f.playerVel * dt

	ceiling := t.Fight.MotionCeiling
	if f.playerPos < 0 {
		f.playerPos = 0
		f.playerVel = 0
	} else if f.playerPos > ceiling {
		f.playerPos = ceiling
		f.playerVel = -f.playerVel * 0.3
	}

	f.moveTimer -= dt
	if f.moveTimer <= 0 {
		f.moveTimer = f.species.MoveIntervalMin +
			rng.Float64()*(f.species.MoveIntervalMax-f.species.MoveIntervalMin)
		f.retarget(rng, ceiling)
	}

	// Lerp factor per tick, not per second: faster fish track their target
	// harder each frame. Scaling it by dt would soften every species at low
	// frame rates, so the original per-frame behavior is kept.
	lerp := t.Fight.BaseLerp * (1 + f.species.Speed*2)
	f.fishPos += (f.fishTarget - f.fishPos) * lerp

	window := catchWindow(t, level)
	inWindow := f.fishPos >= f.playerPos && f.fishPos <= f.playerPos+window

	if inWindow {
		fill := t.Fight.GaugeFillRate + LevelGaugeBonus(level)
		f.progress += fill * f.species.CatchRate * rodBonus * dt
	} else {
		f.progress -= t.Fight.GaugeDrainRate * f.species.EscapeRate * dt
	}
	if f.progress >= 1 {
		f.progress = 1
		return FightWon
	}
	if f.progress <= 0 {
		f.progress = 0
		return FightLost
	}
	return FightOngoing
}

// retarget picks the fish's next destination. Erratic fish sometimes lunge a
// fixed distance from where they are instead of drifting to a random spot.
func (f *fightState) retarget(rng *rand.Rand, ceiling float64) {
	if rng.Float64() < f.species.Erratic {
		jump := 0.3 + f.species.Erratic*0.3
		if rng.Float64() < 0.5 {
			f.fishTarget = min(f.fishPos+jump, ceiling)
		} else {
			f.fishTarget = max(f.fishPos-jump, 0)
		}
		return
	}
	f.fishTarget = rng.Float64() * ceiling
}

// FightView is a render snapshot of the fight.
type FightView struct {
	FishPos      float64
	PlayerPos    float64
	WindowHeight float64
	Progress     float64
	InWindow     bool
	Rarity       Rarity
}

// catchWindow is the level-widened window height, capped so the window can
// never span more than the whole bar.
func catchWindow(t Tuning, level int) float64 {
	return min(t.Fight.WindowHeight+LevelWindowBonus(level), 1)
}

func (f *fightState) view(t Tuning, level int) FightView {
	window := catchWindow(t, level)
	return FightView{
		Rarity:       f.species.Rarity,
		FishPos:      f.fishPos,
		PlayerPos:    f.playerPos,
		WindowHeight: window,
		Progress:     f.progress,
		InWindow:     f.fishPos >= f.playerPos && f.fishPos <= f.playerPos+window,
	}
}
