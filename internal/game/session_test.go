package game

import (
	"strings"
	"testing"
)

type probeStub bool

func (p probeStub) NearWater() bool { return bool(p) }

func newTestSession(t *testing.T, nearWater bool) *Session {
	t.Helper()
	return NewSession(NewProfile("t"), DefaultTuning(), NewRNG(7), probeStub(nearWater), nil)
}

// advance ticks the session in fixed frames until the predicate holds or the
// time budget runs out.
func advance(t *testing.T, s *Session, held bool, maxSeconds float64, done func() bool) {
	t.Helper()
	const dt = 1.0 / 60
	for elapsed := 0.0; elapsed < maxSeconds; elapsed += dt {
		s.Tick(dt, held)
		if done() {
			return
		}
	}
	t.Fatalf("condition not reached within %.1fs, state %s", maxSeconds, s.State())
}

func TestSessionCastNeedsWater(t *testing.T) {
	s := newTestSession(t, false)
	s.ConfirmPressed()
	if s.State() != StateIdle {
		t.Fatalf("cast started away from water, state %s", s.State())
	}
	msgs := s.DrainMessages()
	if len(msgs) != 1 || !strings.Contains(msgs[0], "water") {
		t.Fatalf("expected a nudge toward the water, got %v", msgs)
	}
}

func TestSessionCastPowerPingPongs(t *testing.T) {
	s := newTestSession(t, true)
	s.ConfirmPressed()
	if s.State() != StateCasting {
		t.Fatalf("state = %s, want casting", s.State())
	}

	peaked, bottomed := false, false
	const dt = 1.0 / 60
	for i := 0; i < 60*4; i++ {
		s.Tick(dt, true)
		p := s.CastPower()
		if p < 0 || p > 1 {
			t.Fatalf("cast power %v out of [0, 1]", p)
		}
		if p == 1 {
			peaked = true
		}
		if peaked && p == 0 {
			bottomed = true
		}
	}
	if !peaked || !bottomed {
		t.Fatalf("gauge did not ping-pong (peaked=%v bottomed=%v)", peaked, bottomed)
	}
}

func TestSessionCastDistanceRange(t *testing.T) {
	s := newTestSession(t, true)
	tn := s.Tuning()
	s.ConfirmPressed()
	s.Tick(0.25, true) // partway up the gauge
	s.ConfirmReleased()

	if s.State() != StateWaiting {
		t.Fatalf("state = %s, want waiting", s.State())
	}
	d := s.CastDistance()
	if d < tn.Cast.MinDistance || d > tn.Cast.MaxDistance {
		t.Fatalf("starter-rod cast %v outside [%v, %v]", d, tn.Cast.MinDistance, tn.Cast.MaxDistance)
	}
	if s.pendingSpecies == nil {
		t.Fatalf("species must be drawn when the line lands")
	}
	if s.biteCountdown < tn.Bite.MinWait || s.biteCountdown > tn.Bite.MaxWait {
		t.Fatalf("bite wait %v outside [%v, %v]", s.biteCountdown, tn.Bite.MinWait, tn.Bite.MaxWait)
	}
}

func TestSessionMissedBiteFails(t *testing.T) {
	s := newTestSession(t, true)
	s.profile.ConsecutiveCatches = 5
	s.ConfirmPressed()
	s.ConfirmReleased()

	advance(t, s, false, 10, func() bool { return s.State() == StateBite })
	// Ignore the bite: the reaction window lapses into a fail.
	advance(t, s, false, 3, func() bool { return s.State() == StateFail })

	if s.pendingSpecies != nil || s.fight != nil {
		t.Fatalf("attempt state not torn down after the miss")
	}
	if s.profile.ConsecutiveCatches != 0 {
		t.Fatalf("missed bite must reset the streak")
	}
	advance(t, s, false, 3, func() bool { return s.State() == StateIdle })
}

func TestSessionFullCatchFlow(t *testing.T) {
	p := NewProfile("t")
	p.BaitCounts["bait_worm"] = 3
	p.EquippedBaitID = "bait_worm"

	saves := 0
	tn := DefaultTuning()
	// Make the fight unlosable so the pass reaches Success deterministically.
	tn.Fight.WindowHeight = 1.0
	tn.Fight.GaugeFillRate = 10

	s := NewSession(p, tn, NewRNG(11), probeStub(true), func(*Profile) error {
		saves++
		return nil
	})

	s.ConfirmPressed()
	s.ConfirmReleased()
	advance(t, s, false, 10, func() bool { return s.State() == StateBite })

	if p.BaitCounts["bait_worm"] != 3 {
		t.Fatalf("bait spent before the bite was answered")
	}
	s.ConfirmPressed()
	if s.State() != StateFighting {
		t.Fatalf("state = %s, want fighting", s.State())
	}
	if p.BaitCounts["bait_worm"] != 2 {
		t.Fatalf("answering the bite must spend one bait, have %d", p.BaitCounts["bait_worm"])
	}

	advance(t, s, false, 30, func() bool { return s.State() == StateSuccess })

	res := s.LastCatch()
	if res == nil {
		t.Fatalf("no catch recorded after a won fight")
	}
	if p.TotalCatches != 1 || len(p.Inventory) != 1 {
		t.Fatalf("catch not applied to the profile")
	}
	if s.fight != nil || s.pendingSpecies != nil {
		t.Fatalf("fight state leaked past the win")
	}
	if saves == 0 {
		t.Fatalf("profile never persisted")
	}
	msgs := s.DrainMessages()
	if len(msgs) == 0 || !strings.Contains(msgs[0], "Caught") {
		t.Fatalf("no catch message, got %v", msgs)
	}
	// First catch trips at least the first-catch achievement.
	if len(s.DrainUnlocked()) == 0 {
		t.Fatalf("first catch unlocked nothing")
	}

	advance(t, s, false, 5, func() bool { return s.State() == StateIdle })
}

func TestSessionLostFightFails(t *testing.T) {
	p := NewProfile("t")
	tn := DefaultTuning()
	// Shrink the window to nothing and drain fast: the fight cannot be won.
	tn.Fight.WindowHeight = 0
	tn.Fight.GaugeDrainRate = 10
	tn.Fight.FirstRetarget = 1000

	s := NewSession(p, tn, NewRNG(11), probeStub(true), nil)
	s.ConfirmPressed()
	s.ConfirmReleased()
	advance(t, s, false, 10, func() bool { return s.State() == StateBite })
	// Pin the hooked species: junk has no escape pull and would stall the test.
	hooked := slowFish
	s.pendingSpecies = &hooked
	s.ConfirmPressed()

	advance(t, s, false, 30, func() bool { return s.State() == StateFail })
	if p.TotalCatches != 0 {
		t.Fatalf("lost fight must not count as a catch")
	}
	if s.fight != nil {
		t.Fatalf("fight state leaked past the loss")
	}
}

func TestSessionIgnoresConfirmOutOfPhase(t *testing.T) {
	s := newTestSession(t, true)
	s.ConfirmReleased() // release with no cast in flight
	if s.State() != StateIdle {
		t.Fatalf("stray release changed state to %s", s.State())
	}
	s.ConfirmPressed()
	s.ConfirmReleased()
	st := s.State()
	s.ConfirmPressed() // press while waiting does nothing
	if s.State() != st {
		t.Fatalf("press during waiting changed state to %s", s.State())
	}
}

func TestSessionSellAllEmpty(t *testing.T) {
	s := newTestSession(t, true)
	s.SellAll()
	msgs := s.DrainMessages()
	if len(msgs) != 1 || !strings.Contains(msgs[0], "Nothing") {
		t.Fatalf("expected empty-bag message, got %v", msgs)
	}
}

func TestSessionPurchaseSurfacesErrors(t *testing.T) {
	s := newTestSession(t, true)
	if err := s.Purchase(func(p *Profile) error { return p.BuyRod("rod_legendary") }); err == nil {
		t.Fatalf("underfunded purchase must error")
	}
	if msgs := s.DrainMessages(); len(msgs) == 0 {
		t.Fatalf("purchase error not surfaced to the player")
	}
}
