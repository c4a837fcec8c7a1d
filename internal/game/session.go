package game

import (
	"fmt"
	"math/rand/v2"
)

// FishingState is the phase of the fishing loop. Transitions only happen
// through Session methods; there is no way to skip a phase.
type FishingState int

const (
	StateIdle FishingState = iota
	StateCasting
	StateWaiting
	StateBite
	StateFighting
	StateSuccess
	StateFail
)

func (s FishingState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCasting:
		return "casting"
	case StateWaiting:
		return "waiting"
	case StateBite:
		return "bite"
	case StateFighting:
		return "fighting"
	case StateSuccess:
		return "success"
	case StateFail:
		return "fail"
	}
	return fmt.Sprintf("FishingState(%d)", int(s))
}

// WaterProbe answers whether the player currently stands close enough to
// water to cast. The world package provides the real one; tests stub it.
type WaterProbe interface {
	NearWater() bool
}

// SaveFunc persists the profile after a state change worth keeping. A nil
// save function is allowed and skipped.
type SaveFunc func(*Profile) error

// Session drives one player's fishing loop over an injected profile. All
// timing flows through Tick; the session never reads a clock itself.
//
// Every phase-scoped value (countdowns, the hooked species, the fight) is
// cleared on the transition that leaves its phase, so a stale timer can
// never fire into a later state.
type Session struct {
	profile *Profile
	tuning  Tuning
	rng     *rand.Rand
	water   WaterProbe
	save    SaveFunc

	state FishingState

	castPower float64
	castDir   float64

	castDistance      float64
	pendingSpecies    *FishSpecies
	biteCountdown     float64
	reactionCountdown float64
	resultCountdown   float64
	fight             *fightState

	messages  []string
	lastCatch *CatchResult
	unlocked  []AchievementDef
}

func NewSession(p *Profile, t Tuning, rng *rand.Rand, water WaterProbe, save SaveFunc) *Session {
	p.Normalize()
	return &Session{
		profile: p,
		tuning:  t,
		rng:     rng,
		water:   water,
		save:    save,
		state:   StateIdle,
	}
}

func (s *Session) State() FishingState { return s.state }
func (s *Session) Profile() *Profile   { return s.profile }
func (s *Session) Tuning() Tuning      { return s.tuning }

// CastPower is the oscillating gauge value in [0, 1] while casting.
func (s *Session) CastPower() float64 { return s.castPower }

// CastDistance is the landed cast length in world units, valid from Waiting
// until the attempt resolves.
func (s *Session) CastDistance() float64 { return s.castDistance }

// FightView snapshots the fight for rendering. Only valid while Fighting.
func (s *Session) FightView() FightView {
	if s.fight == nil {
		return FightView{}
	}
	return s.fight.view(s.tuning, s.profile.Level)
}

// LastCatch reports the most recent landed catch, or nil.
func (s *Session) LastCatch() *CatchResult { return s.lastCatch }

// DrainMessages returns queued player-facing messages and clears the queue.
func (s *Session) DrainMessages() []string {
	out := s.messages
	s.messages = nil
	return out
}

// DrainUnlocked returns achievements unlocked since the last drain.
func (s *Session) DrainUnlocked() []AchievementDef {
	out := s.unlocked
	s.unlocked = nil
	return out
}

func (s *Session) pushMessage(format string, args ...any) {
	s.messages = append(s.messages, fmt.Sprintf(format, args...))
}

// ConfirmPressed handles the action button going down. From Idle it starts a
// cast if the player stands near water; from Bite it answers the bite and
// opens the fight. In every other phase the press is ignored.
func (s *Session) ConfirmPressed() {
	switch s.state {
	case StateIdle:
		if s.water != nil && !s.water.NearWater() {
			s.pushMessage("Get closer to the water")
			return
		}
		s.startCasting()
	case StateBite:
		s.startFighting()
	}
}

// ConfirmReleased handles the action button coming up. Only a release during
// Casting means anything: it locks the power and throws the line.
func (s *Session) ConfirmReleased() {
	if s.state == StateCasting {
		s.finishCasting()
	}
}

// Tick advances the loop by dt seconds. held reports whether the action
// button is currently down, which only matters during the fight.
func (s *Session) Tick(dt float64, held bool) {
	switch s.state {
	case StateCasting:
		s.tickCasting(dt)
	case StateWaiting:
		s.biteCountdown -= dt
		if s.biteCountdown <= 0 {
			s.triggerBite()
		}
	case StateBite:
		s.reactionCountdown -= dt
		if s.reactionCountdown <= 0 {
			s.failFishing("It got away...")
		}
	case StateFighting:
		s.tickFighting(dt, held)
	case StateSuccess, StateFail:
		s.resultCountdown -= dt
		if s.resultCountdown <= 0 {
			s.resultCountdown = 0
			s.state = StateIdle
		}
	}
}

func (s *Session) startCasting() {
	s.state = StateCasting
	s.castPower = 0
	s.castDir = 1
	s.lastCatch = nil
}

// tickCasting ping-pongs the power gauge between 0 and 1.
func (s *Session) tickCasting(dt float64) {
	s.castPower += s.tuning.Cast.OscillationSpeed * dt * s.castDir
	if s.castPower >= 1 {
		s.castPower = 1
		s.castDir = -1
	} else if s.castPower <= 0 {
		s.castPower = 0
		s.castDir = 1
	}
}

// finishCasting locks in the throw: distance from power and rod, the hooked
// species drawn up front, and a hidden wait until the bite.
func (s *Session) finishCasting() {
	s.state = StateWaiting

	rod := s.profile.EquippedRod()
	base := s.tuning.Cast.MinDistance + s.castPower*(s.tuning.Cast.MaxDistance-s.tuning.Cast.MinDistance)
	s.castDistance = base * rod.CastDistance

	sp := SelectFish(s.rng, CombinedBonuses(s.profile))
	s.pendingSpecies = &sp

	span := s.tuning.Bite.MaxWait - s.tuning.Bite.MinWait
	s.biteCountdown = s.tuning.Bite.MinWait + s.rng.Float64()*span
}

func (s *Session) triggerBite() {
	s.biteCountdown = 0
	s.state = StateBite
	s.reactionCountdown = s.tuning.Bite.ReactionTime
}

// startFighting answers the bite: one unit of bait is spent here, not at
// cast time, so an unanswered bite costs nothing.
func (s *Session) startFighting() {
	s.reactionCountdown = 0
	s.profile.ConsumeBait()
	s.persist()

	sp := *s.pendingSpecies
	s.fight = newFightState(s.tuning, sp)
	s.state = StateFighting
}

func (s *Session) tickFighting(dt float64, held bool) {
	rod := s.profile.EquippedRod()
	switch s.fight.tick(s.rng, s.tuning, dt, held, s.profile.Level, rod.CatchRateBonus) {
	case FightWon:
		s.succeedFishing()
	case FightLost:
		s.failFishing("It got away...")
	}
}

func (s *Session) succeedFishing() {
	sp := *s.pendingSpecies
	s.teardownAttempt()
	s.state = StateSuccess
	s.resultCountdown = s.tuning.Result.SuccessDuration

	res := s.profile.ResolveCatch(s.rng, sp)
	s.lastCatch = &res

	if res.AutoSold {
		s.pushMessage("%s %s | bag full, sold for %d G", sp.Name, sp.Rarity.Stars(), res.SoldFor)
	} else {
		s.pushMessage("Caught %s! %s | %d cm", sp.Name, sp.Rarity.Stars(), res.SizeCm)
	}
	if res.LeveledUp {
		s.pushMessage("Level up! Now level %d", res.NewLevel)
	}

	s.evaluateAwards()
	s.persist()
}

// failFishing ends the attempt from Waiting, Bite, or Fighting. A missed
// bite and a drained gauge both land here and both break the streak.
func (s *Session) failFishing(reason string) {
	s.teardownAttempt()
	s.state = StateFail
	s.resultCountdown = s.tuning.Result.FailDuration
	s.profile.RegisterEscape()
	s.persist()
	s.pushMessage("%s", reason)
}

// teardownAttempt clears every per-attempt value so nothing leaks into the
// next cast.
func (s *Session) teardownAttempt() {
	s.pendingSpecies = nil
	s.biteCountdown = 0
	s.reactionCountdown = 0
	s.fight = nil
}

// evaluateAwards runs the achievement pass and queues unlock messages.
func (s *Session) evaluateAwards() {
	newly := EvaluateAchievements(s.profile)
	for _, a := range newly {
		s.unlocked = append(s.unlocked, a)
		s.pushMessage("Achievement unlocked: %s", a.Name)
	}
}

// SellAll sells the whole bag through the session so achievements and saves
// stay in step with the profile change.
func (s *Session) SellAll() {
	count := len(s.profile.Inventory)
	if count == 0 {
		s.pushMessage("Nothing to sell")
		return
	}
	total := s.profile.SellAll()
	s.pushMessage("Sold %d for %d G", count, total)
	s.evaluateAwards()
	s.persist()
}

// SellOne sells the oldest banked specimen of one species.
func (s *Session) SellOne(speciesID string) {
	price, err := s.profile.SellOne(speciesID)
	if err != nil {
		s.pushMessage("%v", err)
		return
	}
	s.pushMessage("Sold for %d G", price)
	s.evaluateAwards()
	s.persist()
}

// Purchase runs a shop mutation, then evaluates achievements and saves.
// The mutation's error is surfaced as a player message.
func (s *Session) Purchase(mutate func(*Profile) error) error {
	if err := mutate(s.profile); err != nil {
		s.pushMessage("%v", err)
		return err
	}
	s.evaluateAwards()
	s.persist()
	return nil
}

func (s *Session) persist() {
	if s.save == nil {
		return
	}
	if err := s.save(s.profile); err != nil {
		s.pushMessage("save failed: %v", err)
	}
}
