package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning holds every gameplay constant that is worth turning without a
// recompile. Zero-valued fields in a loaded file keep their defaults.
type Tuning struct {
	Cast struct {
		OscillationSpeed float64 `yaml:"oscillation_speed"`
		MinDistance      float64 `yaml:"min_distance"`
		MaxDistance      float64 `yaml:"max_distance"`
	} `yaml:"cast"`

	Bite struct {
		MinWait      float64 `yaml:"min_wait"`
		MaxWait      float64 `yaml:"max_wait"`
		ReactionTime float64 `yaml:"reaction_time"`
	} `yaml:"bite"`

	Fight struct {
		Gravity         float64 `yaml:"gravity"`
		Lift            float64 `yaml:"lift"`
		WindowHeight    float64 `yaml:"window_height"`
		GaugeFillRate   float64 `yaml:"gauge_fill_rate"`
		GaugeDrainRate  float64 `yaml:"gauge_drain_rate"`
		InitialProgress float64 `yaml:"initial_progress"`
		BaseLerp        float64 `yaml:"base_lerp"`
		MotionCeiling   float64 `yaml:"motion_ceiling"`
		FishStart       float64 `yaml:"fish_start"`
		PlayerStart     float64 `yaml:"player_start"`
		FirstRetarget   float64 `yaml:"first_retarget"`
	} `yaml:"fight"`

	Result struct {
		SuccessDuration float64 `yaml:"success_duration"`
		FailDuration    float64 `yaml:"fail_duration"`
	} `yaml:"result"`
}

// DefaultTuning returns the shipped balance.
func DefaultTuning() Tuning {
	var t Tuning
	t.Cast.OscillationSpeed = 1.2
	t.Cast.MinDistance = 60
	t.Cast.MaxDistance = 220
	t.Bite.MinWait = 1.5
	t.Bite.MaxWait = 5.0
	t.Bite.ReactionTime = 1.5
	t.Fight.Gravity = 1.5
	t.Fight.Lift = 3.0
	t.Fight.WindowHeight = 0.18
	t.Fight.GaugeFillRate = 0.25
	t.Fight.GaugeDrainRate = 0.20
	t.Fight.InitialProgress = 0.3
	t.Fight.BaseLerp = 0.05
	t.Fight.MotionCeiling = 0.8
	t.Fight.FishStart = 0.4
	t.Fight.PlayerStart = 0.3
	t.Fight.FirstRetarget = 1.0
	t.Result.SuccessDuration = 2.5
	t.Result.FailDuration = 1.5
	return t
}

// LoadTuning reads a YAML override file on top of the defaults. A missing
// file is not an error; a malformed or invalid one is.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	if path == "" {
		return t, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return t, nil
		}
		return t, fmt.Errorf("read tuning: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("parse tuning %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("tuning %s: %w", path, err)
	}
	return t, nil
}

// Validate rejects values that would wedge the state machine, such as a bite
// window that can never elapse or a motion ceiling of zero.
func (t Tuning) Validate() error {
	if t.Cast.OscillationSpeed <= 0 {
		return fmt.Errorf("cast.oscillation_speed must be positive")
	}
	if t.Cast.MinDistance <= 0 || t.Cast.MaxDistance < t.Cast.MinDistance {
		return fmt.Errorf("cast distances must satisfy 0 < min <= max")
	}
	if t.Bite.MinWait <= 0 || t.Bite.MaxWait < t.Bite.MinWait {
		return fmt.Errorf("bite waits must satisfy 0 < min <= max")
	}
	if t.Bite.ReactionTime <= 0 {
		return fmt.Errorf("bite.reaction_time must be positive")
	}
	if t.Fight.Gravity <= 0 || t.Fight.Lift <= 0 {
		return fmt.Errorf("fight gravity and lift must be positive")
	}
	if t.Fight.WindowHeight <= 0 || t.Fight.WindowHeight > 1 {
		return fmt.Errorf("fight.window_height must be in (0, 1]")
	}
	if t.Fight.GaugeFillRate <= 0 || t.Fight.GaugeDrainRate < 0 {
		return fmt.Errorf("gauge rates must be positive fill, non-negative drain")
	}
	if t.Fight.InitialProgress < 0 || t.Fight.InitialProgress >= 1 {
		return fmt.Errorf("fight.initial_progress must be in [0, 1)")
	}
	if t.Fight.MotionCeiling <= 0 || t.Fight.MotionCeiling > 1 {
		return fmt.Errorf("fight.motion_ceiling must be in (0, 1]")
	}
	if t.Result.SuccessDuration <= 0 || t.Result.FailDuration <= 0 {
		return fmt.Errorf("result durations must be positive")
	}
	return nil
}
