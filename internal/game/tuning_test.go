package game

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTuningValidates(t *testing.T) {
	if err := DefaultTuning().Validate(); err != nil {
		t.Fatalf("shipped tuning invalid: %v", err)
	}
}

func TestLoadTuningMissingFileKeepsDefaults(t *testing.T) {
	got, err := LoadTuning(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if got != DefaultTuning() {
		t.Fatalf("missing file changed the defaults")
	}
}

func TestLoadTuningEmptyPathKeepsDefaults(t *testing.T) {
	got, err := LoadTuning("")
	if err != nil {
		t.Fatalf("empty path must not error: %v", err)
	}
	if got != DefaultTuning() {
		t.Fatalf("empty path changed the defaults")
	}
}

func TestLoadTuningOverridesOnTopOfDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	body := "cast:\n  oscillation_speed: 2.0\nfight:\n  gravity: 2.5\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := LoadTuning(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Cast.OscillationSpeed != 2.0 || got.Fight.Gravity != 2.5 {
		t.Fatalf("overrides not applied: %+v", got)
	}
	def := DefaultTuning()
	if got.Cast.MinDistance != def.Cast.MinDistance || got.Bite.ReactionTime != def.Bite.ReactionTime {
		t.Fatalf("untouched fields lost their defaults")
	}
}

func TestLoadTuningRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("cast: [not a map"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadTuning(path); err == nil {
		t.Fatalf("malformed yaml must error")
	}
}

func TestLoadTuningRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("bite:\n  min_wait: 9\n  max_wait: 1\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadTuning(path); err == nil {
		t.Fatalf("inverted bite window must be rejected")
	}
}

func TestValidateCatchesEachBadField(t *testing.T) {
	cases := []struct {
		name  string
		mutate func(*Tuning)
	}{
		{"zero oscillation", func(t *Tuning) { t.Cast.OscillationSpeed = 0 }},
		{"inverted cast range", func(t *Tuning) { t.Cast.MaxDistance = t.Cast.MinDistance - 1 }},
		{"zero reaction", func(t *Tuning) { t.Bite.ReactionTime = 0 }},
		{"zero lift", func(t *Tuning) { t.Fight.Lift = 0 }},
		{"window too tall", func(t *Tuning) { t.Fight.WindowHeight = 1.5 }},
		{"progress at one", func(t *Tuning) { t.Fight.InitialProgress = 1 }},
		{"zero ceiling", func(t *Tuning) { t.Fight.MotionCeiling = 0 }},
		{"zero result timer", func(t *Tuning) { t.Result.FailDuration = 0 }},
	}
	for _, c := range cases {
		tn := DefaultTuning()
		c.mutate(&tn)
		if err := tn.Validate(); err == nil {
			t.Fatalf("%s: invalid tuning accepted", c.name)
		}
	}
}
