package game

import "testing"

func TestRequiredExpCurve(t *testing.T) {
	cases := []struct {
		level int
		want  int
	}{
		{0, 0},
		{1, 0},
		{2, 150},
		{3, 350},
		{4, 650},
		{5, 1050},
		{10, 4550},
	}
	for _, tc := range cases {
		if got := RequiredExp(tc.level); got != tc.want {
			t.Fatalf("RequiredExp(%d) = %d, want %d", tc.level, got, tc.want)
		}
	}
}

func TestRequiredExpStepGrowsBy100(t *testing.T) {
	for level := 2; level < 100; level++ {
		step := RequiredExp(level+1) - RequiredExp(level)
		prev := RequiredExp(level) - RequiredExp(level-1)
		if level > 2 && step-prev != 100 {
			t.Fatalf("step from %d to %d grew by %d, want 100", level, level+1, step-prev)
		}
	}
}

func TestLevelForExpRoundTrip(t *testing.T) {
	for level := 1; level <= 100; level++ {
		exp := RequiredExp(level)
		if got := LevelForExp(exp); got != level {
			t.Fatalf("LevelForExp(RequiredExp(%d)) = %d", level, got)
		}
		if level > 1 {
			if got := LevelForExp(exp - 1); got != level-1 {
				t.Fatalf("LevelForExp(%d) = %d, want %d", exp-1, got, level-1)
			}
		}
	}
}

func TestExpProgress(t *testing.T) {
	into, span := ExpProgress(0)
	if into != 0 || span != 150 {
		t.Fatalf("fresh profile progress = %d/%d, want 0/150", into, span)
	}
	into, span = ExpProgress(200)
	if into != 50 || span != 200 {
		t.Fatalf("level 2 progress = %d/%d, want 50/200", into, span)
	}
}

func TestLevelBonuses(t *testing.T) {
	if got := LevelWindowBonus(1); got != 0 {
		t.Fatalf("level 1 window bonus = %v, want 0", got)
	}
	if got := LevelWindowBonus(5); !closeTo(got, 0.04) {
		t.Fatalf("level 5 window bonus = %v, want 0.04", got)
	}
	if got := LevelGaugeBonus(1); got != 0 {
		t.Fatalf("level 1 gauge bonus = %v, want 0", got)
	}
	if got := LevelGaugeBonus(11); !closeTo(got, 0.05) {
		t.Fatalf("level 11 gauge bonus = %v, want 0.05", got)
	}
}

func closeTo(got, want float64) bool {
	diff := got - want
	if diff < 0 {
		diff = -diff
	}
	return diff < 1e-9
}
