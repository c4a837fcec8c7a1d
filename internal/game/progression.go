package game

// RequiredExp reports the cumulative experience needed to reach level. The
// curve is quadratic: 50·L·(L−1)+50, so level 2 costs 150 and the per-level
// step grows by 100 each level.
func RequiredExp(level int) int {
	if level <= 1 {
		return 0
	}
	return 50*level*(level-1) + 50
}

// LevelForExp reports the highest level whose requirement is met by exp.
func LevelForExp(exp int) int {
	level := 1
	for RequiredExp(level+1) <= exp {
		level++
	}
	return level
}

// ExpProgress reports progress through the current level as exp gained past
// the current level's requirement and the size of the step to the next.
func ExpProgress(exp int) (into, span int) {
	level := LevelForExp(exp)
	cur := RequiredExp(level)
	next := RequiredExp(level + 1)
	return exp - cur, next - cur
}

// LevelWindowBonus widens the catch window by 1% of screen height per level
// past the first.
func LevelWindowBonus(level int) float64 {
	if level <= 1 {
		return 0
	}
	return float64(level-1) * 0.01
}

// LevelGaugeBonus speeds up gauge fill by 0.5% per level past the first.
func LevelGaugeBonus(level int) float64 {
	if level <= 1 {
		return 0
	}
	return float64(level-1) * 0.005
}
