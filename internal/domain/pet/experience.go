package pet

import "math"

// XPReward returns the experience granted for a matched action. Unknown
// actions yield 0 rather than failing.
func (t Tuning) XPReward(action ActionKind) int {
	return t.XPRewards[action]
}

// NextLevelThreshold is the experience required to leave the given level:
// floor(100 * level * 1.5). Strictly increasing for level >= 1.
func NextLevelThreshold(level int) int {
	if level < 1 {
		level = 1
	}
	return int(math.Floor(100 * float64(level) * 1.5))
}

type GainResult struct {
	XP           int  `json:"xp"`
	Level        int  `json:"level"`
	Threshold    int  `json:"threshold"`
	LeveledUp    bool `json:"leveled_up"`
	LevelsGained int  `json:"levels_gained"`
}

// ApplyGain adds gained experience and rolls excess over into levels until
// xp < threshold holds again. Deterministic for identical inputs.
func ApplyGain(currentXP, currentLevel, gained int) GainResult {
	if currentLevel < 1 {
		currentLevel = 1
	}
	if currentXP < 0 {
		currentXP = 0
	}
	xp := currentXP + gained
	level := currentLevel
	threshold := NextLevelThreshold(level)
	levels := 0
	for xp >= threshold {
		xp -= threshold
		level++
		levels++
		threshold = NextLevelThreshold(level)
	}
	return GainResult{
		XP:           xp,
		Level:        level,
		Threshold:    threshold,
		LeveledUp:    levels > 0,
		LevelsGained: levels,
	}
}

// NormalizeProgress repairs an (xp, level, threshold) triple that was written
// by a path bypassing ApplyGain. The stored threshold is untrusted and gets
// recomputed from the level. Negative xp clamps to zero; xp still at or above
// the recomputed threshold after rollover clamps to threshold-1.
func NormalizeProgress(xp, level, _ int) GainResult {
	if level < 1 {
		level = 1
	}
	if xp < 0 {
		xp = 0
	}
	out := ApplyGain(xp, level, 0)
	if out.XP >= out.Threshold {
		out.XP = out.Threshold - 1
	}
	return out
}

// GainExperience routes a monster's XP mutation through ApplyGain and keeps
// the aggregate's invariant xp < xpToNext.
func (m *Monster) GainExperience(gained int) GainResult {
	out := ApplyGain(m.XP, m.Level, gained)
	m.XP = out.XP
	m.Level = out.Level
	m.XPToNext = out.Threshold
	return out
}
