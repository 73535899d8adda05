package pet

import "testing"

func TestNextLevelThreshold_StrictlyIncreasing(t *testing.T) {
	for level := 1; level < 100; level++ {
		if NextLevelThreshold(level) >= NextLevelThreshold(level+1) {
			t.Fatalf("threshold not increasing at level %d: %d >= %d",
				level, NextLevelThreshold(level), NextLevelThreshold(level+1))
		}
	}
	if got, want := NextLevelThreshold(1), 150; got != want {
		t.Fatalf("threshold(1): got=%d want=%d", got, want)
	}
	if got, want := NextLevelThreshold(3), 450; got != want {
		t.Fatalf("threshold(3): got=%d want=%d", got, want)
	}
}

func TestApplyGain_SingleLevel(t *testing.T) {
	out := ApplyGain(145, 1, 10)
	if out.Level != 2 || out.XP != 5 {
		t.Fatalf("expected level 2 xp 5, got level %d xp %d", out.Level, out.XP)
	}
	if !out.LeveledUp || out.LevelsGained != 1 {
		t.Fatalf("expected one level gained, got leveledUp=%v levels=%d", out.LeveledUp, out.LevelsGained)
	}
	if out.Threshold != NextLevelThreshold(2) {
		t.Fatalf("threshold mismatch: got=%d want=%d", out.Threshold, NextLevelThreshold(2))
	}
}

func TestApplyGain_MultiLevelRollover(t *testing.T) {
	// 150 + 300 = 450 crossed; lands at level 3 with 50 left over.
	out := ApplyGain(0, 1, 500)
	if out.Level != 3 || out.XP != 50 {
		t.Fatalf("expected level 3 xp 50, got level %d xp %d", out.Level, out.XP)
	}
	if out.LevelsGained != 2 {
		t.Fatalf("expected 2 levels gained, got %d", out.LevelsGained)
	}
}

func TestApplyGain_InvariantHolds(t *testing.T) {
	cases := []struct{ xp, level, gained int }{
		{0, 1, 0},
		{0, 1, 6},
		{149, 1, 1},
		{0, 5, 10000},
		{-20, 1, 5},
		{0, 0, 100},
	}
	for _, c := range cases {
		out := ApplyGain(c.xp, c.level, c.gained)
		if out.XP >= out.Threshold {
			t.Fatalf("ApplyGain(%d,%d,%d) left xp=%d >= threshold=%d", c.xp, c.level, c.gained, out.XP, out.Threshold)
		}
		if out.XP < 0 {
			t.Fatalf("ApplyGain(%d,%d,%d) left negative xp %d", c.xp, c.level, c.gained, out.XP)
		}
	}
}

func TestApplyGain_Deterministic(t *testing.T) {
	a := ApplyGain(42, 3, 77)
	b := ApplyGain(42, 3, 77)
	if a != b {
		t.Fatalf("ApplyGain not deterministic: %+v vs %+v", a, b)
	}
}

func TestNormalizeProgress_RepairsInconsistentTriples(t *testing.T) {
	out := NormalizeProgress(-50, 2, 300)
	if out.XP != 0 || out.Level != 2 {
		t.Fatalf("negative xp should clamp to 0, got xp=%d level=%d", out.XP, out.Level)
	}

	out = NormalizeProgress(400, 1, 150)
	if out.Level != 2 || out.XP != 250 {
		t.Fatalf("expected rollover to level 2 xp 250, got level %d xp %d", out.Level, out.XP)
	}
	if out.XP >= out.Threshold {
		t.Fatalf("repair left xp=%d >= threshold=%d", out.XP, out.Threshold)
	}
}

func TestXPReward_UnknownActionYieldsZero(t *testing.T) {
	tuning := DefaultTuning()
	if got := tuning.XPReward(ActionKind("dance")); got != 0 {
		t.Fatalf("unknown action xp: got=%d want=0", got)
	}
	for action, want := range tuning.XPRewards {
		if want < 6 || want > 15 {
			t.Fatalf("xp reward for %s out of range: %d", action, want)
		}
	}
}

func TestGainExperience_MutatesAggregate(t *testing.T) {
	m := Monster{Level: 1, XP: 149, XPToNext: NextLevelThreshold(1)}
	out := m.GainExperience(6)
	if m.Level != 2 || m.XP != 5 || m.XPToNext != NextLevelThreshold(2) {
		t.Fatalf("aggregate not updated: %+v", m)
	}
	if !out.LeveledUp {
		t.Fatalf("expected level up")
	}
	if m.XP >= m.XPToNext {
		t.Fatalf("invariant violated: xp=%d threshold=%d", m.XP, m.XPToNext)
	}
}
