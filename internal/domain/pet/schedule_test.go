package pet

import (
	"testing"
	"time"
)

type seqRand struct {
	seq []int
	i   int
}

func (r *seqRand) Intn(n int) int {
	if len(r.seq) == 0 {
		return 0
	}
	v := r.seq[r.i%len(r.seq)]
	r.i++
	return v % n
}

func TestRandomNonHappyMood_NeverHappy(t *testing.T) {
	for i := 0; i < 6; i++ {
		mood := RandomNonHappyMood(&seqRand{seq: []int{i}})
		if mood == MoodHappy {
			t.Fatalf("draw %d returned happy", i)
		}
		if !mood.Valid() {
			t.Fatalf("draw %d returned invalid mood %q", i, mood)
		}
	}
}

func TestRandomNonHappyMood_CoversAllSix(t *testing.T) {
	seen := map[MoodState]bool{}
	for i := 0; i < 6; i++ {
		seen[RandomNonHappyMood(&seqRand{seq: []int{i}})] = true
	}
	if len(seen) != 6 {
		t.Fatalf("expected 6 distinct moods, got %d", len(seen))
	}
}

func TestNextTransitionDelay_Bounds(t *testing.T) {
	low := NextTransitionDelay(&seqRand{seq: []int{0}})
	if low != MinTransitionDelay {
		t.Fatalf("minimum draw: got=%v want=%v", low, MinTransitionDelay)
	}
	high := NextTransitionDelay(&seqRand{seq: []int{int(MaxTransitionDelay-MinTransitionDelay) - 1}})
	if high >= MaxTransitionDelay || high < MinTransitionDelay {
		t.Fatalf("delay out of bounds: %v", high)
	}
}

func TestNewMonster_Defaults(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	m := NewMonster("m-1", "u-1", "Chompy", now, &seqRand{seq: []int{0}})

	if m.Level != 1 || m.XP != 0 {
		t.Fatalf("expected level 1 xp 0, got level %d xp %d", m.Level, m.XP)
	}
	if m.XPToNext != NextLevelThreshold(1) {
		t.Fatalf("threshold mismatch: got=%d want=%d", m.XPToNext, NextLevelThreshold(1))
	}
	if m.Mood != MoodHappy {
		t.Fatalf("expected happy, got %s", m.Mood)
	}
	if !m.NextTransitionAt.After(now) {
		t.Fatalf("next transition should be in the future")
	}
	if m.Malformed() {
		t.Fatalf("fresh monster should not be malformed")
	}
}

func TestApplyMatchedAction_ResetsSchedule(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	m := Monster{Mood: MoodHungry}
	m.ApplyMatchedAction(now)

	if m.Mood != MoodHappy {
		t.Fatalf("expected happy, got %s", m.Mood)
	}
	if !m.LastUpdatedAt.Equal(now) {
		t.Fatalf("last updated not set")
	}
	if want := now.Add(MatchedTransitionDelay); !m.NextTransitionAt.Equal(want) {
		t.Fatalf("next transition: got=%v want=%v", m.NextTransitionAt, want)
	}
}

func TestMalformed(t *testing.T) {
	now := time.Now()
	if (Monster{LastUpdatedAt: now, NextTransitionAt: now}).Malformed() {
		t.Fatalf("complete record flagged malformed")
	}
	if !(Monster{NextTransitionAt: now}).Malformed() {
		t.Fatalf("missing last-updated not flagged")
	}
	if !(Monster{LastUpdatedAt: now}).Malformed() {
		t.Fatalf("missing next-transition not flagged")
	}
}
