package pet

import "time"

const (
	MinTransitionDelay = 5 * time.Minute
	MaxTransitionDelay = 10 * time.Minute
)

// Rand is the random source the scheduler draws from. Tests supply
// deterministic sequences; production wires math/rand.
type Rand interface {
	Intn(n int) int
}

var nonHappyMoods = []MoodState{MoodSad, MoodAngry, MoodHungry, MoodSleepy, MoodBored, MoodSick}

// RandomNonHappyMood draws uniformly from the six non-happy states. Used when
// a happy monster's scheduled transition elapses: contentment decays into a
// random need instead of going through the rule table.
func RandomNonHappyMood(r Rand) MoodState {
	return nonHappyMoods[r.Intn(len(nonHappyMoods))]
}

// NextTransitionDelay draws a schedule delay in [MinTransitionDelay, MaxTransitionDelay).
func NextTransitionDelay(r Rand) time.Duration {
	span := int(MaxTransitionDelay - MinTransitionDelay)
	return MinTransitionDelay + time.Duration(r.Intn(span))
}

// NewMonster builds a freshly adopted monster: level 1, no experience, happy,
// with its first automatic transition a short random delay out.
func NewMonster(id, ownerID, name string, now time.Time, r Rand) Monster {
	return Monster{
		ID:               id,
		OwnerID:          ownerID,
		Name:             name,
		Mood:             MoodHappy,
		Level:            1,
		XP:               0,
		XPToNext:         NextLevelThreshold(1),
		LastUpdatedAt:    now,
		NextTransitionAt: now.Add(NextTransitionDelay(r)),
	}
}

// ApplyMatchedAction force-sets a tended monster back to happy and reschedules
// its next automatic transition a fixed short delay out.
func (m *Monster) ApplyMatchedAction(now time.Time) {
	m.Mood = MoodHappy
	m.LastUpdatedAt = now
	m.NextTransitionAt = now.Add(MatchedTransitionDelay)
}

// Malformed reports whether a persisted monster is missing the timestamps the
// scheduler depends on. Such records are skipped during batch ticks.
func (m Monster) Malformed() bool {
	return m.LastUpdatedAt.IsZero() || m.NextTransitionAt.IsZero()
}
