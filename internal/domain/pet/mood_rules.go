package pet

import "time"

const (
	HungryAfter    = 6 * time.Hour
	SleepyAfter    = 12 * time.Hour
	BoredAfter     = 8 * time.Hour
	SadAfter       = 24 * time.Hour
	AngrySootheMax = 2 * time.Hour
)

// NextMood evaluates the care-signal rule table in fixed priority order and
// returns the mood the monster should drift into. First match wins. Total
// over all inputs; never returns anything outside the seven mood values.
func NextMood(current MoodState, sig CareSignals) MoodState {
	switch {
	case sig.SinceFed > HungryAfter:
		return MoodHungry
	case sig.SinceSlept > SleepyAfter:
		return MoodSleepy
	case sig.SincePlayed > BoredAfter:
		return MoodBored
	case sig.SinceAny > SadAfter:
		return MoodSad
	case current == MoodSick:
		// Sickness does not self-resolve; it takes a heal action.
		return MoodSick
	case current == MoodAngry && sig.SinceAny < AngrySootheMax:
		return MoodHappy
	default:
		return MoodHappy
	}
}
