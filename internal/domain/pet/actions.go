package pet

import "time"

// MatchedTransitionDelay is how long a freshly tended (happy) monster stays
// put before the scheduler considers it again.
const MatchedTransitionDelay = 5 * time.Minute

var expectedActions = map[MoodState]ActionKind{
	MoodHungry: ActionFeed,
	MoodSleepy: ActionWake,
	MoodSad:    ActionComfort,
	MoodAngry:  ActionHug,
	MoodBored:  ActionPlay,
	MoodSick:   ActionHeal,
	MoodHappy:  ActionHug,
}

// ExpectedAction returns the one care action that matches the given mood.
func ExpectedAction(mood MoodState) ActionKind {
	if a, ok := expectedActions[mood]; ok {
		return a
	}
	return ActionHug
}

// Tuning holds the reward, penalty, and XP lookup tables. It is built once at
// startup and injected; the tables are never mutated after construction.
type Tuning struct {
	Rewards   map[ActionKind]int
	Penalties map[MoodState]int
	XPRewards map[ActionKind]int
}

func DefaultTuning() Tuning {
	return Tuning{
		Rewards: map[ActionKind]int{
			ActionFeed:    10,
			ActionComfort: 8,
			ActionHug:     5,
			ActionWake:    6,
			ActionWalk:    8,
			ActionTrain:   12,
			ActionPlay:    10,
			ActionHeal:    15,
		},
		Penalties: map[MoodState]int{
			MoodHappy:  0,
			MoodSad:    5,
			MoodAngry:  6,
			MoodHungry: 8,
			MoodSleepy: 4,
			MoodBored:  5,
			MoodSick:   10,
		},
		XPRewards: map[ActionKind]int{
			ActionFeed:    10,
			ActionComfort: 8,
			ActionHug:     6,
			ActionWake:    8,
			ActionWalk:    10,
			ActionTrain:   15,
			ActionPlay:    12,
			ActionHeal:    12,
		},
	}
}

// Resolve maps (current mood, performed action) to a match outcome. A match
// carries the action's reward; a mismatch carries the penalty for the
// monster's current mood. Pure; the caller applies side effects.
func (t Tuning) Resolve(mood MoodState, action ActionKind) Resolution {
	if ExpectedAction(mood) == action {
		return Resolution{Matched: true, Reward: t.Rewards[action]}
	}
	return Resolution{Penalty: t.Penalties[mood]}
}

// Reward returns the currency reward for a matched action. Unknown actions
// yield 0.
func (t Tuning) Reward(action ActionKind) int {
	return t.Rewards[action]
}

// Penalty returns the neglect penalty for a mood. Happy carries no penalty.
func (t Tuning) Penalty(mood MoodState) int {
	return t.Penalties[mood]
}
