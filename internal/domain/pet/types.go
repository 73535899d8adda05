package pet

import "time"

type MoodState string

const (
	MoodHappy  MoodState = "happy"
	MoodSad    MoodState = "sad"
	MoodAngry  MoodState = "angry"
	MoodHungry MoodState = "hungry"
	MoodSleepy MoodState = "sleepy"
	MoodBored  MoodState = "bored"
	MoodSick   MoodState = "sick"
)

// Moods lists every mood state. Order is stable; random draws index into it.
var Moods = []MoodState{MoodHappy, MoodSad, MoodAngry, MoodHungry, MoodSleepy, MoodBored, MoodSick}

func (m MoodState) Valid() bool {
	switch m {
	case MoodHappy, MoodSad, MoodAngry, MoodHungry, MoodSleepy, MoodBored, MoodSick:
		return true
	default:
		return false
	}
}

type ActionKind string

const (
	ActionFeed    ActionKind = "feed"
	ActionComfort ActionKind = "comfort"
	ActionHug     ActionKind = "hug"
	ActionWake    ActionKind = "wake"
	ActionWalk    ActionKind = "walk"
	ActionTrain   ActionKind = "train"
	ActionPlay    ActionKind = "play"
	ActionHeal    ActionKind = "heal"
)

func (a ActionKind) Valid() bool {
	switch a {
	case ActionFeed, ActionComfort, ActionHug, ActionWake, ActionWalk, ActionTrain, ActionPlay, ActionHeal:
		return true
	default:
		return false
	}
}

type Monster struct {
	ID               string    `json:"id"`
	OwnerID          string    `json:"owner_id"`
	Name             string    `json:"name"`
	Mood             MoodState `json:"mood"`
	Level            int       `json:"level"`
	XP               int       `json:"xp"`
	XPToNext         int       `json:"xp_to_next"`
	Public           bool      `json:"public"`
	Accessories      []string  `json:"accessories,omitempty"`
	LastUpdatedAt    time.Time `json:"last_updated_at"`
	NextTransitionAt time.Time `json:"next_transition_at"`
}

// CareSignals carries the elapsed time since each kind of care, relative to
// the evaluation instant. A signal with no recorded occurrence uses the
// monster's last-updated timestamp as its reference point.
type CareSignals struct {
	SinceFed    time.Duration
	SinceSlept  time.Duration
	SincePlayed time.Duration
	SinceAny    time.Duration
}

type ActionEvent struct {
	MonsterID  string     `json:"monster_id"`
	UserID     string     `json:"user_id"`
	Action     ActionKind `json:"action"`
	OccurredAt time.Time  `json:"occurred_at"`
}

// Resolution is the outcome of applying one care action to a monster.
type Resolution struct {
	Matched bool `json:"matched"`
	Reward  int  `json:"reward"`
	Penalty int  `json:"penalty"`
}
