package quest

import "time"

type Status string

const (
	StatusNotStarted Status = "NOT_STARTED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusClaimed    Status = "CLAIMED"
	StatusExpired    Status = "EXPIRED"
)

func (s Status) Terminal() bool {
	return s == StatusClaimed || s == StatusExpired
}

type Type string

const (
	TypeCareActions  Type = "care_actions"
	TypeFeedMonster  Type = "feed_monster"
	TypePlayMonster  Type = "play_monster"
	TypeMakePublic   Type = "make_public"
	TypeReachLevelUp Type = "level_up"
)

type Progress struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	Type         Type       `json:"type"`
	CurrentCount int        `json:"current_count"`
	TargetCount  int        `json:"target_count"`
	Reward       int        `json:"reward"`
	Status       Status     `json:"status"`
	ExpiresAt    time.Time  `json:"expires_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}

// Definition is a quest template; AssignDaily stamps these into per-user
// Progress records with a fresh expiry window.
type Definition struct {
	Type   Type
	Target int
	Reward int
}

// DailyQuests is the default daily set.
func DailyQuests() []Definition {
	return []Definition{
		{Type: TypeCareActions, Target: 5, Reward: 20},
		{Type: TypeFeedMonster, Target: 3, Reward: 15},
		{Type: TypePlayMonster, Target: 3, Reward: 15},
		{Type: TypeMakePublic, Target: 1, Reward: 10},
		{Type: TypeReachLevelUp, Target: 1, Reward: 25},
	}
}
