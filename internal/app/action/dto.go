package action

import "animochi/internal/domain/pet"

type Request struct {
	MonsterID string
	UserID    string
	Action    pet.ActionKind
}

type Response struct {
	Matched   bool          `json:"matched"`
	Reward    int           `json:"reward"`
	Penalty   int           `json:"penalty"`
	XPGained  int           `json:"xp_gained"`
	NewLevel  int           `json:"new_level"`
	LeveledUp bool          `json:"leveled_up"`
	Mood      pet.MoodState `json:"mood"`
	Monster   pet.Monster   `json:"monster"`
}
