package model

import "time"

type Monster struct {
	ID               string `gorm:"primaryKey"`
	OwnerID          string `gorm:"index"`
	Name             string
	Mood             string
	Level            int32
	XP               int32 `gorm:"column:xp"`
	XPToNext         int32 `gorm:"column:xp_to_next"`
	Public           bool
	Accessories      []byte
	LastUpdatedAt    time.Time
	NextTransitionAt time.Time `gorm:"index"`
}

func (Monster) TableName() string { return "monsters" }

type Wallet struct {
	OwnerID string `gorm:"primaryKey"`
	Balance int64
}

func (Wallet) TableName() string { return "wallets" }

type ActionEvent struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	MonsterID  string `gorm:"index:idx_action_events_monster_occurred"`
	UserID     string
	Action     string
	OccurredAt time.Time `gorm:"index:idx_action_events_monster_occurred"`
}

func (ActionEvent) TableName() string { return "action_events" }

type QuestProgress struct {
	ID           string `gorm:"primaryKey"`
	UserID       string `gorm:"index"`
	Type         string
	CurrentCount int32
	TargetCount  int32
	Reward       int32
	Status       string
	ExpiresAt    time.Time
	CompletedAt  *time.Time
}

func (QuestProgress) TableName() string { return "quest_progresses" }
