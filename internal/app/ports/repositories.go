package ports

import (
	"context"
	"time"

	"animochi/internal/domain/pet"
	"animochi/internal/domain/quest"
)

type MonsterRepository interface {
	GetByID(ctx context.Context, id string) (pet.Monster, error)
	FindDue(ctx context.Context, now time.Time) ([]pet.Monster, error)
	Save(ctx context.Context, m pet.Monster) error
}

// WalletRepository applies signed deltas to a per-owner balance. Both
// operations are single atomic updates at the storage layer and create the
// wallet lazily. Debit clamps at zero; the balance never goes negative.
type WalletRepository interface {
	Credit(ctx context.Context, ownerID string, amount int) error
	Debit(ctx context.Context, ownerID string, amount int) error
	Balance(ctx context.Context, ownerID string) (int, error)
}

// ActionEventRepository is the append-only care-action log. Lookbacks feed
// the mood rule signals and the neglect check; records are never mutated.
type ActionEventRepository interface {
	Record(ctx context.Context, event pet.ActionEvent) error
	HasOccurredSince(ctx context.Context, monsterID string, action pet.ActionKind, since time.Time) (bool, error)
	// LastOccurrence returns the most recent event time for the given action,
	// or nil when none is recorded. An empty action matches any kind.
	LastOccurrence(ctx context.Context, monsterID string, action pet.ActionKind) (*time.Time, error)
}

type QuestRepository interface {
	GetByID(ctx context.Context, id string) (quest.Progress, error)
	GetActive(ctx context.Context, userID string) ([]quest.Progress, error)
	Update(ctx context.Context, p quest.Progress) error
	AssignNew(ctx context.Context, userID string, progresses []quest.Progress) error
	ExpireDue(ctx context.Context, now time.Time) error
}
