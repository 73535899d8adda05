package ports

import (
	"context"

	"animochi/internal/domain/quest"
)

// QuestSink receives qualifying gameplay events so the quest tracker can
// observe them. Implementations are best effort; callers treat failures as
// non-fatal.
type QuestSink interface {
	IncrementByType(ctx context.Context, userID string, questType quest.Type, amount int) error
}
