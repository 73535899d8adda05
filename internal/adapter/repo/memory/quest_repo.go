package memory

import (
	"context"
	"time"

	"animochi/internal/app/ports"
	"animochi/internal/domain/quest"
)

type QuestRepo struct {
	store *Store
}

func NewQuestRepo(store *Store) QuestRepo {
	return QuestRepo{store: store}
}

func (r QuestRepo) GetByID(_ context.Context, id string) (quest.Progress, error) {
	p, ok := r.store.quests[id]
	if !ok {
		return quest.Progress{}, ports.ErrNotFound
	}
	return p, nil
}

func (r QuestRepo) GetActive(_ context.Context, userID string) ([]quest.Progress, error) {
	out := []quest.Progress{}
	for _, p := range r.store.quests {
		if p.UserID == userID && p.Status != quest.StatusClaimed && p.Status != quest.StatusExpired {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r QuestRepo) Update(_ context.Context, p quest.Progress) error {
	if _, ok := r.store.quests[p.ID]; !ok {
		return ports.ErrNotFound
	}
	r.store.quests[p.ID] = p
	return nil
}

func (r QuestRepo) AssignNew(_ context.Context, _ string, progresses []quest.Progress) error {
	for _, p := range progresses {
		r.store.quests[p.ID] = p
	}
	return nil
}

func (r QuestRepo) ExpireDue(_ context.Context, now time.Time) error {
	for id, p := range r.store.quests {
		if p.Expire(now) {
			r.store.quests[id] = p
		}
	}
	return nil
}
