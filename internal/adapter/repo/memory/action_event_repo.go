package memory

import (
	"context"
	"time"

	"animochi/internal/domain/pet"
)

type ActionEventRepo struct {
	store *Store
}

func NewActionEventRepo(store *Store) ActionEventRepo {
	return ActionEventRepo{store: store}
}

func (r ActionEventRepo) Record(_ context.Context, event pet.ActionEvent) error {
	r.store.events = append(r.store.events, event)
	return nil
}

func (r ActionEventRepo) HasOccurredSince(_ context.Context, monsterID string, action pet.ActionKind, since time.Time) (bool, error) {
	for _, e := range r.store.events {
		if e.MonsterID == monsterID && e.Action == action && e.OccurredAt.After(since) {
			return true, nil
		}
	}
	return false, nil
}

func (r ActionEventRepo) LastOccurrence(_ context.Context, monsterID string, action pet.ActionKind) (*time.Time, error) {
	var last *time.Time
	for _, e := range r.store.events {
		if e.MonsterID != monsterID {
			continue
		}
		if action != "" && e.Action != action {
			continue
		}
		occurred := e.OccurredAt
		if last == nil || occurred.After(*last) {
			last = &occurred
		}
	}
	return last, nil
}
