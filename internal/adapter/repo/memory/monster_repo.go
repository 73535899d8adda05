package memory

import (
	"context"
	"time"

	"animochi/internal/app/ports"
	"animochi/internal/domain/pet"
)

type MonsterRepo struct {
	store *Store
}

func NewMonsterRepo(store *Store) MonsterRepo {
	return MonsterRepo{store: store}
}

func (r MonsterRepo) GetByID(_ context.Context, id string) (pet.Monster, error) {
	m, ok := r.store.monsters[id]
	if !ok {
		return pet.Monster{}, ports.ErrNotFound
	}
	return m, nil
}

func (r MonsterRepo) FindDue(_ context.Context, now time.Time) ([]pet.Monster, error) {
	out := []pet.Monster{}
	for _, m := range r.store.monsters {
		if !m.NextTransitionAt.After(now) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r MonsterRepo) Save(_ context.Context, m pet.Monster) error {
	r.store.monsters[m.ID] = m
	return nil
}
