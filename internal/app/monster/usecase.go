package monster

import (
	"context"
	"errors"
	"strings"
	"time"

	"animochi/internal/app/ports"
	"animochi/internal/domain/pet"
	"animochi/internal/domain/quest"
)

var (
	ErrInvalidRequest = errors.New("invalid monster request")
	ErrNotOwner       = errors.New("monster belongs to another user")
)

type UseCase struct {
	Monsters ports.MonsterRepository
	Quests   ports.QuestSink
	Notifier ports.Notifier
	Rand     pet.Rand
	NewID    func() string
	Now      func() time.Time
}

func (u UseCase) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now()
}

func (u UseCase) Create(ctx context.Context, req CreateRequest) (Response, error) {
	req.OwnerID = strings.TrimSpace(req.OwnerID)
	req.Name = strings.TrimSpace(req.Name)
	if req.OwnerID == "" || req.Name == "" {
		return Response{}, ErrInvalidRequest
	}
	m := pet.NewMonster(u.NewID(), req.OwnerID, req.Name, u.now(), u.Rand)
	if err := u.Monsters.Save(ctx, m); err != nil {
		return Response{}, err
	}
	return Response{Monster: m}, nil
}

func (u UseCase) Get(ctx context.Context, req GetRequest) (Response, error) {
	req.MonsterID = strings.TrimSpace(req.MonsterID)
	if req.MonsterID == "" {
		return Response{}, ErrInvalidRequest
	}
	m, err := u.Monsters.GetByID(ctx, req.MonsterID)
	if err != nil {
		return Response{}, err
	}
	return Response{Monster: m}, nil
}

// Publish makes a monster visible to other users and feeds the quest tracker.
// Publishing an already-public monster is a no-op for the tracker.
func (u UseCase) Publish(ctx context.Context, req PublishRequest) (Response, error) {
	req.MonsterID = strings.TrimSpace(req.MonsterID)
	req.UserID = strings.TrimSpace(req.UserID)
	if req.MonsterID == "" || req.UserID == "" {
		return Response{}, ErrInvalidRequest
	}
	m, err := u.Monsters.GetByID(ctx, req.MonsterID)
	if err != nil {
		return Response{}, err
	}
	if m.OwnerID != req.UserID {
		return Response{}, ErrNotOwner
	}
	if m.Public {
		return Response{Monster: m}, nil
	}
	m.Public = true
	if err := u.Monsters.Save(ctx, m); err != nil {
		return Response{}, err
	}

	if u.Quests != nil {
		_ = u.Quests.IncrementByType(ctx, req.UserID, quest.TypeMakePublic, 1)
	}
	if u.Notifier != nil {
		u.Notifier.Notify(ctx, ports.Notification{
			Kind:    "monster_published",
			UserID:  req.UserID,
			Payload: map[string]any{"monster_id": m.ID},
		})
	}
	return Response{Monster: m}, nil
}
