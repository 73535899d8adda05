package action

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
	ErrInvalidRequest = errors.New("invalid action request")
	ErrNotOwner       = errors.New("monster belongs to another user")
)

type UseCase struct {
	TxManager ports.TxManager
	Monsters  ports.MonsterRepository
	Wallets   ports.WalletRepository
	Events    ports.ActionEventRepository
	Quests    ports.QuestSink
	Notifier  ports.Notifier
	Metrics   ports.ActionMetrics
	Tuning    pet.Tuning
	Now       func() time.Time
}

// Execute resolves one care action against a monster's current mood. A match
// sets the monster back to happy, grants experience, and credits the owner's
// wallet; a mismatch debits the mood's penalty and grants nothing. Both
// outcomes return a structured result and append an action event.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.MonsterID = strings.TrimSpace(req.MonsterID)
	req.UserID = strings.TrimSpace(req.UserID)
	if req.MonsterID == "" || req.UserID == "" || !req.Action.Valid() {
		return Response{}, ErrInvalidRequest
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	now := nowFn()

	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		monster, err := u.Monsters.GetByID(txCtx, req.MonsterID)
		if err != nil {
			return err
		}
		if monster.OwnerID != req.UserID {
			return ErrNotOwner
		}

		res := u.Tuning.Resolve(monster.Mood, req.Action)
		out = Response{
			Matched:  res.Matched,
			Reward:   res.Reward,
			Penalty:  res.Penalty,
			NewLevel: monster.Level,
			Mood:     monster.Mood,
		}

		if res.Matched {
			monster.ApplyMatchedAction(now)
			gain := monster.GainExperience(u.Tuning.XPReward(req.Action))
			out.XPGained = u.Tuning.XPReward(req.Action)
			out.NewLevel = gain.Level
			out.LeveledUp = gain.LeveledUp
			out.Mood = monster.Mood
			if err := u.Monsters.Save(txCtx, monster); err != nil {
				return err
			}
			if res.Reward > 0 {
				if err := u.Wallets.Credit(txCtx, monster.OwnerID, res.Reward); err != nil {
					return err
				}
			}
		} else if res.Penalty > 0 {
			if err := u.Wallets.Debit(txCtx, monster.OwnerID, res.Penalty); err != nil {
				return err
			}
		}

		if err := u.Events.Record(txCtx, pet.ActionEvent{
			MonsterID:  req.MonsterID,
			UserID:     req.UserID,
			Action:     req.Action,
			OccurredAt: now,
		}); err != nil {
			return err
		}

		out.Monster = monster
		return nil
	})
	if err != nil {
		if u.Metrics != nil {
			u.Metrics.RecordFailure()
		}
		return Response{}, err
	}

	if u.Metrics != nil {
		if out.Matched {
			u.Metrics.RecordMatched()
		} else {
			u.Metrics.RecordMismatched()
		}
	}

	u.observeQuests(ctx, req, out)

	if u.Notifier != nil {
		u.Notifier.Notify(ctx, ports.Notification{
			Kind:   "action_resolved",
			UserID: req.UserID,
			Payload: map[string]any{
				"monster_id": req.MonsterID,
				"action":     string(req.Action),
				"matched":    out.Matched,
			},
		})
	}

	return out, nil
}

// observeQuests feeds the quest tracker after a committed resolution. Best
// effort: tracker failures never fail the action.
func (u UseCase) observeQuests(ctx context.Context, req Request, out Response) {
	if u.Quests == nil {
		return
	}
	_ = u.Quests.IncrementByType(ctx, req.UserID, quest.TypeCareActions, 1)
	switch req.Action {
	case pet.ActionFeed:
		_ = u.Quests.IncrementByType(ctx, req.UserID, quest.TypeFeedMonster, 1)
	case pet.ActionPlay:
		_ = u.Quests.IncrementByType(ctx, req.UserID, quest.TypePlayMonster, 1)
	}
	if out.LeveledUp {
		_ = u.Quests.IncrementByType(ctx, req.UserID, quest.TypeReachLevelUp, 1)
	}
}
