package quest

import (
	"context"
	"errors"
	"strings"
	"time"

	"animochi/internal/app/ports"
	domain "animochi/internal/domain/quest"
)

var ErrInvalidRequest = errors.New("invalid quest request")

const DefaultValidity = 24 * time.Hour

type UseCase struct {
	TxManager ports.TxManager
	Quests    ports.QuestRepository
	Wallets   ports.WalletRepository
	Notifier  ports.Notifier
	NewID     func() string
	Now       func() time.Time
	Validity  time.Duration
}

func (u UseCase) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now()
}

// Increment advances one quest's counter. Completion is surfaced exactly once,
// on the call that crosses the target; later calls are no-ops.
func (u UseCase) Increment(ctx context.Context, userID, questID string, amount int) (IncrementResponse, error) {
	userID = strings.TrimSpace(userID)
	questID = strings.TrimSpace(questID)
	if userID == "" || questID == "" || amount <= 0 {
		return IncrementResponse{}, ErrInvalidRequest
	}

	var out IncrementResponse
	var incErr error
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		p, err := u.Quests.GetByID(txCtx, questID)
		if err != nil {
			return err
		}
		if p.UserID != userID {
			return ports.ErrNotFound
		}
		res, err := p.Increment(amount, u.now())
		if errors.Is(err, domain.ErrExpired) {
			// Persist the lazy expiry; returning the error here would roll
			// the transaction back, so it surfaces after the commit.
			incErr = err
			return u.Quests.Update(txCtx, p)
		}
		if err != nil {
			return err
		}
		if err := u.Quests.Update(txCtx, p); err != nil {
			return err
		}
		out = IncrementResponse{Progress: p, JustCompleted: res.JustCompleted, Reward: res.Reward}
		return nil
	})
	if err != nil {
		return IncrementResponse{}, err
	}
	if incErr != nil {
		return IncrementResponse{}, incErr
	}

	if out.JustCompleted && u.Notifier != nil {
		u.Notifier.Notify(ctx, ports.Notification{
			Kind:   "quest_completed",
			UserID: userID,
			Payload: map[string]any{
				"quest_id": out.Progress.ID,
				"type":     string(out.Progress.Type),
				"reward":   out.Reward,
			},
		})
	}
	return out, nil
}

// IncrementByType advances the user's active quest of the given type, if one
// is assigned. No assigned quest of that type is a silent no-op; the tracker
// only observes events, it never demands them.
func (u UseCase) IncrementByType(ctx context.Context, userID string, questType domain.Type, amount int) error {
	userID = strings.TrimSpace(userID)
	if userID == "" || amount <= 0 {
		return ErrInvalidRequest
	}
	active, err := u.Quests.GetActive(ctx, userID)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil
		}
		return err
	}
	for _, p := range active {
		if p.Type != questType {
			continue
		}
		_, err := u.Increment(ctx, userID, p.ID, amount)
		if errors.Is(err, domain.ErrExpired) {
			return nil
		}
		return err
	}
	return nil
}

// Claim pays out a completed quest and moves it to its terminal state.
func (u UseCase) Claim(ctx context.Context, userID, questID string) (ClaimResponse, error) {
	userID = strings.TrimSpace(userID)
	questID = strings.TrimSpace(questID)
	if userID == "" || questID == "" {
		return ClaimResponse{}, ErrInvalidRequest
	}

	var out ClaimResponse
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		p, err := u.Quests.GetByID(txCtx, questID)
		if err != nil {
			return err
		}
		if p.UserID != userID {
			return ports.ErrNotFound
		}
		reward, err := p.Claim()
		if err != nil {
			return err
		}
		if err := u.Quests.Update(txCtx, p); err != nil {
			return err
		}
		if reward > 0 {
			if err := u.Wallets.Credit(txCtx, userID, reward); err != nil {
				return err
			}
		}
		out = ClaimResponse{Progress: p, Credited: reward}
		return nil
	})
	if err != nil {
		return ClaimResponse{}, err
	}

	if u.Notifier != nil {
		u.Notifier.Notify(ctx, ports.Notification{
			Kind:   "quest_claimed",
			UserID: userID,
			Payload: map[string]any{
				"quest_id": questID,
				"credited": out.Credited,
			},
		})
	}
	return out, nil
}

// ListActive returns the user's current quest records.
func (u UseCase) ListActive(ctx context.Context, userID string) ([]domain.Progress, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidRequest
	}
	active, err := u.Quests.GetActive(ctx, userID)
	if err != nil && !errors.Is(err, ports.ErrNotFound) {
		return nil, err
	}
	return active, nil
}

// AssignDaily installs the default daily quest set for a user with a fresh
// validity window.
func (u UseCase) AssignDaily(ctx context.Context, userID string) ([]domain.Progress, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidRequest
	}
	validity := u.Validity
	if validity <= 0 {
		validity = DefaultValidity
	}
	now := u.now()
	defs := domain.DailyQuests()
	progresses := make([]domain.Progress, 0, len(defs))
	for _, d := range defs {
		progresses = append(progresses, domain.Progress{
			ID:          u.NewID(),
			UserID:      userID,
			Type:        d.Type,
			TargetCount: d.Target,
			Reward:      d.Reward,
			Status:      domain.StatusNotStarted,
			ExpiresAt:   now.Add(validity),
		})
	}
	if err := u.Quests.AssignNew(ctx, userID, progresses); err != nil {
		return nil, err
	}
	return progresses, nil
}

// ExpireDue marks every non-completed record past its window EXPIRED.
// Idempotent; repeated sweeps never touch terminal records again.
func (u UseCase) ExpireDue(ctx context.Context, now time.Time) error {
	if now.IsZero() {
		now = u.now()
	}
	return u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		return u.Quests.ExpireDue(txCtx, now)
	})
}
