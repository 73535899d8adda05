package lifecycle

import (
	"context"
	"time"

	"animochi/internal/app/ports"
	"animochi/internal/domain/pet"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type UseCase struct {
	TxManager ports.TxManager
	Monsters  ports.MonsterRepository
	Wallets   ports.WalletRepository
	Events    ports.ActionEventRepository
	Notifier  ports.Notifier
	Metrics   ports.TickMetrics
	Tuning    pet.Tuning
	Rand      pet.Rand
	Now       func() time.Time
}

// Report summarizes one batch tick.
type Report struct {
	Due       int      `json:"due"`
	Processed int      `json:"processed"`
	Skipped   int      `json:"skipped"`
	SkippedID []string `json:"skipped_ids,omitempty"`
}

// Tick advances every monster whose scheduled transition has elapsed. Safe
// under at-least-once invocation: each monster's next-transition timestamp is
// advanced in the same transaction that mutates it, so an overlapping tick
// finds it no longer due. A malformed record aborts only its own entity.
func (u UseCase) Tick(ctx context.Context, now time.Time) (Report, error) {
	if now.IsZero() {
		nowFn := u.Now
		if nowFn == nil {
			nowFn = time.Now
		}
		now = nowFn()
	}

	due, err := u.Monsters.FindDue(ctx, now)
	if err != nil {
		return Report{}, err
	}

	report := Report{Due: len(due)}
	for _, m := range due {
		if err := u.advance(ctx, m.ID, now); err != nil {
			hlog.Warnf("tick: skipping monster %s: %v", m.ID, err)
			report.Skipped++
			report.SkippedID = append(report.SkippedID, m.ID)
			continue
		}
		report.Processed++
	}

	if u.Metrics != nil {
		u.Metrics.RecordTick(report.Processed, report.Skipped)
	}
	return report, nil
}

// errMalformedMonster marks a persisted record missing required timestamps.
type errMalformedMonster struct{ id string }

func (e errMalformedMonster) Error() string { return "malformed monster record " + e.id }

func (u UseCase) advance(ctx context.Context, monsterID string, now time.Time) error {
	return u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		m, err := u.Monsters.GetByID(txCtx, monsterID)
		if err != nil {
			return err
		}
		if m.Malformed() {
			return errMalformedMonster{id: m.ID}
		}
		// A concurrent tick may have advanced this monster already.
		if m.NextTransitionAt.After(now) {
			return nil
		}

		if err := u.applyNeglectPenalty(txCtx, m); err != nil {
			return err
		}

		var next pet.MoodState
		if m.Mood == pet.MoodHappy {
			// Contentment decays into a uniformly random need; the rule
			// table never runs for a happy monster whose timer elapsed.
			next = pet.RandomNonHappyMood(u.Rand)
		} else {
			sig, err := u.careSignals(txCtx, m, now)
			if err != nil {
				return err
			}
			next = pet.NextMood(m.Mood, sig)
		}

		changed := next != m.Mood
		m.Mood = next
		m.LastUpdatedAt = now
		m.NextTransitionAt = now.Add(pet.NextTransitionDelay(u.Rand))
		if err := u.Monsters.Save(txCtx, m); err != nil {
			return err
		}

		if changed && u.Notifier != nil {
			u.Notifier.Notify(txCtx, ports.Notification{
				Kind:   "mood_changed",
				UserID: m.OwnerID,
				Payload: map[string]any{
					"monster_id": m.ID,
					"mood":       string(m.Mood),
				},
			})
		}
		return nil
	})
}

// applyNeglectPenalty debits the owner when the care action the current mood
// called for never happened in the window since the last transition.
func (u UseCase) applyNeglectPenalty(ctx context.Context, m pet.Monster) error {
	penalty := u.Tuning.Penalty(m.Mood)
	if penalty <= 0 {
		return nil
	}
	occurred, err := u.Events.HasOccurredSince(ctx, m.ID, pet.ExpectedAction(m.Mood), m.LastUpdatedAt)
	if err != nil {
		return err
	}
	if occurred {
		return nil
	}
	return u.Wallets.Debit(ctx, m.OwnerID, penalty)
}

func (u UseCase) careSignals(ctx context.Context, m pet.Monster, now time.Time) (pet.CareSignals, error) {
	sinceFed, err := u.signalSince(ctx, m, pet.ActionFeed, now)
	if err != nil {
		return pet.CareSignals{}, err
	}
	sinceSlept, err := u.signalSince(ctx, m, pet.ActionWake, now)
	if err != nil {
		return pet.CareSignals{}, err
	}
	sincePlayed, err := u.signalSince(ctx, m, pet.ActionPlay, now)
	if err != nil {
		return pet.CareSignals{}, err
	}
	sinceAny, err := u.signalSince(ctx, m, "", now)
	if err != nil {
		return pet.CareSignals{}, err
	}
	return pet.CareSignals{
		SinceFed:    sinceFed,
		SinceSlept:  sinceSlept,
		SincePlayed: sincePlayed,
		SinceAny:    sinceAny,
	}, nil
}

func (u UseCase) signalSince(ctx context.Context, m pet.Monster, action pet.ActionKind, now time.Time) (time.Duration, error) {
	last, err := u.Events.LastOccurrence(ctx, m.ID, action)
	if err != nil {
		return 0, err
	}
	ref := m.LastUpdatedAt
	if last != nil {
		ref = *last
	}
	return now.Sub(ref), nil
}
