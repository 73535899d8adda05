package quest

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"animochi/internal/adapter/repo/memory"
	"animochi/internal/app/ports"
	domain "animochi/internal/domain/quest"
)

func fixedNow() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func newTestUseCase(store *memory.Store) UseCase {
	counter := 0
	return UseCase{
		TxManager: memory.NewTxManager(store),
		Quests:    memory.NewQuestRepo(store),
		Wallets:   memory.NewWalletRepo(store),
		NewID: func() string {
			counter++
			return fmt.Sprintf("q-%d", counter)
		},
		Now: fixedNow,
	}
}

func seedQuest(store *memory.Store, id string, questType domain.Type, target, reward int) {
	store.SeedQuest(domain.Progress{
		ID:          id,
		UserID:      "u-1",
		Type:        questType,
		TargetCount: target,
		Reward:      reward,
		Status:      domain.StatusNotStarted,
		ExpiresAt:   fixedNow().Add(24 * time.Hour),
	})
}

func TestIncrement_RewardSurfacedOnce(t *testing.T) {
	store := memory.NewStore()
	seedQuest(store, "q-1", domain.TypeCareActions, 3, 20)
	uc := newTestUseCase(store)

	amounts := []int{1, 1, 2}
	var completions int
	for i, amount := range amounts {
		out, err := uc.Increment(context.Background(), "u-1", "q-1", amount)
		if err != nil {
			t.Fatalf("increment %d: %v", i, err)
		}
		if out.JustCompleted {
			completions++
			if out.Reward != 20 {
				t.Fatalf("completion reward: got=%d want=20", out.Reward)
			}
		}
	}
	if completions != 1 {
		t.Fatalf("expected exactly one completion, got %d", completions)
	}

	out, err := uc.Increment(context.Background(), "u-1", "q-1", 1)
	if err != nil {
		t.Fatalf("post-completion increment: %v", err)
	}
	if out.JustCompleted || out.Reward != 0 {
		t.Fatalf("post-completion increment must be a no-op, got %+v", out)
	}
	if out.Progress.CurrentCount != 3 {
		t.Fatalf("count must clamp at target, got %d", out.Progress.CurrentCount)
	}
}

func TestIncrement_ExpiredRejected(t *testing.T) {
	store := memory.NewStore()
	store.SeedQuest(domain.Progress{
		ID:          "q-1",
		UserID:      "u-1",
		Type:        domain.TypeCareActions,
		TargetCount: 3,
		Reward:      20,
		Status:      domain.StatusNotStarted,
		ExpiresAt:   fixedNow().Add(-time.Minute),
	})
	uc := newTestUseCase(store)

	_, err := uc.Increment(context.Background(), "u-1", "q-1", 1)
	if !errors.Is(err, domain.ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}

	// The lazy expiry must have been persisted.
	p, err := memory.NewQuestRepo(store).GetByID(context.Background(), "q-1")
	if err != nil {
		t.Fatalf("get quest: %v", err)
	}
	if p.Status != domain.StatusExpired {
		t.Fatalf("expected persisted EXPIRED, got %s", p.Status)
	}
}

func TestIncrement_OtherUsersQuestHidden(t *testing.T) {
	store := memory.NewStore()
	seedQuest(store, "q-1", domain.TypeCareActions, 3, 20)
	uc := newTestUseCase(store)

	_, err := uc.Increment(context.Background(), "u-2", "q-1", 1)
	if !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestIncrementByType(t *testing.T) {
	store := memory.NewStore()
	seedQuest(store, "q-1", domain.TypeFeedMonster, 2, 15)
	uc := newTestUseCase(store)

	if err := uc.IncrementByType(context.Background(), "u-1", domain.TypeFeedMonster, 1); err != nil {
		t.Fatalf("increment by type: %v", err)
	}
	p, err := memory.NewQuestRepo(store).GetByID(context.Background(), "q-1")
	if err != nil {
		t.Fatalf("get quest: %v", err)
	}
	if p.CurrentCount != 1 || p.Status != domain.StatusInProgress {
		t.Fatalf("unexpected progress: %+v", p)
	}

	// No quest of this type assigned: a silent no-op.
	if err := uc.IncrementByType(context.Background(), "u-1", domain.TypeMakePublic, 1); err != nil {
		t.Fatalf("increment for unassigned type: %v", err)
	}
}

func TestClaim_CreditsWallet(t *testing.T) {
	store := memory.NewStore()
	seedQuest(store, "q-1", domain.TypeMakePublic, 1, 10)
	uc := newTestUseCase(store)

	if _, err := uc.Claim(context.Background(), "u-1", "q-1"); !errors.Is(err, domain.ErrNotClaimed) {
		t.Fatalf("claim before completion: expected ErrNotClaimed, got %v", err)
	}

	if _, err := uc.Increment(context.Background(), "u-1", "q-1", 1); err != nil {
		t.Fatalf("increment: %v", err)
	}
	out, err := uc.Claim(context.Background(), "u-1", "q-1")
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	if out.Credited != 10 || out.Progress.Status != domain.StatusClaimed {
		t.Fatalf("claim result: %+v", out)
	}

	balance, err := memory.NewWalletRepo(store).Balance(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if balance != 10 {
		t.Fatalf("wallet balance: got=%d want=10", balance)
	}

	if _, err := uc.Claim(context.Background(), "u-1", "q-1"); !errors.Is(err, domain.ErrNotClaimed) {
		t.Fatalf("double claim: expected ErrNotClaimed, got %v", err)
	}
}

func TestAssignDaily(t *testing.T) {
	store := memory.NewStore()
	uc := newTestUseCase(store)

	assigned, err := uc.AssignDaily(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("assign daily: %v", err)
	}
	if len(assigned) != len(domain.DailyQuests()) {
		t.Fatalf("assigned %d quests, want %d", len(assigned), len(domain.DailyQuests()))
	}
	for _, p := range assigned {
		if p.Status != domain.StatusNotStarted {
			t.Fatalf("fresh quest status: %s", p.Status)
		}
		if want := fixedNow().Add(DefaultValidity); !p.ExpiresAt.Equal(want) {
			t.Fatalf("expiry: got=%v want=%v", p.ExpiresAt, want)
		}
	}

	active, err := uc.ListActive(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != len(assigned) {
		t.Fatalf("active count: got=%d want=%d", len(active), len(assigned))
	}
}

func TestExpireDue_IdempotentSweep(t *testing.T) {
	store := memory.NewStore()
	store.SeedQuest(domain.Progress{
		ID:          "q-old",
		UserID:      "u-1",
		Type:        domain.TypeCareActions,
		TargetCount: 3,
		Reward:      20,
		Status:      domain.StatusInProgress,
		ExpiresAt:   fixedNow().Add(-time.Hour),
	})
	seedQuest(store, "q-new", domain.TypeFeedMonster, 3, 15)
	uc := newTestUseCase(store)

	for i := 0; i < 2; i++ {
		if err := uc.ExpireDue(context.Background(), fixedNow()); err != nil {
			t.Fatalf("sweep %d: %v", i, err)
		}
	}

	repo := memory.NewQuestRepo(store)
	old, _ := repo.GetByID(context.Background(), "q-old")
	if old.Status != domain.StatusExpired {
		t.Fatalf("expected EXPIRED, got %s", old.Status)
	}
	fresh, _ := repo.GetByID(context.Background(), "q-new")
	if fresh.Status != domain.StatusNotStarted {
		t.Fatalf("fresh quest must be untouched, got %s", fresh.Status)
	}
}
