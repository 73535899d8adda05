package quest

import (
	"errors"
	"testing"
	"time"
)

func activeProgress(target, reward int, expiresAt time.Time) Progress {
	return Progress{
		ID:          "q-1",
		UserID:      "u-1",
		Type:        TypeCareActions,
		TargetCount: target,
		Reward:      reward,
		Status:      StatusNotStarted,
		ExpiresAt:   expiresAt,
	}
}

func TestIncrement_CompletesExactlyOnce(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	p := activeProgress(3, 20, now.Add(24*time.Hour))

	res, err := p.Increment(1, now)
	if err != nil || res.JustCompleted || res.Reward != 0 {
		t.Fatalf("first increment: res=%+v err=%v", res, err)
	}
	if p.Status != StatusInProgress || p.CurrentCount != 1 {
		t.Fatalf("after first increment: %+v", p)
	}

	res, err = p.Increment(1, now)
	if err != nil || res.JustCompleted {
		t.Fatalf("second increment: res=%+v err=%v", res, err)
	}

	res, err = p.Increment(2, now)
	if err != nil {
		t.Fatalf("third increment error: %v", err)
	}
	if !res.JustCompleted || res.Reward != 20 {
		t.Fatalf("expected completion with reward 20, got %+v", res)
	}
	if p.CurrentCount != 3 {
		t.Fatalf("count should clamp at target, got %d", p.CurrentCount)
	}
	if p.Status != StatusCompleted || p.CompletedAt == nil {
		t.Fatalf("expected completed status, got %+v", p)
	}

	res, err = p.Increment(1, now)
	if err != nil {
		t.Fatalf("fourth increment error: %v", err)
	}
	if res.JustCompleted || res.Reward != 0 {
		t.Fatalf("completion must surface once, got %+v", res)
	}
	if p.CurrentCount != 3 {
		t.Fatalf("completed record must not keep counting, got %d", p.CurrentCount)
	}
}

func TestIncrement_RejectsExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	p := activeProgress(3, 20, now.Add(-time.Minute))

	_, err := p.Increment(1, now)
	if !errors.Is(err, ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
	if p.Status != StatusExpired {
		t.Fatalf("expected lazy expiry, got %s", p.Status)
	}

	_, err = p.Increment(1, now)
	if !errors.Is(err, ErrExpired) {
		t.Fatalf("expired record must keep rejecting, got %v", err)
	}
}

func TestIncrement_CompletedSurvivesExpiryWindow(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	p := activeProgress(1, 10, now.Add(time.Hour))
	if res, err := p.Increment(1, now); err != nil || !res.JustCompleted {
		t.Fatalf("completion failed: res=%+v err=%v", res, err)
	}

	// Past the window a completed quest stays a no-op, not an error.
	res, err := p.Increment(1, now.Add(2*time.Hour))
	if err != nil || res.JustCompleted {
		t.Fatalf("completed quest past expiry: res=%+v err=%v", res, err)
	}
}

func TestClaim(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	p := activeProgress(1, 10, now.Add(time.Hour))

	if _, err := p.Claim(); !errors.Is(err, ErrNotClaimed) {
		t.Fatalf("claim before completion should fail, got %v", err)
	}

	if _, err := p.Increment(1, now); err != nil {
		t.Fatalf("increment: %v", err)
	}
	reward, err := p.Claim()
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	if reward != 10 || p.Status != StatusClaimed {
		t.Fatalf("claim result: reward=%d status=%s", reward, p.Status)
	}

	if _, err := p.Claim(); !errors.Is(err, ErrNotClaimed) {
		t.Fatalf("double claim should fail, got %v", err)
	}
}

func TestExpire_IdempotentSweep(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	p := activeProgress(3, 20, now.Add(-time.Minute))
	if !p.Expire(now) {
		t.Fatalf("expected expiry")
	}
	if p.Expire(now) {
		t.Fatalf("second sweep must be a no-op")
	}
	if p.Status != StatusExpired {
		t.Fatalf("unexpected status %s", p.Status)
	}

	fresh := activeProgress(3, 20, now.Add(time.Hour))
	if fresh.Expire(now) {
		t.Fatalf("unexpired record must not be swept")
	}

	completed := activeProgress(1, 10, now.Add(-time.Minute))
	completed.Status = StatusCompleted
	if completed.Expire(now) {
		t.Fatalf("completed record must not be swept")
	}
}
