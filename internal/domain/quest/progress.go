package quest

import (
	"errors"
	"time"
)

var (
	ErrExpired    = errors.New("quest expired")
	ErrNotClaimed = errors.New("quest not claimable")
)

type IncrementResult struct {
	JustCompleted bool
	Reward        int
}

// Increment adds amount to the progress counter, clamping at the target.
// Incrementing an expired record fails; a completed or claimed record is a
// no-op with zero reward. The reward is surfaced exactly once, on the call
// that crosses the target.
func (p *Progress) Increment(amount int, now time.Time) (IncrementResult, error) {
	if p.Status == StatusExpired || (now.After(p.ExpiresAt) && p.Status != StatusCompleted && p.Status != StatusClaimed) {
		p.Status = StatusExpired
		return IncrementResult{}, ErrExpired
	}
	if p.Status == StatusCompleted || p.Status == StatusClaimed {
		return IncrementResult{}, nil
	}
	if amount <= 0 {
		return IncrementResult{}, nil
	}
	p.Status = StatusInProgress
	p.CurrentCount += amount
	if p.CurrentCount >= p.TargetCount {
		p.CurrentCount = p.TargetCount
		p.Status = StatusCompleted
		completed := now
		p.CompletedAt = &completed
		return IncrementResult{JustCompleted: true, Reward: p.Reward}, nil
	}
	return IncrementResult{}, nil
}

// Claim moves a completed quest to its claimed terminal state and returns the
// reward to credit. Only COMPLETED records are claimable.
func (p *Progress) Claim() (int, error) {
	if p.Status != StatusCompleted {
		return 0, ErrNotClaimed
	}
	p.Status = StatusClaimed
	return p.Reward, nil
}

// Expire marks a non-completed record expired once its window has passed.
// Idempotent; calling it repeatedly never changes a terminal record again.
func (p *Progress) Expire(now time.Time) bool {
	if p.Status.Terminal() || p.Status == StatusCompleted {
		return false
	}
	if !now.After(p.ExpiresAt) {
		return false
	}
	p.Status = StatusExpired
	return true
}
