package quest

import domain "animochi/internal/domain/quest"

type IncrementResponse struct {
	Progress      domain.Progress `json:"progress"`
	JustCompleted bool            `json:"just_completed"`
	Reward        int             `json:"reward"`
}

type ClaimResponse struct {
	Progress domain.Progress `json:"progress"`
	Credited int             `json:"credited"`
}
