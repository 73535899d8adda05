package gormrepo

import (
	"context"
	"errors"
	"time"

	"animochi/internal/adapter/repo/gorm/model"
	"animochi/internal/app/ports"
	"animochi/internal/domain/quest"

	"gorm.io/gorm"
)

type QuestRepo struct {
	db *gorm.DB
}

func NewQuestRepo(db *gorm.DB) QuestRepo {
	return QuestRepo{db: db}
}

func (r QuestRepo) GetByID(ctx context.Context, id string) (quest.Progress, error) {
	var m model.QuestProgress
	if err := getDBFromCtx(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return quest.Progress{}, ports.ErrNotFound
		}
		return quest.Progress{}, err
	}
	return toDomainProgress(m), nil
}

func (r QuestRepo) GetActive(ctx context.Context, userID string) ([]quest.Progress, error) {
	rows := []model.QuestProgress{}
	err := getDBFromCtx(ctx, r.db).
		Where("user_id = ? AND status NOT IN ?", userID, []string{string(quest.StatusClaimed), string(quest.StatusExpired)}).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]quest.Progress, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainProgress(m))
	}
	return out, nil
}

func (r QuestRepo) Update(ctx context.Context, p quest.Progress) error {
	updates := map[string]any{
		"current_count": int32(p.CurrentCount),
		"status":        string(p.Status),
		"completed_at":  p.CompletedAt,
	}
	res := getDBFromCtx(ctx, r.db).
		Model(&model.QuestProgress{}).
		Where("id = ?", p.ID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r QuestRepo) AssignNew(ctx context.Context, userID string, progresses []quest.Progress) error {
	if len(progresses) == 0 {
		return nil
	}
	rows := make([]model.QuestProgress, 0, len(progresses))
	for _, p := range progresses {
		rows = append(rows, model.QuestProgress{
			ID:           p.ID,
			UserID:       userID,
			Type:         string(p.Type),
			CurrentCount: int32(p.CurrentCount),
			TargetCount:  int32(p.TargetCount),
			Reward:       int32(p.Reward),
			Status:       string(p.Status),
			ExpiresAt:    p.ExpiresAt,
			CompletedAt:  p.CompletedAt,
		})
	}
	return getDBFromCtx(ctx, r.db).Create(&rows).Error
}

// ExpireDue sweeps every record past its window into EXPIRED. One statement,
// idempotent under repeated and overlapping invocations.
func (r QuestRepo) ExpireDue(ctx context.Context, now time.Time) error {
	return getDBFromCtx(ctx, r.db).
		Model(&model.QuestProgress{}).
		Where("expires_at < ? AND status IN ?", now, []string{string(quest.StatusNotStarted), string(quest.StatusInProgress)}).
		Update("status", string(quest.StatusExpired)).Error
}

func toDomainProgress(m model.QuestProgress) quest.Progress {
	return quest.Progress{
		ID:           m.ID,
		UserID:       m.UserID,
		Type:         quest.Type(m.Type),
		CurrentCount: int(m.CurrentCount),
		TargetCount:  int(m.TargetCount),
		Reward:       int(m.Reward),
		Status:       quest.Status(m.Status),
		ExpiresAt:    m.ExpiresAt,
		CompletedAt:  m.CompletedAt,
	}
}
