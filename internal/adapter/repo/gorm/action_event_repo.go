package gormrepo

import (
	"context"
	"errors"
	"time"

	"animochi/internal/adapter/repo/gorm/model"
	"animochi/internal/domain/pet"

	"gorm.io/gorm"
)

type ActionEventRepo struct {
	db *gorm.DB
}

func NewActionEventRepo(db *gorm.DB) ActionEventRepo {
	return ActionEventRepo{db: db}
}

func (r ActionEventRepo) Record(ctx context.Context, event pet.ActionEvent) error {
	row := model.ActionEvent{
		MonsterID:  event.MonsterID,
		UserID:     event.UserID,
		Action:     string(event.Action),
		OccurredAt: event.OccurredAt,
	}
	return getDBFromCtx(ctx, r.db).Create(&row).Error
}

func (r ActionEventRepo) HasOccurredSince(ctx context.Context, monsterID string, action pet.ActionKind, since time.Time) (bool, error) {
	var count int64
	err := getDBFromCtx(ctx, r.db).
		Model(&model.ActionEvent{}).
		Where("monster_id = ? AND action = ? AND occurred_at > ?", monsterID, string(action), since).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r ActionEventRepo) LastOccurrence(ctx context.Context, monsterID string, action pet.ActionKind) (*time.Time, error) {
	query := getDBFromCtx(ctx, r.db).
		Model(&model.ActionEvent{}).
		Where("monster_id = ?", monsterID)
	if action != "" {
		query = query.Where("action = ?", string(action))
	}
	var row model.ActionEvent
	if err := query.Order("occurred_at DESC").First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	occurred := row.OccurredAt
	return &occurred, nil
}
