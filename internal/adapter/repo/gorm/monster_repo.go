package gormrepo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"animochi/internal/adapter/repo/gorm/model"
	"animochi/internal/app/ports"
	"animochi/internal/domain/pet"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MonsterRepo struct {
	db *gorm.DB
}

func NewMonsterRepo(db *gorm.DB) MonsterRepo {
	return MonsterRepo{db: db}
}

func (r MonsterRepo) GetByID(ctx context.Context, id string) (pet.Monster, error) {
	var m model.Monster
	if err := getDBFromCtx(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pet.Monster{}, ports.ErrNotFound
		}
		return pet.Monster{}, err
	}
	return toDomainMonster(m), nil
}

func (r MonsterRepo) FindDue(ctx context.Context, now time.Time) ([]pet.Monster, error) {
	rows := []model.Monster{}
	if err := getDBFromCtx(ctx, r.db).Where("next_transition_at <= ?", now).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]pet.Monster, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainMonster(m))
	}
	return out, nil
}

func (r MonsterRepo) Save(ctx context.Context, m pet.Monster) error {
	row := model.Monster{
		ID:               m.ID,
		OwnerID:          m.OwnerID,
		Name:             m.Name,
		Mood:             string(m.Mood),
		Level:            int32(m.Level),
		XP:               int32(m.XP),
		XPToNext:         int32(m.XPToNext),
		Public:           m.Public,
		LastUpdatedAt:    m.LastUpdatedAt,
		NextTransitionAt: m.NextTransitionAt,
	}
	if len(m.Accessories) > 0 {
		b, _ := json.Marshal(m.Accessories)
		row.Accessories = b
	}
	return getDBFromCtx(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&row).Error
}

func toDomainMonster(m model.Monster) pet.Monster {
	out := pet.Monster{
		ID:               m.ID,
		OwnerID:          m.OwnerID,
		Name:             m.Name,
		Mood:             pet.MoodState(m.Mood),
		Level:            int(m.Level),
		XP:               int(m.XP),
		XPToNext:         int(m.XPToNext),
		Public:           m.Public,
		LastUpdatedAt:    m.LastUpdatedAt,
		NextTransitionAt: m.NextTransitionAt,
	}
	if len(m.Accessories) > 0 {
		_ = json.Unmarshal(m.Accessories, &out.Accessories)
	}
	return out
}
