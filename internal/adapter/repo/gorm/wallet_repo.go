package gormrepo

import (
	"context"
	"errors"

	"animochi/internal/adapter/repo/gorm/model"
	"animochi/internal/app/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WalletRepo struct {
	db *gorm.DB
}

func NewWalletRepo(db *gorm.DB) WalletRepo {
	return WalletRepo{db: db}
}

// Credit adds amount in a single atomic update, creating the wallet on first
// use.
func (r WalletRepo) Credit(ctx context.Context, ownerID string, amount int) error {
	if amount <= 0 {
		return nil
	}
	return getDBFromCtx(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "owner_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"balance": gorm.Expr("wallets.balance + ?", amount),
			}),
		}).
		Create(&model.Wallet{OwnerID: ownerID, Balance: int64(amount)}).Error
}

// Debit subtracts amount, clamping the balance at zero in the same statement.
// Debiting a missing wallet creates it empty; the balance never goes negative.
func (r WalletRepo) Debit(ctx context.Context, ownerID string, amount int) error {
	if amount <= 0 {
		return nil
	}
	return getDBFromCtx(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "owner_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"balance": gorm.Expr("GREATEST(wallets.balance - ?, 0)", amount),
			}),
		}).
		Create(&model.Wallet{OwnerID: ownerID, Balance: 0}).Error
}

func (r WalletRepo) Balance(ctx context.Context, ownerID string) (int, error) {
	var m model.Wallet
	if err := getDBFromCtx(ctx, r.db).Where("owner_id = ?", ownerID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ports.ErrNotFound
		}
		return 0, err
	}
	return int(m.Balance), nil
}
