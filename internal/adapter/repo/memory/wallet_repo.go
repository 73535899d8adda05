package memory

import (
	"context"

	"animochi/internal/app/ports"
)

type WalletRepo struct {
	store *Store
}

func NewWalletRepo(store *Store) WalletRepo {
	return WalletRepo{store: store}
}

func (r WalletRepo) Credit(_ context.Context, ownerID string, amount int) error {
	if amount <= 0 {
		return nil
	}
	r.store.wallets[ownerID] += amount
	return nil
}

func (r WalletRepo) Debit(_ context.Context, ownerID string, amount int) error {
	if amount <= 0 {
		return nil
	}
	balance := r.store.wallets[ownerID] - amount
	if balance < 0 {
		balance = 0
	}
	r.store.wallets[ownerID] = balance
	return nil
}

func (r WalletRepo) Balance(_ context.Context, ownerID string) (int, error) {
	balance, ok := r.store.wallets[ownerID]
	if !ok {
		return 0, ports.ErrNotFound
	}
	return balance, nil
}
