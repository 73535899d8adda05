package wallet

import (
	"context"
	"errors"
	"strings"

	"animochi/internal/app/ports"
)

var ErrInvalidRequest = errors.New("invalid wallet request")

type UseCase struct {
	Wallets ports.WalletRepository
}

type Response struct {
	OwnerID string `json:"owner_id"`
	Balance int    `json:"balance"`
}

func (u UseCase) Balance(ctx context.Context, ownerID string) (Response, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return Response{}, ErrInvalidRequest
	}
	balance, err := u.Wallets.Balance(ctx, ownerID)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			// Wallets are created lazily; no row yet means an empty wallet.
			return Response{OwnerID: ownerID, Balance: 0}, nil
		}
		return Response{}, err
	}
	return Response{OwnerID: ownerID, Balance: balance}, nil
}
