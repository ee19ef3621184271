package queries

import (
	"context"
	"errors"

	"swiftgo/internal/core/domain/model/kernel"
	"swiftgo/internal/core/domain/model/wallet"
	"swiftgo/internal/pkg/guard"
)

var ErrGetWalletQueryIsNotConstructed = errors.New(
	"GetWalletQuery must be created via NewGetWalletQuery constructor",
)

type GetWalletQuery struct {
	guard guard.ConstructorGuard
}

func NewGetWalletQuery() GetWalletQuery {
	return GetWalletQuery{guard: guard.NewConstructorGuard()}
}

func (q GetWalletQuery) Validate() error {
	return q.guard.Validate(ErrGetWalletQueryIsNotConstructed)
}

// GetWalletQueryResponse holds the balance and up to wallet.MaxHistory
// entries, newest first.
type GetWalletQueryResponse struct {
	Balance kernel.Money
	History []wallet.Entry
}

type GetWalletQueryHandler struct {
	readers WalletReaderFactory
}

func NewGetWalletQueryHandler(readers WalletReaderFactory) GetWalletQueryHandler {
	return GetWalletQueryHandler{readers: readers}
}

func (h GetWalletQueryHandler) Handle(ctx context.Context, query GetWalletQuery) (GetWalletQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetWalletQueryResponse{}, err
	}

	w, err := h.readers.Create().WalletRepository().Get(ctx)
	if err != nil {
		return GetWalletQueryResponse{}, err
	}

	return GetWalletQueryResponse{
		Balance: w.Balance(),
		History: w.History(),
	}, nil
}
