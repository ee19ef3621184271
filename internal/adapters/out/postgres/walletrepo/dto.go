// Package walletrepo persists the single wallet: one row in wallets and its
// history in wallet_entries, with a position column keeping newest first.
package walletrepo

import (
	"time"

	"swiftgo/internal/core/domain/model/kernel"
	"swiftgo/internal/core/domain/model/wallet"

	"github.com/google/uuid"
)

// WalletID is the primary key of the only wallet row.
const WalletID = 1

type WalletDTO struct {
	ID      int `gorm:"primaryKey;autoIncrement:false"`
	Balance int64
}

func (WalletDTO) TableName() string {
	return "wallets"
}

// EntryDTO is one history entry. Position 0 is the newest.
type EntryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	WalletID    int       `gorm:"index"`
	Position    int
	Type        string `gorm:"type:varchar(16)"`
	Amount      int64
	Description string
	Timestamp   time.Time
}

func (EntryDTO) TableName() string {
	return "wallet_entries"
}

func entriesFromDomain(history []wallet.Entry) []EntryDTO {
	dtos := make([]EntryDTO, 0, len(history))
	for i, e := range history {
		dtos = append(dtos, EntryDTO{
			ID:          e.ID.Bytes(),
			WalletID:    WalletID,
			Position:    i,
			Type:        string(e.Type),
			Amount:      e.Amount.Int64(),
			Description: e.Description,
			Timestamp:   e.Timestamp.UTC(),
		})
	}
	return dtos
}

func toDomain(dto WalletDTO, entries []EntryDTO) (*wallet.Wallet, error) {
	history := make([]wallet.Entry, 0, len(entries))
	for _, e := range entries {
		id, err := kernel.UUIDFromBytes(e.ID[:])
		if err != nil {
			return nil, err
		}
		typ, err := wallet.ParseEntryType(e.Type)
		if err != nil {
			return nil, err
		}
		history = append(history, wallet.Entry{
			ID:          id,
			Type:        typ,
			Amount:      kernel.Money(e.Amount),
			Description: e.Description,
			Timestamp:   e.Timestamp.UTC(),
		})
	}
	return wallet.Restore(kernel.Money(dto.Balance), history)
}
