package walletrepo

import (
	"context"
	"errors"

	"swiftgo/internal/core/domain/model/wallet"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormWalletRepository implements ports.WalletRepository using GORM.
type GormWalletRepository struct {
	db   *gorm.DB
	inTx bool
}

// NewGormWalletRepository creates a repository bound to db. When inTx is set
// Get locks the wallet row until the transaction ends, so a balance check and
// the debit that follows it cannot interleave with another transaction.
func NewGormWalletRepository(db *gorm.DB, inTx bool) *GormWalletRepository {
	return &GormWalletRepository{db: db, inTx: inTx}
}

// Seed creates the wallet row if it does not exist yet. Row locking needs a
// row to lock.
func Seed(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&WalletDTO{ID: WalletID}).Error
}

func (r *GormWalletRepository) Get(ctx context.Context) (*wallet.Wallet, error) {
	query := r.db.WithContext(ctx)
	if r.inTx {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto WalletDTO
	err := query.First(&dto, "id = ?", WalletID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return wallet.New(), nil
	}
	if err != nil {
		return nil, err
	}

	var entries []EntryDTO
	if err = r.db.WithContext(ctx).
		Where("wallet_id = ?", WalletID).
		Order("position ASC").
		Limit(wallet.MaxHistory).
		Find(&entries).Error; err != nil {
		return nil, err
	}

	return toDomain(dto, entries)
}

// Save writes the balance and replaces the stored history.
func (r *GormWalletRepository) Save(ctx context.Context, w *wallet.Wallet) error {
	db := r.db.WithContext(ctx)

	dto := WalletDTO{ID: WalletID, Balance: w.Balance().Int64()}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"balance"}),
	}).Create(&dto).Error; err != nil {
		return err
	}

	if err := db.Where("wallet_id = ?", WalletID).Delete(&EntryDTO{}).Error; err != nil {
		return err
	}

	entries := entriesFromDomain(w.History())
	if len(entries) == 0 {
		return nil
	}
	return db.Create(&entries).Error
}
