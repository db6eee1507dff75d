package transaction

import (
	"context"

	"github.com/amirasaad/banking/infra/repository/common"
	"github.com/amirasaad/banking/pkg/domain/account"
	repo "github.com/amirasaad/banking/pkg/repository/transaction"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a ledger repository using the provided *gorm.DB.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// Create implements transaction.Repository.
func (r *repository) Create(ctx context.Context, tx *account.Transaction) error {
	m := Transaction{
		ID:                   tx.ID,
		SourceAccountID:      tx.SourceAccountID,
		DestinationAccountID: tx.DestinationAccountID,
		Amount:               tx.Amount,
		CreatedAt:            tx.CreatedAt,
	}
	return common.WrapError(func() error {
		return r.db.WithContext(ctx).Create(&m).Error
	})
}

// ListByAccount implements transaction.Repository.
func (r *repository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*account.Transaction, error) {
	var models []Transaction
	err := r.db.WithContext(ctx).
		Where("source_account_id = ? OR destination_account_id = ?", accountID, accountID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, common.MapGormErrorToDomain(err)
	}
	result := make([]*account.Transaction, 0, len(models))
	for _, m := range models {
		result = append(result, account.NewTransactionFromData(
			m.ID, m.SourceAccountID, m.DestinationAccountID, m.Amount, m.CreatedAt,
		))
	}
	return result, nil
}
