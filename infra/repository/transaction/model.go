package transaction

import (
	"time"

	"github.com/amirasaad/banking/pkg/domain/money"
	"github.com/google/uuid"
)

// Transaction represents a ledger row. Rows are inserted once and never updated.
type Transaction struct {
	ID                   uuid.UUID    `gorm:"type:uuid;primaryKey"`
	SourceAccountID      uuid.UUID    `gorm:"type:uuid;not null;index"`
	DestinationAccountID uuid.UUID    `gorm:"type:uuid;not null;index"`
	Amount               money.Amount `gorm:"type:numeric(15,3);not null"`
	CreatedAt            time.Time
}

// TableName specifies the table name for the Transaction model.
func (Transaction) TableName() string {
	return "transactions"
}
