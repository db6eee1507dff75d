package account

import (
	"time"

	"github.com/amirasaad/banking/pkg/domain/money"
	"github.com/google/uuid"
)

// Account represents an account record in the database.
type Account struct {
	ID        uuid.UUID    `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID    `gorm:"type:uuid;not null;index:idx_accounts_user_status"`
	Name      string       `gorm:"type:varchar(255);not null"`
	Number    string       `gorm:"column:account_number;type:char(14);not null;uniqueIndex"`
	Balance   money.Amount `gorm:"type:numeric(15,3);not null"`
	Status    string       `gorm:"type:varchar(16);not null;index:idx_accounts_user_status"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string {
	return "accounts"
}
