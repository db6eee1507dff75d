package kyc

import (
	"time"

	"github.com/amirasaad/banking/pkg/domain/kyc"
	"github.com/amirasaad/banking/pkg/domain/money"
	"github.com/google/uuid"
)

// Profile represents a KYC record in the database. user_id is unique.
type Profile struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex"`
	FirstName   string       `gorm:"type:varchar(255);not null"`
	LastName    string       `gorm:"type:varchar(255);not null"`
	DateOfBirth kyc.Date     `gorm:"type:date;not null"`
	Salary      money.Amount `gorm:"type:numeric(15,3);not null"`
	UpdatedAt   time.Time
}

// TableName specifies the table name for the Profile model.
func (Profile) TableName() string {
	return "kyc_profiles"
}
