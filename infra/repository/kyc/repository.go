package kyc

import (
	"context"

	"github.com/amirasaad/banking/infra/repository/common"
	"github.com/amirasaad/banking/pkg/domain/kyc"
	repo "github.com/amirasaad/banking/pkg/repository/kyc"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repository struct {
	db *gorm.DB
}

// New creates a KYC profile repository using the provided *gorm.DB.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

func (r *repository) GetByUserID(ctx context.Context, userID uuid.UUID) (*kyc.Profile, error) {
	var m Profile
	if err := r.db.WithContext(ctx).First(&m, "user_id = ?", userID).Error; err != nil {
		return nil, common.MapGormErrorToDomain(err)
	}
	return &kyc.Profile{
		ID:          m.ID,
		UserID:      m.UserID,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		DateOfBirth: m.DateOfBirth,
		Salary:      m.Salary,
		UpdatedAt:   m.UpdatedAt,
	}, nil
}

// Save inserts the profile, or replaces the mutable columns when a row with
// the same id already exists.
func (r *repository) Save(ctx context.Context, p *kyc.Profile) error {
	m := Profile{
		ID:          p.ID,
		UserID:      p.UserID,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		DateOfBirth: p.DateOfBirth,
		Salary:      p.Salary,
		UpdatedAt:   p.UpdatedAt,
	}
	return common.WrapError(func() error {
		return r.db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"first_name", "last_name", "date_of_birth", "salary", "updated_at",
				}),
			}).
			Create(&m).Error
	})
}
