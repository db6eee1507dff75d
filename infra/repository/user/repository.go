package user

import (
	"context"

	"github.com/amirasaad/banking/infra/repository/common"
	"github.com/amirasaad/banking/pkg/domain/user"
	repo "github.com/amirasaad/banking/pkg/repository/user"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repository struct {
	db *gorm.DB
}

// New creates a user repository using the provided *gorm.DB.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, u *user.User) error {
	m := User{
		ID:        u.ID,
		Username:  u.Username,
		Password:  u.Password,
		CreatedAt: u.CreatedAt,
	}
	return common.WrapError(func() error {
		return r.db.WithContext(ctx).Create(&m).Error
	})
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*user.User, error) {
	var m User
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, common.MapGormErrorToDomain(err)
	}
	return mapModelToDomain(&m), nil
}

func (r *repository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	var m User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&m).Error; err != nil {
		return nil, common.MapGormErrorToDomain(err)
	}
	return mapModelToDomain(&m), nil
}

func (r *repository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&User{}).
		Where("username = ?", username).
		Count(&count).Error
	if err != nil {
		return false, common.MapGormErrorToDomain(err)
	}
	return count > 0, nil
}

// Lock implements user.Repository.
func (r *repository) Lock(ctx context.Context, id uuid.UUID) (*user.User, error) {
	var m User
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&m, "id = ?", id).Error
	if err != nil {
		return nil, common.MapGormErrorToDomain(err)
	}
	return mapModelToDomain(&m), nil
}

func mapModelToDomain(m *User) *user.User {
	return user.NewUserFromData(m.ID, m.Username, m.Password, m.CreatedAt)
}
