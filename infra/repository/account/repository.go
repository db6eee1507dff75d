package account

import (
	"context"
	"slices"

	"github.com/amirasaad/banking/infra/repository/common"
	"github.com/amirasaad/banking/pkg/domain"
	"github.com/amirasaad/banking/pkg/domain/account"
	repo "github.com/amirasaad/banking/pkg/repository/account"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repository struct {
	db *gorm.DB
}

// New creates an account repository using the provided *gorm.DB.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// Create implements account.Repository.
func (r *repository) Create(ctx context.Context, acc *account.Account) error {
	m := mapDomainToModel(acc)
	return common.WrapError(func() error {
		return r.db.WithContext(ctx).Create(&m).Error
	})
}

// Update implements account.Repository.
func (r *repository) Update(ctx context.Context, acc *account.Account) error {
	res := r.db.WithContext(ctx).
		Model(&Account{}).
		Where("id = ?", acc.ID).
		Updates(map[string]any{
			"name":       acc.Name,
			"balance":    acc.Balance,
			"status":     string(acc.Status),
			"updated_at": acc.UpdatedAt,
		})
	if res.Error != nil {
		return common.MapGormErrorToDomain(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Get implements account.Repository.
func (r *repository) Get(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	var m Account
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, common.MapGormErrorToDomain(err)
	}
	return mapModelToDomain(&m)
}

// GetByNumber implements account.Repository.
func (r *repository) GetByNumber(ctx context.Context, number string) (*account.Account, error) {
	var m Account
	if err := r.db.WithContext(ctx).First(&m, "account_number = ?", number).Error; err != nil {
		return nil, common.MapGormErrorToDomain(err)
	}
	return mapModelToDomain(&m)
}

// ExistsByNumber implements account.Repository.
func (r *repository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Account{}).
		Where("account_number = ?", number).
		Count(&count).Error
	if err != nil {
		return false, common.MapGormErrorToDomain(err)
	}
	return count > 0, nil
}

// ListActive implements account.Repository.
func (r *repository) ListActive(ctx context.Context) ([]*account.Account, error) {
	var models []Account
	err := r.db.WithContext(ctx).
		Where("status = ?", string(account.StatusActive)).
		Order("created_at").
		Find(&models).Error
	if err != nil {
		return nil, common.MapGormErrorToDomain(err)
	}
	return mapModelsToDomain(models)
}

// CountActiveByUser implements account.Repository.
func (r *repository) CountActiveByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Account{}).
		Where("user_id = ? AND status = ?", userID, string(account.StatusActive)).
		Count(&count).Error
	if err != nil {
		return 0, common.MapGormErrorToDomain(err)
	}
	return count, nil
}

// LockByIDs implements account.Repository. Rows come back sorted by id, which
// is also the order in which postgres takes the FOR UPDATE locks.
func (r *repository) LockByIDs(ctx context.Context, ids ...uuid.UUID) ([]*account.Account, error) {
	keys := sortedUnique(ids)
	if len(keys) == 0 {
		return nil, nil
	}
	var models []Account
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", keys).
		Order("id").
		Find(&models).Error
	if err != nil {
		return nil, common.MapGormErrorToDomain(err)
	}
	if len(models) != len(keys) {
		return nil, domain.ErrNotFound
	}
	return mapModelsToDomain(models)
}

func sortedUnique(ids []uuid.UUID) []uuid.UUID {
	keys := slices.Clone(ids)
	slices.SortFunc(keys, func(a, b uuid.UUID) int {
		return slices.Compare(a[:], b[:])
	})
	return slices.Compact(keys)
}

func mapDomainToModel(acc *account.Account) Account {
	return Account{
		ID:        acc.ID,
		UserID:    acc.UserID,
		Name:      acc.Name,
		Number:    acc.Number,
		Balance:   acc.Balance,
		Status:    string(acc.Status),
		CreatedAt: acc.CreatedAt,
		UpdatedAt: acc.UpdatedAt,
	}
}

func mapModelToDomain(m *Account) (*account.Account, error) {
	return account.New().
		WithID(m.ID).
		WithUserID(m.UserID).
		WithName(m.Name).
		WithNumber(m.Number).
		WithBalance(m.Balance).
		WithStatus(account.Status(m.Status)).
		WithCreatedAt(m.CreatedAt).
		WithUpdatedAt(m.UpdatedAt).
		Build()
}

func mapModelsToDomain(models []Account) ([]*account.Account, error) {
	result := make([]*account.Account, 0, len(models))
	for i := range models {
		acc, err := mapModelToDomain(&models[i])
		if err != nil {
			return nil, err
		}
		result = append(result, acc)
	}
	return result, nil
}
