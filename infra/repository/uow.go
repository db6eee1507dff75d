package repository

import (
	"context"
	"fmt"
	"reflect"

	accountrepo "github.com/amirasaad/banking/infra/repository/account"
	kycrepo "github.com/amirasaad/banking/infra/repository/kyc"
	transactionrepo "github.com/amirasaad/banking/infra/repository/transaction"
	userrepo "github.com/amirasaad/banking/infra/repository/user"
	"github.com/amirasaad/banking/pkg/repository"
	"github.com/amirasaad/banking/pkg/repository/account"
	"github.com/amirasaad/banking/pkg/repository/kyc"
	"github.com/amirasaad/banking/pkg/repository/transaction"
	"github.com/amirasaad/banking/pkg/repository/user"
	"gorm.io/gorm"
)

// UoW provides the transaction boundary and repository access in one abstraction.
// Repositories handed out by a UoW always use that UoW's session, so everything
// done inside one Do call commits or rolls back together.
type UoW struct {
	db           *gorm.DB
	tx           *gorm.DB
	repoRegistry map[reflect.Type]func(*gorm.DB) any
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{
		db: db,
		repoRegistry: map[reflect.Type]func(*gorm.DB) any{
			repository.AccountRepositoryType:     func(db *gorm.DB) any { return accountrepo.New(db) },
			repository.TransactionRepositoryType: func(db *gorm.DB) any { return transactionrepo.New(db) },
			repository.UserRepositoryType:        func(db *gorm.DB) any { return userrepo.New(db) },
			repository.KYCRepositoryType:         func(db *gorm.DB) any { return kycrepo.New(db) },
		},
	}
}

// Do runs fn in a transaction. When called on a UoW that is already inside a
// transaction, gorm opens a savepoint instead, so a failing fn only undoes its own work.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return u.session().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx, repoRegistry: u.repoRegistry})
	})
}

// GetRepository returns a repository bound to the current session.
func (u *UoW) GetRepository(repoType reflect.Type) (any, error) {
	constructor, ok := u.repoRegistry[repoType]
	if !ok {
		return nil, fmt.Errorf("unsupported repository type: %v", repoType)
	}
	return constructor(u.session()), nil
}

func (u *UoW) AccountRepository() (account.Repository, error) {
	return getRepository[account.Repository](u, repository.AccountRepositoryType)
}

func (u *UoW) TransactionRepository() (transaction.Repository, error) {
	return getRepository[transaction.Repository](u, repository.TransactionRepositoryType)
}

func (u *UoW) UserRepository() (user.Repository, error) {
	return getRepository[user.Repository](u, repository.UserRepositoryType)
}

func (u *UoW) KYCRepository() (kyc.Repository, error) {
	return getRepository[kyc.Repository](u, repository.KYCRepositoryType)
}

func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func getRepository[T any](u *UoW, repoType reflect.Type) (T, error) {
	var zero T
	repoAny, err := u.GetRepository(repoType)
	if err != nil {
		return zero, err
	}
	repo, ok := repoAny.(T)
	if !ok {
		return zero, fmt.Errorf("repository %v has unexpected type %T", repoType, repoAny)
	}
	return repo, nil
}

var _ repository.UnitOfWork = (*UoW)(nil)
