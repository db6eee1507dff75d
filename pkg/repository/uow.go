package repository

import (
	"context"
	"reflect"

	"github.com/amirasaad/banking/pkg/repository/account"
	"github.com/amirasaad/banking/pkg/repository/kyc"
	"github.com/amirasaad/banking/pkg/repository/transaction"
	"github.com/amirasaad/banking/pkg/repository/user"
)

// UnitOfWork defines the contract for transactional work and type-safe repository access.
//
// Repositories obtained from the UnitOfWork passed to Do share its transaction.
// Calling Do on that inner UnitOfWork opens a nested savepoint: an error from the
// nested function rolls back only the nested work.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	// GetRepository returns a repository of the requested interface type, bound to the current session.
	//
	//	repoAny, err := uow.GetRepository(reflect.TypeOf((*account.Repository)(nil)).Elem())
	GetRepository(repoType reflect.Type) (any, error)

	AccountRepository() (account.Repository, error)
	TransactionRepository() (transaction.Repository, error)
	UserRepository() (user.Repository, error)
	KYCRepository() (kyc.Repository, error)
}

// Repository interface types, usable as GetRepository keys.
var (
	AccountRepositoryType     = reflect.TypeOf((*account.Repository)(nil)).Elem()
	TransactionRepositoryType = reflect.TypeOf((*transaction.Repository)(nil)).Elem()
	UserRepositoryType        = reflect.TypeOf((*user.Repository)(nil)).Elem()
	KYCRepositoryType         = reflect.TypeOf((*kyc.Repository)(nil)).Elem()
)
