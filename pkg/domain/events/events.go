// Package events defines the domain events emitted after a unit of work commits.
package events

import (
	"time"

	"github.com/amirasaad/banking/pkg/domain/money"
	"github.com/google/uuid"
)

// EventType identifies an event kind on the bus.
type EventType string

const (
	EventTypeAccountOpened    EventType = "Account.Opened"
	EventTypeAccountClosed    EventType = "Account.Closed"
	EventTypeFundsTransferred EventType = "Funds.Transferred"
	EventTypeUserRegistered   EventType = "User.Registered"
	EventTypeKYCProfileSaved  EventType = "KYC.ProfileSaved"
)

// String returns the string representation of the event type.
func (et EventType) String() string {
	return string(et)
}

// Event is anything that can be dispatched on the bus.
type Event interface {
	Type() string
}

// Meta carries fields shared by all events.
type Meta struct {
	ID         uuid.UUID
	OccurredAt time.Time
}

func newMeta() Meta {
	return Meta{ID: uuid.New(), OccurredAt: time.Now().UTC()}
}

type AccountOpened struct {
	Meta
	AccountID uuid.UUID
	UserID    uuid.UUID
	Number    string
	Balance   money.Amount
}

func (AccountOpened) Type() string { return EventTypeAccountOpened.String() }

type AccountClosed struct {
	Meta
	AccountID uuid.UUID
	Number    string
}

func (AccountClosed) Type() string { return EventTypeAccountClosed.String() }

// FundsTransferred is emitted once per committed transfer.
type FundsTransferred struct {
	Meta
	TransactionID     uuid.UUID
	SourceNumber      string
	DestinationNumber string
	Amount            money.Amount
	SourceBalance     money.Amount
}

func (FundsTransferred) Type() string { return EventTypeFundsTransferred.String() }

type UserRegistered struct {
	Meta
	UserID   uuid.UUID
	Username string
}

func (UserRegistered) Type() string { return EventTypeUserRegistered.String() }

type KYCProfileSaved struct {
	Meta
	UserID  uuid.UUID
	Created bool
}

func (KYCProfileSaved) Type() string { return EventTypeKYCProfileSaved.String() }

func NewAccountOpened(accountID, userID uuid.UUID, number string, balance money.Amount) AccountOpened {
	return AccountOpened{Meta: newMeta(), AccountID: accountID, UserID: userID, Number: number, Balance: balance}
}

func NewAccountClosed(accountID uuid.UUID, number string) AccountClosed {
	return AccountClosed{Meta: newMeta(), AccountID: accountID, Number: number}
}

func NewFundsTransferred(
	transactionID uuid.UUID,
	source, destination string,
	amount, sourceBalance money.Amount,
) FundsTransferred {
	return FundsTransferred{
		Meta:              newMeta(),
		TransactionID:     transactionID,
		SourceNumber:      source,
		DestinationNumber: destination,
		Amount:            amount,
		SourceBalance:     sourceBalance,
	}
}

func NewUserRegistered(userID uuid.UUID, username string) UserRegistered {
	return UserRegistered{Meta: newMeta(), UserID: userID, Username: username}
}

func NewKYCProfileSaved(userID uuid.UUID, created bool) KYCProfileSaved {
	return KYCProfileSaved{Meta: newMeta(), UserID: userID, Created: created}
}
