package app

import (
	"github.com/amirasaad/banking/pkg/domain/events"
	"github.com/amirasaad/banking/pkg/handler/audit"
	"github.com/amirasaad/banking/pkg/handler/kyc"
)

var auditedEvents = []events.EventType{
	events.EventTypeAccountOpened,
	events.EventTypeAccountClosed,
	events.EventTypeFundsTransferred,
	events.EventTypeUserRegistered,
	events.EventTypeKYCProfileSaved,
}

// setupEventBus registers all event handlers with the provided event Bus.
func (a *App) setupEventBus() {
	bus := a.Deps.EventBus
	if bus == nil {
		return
	}
	logger := a.Deps.Logger

	auditHandler := audit.HandleEvent(logger)
	for _, et := range auditedEvents {
		bus.Register(et, auditHandler)
	}

	if a.Deps.KYCCache != nil {
		bus.Register(
			events.EventTypeKYCProfileSaved,
			kyc.HandleProfileSaved(a.Deps.KYCCache, logger),
		)
	}
}
