// Package handler provides the chain-of-responsibility plumbing shared by
// the operation pipelines.
package handler

import (
	"context"

	"github.com/amirasaad/banking/pkg/repository"
)

// Handler is one link of an operation chain. Handlers run inside the unit of
// work passed to Handle and stop the chain by returning an error.
type Handler[R any] interface {
	Handle(ctx context.Context, uow repository.UnitOfWork, req R) error
	SetNext(next Handler[R])
}

// BaseHandler provides common functionality for all handlers
type BaseHandler[R any] struct {
	next Handler[R]
}

// SetNext sets the next handler in the chain
func (h *BaseHandler[R]) SetNext(next Handler[R]) {
	h.next = next
}

// Next passes the request to the next handler in the chain, if any.
func (h *BaseHandler[R]) Next(ctx context.Context, uow repository.UnitOfWork, req R) error {
	if h.next != nil {
		return h.next.Handle(ctx, uow, req)
	}
	return nil
}

// Chain links handlers in order and returns the head.
func Chain[R any](handlers ...Handler[R]) Handler[R] {
	if len(handlers) == 0 {
		return nil
	}
	for i := 0; i < len(handlers)-1; i++ {
		handlers[i].SetNext(handlers[i+1])
	}
	return handlers[0]
}
