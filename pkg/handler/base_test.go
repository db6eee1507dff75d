package handler

import (
	"context"
	"errors"
	"testing"

	"github.com/amirasaad/banking/pkg/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	BaseHandler[*[]string]
	name string
	err  error
}

func (r *recorder) Handle(ctx context.Context, uow repository.UnitOfWork, req *[]string) error {
	*req = append(*req, r.name)
	if r.err != nil {
		return r.err
	}
	return r.Next(ctx, uow, req)
}

func TestBaseHandler_NextWithoutSuccessor(t *testing.T) {
	base := &BaseHandler[*[]string]{}
	calls := []string{}
	assert.NoError(t, base.Next(context.Background(), nil, &calls))
	assert.Empty(t, calls)
}

func TestChain_RunsInOrder(t *testing.T) {
	head := Chain[*[]string](&recorder{name: "a"}, &recorder{name: "b"}, &recorder{name: "c"})
	calls := []string{}
	require.NoError(t, head.Handle(context.Background(), nil, &calls))
	assert.Equal(t, []string{"a", "b", "c"}, calls)
}

func TestChain_StopsOnFirstError(t *testing.T) {
	boom := errors.New("boom")
	head := Chain[*[]string](&recorder{name: "a"}, &recorder{name: "b", err: boom}, &recorder{name: "c"})
	calls := []string{}
	err := head.Handle(context.Background(), nil, &calls)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"a", "b"}, calls)
}

func TestChain_Empty(t *testing.T) {
	assert.Nil(t, Chain[*[]string]())
}
