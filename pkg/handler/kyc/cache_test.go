package kyc

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/amirasaad/banking/internal/fixtures/mocks"
	"github.com/amirasaad/banking/pkg/domain/events"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestHandleProfileSaved(t *testing.T) {
	c := mocks.NewMockKYCCache(t)
	h := HandleProfileSaved(c, slog.New(slog.DiscardHandler))
	userID := uuid.New()

	c.EXPECT().Delete(context.Background(), userID).Return(nil).Once()
	assert.NoError(t, h(context.Background(), events.NewKYCProfileSaved(userID, true)))

	boom := errors.New("redis down")
	c.EXPECT().Delete(context.Background(), userID).Return(boom).Once()
	assert.ErrorIs(t, h(context.Background(), events.NewKYCProfileSaved(userID, false)), boom)
}

func TestHandleProfileSaved_IgnoresOtherEvents(t *testing.T) {
	c := mocks.NewMockKYCCache(t)
	h := HandleProfileSaved(c, slog.New(slog.DiscardHandler))
	assert.NoError(t, h(context.Background(), events.NewUserRegistered(uuid.New(), "someone")))
}
