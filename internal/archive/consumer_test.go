package archive_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"drivethru/internal/archive"
	"drivethru/internal/domain"
	"drivethru/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestConsumer_ProcessFinalized(t *testing.T) {
	ctx := context.Background()

	t.Run("archives_order", func(t *testing.T) {
		store := mocks.NewArchiver(t)
		consumer := archive.NewConsumer(nil, store)

		order := finalizedOrder()
		store.On("ArchiveOrder", ctx, mock.Anything).Return(nil).Once()

		consumer.ProcessFinalized(ctx, domain.ArchiveMessage{
			Type:      domain.ArchiveMessageType,
			Order:     *order,
			Timestamp: time.Now().UTC(),
		})
	})

	t.Run("store_error_is_logged_not_fatal", func(t *testing.T) {
		store := mocks.NewArchiver(t)
		consumer := archive.NewConsumer(nil, store)

		store.On("ArchiveOrder", ctx, mock.Anything).Return(errors.New("pg down")).Once()

		assert.NotPanics(t, func() {
			consumer.ProcessFinalized(ctx, domain.ArchiveMessage{
				Type:  domain.ArchiveMessageType,
				Order: *finalizedOrder(),
			})
		})
	})
}
