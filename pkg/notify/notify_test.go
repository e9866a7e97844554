package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/finsuite/erp-approvals/pkg/models"
	notifymocks "github.com/finsuite/erp-approvals/pkg/notify/mocks"
	"github.com/finsuite/erp-approvals/pkg/storage/mocks"
)

func TestDispatcherOpen(t *testing.T) {
	notification := &models.PendingNotification{EntityID: "e1", RoleID: 10, LevelID: 1}

	t.Run("Persists Then Signals", func(t *testing.T) {
		store := new(mocks.NotificationStore)
		signaler := new(notifymocks.Signaler)
		store.On("OpenNotification", mock.Anything, notification).Return(nil)
		signaler.On("Signal", mock.Anything, models.Signal{RoleID: 10, Delta: 1}).Return(nil)

		d := NewDispatcher(store, signaler)
		err := d.Open(context.Background(), notification)

		assert.NoError(t, err)
		store.AssertExpectations(t)
		signaler.AssertExpectations(t)
	})

	t.Run("Store Failure Skips Signal", func(t *testing.T) {
		store := new(mocks.NotificationStore)
		signaler := new(notifymocks.Signaler)
		store.On("OpenNotification", mock.Anything, notification).Return(errors.New("put failed"))

		d := NewDispatcher(store, signaler)
		err := d.Open(context.Background(), notification)

		assert.Error(t, err)
		signaler.AssertNotCalled(t, "Signal")
	})

	t.Run("Signal Failure Is Swallowed", func(t *testing.T) {
		store := new(mocks.NotificationStore)
		signaler := new(notifymocks.Signaler)
		store.On("OpenNotification", mock.Anything, notification).Return(nil)
		signaler.On("Signal", mock.Anything, mock.Anything).Return(errors.New("queue unreachable"))

		d := NewDispatcher(store, signaler)
		err := d.Open(context.Background(), notification)

		assert.NoError(t, err)
	})

	t.Run("Nil Signaler Is Allowed", func(t *testing.T) {
		store := new(mocks.NotificationStore)
		store.On("OpenNotification", mock.Anything, notification).Return(nil)

		d := NewDispatcher(store, nil)
		assert.NoError(t, d.Open(context.Background(), notification))
	})
}

func TestDispatcherRetarget(t *testing.T) {
	t.Run("Signals The Newly Addressed Role", func(t *testing.T) {
		store := new(mocks.NotificationStore)
		signaler := new(notifymocks.Signaler)
		store.On("RetargetNotification", mock.Anything, "e1", 2, 20, 1).Return(nil)
		signaler.On("Signal", mock.Anything, models.Signal{RoleID: 20, Delta: 1}).Return(nil)

		d := NewDispatcher(store, signaler)
		err := d.Retarget(context.Background(), "e1", 2, 20, 1)

		assert.NoError(t, err)
		store.AssertExpectations(t)
		signaler.AssertExpectations(t)
	})

	t.Run("Store Failure Skips Signal", func(t *testing.T) {
		store := new(mocks.NotificationStore)
		signaler := new(notifymocks.Signaler)
		store.On("RetargetNotification", mock.Anything, "e1", 2, 20, 1).Return(errors.New("update failed"))

		d := NewDispatcher(store, signaler)
		err := d.Retarget(context.Background(), "e1", 2, 20, 1)

		assert.Error(t, err)
		signaler.AssertNotCalled(t, "Signal")
	})
}

func TestDispatcherPendingCount(t *testing.T) {
	store := new(mocks.NotificationStore)
	store.On("CountOpenForRole", mock.Anything, 10).Return(3, nil)

	d := NewDispatcher(store, NoOpSignaler{})
	count, err := d.PendingCount(context.Background(), 10)

	assert.NoError(t, err)
	assert.Equal(t, 3, count)
}
