package task_test

import (
	"testing"

	"courier/internal/core/domain/model/task"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses pass", func(t *testing.T) {
		for _, s := range []task.Status{
			task.StatusAssigned,
			task.StatusOutForDelivery,
			task.StatusDelivered,
			task.StatusCancelled,
		} {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("unknown and out-of-range values fail", func(t *testing.T) {
		require.Error(t, task.StatusUnknown.Validate())
		require.Error(t, task.Status(42).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "ASSIGNED", task.StatusAssigned.String())
	assert.Equal(t, "OUT_FOR_DELIVERY", task.StatusOutForDelivery.String())
	assert.Equal(t, "DELIVERED", task.StatusDelivered.String())
	assert.Equal(t, "CANCELLED", task.StatusCancelled.String())
	assert.Equal(t, "UNKNOWN", task.StatusUnknown.String())
	assert.Equal(t, "UNKNOWN", task.Status(42).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("round-trips every valid status", func(t *testing.T) {
		for _, s := range []task.Status{
			task.StatusAssigned,
			task.StatusOutForDelivery,
			task.StatusDelivered,
			task.StatusCancelled,
		} {
			parsed, err := task.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects unknown input", func(t *testing.T) {
		_, err := task.StatusFromString("SHIPPED")
		require.Error(t, err)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, task.StatusAssigned.IsTerminal())
	assert.False(t, task.StatusOutForDelivery.IsTerminal())
	assert.True(t, task.StatusDelivered.IsTerminal())
	assert.True(t, task.StatusCancelled.IsTerminal())
}

func TestStatus_Dispatch(t *testing.T) {
	t.Run("assigned can be dispatched", func(t *testing.T) {
		next, err := task.StatusAssigned.Dispatch()

		require.NoError(t, err)
		assert.Equal(t, task.StatusOutForDelivery, next)
	})

	t.Run("all other statuses cannot", func(t *testing.T) {
		for _, s := range []task.Status{
			task.StatusOutForDelivery,
			task.StatusDelivered,
			task.StatusCancelled,
			task.StatusUnknown,
		} {
			_, err := s.Dispatch()
			require.Error(t, err)
		}
	})
}

func TestStatus_Deliver(t *testing.T) {
	t.Run("out for delivery can be delivered", func(t *testing.T) {
		next, err := task.StatusOutForDelivery.Deliver()

		require.NoError(t, err)
		assert.Equal(t, task.StatusDelivered, next)
	})

	t.Run("all other statuses cannot", func(t *testing.T) {
		for _, s := range []task.Status{
			task.StatusAssigned,
			task.StatusDelivered,
			task.StatusCancelled,
			task.StatusUnknown,
		} {
			_, err := s.Deliver()
			require.Error(t, err)
		}
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("assigned and out for delivery can be cancelled", func(t *testing.T) {
		for _, s := range []task.Status{task.StatusAssigned, task.StatusOutForDelivery} {
			next, err := s.Cancel()
			require.NoError(t, err)
			assert.Equal(t, task.StatusCancelled, next)
		}
	})

	t.Run("terminal statuses reject cancellation", func(t *testing.T) {
		for _, s := range []task.Status{task.StatusDelivered, task.StatusCancelled} {
			_, err := s.Cancel()
			require.Error(t, err)
		}
	})
}
