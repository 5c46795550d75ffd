package consumer

import (
	"encoding/json"
	"testing"
	"time"

	"courier/internal/core/application/events"
	"courier/internal/core/domain/model/task"
	"courier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAssignment() events.OrderAssignedToCourier {
	return events.OrderAssignedToCourier{
		EventID:          "evt-1",
		OrderID:          "order-81",
		CourierID:        "courier-5",
		TotalAmount:      42.50,
		OrderLatitude:    52.52,
		OrderLongitude:   13.405,
		ConfirmationType: "OTP",
		OccurredAt:       time.Now().UTC(),
	}
}

func TestDecodeAssignment(t *testing.T) {
	t.Run("should decode valid assignment into command", func(t *testing.T) {
		payload, err := json.Marshal(validAssignment())
		require.NoError(t, err)

		cmd, err := decodeAssignment(payload)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "order-81", cmd.OrderID())
		assert.Equal(t, "courier-5", cmd.CourierID())
		assert.Equal(t, task.ConfirmationOTP, cmd.ConfirmationType())
		assert.InDelta(t, 52.52, cmd.OrderLocation().Latitude(), 0.000001)
		require.NoError(t, cmd.TaskID().Validate())
	})

	t.Run("should carry signature for signature-confirmed assignments", func(t *testing.T) {
		event := validAssignment()
		event.ConfirmationType = "SIGNATURE"
		event.Signature = "sig-abc"
		payload, err := json.Marshal(event)
		require.NoError(t, err)

		cmd, err := decodeAssignment(payload)

		require.NoError(t, err)
		assert.Equal(t, task.ConfirmationSignature, cmd.ConfirmationType())
		assert.Equal(t, "sig-abc", cmd.Signature())
	})

	t.Run("should reject signature-confirmed assignment without signature", func(t *testing.T) {
		event := validAssignment()
		event.ConfirmationType = "SIGNATURE"
		payload, err := json.Marshal(event)
		require.NoError(t, err)

		// Decoding must fail so the event is terminated rather than
		// redelivered forever.
		_, err = decodeAssignment(payload)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject invalid JSON", func(t *testing.T) {
		_, err := decodeAssignment([]byte("{not json"))
		require.Error(t, err)
	})

	t.Run("should reject unknown confirmation type", func(t *testing.T) {
		event := validAssignment()
		event.ConfirmationType = "CARRIER_PIGEON"
		payload, err := json.Marshal(event)
		require.NoError(t, err)

		_, err = decodeAssignment(payload)
		require.Error(t, err)
	})

	t.Run("should reject out-of-range coordinates", func(t *testing.T) {
		event := validAssignment()
		event.OrderLatitude = 91
		payload, err := json.Marshal(event)
		require.NoError(t, err)

		_, err = decodeAssignment(payload)
		require.Error(t, err)
	})

	t.Run("should reject missing order id", func(t *testing.T) {
		event := validAssignment()
		event.OrderID = ""
		payload, err := json.Marshal(event)
		require.NoError(t, err)

		_, err = decodeAssignment(payload)
		require.Error(t, err)
	})
}
