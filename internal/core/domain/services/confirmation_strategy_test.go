package services_test

import (
	"testing"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/task"
	"courier/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func outForDeliveryTask(t *testing.T, confirmationType task.ConfirmationType, signature string) *task.DeliveryTask {
	t.Helper()

	location, err := kernel.NewGeoPoint(52.52, 13.405)
	require.NoError(t, err)

	aggregate, err := task.NewDeliveryTask(
		kernel.NewUUID(), "order-1", "courier-1", 42.50, location, confirmationType, signature)
	require.NoError(t, err)
	require.NoError(t, aggregate.MarkOutForDelivery(4))
	return aggregate
}

func TestForConfirmationType(t *testing.T) {
	t.Run("should select a strategy for every known type", func(t *testing.T) {
		for _, confirmationType := range []task.ConfirmationType{
			task.ConfirmationOTP, task.ConfirmationQRCode, task.ConfirmationSignature,
		} {
			strategy, err := services.ForConfirmationType(confirmationType)
			require.NoError(t, err)
			assert.NotNil(t, strategy)
		}
	})

	t.Run("should reject unknown confirmation type", func(t *testing.T) {
		strategy, err := services.ForConfirmationType(task.ConfirmationUnknown)
		require.ErrorIs(t, err, services.ErrInvalidConfirmationType)
		assert.Nil(t, strategy)
	})
}

func TestOtpConfirmationStrategy_Confirm(t *testing.T) {
	t.Run("should confirm with matching OTP", func(t *testing.T) {
		aggregate := outForDeliveryTask(t, task.ConfirmationOTP, "")

		result, err := services.OtpConfirmationStrategy{}.Confirm(aggregate, aggregate.Otp())

		require.NoError(t, err)
		assert.True(t, result.Confirmed)
		assert.Equal(t, services.OutcomeOtpConfirmed, result.Message)
		assert.Equal(t, task.StatusDelivered, aggregate.Status())
	})

	t.Run("should reject wrong OTP and leave task untouched", func(t *testing.T) {
		aggregate := outForDeliveryTask(t, task.ConfirmationOTP, "")

		result, err := services.OtpConfirmationStrategy{}.Confirm(aggregate, "0000-nope")

		require.NoError(t, err)
		assert.False(t, result.Confirmed)
		assert.Equal(t, services.OutcomeWrongOtp, result.Message)
		assert.Equal(t, task.StatusOutForDelivery, aggregate.Status())
	})

	t.Run("should reject empty proof", func(t *testing.T) {
		aggregate := outForDeliveryTask(t, task.ConfirmationOTP, "")

		result, err := services.OtpConfirmationStrategy{}.Confirm(aggregate, "")

		require.NoError(t, err)
		assert.False(t, result.Confirmed)
		assert.Equal(t, services.OutcomeWrongOtp, result.Message)
	})

	t.Run("should fail when task is not out for delivery", func(t *testing.T) {
		location, err := kernel.NewGeoPoint(1, 1)
		require.NoError(t, err)
		aggregate, err := task.NewDeliveryTask(
			kernel.NewUUID(), "order-1", "courier-1", 10, location, task.ConfirmationOTP, "")
		require.NoError(t, err)

		_, err = services.OtpConfirmationStrategy{}.Confirm(aggregate, aggregate.Otp())

		require.Error(t, err)
		assert.Equal(t, task.StatusAssigned, aggregate.Status())
	})
}

func TestQrCodeConfirmationStrategy_Confirm(t *testing.T) {
	t.Run("should confirm with matching QR code content", func(t *testing.T) {
		aggregate := outForDeliveryTask(t, task.ConfirmationQRCode, "")

		result, err := services.QrCodeConfirmationStrategy{}.Confirm(aggregate, aggregate.QrCode())

		require.NoError(t, err)
		assert.True(t, result.Confirmed)
		assert.Equal(t, services.OutcomeQrConfirmed, result.Message)
		assert.Equal(t, task.StatusDelivered, aggregate.Status())
	})

	t.Run("should reject foreign QR code", func(t *testing.T) {
		aggregate := outForDeliveryTask(t, task.ConfirmationQRCode, "")
		other := outForDeliveryTask(t, task.ConfirmationQRCode, "")

		result, err := services.QrCodeConfirmationStrategy{}.Confirm(aggregate, other.QrCode())

		require.NoError(t, err)
		assert.False(t, result.Confirmed)
		assert.Equal(t, services.OutcomeInvalidQr, result.Message)
		assert.Equal(t, task.StatusOutForDelivery, aggregate.Status())
	})
}

func TestSignatureConfirmationStrategy_Confirm(t *testing.T) {
	t.Run("should confirm with matching signature", func(t *testing.T) {
		aggregate := outForDeliveryTask(t, task.ConfirmationSignature, "sig-abc")

		result, err := services.SignatureConfirmationStrategy{}.Confirm(aggregate, "sig-abc")

		require.NoError(t, err)
		assert.True(t, result.Confirmed)
		assert.Equal(t, services.OutcomeSignatureConfirmed, result.Message)
		assert.Equal(t, task.StatusDelivered, aggregate.Status())
	})

	t.Run("should reject mismatched signature", func(t *testing.T) {
		aggregate := outForDeliveryTask(t, task.ConfirmationSignature, "sig-abc")

		result, err := services.SignatureConfirmationStrategy{}.Confirm(aggregate, "sig-xyz")

		require.NoError(t, err)
		assert.False(t, result.Confirmed)
		assert.Equal(t, services.OutcomeInvalidSignature, result.Message)
		assert.Equal(t, task.StatusOutForDelivery, aggregate.Status())
	})
}
