package payment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"fashion_store_back_end/internal/apperrors"
)

func TestCallGateway_SuccessFirstAttempt(t *testing.T) {
	calls := 0
	res, err := callGateway(context.Background(), "test", func() (string, error) {
		calls++
		return "ok", nil
	})

	assert.NoError(t, err)
	assert.Equal(t, "ok", res)
	assert.Equal(t, 1, calls)
}

func TestCallGateway_RetriesExactlyOnce(t *testing.T) {
	calls := 0
	res, err := callGateway(context.Background(), "test", func() (string, error) {
		calls++
		if calls == 1 {
			return "", errors.New("hoquet réseau")
		}
		return "ok", nil
	})

	assert.NoError(t, err)
	assert.Equal(t, "ok", res)
	assert.Equal(t, 2, calls)
}

func TestCallGateway_TwoFailuresWrapAsGatewayError(t *testing.T) {
	calls := 0
	boom := errors.New("indisponible")
	_, err := callGateway(context.Background(), "stripe", func() (string, error) {
		calls++
		return "", boom
	})

	assert.Equal(t, 2, calls, "une seule relance, jamais plus")
	var ge *apperrors.GatewayError
	assert.True(t, errors.As(err, &ge))
	assert.Equal(t, "stripe", ge.Gateway)
	assert.ErrorIs(t, err, boom)
}

func TestCallGateway_CancelledContextStopsRetry(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	_, err := callGateway(ctx, "test", func() (string, error) {
		calls++
		cancel()
		return "", errors.New("échec")
	})

	assert.Equal(t, 1, calls, "pas de relance après annulation")
	var ge *apperrors.GatewayError
	assert.True(t, errors.As(err, &ge))
	assert.ErrorIs(t, err, context.Canceled)
}
