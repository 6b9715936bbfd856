package payment

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"fashion_store_back_end/internal/apperrors"
)

// Les SDK passerelle bloquent sans limite ; on borne chaque tentative et on
// rejoue une seule fois avec un jitter court. Un blocage illimité laisserait
// la commande irrésolue.
const gatewayTimeout = 8 * time.Second

var errGatewayTimeout = errors.New("délai passerelle dépassé")

func callGateway[T any](ctx context.Context, gateway string, op func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			jitter := time.Duration(100+rand.Intn(400)) * time.Millisecond
			select {
			case <-time.After(jitter):
			case <-ctx.Done():
				return zero, &apperrors.GatewayError{Gateway: gateway, Err: ctx.Err()}
			}
		}

		res, err := runBounded(ctx, op)
		if err == nil {
			return res, nil
		}
		lastErr = err
	}

	return zero, &apperrors.GatewayError{Gateway: gateway, Err: lastErr}
}

func runBounded[T any](ctx context.Context, op func() (T, error)) (T, error) {
	type outcome struct {
		val T
		err error
	}

	var zero T
	ch := make(chan outcome, 1)
	go func() {
		v, err := op()
		ch <- outcome{v, err}
	}()

	timer := time.NewTimer(gatewayTimeout)
	defer timer.Stop()

	select {
	case out := <-ch:
		return out.val, out.err
	case <-timer.C:
		return zero, errGatewayTimeout
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
