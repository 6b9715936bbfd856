package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"fashion_store_back_end/internal/models"
)

func staleOrder(method, ref string) models.Order {
	return models.Order{
		ID:            primitive.NewObjectID(),
		UserID:        "user1",
		PaymentMethod: method,
		Status:        StatusCreated,
		GatewayRef:    ref,
		CreatedAt:     time.Now().Add(-2 * time.Hour),
	}
}

func TestSweep_FinalizesPaidWidgetOrder(t *testing.T) {
	store := new(MockStore)
	widget := new(MockFetcher)
	carts := new(MockClearer)

	o := staleOrder(models.PaymentWidget, "gw_paid")
	store.On("ListCreatedBefore", mock.Anything, mock.Anything).Return([]models.Order{o}, nil)
	widget.On("FetchStatus", mock.Anything, "gw_paid").Return(true, nil)
	store.On("MarkPaid", mock.Anything, o.ID.Hex(), StatusPlaced).Return(nil)
	carts.On("Clear", mock.Anything, "user1").Return(nil)

	s := NewSweeper(store, widget, carts, time.Minute, time.Hour)
	s.Sweep(context.Background())

	store.AssertExpectations(t)
	store.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestSweep_CancelsUnpaidWidgetOrder(t *testing.T) {
	store := new(MockStore)
	widget := new(MockFetcher)

	o := staleOrder(models.PaymentWidget, "gw_unpaid")
	store.On("ListCreatedBefore", mock.Anything, mock.Anything).Return([]models.Order{o}, nil)
	widget.On("FetchStatus", mock.Anything, "gw_unpaid").Return(false, nil)
	store.On("UpdateStatus", mock.Anything, o.ID.Hex(), StatusCancelled).Return(nil)

	s := NewSweeper(store, widget, new(MockClearer), time.Minute, time.Hour)
	s.Sweep(context.Background())

	store.AssertExpectations(t)
}

func TestSweep_CancelsStaleHostedOrder(t *testing.T) {
	store := new(MockStore)
	widget := new(MockFetcher)

	o := staleOrder(models.PaymentHosted, "cs_123")
	store.On("ListCreatedBefore", mock.Anything, mock.Anything).Return([]models.Order{o}, nil)
	store.On("UpdateStatus", mock.Anything, o.ID.Hex(), StatusCancelled).Return(nil)

	s := NewSweeper(store, widget, new(MockClearer), time.Minute, time.Hour)
	s.Sweep(context.Background())

	// Aucune re-vérification possible pour une session hébergée abandonnée
	widget.AssertNotCalled(t, "FetchStatus", mock.Anything, mock.Anything)
	store.AssertExpectations(t)
}

func TestSweep_GatewayUnreachable_LeavesOrderForNextPass(t *testing.T) {
	store := new(MockStore)
	widget := new(MockFetcher)

	o := staleOrder(models.PaymentWidget, "gw_down")
	store.On("ListCreatedBefore", mock.Anything, mock.Anything).Return([]models.Order{o}, nil)
	widget.On("FetchStatus", mock.Anything, "gw_down").Return(false, errors.New("timeout"))

	s := NewSweeper(store, widget, new(MockClearer), time.Minute, time.Hour)
	s.Sweep(context.Background())

	store.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything)
}
