package payment

import (
	"context"

	"fashion_store_back_end/internal/models"
)

// CashOnDelivery : synchrone, aucun appel externe. La commande est placée
// immédiatement, paiement encaissé à la livraison (payment reste false).
type CashOnDelivery struct{}

func NewCashOnDelivery() *CashOnDelivery { return &CashOnDelivery{} }

func (g *CashOnDelivery) Method() string { return models.PaymentCOD }

func (g *CashOnDelivery) Initiate(ctx context.Context, o *models.Order) (*Initiation, error) {
	return &Initiation{Immediate: true}, nil
}
