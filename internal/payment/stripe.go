package payment

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/checkout/session"

	"fashion_store_back_end/internal/apperrors"
	"fashion_store_back_end/internal/models"
)

// StripeHosted : checkout hébergé. Stripe héberge la page de paiement et
// redirige vers <frontend>/verify?success=...&orderId=... — la confirmation
// revient donc par le client, jamais poussée par le prestataire.
type StripeHosted struct {
	FrontendURL string
	Currency    string
}

func NewStripeHosted(frontendURL, currency string) *StripeHosted {
	return &StripeHosted{FrontendURL: frontendURL, Currency: currency}
}

func (g *StripeHosted) Method() string { return models.PaymentHosted }

func (g *StripeHosted) Initiate(ctx context.Context, o *models.Order) (*Initiation, error) {
	orderID := o.ID.Hex()

	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(o.Items)+1)
	var itemsTotal float64

	for _, item := range o.Items {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(g.Currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Name),
				},
				UnitAmount: stripe.Int64(minorUnits(item.Price)),
			},
			Quantity: stripe.Int64(int64(item.Quantity)),
		})
		itemsTotal += item.Price * float64(item.Quantity)
	}

	// Les frais de livraison sont la part de Amount au-delà des lignes.
	if fee := o.Amount - itemsTotal; fee > 0 {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(g.Currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String("Delivery Charges"),
				},
				UnitAmount: stripe.Int64(minorUnits(fee)),
			},
			Quantity: stripe.Int64(1),
		})
	}

	params := &stripe.CheckoutSessionParams{
		SuccessURL: stripe.String(fmt.Sprintf("%s/verify?success=true&orderId=%s", g.FrontendURL, orderID)),
		CancelURL:  stripe.String(fmt.Sprintf("%s/verify?success=false&orderId=%s", g.FrontendURL, orderID)),
		LineItems:  lineItems,
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
	}
	params.Context = ctx

	sess, err := callGateway(ctx, "stripe", func() (*stripe.CheckoutSession, error) {
		return session.New(params)
	})
	if err != nil {
		log.Printf("❌ Erreur Stripe: %v", err)
		return nil, err
	}

	if sess.URL == "" {
		return nil, &apperrors.GatewayError{Gateway: "stripe", Err: errors.New("session sans URL de redirection")}
	}

	log.Printf("💳 Session checkout créée: %s pour la commande %s", sess.ID, orderID)

	return &Initiation{
		RedirectURL:    sess.URL,
		GatewayOrderID: sess.ID,
	}, nil
}
