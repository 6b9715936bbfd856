package payment

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	razorpay "github.com/razorpay/razorpay-go"

	"fashion_store_back_end/internal/apperrors"
	"fashion_store_back_end/internal/models"
)

// RazorpayWidget : le checkout est embarqué côté client et consomme une
// commande passerelle pré-créée. La vérification, elle, ne croit jamais le
// client : FetchStatus ré-interroge Razorpay serveur-à-serveur.
type RazorpayWidget struct {
	client   *razorpay.Client
	currency string
}

func NewRazorpayWidget(keyID, keySecret, currency string) *RazorpayWidget {
	return &RazorpayWidget{
		client:   razorpay.NewClient(keyID, keySecret),
		currency: currency,
	}
}

func (g *RazorpayWidget) Method() string { return models.PaymentWidget }

func (g *RazorpayWidget) Initiate(ctx context.Context, o *models.Order) (*Initiation, error) {
	orderID := o.ID.Hex()

	// Le reçu doit être unique côté passerelle, y compris entre deux
	// tentatives pour la même commande ; l'id interne voyage dans les notes.
	data := map[string]interface{}{
		"amount":   minorUnits(o.Amount),
		"currency": g.currency,
		"receipt":  uuid.NewString(),
		"notes":    map[string]interface{}{"order_id": orderID},
	}

	body, err := callGateway(ctx, "razorpay", func() (map[string]interface{}, error) {
		return g.client.Order.Create(data, nil)
	})
	if err != nil {
		log.Printf("❌ Erreur Razorpay: %v", err)
		return nil, err
	}

	gatewayOrderID, _ := body["id"].(string)
	if gatewayOrderID == "" {
		return nil, &apperrors.GatewayError{Gateway: "razorpay", Err: errors.New("réponse sans id de commande")}
	}

	log.Printf("💳 Commande passerelle créée: %s pour la commande %s", gatewayOrderID, orderID)

	return &Initiation{GatewayOrderID: gatewayOrderID}, nil
}

// FetchStatus ré-interroge la passerelle : seule sa réponse fait foi.
func (g *RazorpayWidget) FetchStatus(ctx context.Context, gatewayRef string) (bool, error) {
	body, err := callGateway(ctx, "razorpay", func() (map[string]interface{}, error) {
		return g.client.Order.Fetch(gatewayRef, nil, nil)
	})
	if err != nil {
		return false, err
	}

	status, _ := body["status"].(string)
	if status == "" {
		return false, &apperrors.GatewayError{Gateway: "razorpay", Err: errors.New("réponse sans statut")}
	}

	return status == "paid", nil
}
