// Package payment porte les adaptateurs de passerelle : paiement à la
// livraison, checkout hébergé (Stripe) et widget client (Razorpay). Tous
// partagent le même contrat Initiate ; tout échec distant remonte en
// GatewayError et la commande reste en Created.
package payment

import (
	"context"
	"math"

	"fashion_store_back_end/internal/models"
)

// Initiation : issue d'un Initiate. Soit la commande est placée immédiatement
// (COD), soit une référence de redirection ou de widget est rendue au client.
type Initiation struct {
	Immediate      bool
	RedirectURL    string
	GatewayOrderID string
}

type Gateway interface {
	Method() string
	Initiate(ctx context.Context, o *models.Order) (*Initiation, error)
}

// minorUnits convertit un montant en unités mineures (centimes, paise).
// Arrondi et non tronqué : int64(19.99*100) vaudrait 1998, et la session
// passerelle divergerait d'un centime du montant figé de la commande.
func minorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
