package order

import (
	"context"
	"log"

	"fashion_store_back_end/internal/apperrors"
	"fashion_store_back_end/internal/models"
)

// CartClearer : signal de vidage envoyé au panier du propriétaire après un
// paiement confirmé. Jamais émis sur un échec.
type CartClearer interface {
	Clear(ctx context.Context, userID string) error
}

// GatewayStatusFetcher ré-interroge le prestataire pour une référence de
// commande passerelle (chemin widget).
type GatewayStatusFetcher interface {
	FetchStatus(ctx context.Context, gatewayRef string) (paid bool, err error)
}

// Assertion : ce que le client rapporte au retour du paiement.
type Assertion struct {
	Success        bool
	GatewayOrderID string
}

// Verifier résout une commande en attente vers son issue de paiement finale.
type Verifier struct {
	store  Store
	carts  CartClearer
	widget GatewayStatusFetcher
}

func NewVerifier(store Store, carts CartClearer, widget GatewayStatusFetcher) *Verifier {
	return &Verifier{store: store, carts: carts, widget: widget}
}

// Verify ramène la commande à un état final de paiement (Placed ou Cancelled).
// Idempotent : re-vérifier une commande déjà résolue retourne l'état existant
// sans rejouer le moindre effet de bord.
func (v *Verifier) Verify(ctx context.Context, orderID, callerUserID string, assertion Assertion) (string, error) {
	o, err := v.store.FindByID(ctx, orderID)
	if err != nil {
		return "", err
	}

	if o.UserID != callerUserID {
		return "", apperrors.ErrForbidden
	}

	// Déjà résolue : no-op, on retourne l'état tel quel.
	if o.Status != StatusCreated {
		return o.Status, nil
	}

	paid, err := v.resolve(ctx, o, assertion)
	if err != nil {
		// Échec passerelle : la commande reste en Created, jamais promue en silence.
		return "", err
	}

	if !paid {
		if err := v.store.UpdateStatus(ctx, orderID, StatusCancelled); err != nil {
			return "", err
		}
		// Le panier n'est pas touché : une tentative annulée ne doit pas
		// effacer la sélection en cours de l'utilisateur.
		log.Printf("🚫 Paiement refusé/annulé pour la commande %s", orderID)
		return StatusCancelled, nil
	}

	if err := v.store.MarkPaid(ctx, orderID, StatusPlaced); err != nil {
		return "", err
	}

	if err := v.carts.Clear(ctx, o.UserID); err != nil {
		log.Printf("⚠️ Vidage panier échoué après paiement pour %s: %v", o.UserID, err)
	}

	log.Printf("✅ Paiement confirmé, commande %s placée", orderID)
	return StatusPlaced, nil
}

func (v *Verifier) resolve(ctx context.Context, o *models.Order, assertion Assertion) (bool, error) {
	switch o.PaymentMethod {
	case models.PaymentWidget:
		// Le widget ne croit jamais le client : on ré-interroge la passerelle
		// sur la référence que nous détenons.
		ref := o.GatewayRef
		if ref == "" {
			ref = assertion.GatewayOrderID
		}
		if ref == "" {
			return false, &apperrors.ValidationError{Field: "gatewayOrderId"}
		}
		return v.widget.FetchStatus(ctx, ref)

	default:
		// Chemin hosted : le booléen rapporté par le client est cru tel quel.
		// Faille d'intégrité connue et assumée, le flux redirigé ne pousse
		// aucune confirmation serveur-à-serveur. Le balayage périodique
		// rattrape les commandes abandonnées.
		return assertion.Success, nil
	}
}
