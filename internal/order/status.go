package order

import (
	"context"
	"log"

	"fashion_store_back_end/internal/apperrors"
)

// États du cycle de vie d'une commande. Les libellés d'exécution sont ceux
// affichés par l'interface admin — ils voyagent tels quels sur le fil.
const (
	StatusCreated        = "Created"
	StatusPlaced         = "Order Placed"
	StatusPacking        = "Packing"
	StatusShipped        = "Shipped"
	StatusOutForDelivery = "Out for delivery"
	StatusDelivered      = "Delivered"
	StatusCancelled      = "Cancelled"
)

// fulfillmentStatuses : états que l'admin peut poser. L'adjacence n'est pas
// imposée, l'interface admin laisse sauter des étapes.
var fulfillmentStatuses = map[string]bool{
	StatusPlaced:         true,
	StatusPacking:        true,
	StatusShipped:        true,
	StatusOutForDelivery: true,
	StatusDelivered:      true,
	StatusCancelled:      true,
}

// IsTerminal : Delivered et Cancelled sont des états finaux, figés.
func IsTerminal(status string) bool {
	return status == StatusDelivered || status == StatusCancelled
}

// StateMachine porte les transitions d'exécution pilotées par l'admin.
// Created → Placed/Cancelled reste réservé au Verifier et au chemin COD.
type StateMachine struct {
	store Store
}

func NewStateMachine(store Store) *StateMachine {
	return &StateMachine{store: store}
}

// SetStatus pose un état d'exécution sur une commande.
// Refusé : état inconnu, commande encore en Created (paiement non résolu),
// commande déjà terminale.
func (sm *StateMachine) SetStatus(ctx context.Context, orderID, status string) error {
	if !fulfillmentStatuses[status] {
		return &apperrors.ValidationError{Field: "status", Message: "statut inconnu: " + status}
	}

	o, err := sm.store.FindByID(ctx, orderID)
	if err != nil {
		return err
	}

	if o.Status == StatusCreated {
		return &apperrors.ConflictError{Message: "paiement non résolu, commande encore en attente de confirmation"}
	}
	if IsTerminal(o.Status) {
		return &apperrors.ConflictError{Message: "commande déjà dans un état final: " + o.Status}
	}

	if err := sm.store.UpdateStatus(ctx, orderID, status); err != nil {
		return err
	}

	log.Printf("✅ Commande %s mise à jour: %s", orderID, status)
	return nil
}
