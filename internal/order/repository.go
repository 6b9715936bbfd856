package order

import (
	"context"
	"time"

	"fashion_store_back_end/internal/models"
)

// Store : persistance des commandes. Chaque écriture est une mise à jour
// atomique d'un seul document, scoped par id (last-writer-wins).
type Store interface {
	Insert(ctx context.Context, o *models.Order) error
	FindByID(ctx context.Context, id string) (*models.Order, error)
	// FindByGatewayRef retrouve la commande interne depuis la référence
	// passerelle (chemin widget : le client ne connaît que cette référence).
	FindByGatewayRef(ctx context.Context, ref string) (*models.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
	// MarkPaid pose payment=true et le statut en une seule écriture.
	MarkPaid(ctx context.Context, id, status string) error
	SetGatewayRef(ctx context.Context, id, ref string) error
	ListByUser(ctx context.Context, userID string) ([]models.Order, error)
	ListAll(ctx context.Context) ([]models.Order, error)
	// ListCreatedBefore : commandes encore en Created, plus vieilles que cutoff.
	ListCreatedBefore(ctx context.Context, cutoff time.Time) ([]models.Order, error)
}
