package order

import (
	"context"
	"log"
	"time"

	"fashion_store_back_end/internal/models"
)

// Sweeper : balayage périodique et idempotent des commandes bloquées en
// Created. La confirmation étant rapportée par le client (pas de webhook),
// une commande dont le client ne revient jamais resterait en attente pour
// toujours sans ce passage.
type Sweeper struct {
	store    Store
	widget   GatewayStatusFetcher
	carts    CartClearer
	interval time.Duration
	maxAge   time.Duration
}

func NewSweeper(store Store, widget GatewayStatusFetcher, carts CartClearer, interval, maxAge time.Duration) *Sweeper {
	return &Sweeper{store: store, widget: widget, carts: carts, interval: interval, maxAge: maxAge}
}

// Run boucle jusqu'à annulation du contexte.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	log.Printf("🧹 Sweeper démarré (intervalle %s, fenêtre %s)", s.interval, s.maxAge)

	for {
		select {
		case <-ctx.Done():
			log.Println("🧹 Sweeper arrêté")
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep traite un lot : les commandes widget avec référence passerelle sont
// ré-interrogées (payée → finalisée Placed, sinon Cancelled) ; les commandes
// hosted périmées sont annulées — aucune requête serveur n'existe pour une
// session dont le client n'est jamais revenu.
func (s *Sweeper) Sweep(ctx context.Context) {
	stale, err := s.store.ListCreatedBefore(ctx, time.Now().Add(-s.maxAge))
	if err != nil {
		log.Printf("⚠️ Sweeper: lecture des commandes en attente échouée: %v", err)
		return
	}

	for _, o := range stale {
		s.sweepOne(ctx, o)
	}
}

func (s *Sweeper) sweepOne(ctx context.Context, o models.Order) {
	id := o.ID.Hex()

	if o.PaymentMethod == models.PaymentWidget && o.GatewayRef != "" {
		paid, err := s.widget.FetchStatus(ctx, o.GatewayRef)
		if err != nil {
			// Passerelle injoignable : on laisse la commande pour le prochain passage.
			log.Printf("⚠️ Sweeper: re-vérification %s échouée: %v", id, err)
			return
		}
		if paid {
			if err := s.store.MarkPaid(ctx, id, StatusPlaced); err != nil {
				log.Printf("⚠️ Sweeper: finalisation %s échouée: %v", id, err)
				return
			}
			if err := s.carts.Clear(ctx, o.UserID); err != nil {
				log.Printf("⚠️ Sweeper: vidage panier %s échoué: %v", o.UserID, err)
			}
			log.Printf("✅ Sweeper: commande widget %s payée hors-ligne, finalisée", id)
			return
		}
	}

	if err := s.store.UpdateStatus(ctx, id, StatusCancelled); err != nil {
		log.Printf("⚠️ Sweeper: annulation %s échouée: %v", id, err)
		return
	}
	log.Printf("🚫 Sweeper: commande %s expirée, annulée", id)
}
