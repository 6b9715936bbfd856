// Package cart implémente le panier à deux niveaux : un grand livre distant
// (Redis) qui fait autorité, doublé d'un shadow local en mémoire. Chaque
// mutation est appliquée localement sans condition ; l'écriture distante est
// best-effort — son échec lève le drapeau dégradé, jamais une erreur.
package cart

import (
	"context"
	"log"
	"sync"

	"fashion_store_back_end/internal/models"
)

// Ledger est une instance injectée ; pas de singleton de package.
type Ledger struct {
	mu       sync.Mutex
	remote   RemoteStore
	shadow   map[string]models.Cart
	degraded map[string]bool
}

func NewLedger(remote RemoteStore) *Ledger {
	return &Ledger{
		remote:   remote,
		shadow:   make(map[string]models.Cart),
		degraded: make(map[string]bool),
	}
}

// Add incrémente (productID, size) de delta. delta ≤ 0 est refusé en amont
// par le handler ; ici il passe par la même purge que SetQuantity.
func (l *Ledger) Add(ctx context.Context, userID, productID, size string, delta int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	cart := l.load(ctx, userID)
	if cart[productID] == nil {
		cart[productID] = map[string]int{}
	}
	cart[productID][size] += delta
	prune(cart, productID, size)

	l.store(ctx, userID, cart)
	return nil
}

// SetQuantity fixe la quantité. qty == 0 supprime l'entrée.
func (l *Ledger) SetQuantity(ctx context.Context, userID, productID, size string, qty int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	cart := l.load(ctx, userID)
	if cart[productID] == nil {
		cart[productID] = map[string]int{}
	}
	cart[productID][size] = qty
	prune(cart, productID, size)

	l.store(ctx, userID, cart)
	return nil
}

// Snapshot retourne une copie du panier courant : le distant s'il est
// joignable, le shadow local sinon.
func (l *Ledger) Snapshot(ctx context.Context, userID string) models.Cart {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.load(ctx, userID).Clone()
}

// Clear vide le panier des deux côtés. Un échec distant laisse le drapeau
// dégradé levé mais le shadow est vidé dans tous les cas.
func (l *Ledger) Clear(ctx context.Context, userID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.shadow, userID)
	if err := l.remote.Delete(ctx, userID); err != nil {
		log.Printf("⚠️ Vidage panier distant échoué pour %s: %v", userID, err)
		l.degraded[userID] = true
		return nil
	}
	l.degraded[userID] = false
	return nil
}

// Degraded indique si le dernier aller-retour distant de cet utilisateur a échoué.
func (l *Ledger) Degraded(userID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.degraded[userID]
}

// load choisit le niveau de référence : shadow en mode dégradé (il porte des
// mutations que le distant n'a pas vues), distant sinon.
func (l *Ledger) load(ctx context.Context, userID string) models.Cart {
	if l.degraded[userID] {
		return l.localOrEmpty(userID)
	}

	remote, err := l.remote.Get(ctx, userID)
	if err != nil {
		l.degraded[userID] = true
		return l.localOrEmpty(userID)
	}
	return remote
}

// store est la fonction de réconciliation des deux niveaux : le shadow reçoit
// l'état inconditionnellement, le distant en best-effort. Une écriture
// distante réussie rabaisse le drapeau dégradé.
func (l *Ledger) store(ctx context.Context, userID string, cart models.Cart) {
	l.shadow[userID] = cart.Clone()

	if err := l.remote.Set(ctx, userID, cart); err != nil {
		log.Printf("⚠️ Persistance panier distant échouée pour %s: %v", userID, err)
		l.degraded[userID] = true
		return
	}
	l.degraded[userID] = false
}

func (l *Ledger) localOrEmpty(userID string) models.Cart {
	if c, ok := l.shadow[userID]; ok {
		return c.Clone()
	}
	return models.Cart{}
}

// prune retire les quantités ≤ 0 : elles ne sont jamais persistées.
func prune(cart models.Cart, productID, size string) {
	if cart[productID][size] <= 0 {
		delete(cart[productID], size)
	}
	if len(cart[productID]) == 0 {
		delete(cart, productID)
	}
}

// Count : somme des quantités positives de l'instantané. Projection pure.
func Count(snapshot models.Cart) int {
	total := 0
	for _, sizes := range snapshot {
		for _, qty := range sizes {
			if qty > 0 {
				total += qty
			}
		}
	}
	return total
}

// Amount projette l'instantané sur les prix *courants* du catalogue — à
// dessein différent de Order.Amount, figé à l'assemblage. Les produits
// disparus du catalogue sont ignorés.
func Amount(snapshot models.Cart, catalog []models.Product) float64 {
	prices := make(map[string]float64, len(catalog))
	for _, p := range catalog {
		prices[p.ID] = p.Price
	}

	var total float64
	for productID, sizes := range snapshot {
		price, ok := prices[productID]
		if !ok {
			continue
		}
		for _, qty := range sizes {
			if qty > 0 {
				total += price * float64(qty)
			}
		}
	}
	return total
}
