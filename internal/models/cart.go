package models

// Cart : productId → taille → quantité. Les quantités ≤ 0 ne sont jamais persistées.
type Cart map[string]map[string]int

// Clone copie profonde du panier (le shadow local ne doit jamais partager ses maps).
func (c Cart) Clone() Cart {
	out := make(Cart, len(c))
	for id, sizes := range c {
		out[id] = make(map[string]int, len(sizes))
		for size, qty := range sizes {
			out[id][size] = qty
		}
	}
	return out
}
