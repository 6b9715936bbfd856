package order

import (
	"math"
	"regexp"
	"sort"

	"fashion_store_back_end/internal/apperrors"
	"fashion_store_back_end/internal/models"
)

// Même forme d'email que le formulaire du front.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateAddress court-circuite au premier champ manquant, dans l'ordre du
// formulaire, puis vérifie la forme de l'email.
func ValidateAddress(a models.Address) error {
	checks := []struct {
		field, value string
	}{
		{"firstName", a.FirstName},
		{"lastName", a.LastName},
		{"email", a.Email},
		{"street", a.Street},
		{"city", a.City},
		{"state", a.State},
		{"zipcode", a.Zipcode},
		{"country", a.Country},
		{"phone", a.Phone},
	}

	for _, c := range checks {
		if c.value == "" {
			return &apperrors.ValidationError{Field: c.field}
		}
	}

	if !emailRe.MatchString(a.Email) {
		return &apperrors.ValidationError{Field: "email", Message: "adresse email invalide"}
	}
	return nil
}

// Assemble transforme un instantané de panier en brouillon de commande.
// Chaque entrée est résolue contre le catalogue *à cet instant* : nom, prix
// et image sont recopiés dans la ligne — une modification ultérieure du
// catalogue ne change jamais une commande assemblée. Amount est figé ici.
func Assemble(snapshot models.Cart, catalog []models.Product, userID string, addr models.Address, method string, deliveryFee float64) (*models.Order, error) {
	if err := ValidateAddress(addr); err != nil {
		return nil, err
	}

	byID := make(map[string]models.Product, len(catalog))
	for _, p := range catalog {
		byID[p.ID] = p
	}

	// Parcours trié pour produire une séquence de lignes déterministe.
	productIDs := make([]string, 0, len(snapshot))
	for id := range snapshot {
		productIDs = append(productIDs, id)
	}
	sort.Strings(productIDs)

	var items []models.OrderItem
	var total float64

	for _, productID := range productIDs {
		p, ok := byID[productID]
		if !ok {
			return nil, &apperrors.NotFoundError{Resource: "produit", ID: productID}
		}

		sizes := make([]string, 0, len(snapshot[productID]))
		for size := range snapshot[productID] {
			sizes = append(sizes, size)
		}
		sort.Strings(sizes)

		for _, size := range sizes {
			qty := snapshot[productID][size]
			if qty <= 0 {
				continue
			}

			image := ""
			if len(p.Image) > 0 {
				image = p.Image[0]
			}

			items = append(items, models.OrderItem{
				ProductID: productID,
				Name:      p.Name,
				Price:     p.Price,
				Size:      size,
				Quantity:  qty,
				Image:     image,
			})
			total += p.Price * float64(qty)
		}
	}

	if len(items) == 0 {
		return nil, apperrors.ErrEmptyCart
	}

	return &models.Order{
		UserID:        userID,
		Items:         items,
		Address:       addr,
		Amount:        roundCents(total + deliveryFee),
		PaymentMethod: method,
		Payment:       false,
		Status:        StatusCreated,
	}, nil
}

// roundCents arrondit au centime, l'unité mineure de la devise.
func roundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
