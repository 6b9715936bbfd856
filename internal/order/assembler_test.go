package order

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"fashion_store_back_end/internal/apperrors"
	"fashion_store_back_end/internal/models"
)

func validAddress() models.Address {
	return models.Address{
		FirstName: "Jean", LastName: "Dupont", Email: "jean@example.com",
		Street: "1 rue de la Paix", City: "Paris", State: "IDF",
		Zipcode: "75002", Country: "France", Phone: "0601020304",
	}
}

func TestValidateAddress_ShortCircuitsAtFirstMissingField(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*models.Address)
		wantField string
	}{
		{"firstName manquant", func(a *models.Address) { a.FirstName = "" }, "firstName"},
		{"lastName manquant", func(a *models.Address) { a.LastName = "" }, "lastName"},
		{"email manquant", func(a *models.Address) { a.Email = "" }, "email"},
		{"street manquant", func(a *models.Address) { a.Street = "" }, "street"},
		{"city manquant", func(a *models.Address) { a.City = "" }, "city"},
		{"state manquant", func(a *models.Address) { a.State = "" }, "state"},
		{"zipcode manquant", func(a *models.Address) { a.Zipcode = "" }, "zipcode"},
		{"country manquant", func(a *models.Address) { a.Country = "" }, "country"},
		{"phone manquant", func(a *models.Address) { a.Phone = "" }, "phone"},
		{"email mal formé", func(a *models.Address) { a.Email = "pas-un-email" }, "email"},
		{"firstName prime sur email", func(a *models.Address) { a.FirstName = ""; a.Email = "" }, "firstName"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := validAddress()
			tt.mutate(&addr)

			err := ValidateAddress(addr)
			var ve *apperrors.ValidationError
			assert.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}
}

func TestValidateAddress_OK(t *testing.T) {
	assert.NoError(t, ValidateAddress(validAddress()))
}

func TestAssemble_AmountIsFrozenSum(t *testing.T) {
	// Panier {A: {M: 2}}, prix A = 100, frais de livraison 10 ⇒ 210
	snapshot := models.Cart{"A": {"M": 2}}
	catalog := []models.Product{
		{ID: "A", Name: "Top", Price: 100, Image: []string{"a.jpg"}},
	}

	o, err := Assemble(snapshot, catalog, "user1", validAddress(), models.PaymentCOD, 10)
	assert.NoError(t, err)
	assert.Equal(t, 210.0, o.Amount)
	assert.Equal(t, StatusCreated, o.Status)
	assert.False(t, o.Payment)
	assert.Len(t, o.Items, 1)
	assert.Equal(t, "Top", o.Items[0].Name)
	assert.Equal(t, 100.0, o.Items[0].Price)
	assert.Equal(t, "M", o.Items[0].Size)
	assert.Equal(t, 2, o.Items[0].Quantity)
	assert.Equal(t, "a.jpg", o.Items[0].Image)
}

func TestAssemble_SnapshotNotLiveReference(t *testing.T) {
	snapshot := models.Cart{"A": {"M": 1}}
	catalog := []models.Product{{ID: "A", Name: "Top", Price: 100}}

	o, err := Assemble(snapshot, catalog, "user1", validAddress(), models.PaymentCOD, 10)
	assert.NoError(t, err)

	// Une modification ultérieure du catalogue ne change pas la ligne assemblée
	catalog[0].Price = 999
	assert.Equal(t, 100.0, o.Items[0].Price)
	assert.Equal(t, 110.0, o.Amount)
}

func TestAssemble_EmptyCart(t *testing.T) {
	tests := []struct {
		name     string
		snapshot models.Cart
	}{
		{"panier vide", models.Cart{}},
		{"uniquement des quantités nulles", models.Cart{"A": {"M": 0}}},
	}

	catalog := []models.Product{{ID: "A", Price: 100}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Assemble(tt.snapshot, catalog, "user1", validAddress(), models.PaymentCOD, 10)
			assert.ErrorIs(t, err, apperrors.ErrEmptyCart)
		})
	}
}

func TestAssemble_UnknownProduct(t *testing.T) {
	snapshot := models.Cart{"inconnu": {"M": 1}}

	_, err := Assemble(snapshot, nil, "user1", validAddress(), models.PaymentCOD, 10)
	var nf *apperrors.NotFoundError
	assert.True(t, errors.As(err, &nf))
}

func TestAssemble_MultipleLinesRoundedToCents(t *testing.T) {
	snapshot := models.Cart{
		"A": {"M": 2, "L": 1},
		"B": {"S": 3},
	}
	catalog := []models.Product{
		{ID: "A", Name: "Top", Price: 19.99},
		{ID: "B", Name: "Pantalon", Price: 45.50},
	}

	o, err := Assemble(snapshot, catalog, "user1", validAddress(), models.PaymentHosted, 10)
	assert.NoError(t, err)
	assert.Len(t, o.Items, 3)
	// 19.99×3 + 45.50×3 + 10 = 206.47
	assert.Equal(t, 206.47, o.Amount)
}
