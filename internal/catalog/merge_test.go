package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fashion_store_back_end/internal/models"
)

func TestMerge_LengthIsSumOfInputs(t *testing.T) {
	static := []models.Product{{ID: "s1"}, {ID: "s2"}}
	dynamic := []models.Product{{ID: "d1"}, {ID: "d2"}, {ID: "d3"}}

	assert.Len(t, Merge(static, dynamic), 5)
	assert.Len(t, Merge(nil, dynamic), 3)
	assert.Len(t, Merge(static, nil), 2)
	assert.Empty(t, Merge(nil, nil))
}

func TestMerge_BestsellersFirstThenDateDescending(t *testing.T) {
	static := []models.Product{
		{ID: "s1", Bestseller: false, Date: 300},
		{ID: "s2", Bestseller: true, Date: 100},
	}
	dynamic := []models.Product{
		{ID: "d1", Bestseller: true, Date: 200},
		{ID: "d2", Bestseller: false, Date: 400},
	}

	merged := Merge(static, dynamic)

	// Partition : tous les bestsellers précèdent les non-bestsellers
	sawNonBestseller := false
	for _, p := range merged {
		if !p.Bestseller {
			sawNonBestseller = true
		} else {
			assert.False(t, sawNonBestseller, "bestseller après un non-bestseller")
		}
	}

	// Dates non croissantes dans chaque partition
	ids := []string{merged[0].ID, merged[1].ID, merged[2].ID, merged[3].ID}
	assert.Equal(t, []string{"d1", "s2", "d2", "s1"}, ids)
}

func TestMerge_StableOnTies(t *testing.T) {
	// Même clé de tri : l'ordre d'entrée (statique avant dynamique) est conservé
	static := []models.Product{{ID: "s1", Bestseller: true, Date: 100}}
	dynamic := []models.Product{{ID: "d1", Bestseller: true, Date: 100}}

	merged := Merge(static, dynamic)
	assert.Equal(t, "s1", merged[0].ID)
	assert.Equal(t, "d1", merged[1].ID)
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	static := []models.Product{{ID: "s1", Date: 1}, {ID: "s2", Date: 2}}
	dynamic := []models.Product{{ID: "d1", Date: 3}}

	Merge(static, dynamic)

	assert.Equal(t, "s1", static[0].ID)
	assert.Equal(t, "s2", static[1].ID)
	assert.Equal(t, "d1", dynamic[0].ID)
}
