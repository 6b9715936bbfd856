package catalog

import (
	"context"

	"fashion_store_back_end/internal/apperrors"
	"fashion_store_back_end/internal/models"
)

// staticProducts : le jeu de produits fondateurs, immuable, embarqué dans le
// binaire. Mêmes ids que le front pour que les paniers existants restent valides.
var staticProducts = []models.Product{
	{
		ID: "aaaaa", Name: "Women Round Neck Cotton Top",
		Description: "A lightweight, usually knitted, pullover shirt, close-fitting and with a round neckline and short sleeves, worn as an undershirt or outer garment.",
		Price:       100,
		Image:       []string{"https://images.unsplash.com/photo-1434389677669-e08b4cac3105?w=500"},
		Category:    "Women", SubCategory: "Topwear",
		Sizes: []string{"S", "M", "L"},
		Date:  1716634345448, Bestseller: true, Static: true,
	},
	{
		ID: "aaaab", Name: "Men Round Neck Pure Cotton T-shirt",
		Description: "A lightweight, usually knitted, pullover shirt, close-fitting and with a round neckline and short sleeves, worn as an undershirt or outer garment.",
		Price:       200,
		Image:       []string{"https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=500"},
		Category:    "Men", SubCategory: "Topwear",
		Sizes: []string{"M", "L", "XL"},
		Date:  1716621345448, Bestseller: true, Static: true,
	},
	{
		ID: "aaaac", Name: "Girls Round Neck Cotton Top",
		Description: "A lightweight, usually knitted, pullover shirt, close-fitting and with a round neckline and short sleeves, worn as an undershirt or outer garment.",
		Price:       220,
		Image:       []string{"https://images.unsplash.com/photo-1551698618-1dfe5d97d256?w=500"},
		Category:    "Kids", SubCategory: "Topwear",
		Sizes: []string{"S", "L", "XL"},
		Date:  1716234545448, Bestseller: true, Static: true,
	},
	{
		ID: "aaaad", Name: "Men Round Neck Pure Cotton T-shirt",
		Description: "A lightweight, usually knitted, pullover shirt, close-fitting and with a round neckline and short sleeves, worn as an undershirt or outer garment.",
		Price:       110,
		Image:       []string{"https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=500"},
		Category:    "Men", SubCategory: "Topwear",
		Sizes: []string{"S", "M", "XXL"},
		Date:  1716621345448, Bestseller: true, Static: true,
	},
	{
		ID: "aaaae", Name: "Women Round Neck Cotton Top",
		Description: "A lightweight, usually knitted, pullover shirt, close-fitting and with a round neckline and short sleeves, worn as an undershirt or outer garment.",
		Price:       130,
		Image:       []string{"https://images.unsplash.com/photo-1441986300917-64674bd600d8?w=500"},
		Category:    "Women", SubCategory: "Topwear",
		Sizes: []string{"M", "L", "XL"},
		Date:  1716622345448, Bestseller: true, Static: true,
	},
	{
		ID: "aaaaf", Name: "Girls Round Neck Cotton Top",
		Description: "A lightweight, usually knitted, pullover shirt, close-fitting and with a round neckline and short sleeves, worn as an undershirt or outer garment.",
		Price:       140,
		Image:       []string{"https://images.unsplash.com/photo-1551698618-1dfe5d97d256?w=500"},
		Category:    "Kids", SubCategory: "Topwear",
		Sizes: []string{"S", "L", "XL"},
		Date:  1716623423448, Bestseller: true, Static: true,
	},
	{
		ID: "aaaag", Name: "Men Tapered Fit Flat-Front Trousers",
		Description: "A lightweight, usually knitted, pullover shirt, close-fitting and with a round neckline and short sleeves, worn as an undershirt or outer garment.",
		Price:       190,
		Image:       []string{"https://images.unsplash.com/photo-1594633312681-425c7b97ccd1?w=500"},
		Category:    "Men", SubCategory: "Bottomwear",
		Sizes: []string{"S", "L", "XL"},
		Date:  1716621542448, Bestseller: false, Static: true,
	},
	{
		ID: "aaaah", Name: "Men Round Neck Pure Cotton T-shirt",
		Description: "A lightweight, usually knitted, pullover shirt, close-fitting and with a round neckline and short sleeves, worn as an undershirt or outer garment.",
		Price:       140,
		Image:       []string{"https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=500"},
		Category:    "Men", SubCategory: "Topwear",
		Sizes: []string{"S", "M", "L", "XL"},
		Date:  1716622345448, Bestseller: false, Static: true,
	},
}

// StaticCatalog expose le jeu fondateur derrière l'interface Repository.
// Toute mutation est refusée avec un ConflictError, quel que soit l'appelant.
type StaticCatalog struct{}

func NewStaticCatalog() *StaticCatalog { return &StaticCatalog{} }

func (s *StaticCatalog) FindAll(ctx context.Context) ([]models.Product, error) {
	out := make([]models.Product, len(staticProducts))
	copy(out, staticProducts)
	return out, nil
}

func (s *StaticCatalog) FindByID(ctx context.Context, id string) (*models.Product, error) {
	for _, p := range staticProducts {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, &apperrors.NotFoundError{Resource: "produit", ID: id}
}

func (s *StaticCatalog) Insert(ctx context.Context, p *models.Product) error {
	return &apperrors.ConflictError{Message: "le catalogue statique est immuable"}
}

func (s *StaticCatalog) Update(ctx context.Context, id string, p models.Product) error {
	return &apperrors.ConflictError{Message: "impossible de modifier un produit statique"}
}

func (s *StaticCatalog) Delete(ctx context.Context, id string) error {
	return &apperrors.ConflictError{Message: "impossible de supprimer un produit statique"}
}
