package catalog

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"fashion_store_back_end/internal/apperrors"
	"fashion_store_back_end/internal/cache"
	"fashion_store_back_end/internal/models"
)

// MongoCatalog : le store des produits dynamiques, seuls produits mutables.
type MongoCatalog struct {
	collection *mongo.Collection
}

func NewMongoCatalog(collection *mongo.Collection) *MongoCatalog {
	return &MongoCatalog{collection: collection}
}

func (m *MongoCatalog) FindAll(ctx context.Context) ([]models.Product, error) {
	// ✅ Vérifie le cache Redis d'abord
	if cached, ok := cache.GetDynamicProducts(ctx); ok {
		return cached, nil
	}

	cursor, err := m.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, &apperrors.NetworkError{Op: "mongo.find", Err: err}
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, &apperrors.NetworkError{Op: "mongo.decode", Err: err}
	}

	cache.SetDynamicProducts(ctx, products)
	return products, nil
}

func (m *MongoCatalog) FindByID(ctx context.Context, id string) (*models.Product, error) {
	var p models.Product
	err := m.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, &apperrors.NotFoundError{Resource: "produit", ID: id}
	}
	if err != nil {
		return nil, &apperrors.NetworkError{Op: "mongo.findOne", Err: err}
	}
	return &p, nil
}

func (m *MongoCatalog) Insert(ctx context.Context, p *models.Product) error {
	if err := validateProduct(*p); err != nil {
		return err
	}

	p.ID = primitive.NewObjectID().Hex()
	p.Static = false
	if p.Date == 0 {
		p.Date = time.Now().UnixMilli()
	}

	if _, err := m.collection.InsertOne(ctx, p); err != nil {
		return &apperrors.NetworkError{Op: "mongo.insert", Err: err}
	}

	cache.InvalidateDynamicProducts(ctx)
	log.Printf("✅ Produit ajouté: %s (%s)", p.Name, p.ID)
	return nil
}

func (m *MongoCatalog) Update(ctx context.Context, id string, p models.Product) error {
	if err := validateProduct(p); err != nil {
		return err
	}

	existing, err := m.FindByID(ctx, id)
	if err != nil {
		return err
	}
	// Le flag est vérifié aussi côté document : un produit statique ne se
	// modifie jamais, même s'il a été recopié dans le store par erreur.
	if existing.Static {
		return &apperrors.ConflictError{Message: "impossible de modifier un produit statique"}
	}

	update := bson.M{"$set": bson.M{
		"name":        strings.TrimSpace(p.Name),
		"description": strings.TrimSpace(p.Description),
		"price":       p.Price,
		"category":    strings.TrimSpace(p.Category),
		"subCategory": strings.TrimSpace(p.SubCategory),
		"bestseller":  p.Bestseller,
	}}
	if len(p.Sizes) > 0 {
		update["$set"].(bson.M)["sizes"] = p.Sizes
	}

	if _, err := m.collection.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
		return &apperrors.NetworkError{Op: "mongo.update", Err: err}
	}

	cache.InvalidateDynamicProducts(ctx)
	log.Printf("✅ Produit mis à jour: %s", id)
	return nil
}

func (m *MongoCatalog) Delete(ctx context.Context, id string) error {
	existing, err := m.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.Static {
		return &apperrors.ConflictError{Message: "impossible de supprimer un produit statique"}
	}

	if _, err := m.collection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return &apperrors.NetworkError{Op: "mongo.delete", Err: err}
	}

	cache.InvalidateDynamicProducts(ctx)
	log.Printf("✅ Produit supprimé: %s", id)
	return nil
}

func validateProduct(p models.Product) error {
	switch {
	case strings.TrimSpace(p.Name) == "":
		return &apperrors.ValidationError{Field: "name"}
	case strings.TrimSpace(p.Category) == "":
		return &apperrors.ValidationError{Field: "category"}
	case strings.TrimSpace(p.SubCategory) == "":
		return &apperrors.ValidationError{Field: "subCategory"}
	case p.Price <= 0:
		return &apperrors.ValidationError{Field: "price", Message: "le prix doit être un nombre strictement positif"}
	}
	return nil
}
