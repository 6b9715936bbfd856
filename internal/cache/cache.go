package cache

import (
	"context"
	"encoding/json"
	"time"

	"fashion_store_back_end/internal/database"
	"fashion_store_back_end/internal/models"
)

const (
	ProductCacheTTL = 10 * time.Minute

	dynamicProductsKey = "products:dynamic"
)

// GetDynamicProducts récupère la liste des produits dynamiques depuis Redis.
// Retourne (nil, false) si absent ou illisible : l'appelant retombe sur Mongo.
func GetDynamicProducts(ctx context.Context) ([]models.Product, bool) {
	data, err := database.Redis.Get(ctx, dynamicProductsKey).Result()
	if err != nil || data == "" {
		return nil, false
	}

	var products []models.Product
	if err := json.Unmarshal([]byte(data), &products); err != nil {
		return nil, false
	}
	return products, true
}

// SetDynamicProducts met la liste en cache. Best-effort : une erreur Redis
// n'est jamais bloquante pour la lecture du catalogue.
func SetDynamicProducts(ctx context.Context, products []models.Product) {
	jsonData, err := json.Marshal(products)
	if err != nil {
		return
	}
	database.Redis.Set(ctx, dynamicProductsKey, jsonData, ProductCacheTTL)
}

// InvalidateDynamicProducts invalide le cache après toute mutation du catalogue
func InvalidateDynamicProducts(ctx context.Context) {
	database.Redis.Del(ctx, dynamicProductsKey)
}
