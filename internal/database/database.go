package database

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// --- Variables Globales ---
var (
	Mongo   *mongo.Client
	MongoDB *mongo.Database
	Redis   *redis.Client
)

// ConnectDatabases initialise MongoDB (produits + commandes) et Redis (panier + cache)
func ConnectDatabases() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	connectMongo(ctx)
	connectRedis(ctx)

	log.Println("✅ Toutes les bases de données sont connectées")
}

func connectMongo(ctx context.Context) {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	dbName := os.Getenv("MONGODB_DATABASE")
	if dbName == "" {
		dbName = "fashion_store"
	}

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(20).
		SetServerSelectionTimeout(5*time.Second))
	if err != nil {
		log.Fatalf("❌ Échec connexion MongoDB: %v", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatalf("❌ MongoDB injoignable: %v", err)
	}

	Mongo = client
	MongoDB = client.Database(dbName)
	log.Println("✅ MongoDB connecté :", dbName)
}

func connectRedis(ctx context.Context) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
		PoolSize: 20,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("❌ Échec connexion Redis: %v", err)
	}

	Redis = client
	log.Println("✅ Redis connecté :", addr)
}

// ProductsCollection : produits dynamiques (les statiques vivent dans le binaire)
func ProductsCollection() *mongo.Collection {
	return MongoDB.Collection("products")
}

// OrdersCollection : commandes
func OrdersCollection() *mongo.Collection {
	return MongoDB.Collection("orders")
}
