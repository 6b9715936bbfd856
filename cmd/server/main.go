package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v83"

	"fashion_store_back_end/internal/cart"
	"fashion_store_back_end/internal/catalog"
	"fashion_store_back_end/internal/config"
	"fashion_store_back_end/internal/database"
	orderhandlers "fashion_store_back_end/internal/handlers/order"
	"fashion_store_back_end/internal/handlers/product"
	"fashion_store_back_end/internal/handlers/user"
	"fashion_store_back_end/internal/order"
	"fashion_store_back_end/internal/payment"
	"fashion_store_back_end/internal/routes"
)

func main() {
	config.Load()

	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	if stripe.Key == "" {
		log.Fatal("❌ Impossible d'initialiser Stripe : clé manquante")
	}
	log.Println("✅ Stripe initialisé")

	razorpayKey := os.Getenv("RAZORPAY_KEY_ID")
	razorpaySecret := os.Getenv("RAZORPAY_KEY_SECRET")
	if razorpayKey == "" || razorpaySecret == "" {
		log.Fatal("❌ Impossible d'initialiser Razorpay : clés manquantes")
	}
	log.Println("✅ Razorpay initialisé")

	database.ConnectDatabases()

	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:5173"
	}

	// Catalogue : jeu statique + store dynamique, fusionnés en lecture
	merged := catalog.NewMerged(
		catalog.NewStaticCatalog(),
		catalog.NewMongoCatalog(database.ProductsCollection()),
	)

	// Panier : grand livre Redis + shadow local, instance injectée
	ledger := cart.NewLedger(cart.NewRedisStore(database.Redis))

	// Commandes
	store := order.NewMongoStore(database.OrdersCollection())
	widget := payment.NewRazorpayWidget(razorpayKey, razorpaySecret, "INR")
	verifier := order.NewVerifier(store, ledger, widget)
	machine := order.NewStateMachine(store)

	orderHandler := &orderhandlers.Handler{
		Catalog:     merged,
		Ledger:      ledger,
		Store:       store,
		Verifier:    verifier,
		Machine:     machine,
		COD:         payment.NewCashOnDelivery(),
		Hosted:      payment.NewStripeHosted(frontendURL, "usd"),
		Widget:      widget,
		DeliveryFee: deliveryFee(),
	}

	// Balayage des commandes bloquées en Created (pas de webhook : sans ce
	// passage, un client qui ne revient jamais laisse la commande en attente)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sweeper := order.NewSweeper(store, widget, ledger, 10*time.Minute, time.Hour)
	go sweeper.Run(ctx)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{frontendURL},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "token"},
		AllowWildcard: true,
	}))

	routes.RegisterRoutes(r, &routes.Handlers{
		Products: product.NewHandler(merged),
		Cart:     user.NewCartHandler(ledger, merged),
		Orders:   orderHandler,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	log.Println("🚀 Serveur Fashion Store lancé sur le port", port)
	r.Run(":" + port)
}

func deliveryFee() float64 {
	if v := os.Getenv("DELIVERY_FEE"); v != "" {
		if fee, err := strconv.ParseFloat(v, 64); err == nil {
			return fee
		}
	}
	return 10
}
