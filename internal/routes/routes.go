package routes

import (
	"github.com/gin-gonic/gin"

	orderhandlers "fashion_store_back_end/internal/handlers/order"
	"fashion_store_back_end/internal/handlers/product"
	"fashion_store_back_end/internal/handlers/user"
	"fashion_store_back_end/internal/middleware"
)

type Handlers struct {
	Products *product.Handler
	Cart     *user.CartHandler
	Orders   *orderhandlers.Handler
}

func RegisterRoutes(r *gin.Engine, h *Handlers) {
	// Catalogue
	r.GET("/products", h.Products.List)
	r.GET("/products/:id", h.Products.Single)

	admin := r.Group("/", middleware.AuthRequired(), middleware.RequireAdmin)
	admin.POST("/products", h.Products.Create)
	admin.PUT("/products/:id", h.Products.Update)
	admin.DELETE("/products/:id", h.Products.Delete)
	admin.POST("/orders/status", h.Orders.SetStatus)

	// Panier
	cart := r.Group("/cart", middleware.AuthRequired())
	cart.GET("", h.Cart.Get)
	cart.POST("/add", h.Cart.Add)
	cart.POST("/update", h.Cart.Update)
	cart.POST("/remove", h.Cart.Remove)
	cart.POST("/clear", h.Cart.Clear)

	// Commandes
	orders := r.Group("/orders", middleware.AuthRequired())
	orders.POST("", h.Orders.PlaceCOD)
	orders.POST("/hosted", h.Orders.StartHosted)
	orders.POST("/hosted/verify", h.Orders.VerifyHosted)
	orders.POST("/widget", h.Orders.StartWidget)
	orders.POST("/widget/verify", h.Orders.VerifyWidget)
	orders.POST("/list", h.Orders.List)
}
