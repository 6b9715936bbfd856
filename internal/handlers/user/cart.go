package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fashion_store_back_end/internal/apperrors"
	"fashion_store_back_end/internal/cart"
	"fashion_store_back_end/internal/catalog"
)

// CartHandler : le grand livre est une instance injectée, jamais un singleton.
type CartHandler struct {
	Ledger  *cart.Ledger
	Catalog *catalog.Merged
}

func NewCartHandler(ledger *cart.Ledger, cat *catalog.Merged) *CartHandler {
	return &CartHandler{Ledger: ledger, Catalog: cat}
}

type cartInput struct {
	ItemID   string `json:"itemId"`
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

// Add — POST /cart/add : incrémente (itemId, size). Quantité absente → +1.
func (h *CartHandler) Add(c *gin.Context) {
	userID := c.GetString("user_id")

	var input cartInput
	if err := c.ShouldBindJSON(&input); err != nil || input.ItemID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Données invalides"})
		return
	}
	if input.Size == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Taille requise"})
		return
	}

	// Le produit doit exister au moment de l'ajout ; son prix, lui, n'est
	// jamais figé dans le panier.
	if _, err := h.Catalog.Find(c.Request.Context(), input.ItemID); err != nil {
		var nf *apperrors.NotFoundError
		if errors.As(err, &nf) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Produit introuvable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur interne"})
		return
	}

	delta := input.Quantity
	if delta <= 0 {
		delta = 1
	}

	h.Ledger.Add(c.Request.Context(), userID, input.ItemID, input.Size, delta)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Added To Cart", "degraded": h.Ledger.Degraded(userID)})
}

// Update — POST /cart/update : fixe la quantité. 0 supprime l'entrée.
func (h *CartHandler) Update(c *gin.Context) {
	userID := c.GetString("user_id")

	var input cartInput
	if err := c.ShouldBindJSON(&input); err != nil || input.ItemID == "" || input.Size == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Données invalides"})
		return
	}
	if input.Quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Quantité invalide"})
		return
	}

	h.Ledger.SetQuantity(c.Request.Context(), userID, input.ItemID, input.Size, input.Quantity)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cart Updated", "degraded": h.Ledger.Degraded(userID)})
}

// Remove — POST /cart/remove : supprime l'entrée (itemId, size).
func (h *CartHandler) Remove(c *gin.Context) {
	userID := c.GetString("user_id")

	var input cartInput
	if err := c.ShouldBindJSON(&input); err != nil || input.ItemID == "" || input.Size == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Données invalides"})
		return
	}

	h.Ledger.SetQuantity(c.Request.Context(), userID, input.ItemID, input.Size, 0)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Removed From Cart"})
}

// Clear — POST /cart/clear
func (h *CartHandler) Clear(c *gin.Context) {
	userID := c.GetString("user_id")
	h.Ledger.Clear(c.Request.Context(), userID)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cart Cleared"})
}

// Get — GET /cart : instantané + projections sur les prix courants du catalogue
func (h *CartHandler) Get(c *gin.Context) {
	userID := c.GetString("user_id")
	snapshot := h.Ledger.Snapshot(c.Request.Context(), userID)

	products, err := h.Catalog.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur lecture catalogue"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"cartData": snapshot,
		"count":    cart.Count(snapshot),
		"amount":   cart.Amount(snapshot, products),
		"degraded": h.Ledger.Degraded(userID),
	})
}
