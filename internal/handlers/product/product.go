package product

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fashion_store_back_end/internal/apperrors"
	"fashion_store_back_end/internal/catalog"
	"fashion_store_back_end/internal/models"
)

type Handler struct {
	Catalog *catalog.Merged
}

func NewHandler(cat *catalog.Merged) *Handler {
	return &Handler{Catalog: cat}
}

// List — GET /products : vue fusionnée, recalculée à chaque lecture
func (h *Handler) List(c *gin.Context) {
	products, err := h.Catalog.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
}

// Single — GET /products/:id : statique d'abord, dynamique ensuite
func (h *Handler) Single(c *gin.Context) {
	p, err := h.Catalog.Find(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "product": p})
}

// Create — POST /products (admin)
func (h *Handler) Create(c *gin.Context) {
	var p models.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Données invalides"})
		return
	}

	if err := h.Catalog.Insert(c.Request.Context(), &p); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product Added", "product": p})
}

// Update — PUT /products/:id (admin). Id statique → 409.
func (h *Handler) Update(c *gin.Context) {
	var p models.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Données invalides"})
		return
	}

	if err := h.Catalog.Update(c.Request.Context(), c.Param("id"), p); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product Updated"})
}

// Delete — DELETE /products/:id (admin). Id statique → 409.
func (h *Handler) Delete(c *gin.Context) {
	if err := h.Catalog.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product Removed"})
}

func respondError(c *gin.Context, err error) {
	var (
		ve *apperrors.ValidationError
		nf *apperrors.NotFoundError
		ce *apperrors.ConflictError
	)
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": ve.Error()})
	case errors.As(err, &nf):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": nf.Error()})
	case errors.As(err, &ce):
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": ce.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur interne"})
	}
}
