package order

import (
	"bytes"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"fashion_store_back_end/internal/apperrors"
	"fashion_store_back_end/internal/cart"
	"fashion_store_back_end/internal/catalog"
	"fashion_store_back_end/internal/models"
	"fashion_store_back_end/internal/order"
	"fashion_store_back_end/internal/payment"
	"fashion_store_back_end/internal/utils"
)

// Handler orchestre le flux de commande : assemblage depuis l'instantané du
// panier, passage par la passerelle choisie, vérification, suivi admin.
type Handler struct {
	Catalog     *catalog.Merged
	Ledger      *cart.Ledger
	Store       order.Store
	Verifier    *order.Verifier
	Machine     *order.StateMachine
	COD         payment.Gateway
	Hosted      payment.Gateway
	Widget      payment.Gateway
	DeliveryFee float64
}

type placeInput struct {
	Address models.Address `json:"address"`
}

// PlaceCOD — POST /orders : paiement à la livraison, placement immédiat,
// aucun appel passerelle.
func (h *Handler) PlaceCOD(c *gin.Context) {
	userID := c.GetString("user_id")

	var input placeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Données invalides"})
		return
	}

	o, ok := h.assemble(c, userID, input.Address, models.PaymentCOD)
	if !ok {
		return
	}

	if _, err := h.COD.Initiate(c.Request.Context(), o); err != nil {
		respondError(c, err)
		return
	}

	// Chemin immédiat : Created → Placed sans passer par le Verifier.
	if err := h.Store.UpdateStatus(c.Request.Context(), o.ID.Hex(), order.StatusPlaced); err != nil {
		respondError(c, err)
		return
	}
	h.Ledger.Clear(c.Request.Context(), userID)

	log.Printf("✅ Commande COD %s placée pour %s", o.ID.Hex(), userID)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order Placed"})
}

// StartHosted — POST /orders/hosted : crée la session de checkout hébergé et
// rend l'URL de redirection. La commande reste en Created jusqu'au retour client.
func (h *Handler) StartHosted(c *gin.Context) {
	userID := c.GetString("user_id")

	var input placeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Données invalides"})
		return
	}

	o, ok := h.assemble(c, userID, input.Address, models.PaymentHosted)
	if !ok {
		return
	}

	init, err := h.Hosted.Initiate(c.Request.Context(), o)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.Store.SetGatewayRef(c.Request.Context(), o.ID.Hex(), init.GatewayOrderID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "redirectUrl": init.RedirectURL})
}

type hostedVerifyInput struct {
	OrderID string   `json:"orderId"`
	Success flexBool `json:"success"`
}

// VerifyHosted — POST /orders/hosted/verify : confirmation rapportée par le
// client au retour de la redirection.
func (h *Handler) VerifyHosted(c *gin.Context) {
	userID := c.GetString("user_id")

	var input hostedVerifyInput
	if err := c.ShouldBindJSON(&input); err != nil || input.OrderID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Données invalides"})
		return
	}

	status, err := h.Verifier.Verify(c.Request.Context(), input.OrderID, userID,
		order.Assertion{Success: bool(input.Success)})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "status": status})
}

// StartWidget — POST /orders/widget : crée la commande passerelle et rend son
// id au widget client.
func (h *Handler) StartWidget(c *gin.Context) {
	userID := c.GetString("user_id")

	var input placeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Données invalides"})
		return
	}

	o, ok := h.assemble(c, userID, input.Address, models.PaymentWidget)
	if !ok {
		return
	}

	init, err := h.Widget.Initiate(c.Request.Context(), o)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.Store.SetGatewayRef(c.Request.Context(), o.ID.Hex(), init.GatewayOrderID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "gatewayOrderId": init.GatewayOrderID})
}

type widgetVerifyInput struct {
	GatewayOrderID string `json:"gatewayOrderId"`
}

// VerifyWidget — POST /orders/widget/verify : toute assertion client est
// ignorée, le Verifier ré-interroge la passerelle.
func (h *Handler) VerifyWidget(c *gin.Context) {
	userID := c.GetString("user_id")

	var input widgetVerifyInput
	if err := c.ShouldBindJSON(&input); err != nil || input.GatewayOrderID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Données invalides"})
		return
	}

	o, err := h.Store.FindByGatewayRef(c.Request.Context(), input.GatewayOrderID)
	if err != nil {
		respondError(c, err)
		return
	}

	status, err := h.Verifier.Verify(c.Request.Context(), o.ID.Hex(), userID,
		order.Assertion{GatewayOrderID: input.GatewayOrderID})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "status": status})
}

// List — POST /orders/list : l'admin voit tout, l'utilisateur ses commandes.
func (h *Handler) List(c *gin.Context) {
	var (
		orders []models.Order
		err    error
	)

	if role, _ := c.Get("role"); role == "admin" {
		orders, err = h.Store.ListAll(c.Request.Context())
	} else {
		orders, err = h.Store.ListByUser(c.Request.Context(), c.GetString("user_id"))
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
}

type statusInput struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

// SetStatus — POST /orders/status (admin) : pose un état d'exécution et
// notifie le client par email (async, best-effort).
func (h *Handler) SetStatus(c *gin.Context) {
	var input statusInput
	if err := c.ShouldBindJSON(&input); err != nil || input.OrderID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Données invalides"})
		return
	}

	if err := h.Machine.SetStatus(c.Request.Context(), input.OrderID, input.Status); err != nil {
		respondError(c, err)
		return
	}

	if o, err := h.Store.FindByID(c.Request.Context(), input.OrderID); err == nil {
		go func(o models.Order, status string) {
			if err := utils.SendOrderStatusEmail(o, status); err != nil {
				log.Printf("⚠️ Erreur envoi email notification: %v", err)
			}
		}(*o, input.Status)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Status Updated"})
}

// assemble construit le brouillon depuis l'instantané du panier et le persiste
// en Created. Répond lui-même en cas d'échec.
func (h *Handler) assemble(c *gin.Context, userID string, addr models.Address, method string) (*models.Order, bool) {
	snapshot := h.Ledger.Snapshot(c.Request.Context(), userID)

	products, err := h.Catalog.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return nil, false
	}

	o, err := order.Assemble(snapshot, products, userID, addr, method, h.DeliveryFee)
	if err != nil {
		respondError(c, err)
		return nil, false
	}

	if err := h.Store.Insert(c.Request.Context(), o); err != nil {
		respondError(c, err)
		return nil, false
	}
	return o, true
}

func respondError(c *gin.Context, err error) {
	var (
		ve *apperrors.ValidationError
		nf *apperrors.NotFoundError
		ce *apperrors.ConflictError
		ge *apperrors.GatewayError
	)
	switch {
	case errors.Is(err, apperrors.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Panier vide"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Commande non autorisée"})
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": ve.Error()})
	case errors.As(err, &nf):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": nf.Error()})
	case errors.As(err, &ce):
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": ce.Error()})
	case errors.As(err, &ge):
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": "Paiement indisponible, veuillez réessayer"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur interne"})
	}
}

// flexBool : le front renvoie le paramètre d'URL tel quel, donc "true"/"false"
// en chaîne aussi bien qu'un booléen JSON.
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	s := bytes.Trim(data, `"`)
	*b = flexBool(string(s) == "true")
	return nil
}
