package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Méthodes de paiement supportées
const (
	PaymentCOD    = "cod"
	PaymentHosted = "hosted"
	PaymentWidget = "widget"
)

type OrderItem struct {
	ProductID string  `json:"productId" bson:"productId"`
	Name      string  `json:"name" bson:"name"`
	Price     float64 `json:"price" bson:"price"`
	Size      string  `json:"size" bson:"size"`
	Quantity  int     `json:"quantity" bson:"quantity"`
	Image     string  `json:"image" bson:"image"`
}

// Order : les items sont un instantané pris à l'assemblage, jamais une
// référence vive vers le catalogue. Amount est figé au même moment.
type Order struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID        string             `json:"userId" bson:"userId"`
	Items         []OrderItem        `json:"items" bson:"items"`
	Address       Address            `json:"address" bson:"address"`
	Amount        float64            `json:"amount" bson:"amount"`
	PaymentMethod string             `json:"paymentMethod" bson:"paymentMethod"`
	Payment       bool               `json:"payment" bson:"payment"`
	Status        string             `json:"status" bson:"status"`
	GatewayRef    string             `json:"gatewayRef,omitempty" bson:"gatewayRef,omitempty"`
	CreatedAt     time.Time          `json:"createdAt" bson:"created_at"`
}
