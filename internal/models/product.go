package models

type Product struct {
	ID          string   `json:"_id" bson:"_id,omitempty"`
	Name        string   `json:"name" bson:"name"`
	Description string   `json:"description" bson:"description"`
	Price       float64  `json:"price" bson:"price"`
	Image       []string `json:"image" bson:"image"`
	Category    string   `json:"category" bson:"category"`
	SubCategory string   `json:"subCategory" bson:"subCategory"`
	Sizes       []string `json:"sizes" bson:"sizes"`
	Date        int64    `json:"date" bson:"date"`
	Bestseller  bool     `json:"bestseller" bson:"bestseller"`
	Static      bool     `json:"isStatic" bson:"isStatic"`
}
