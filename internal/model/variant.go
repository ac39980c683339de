package model

import (
	"time"

	"github.com/google/uuid"
)

// Variant is a purchasable SKU-bearing unit belonging to exactly one
// product. SKUs are unique across all variants, regardless of product.
type Variant struct {
	ID             uuid.UUID `json:"id"`
	ProductID      uuid.UUID `json:"product_id"`
	Sku            string    `json:"sku"`
	Name           string    `json:"name"`
	PriceCents     int64     `json:"price_cents"`
	InventoryCount int       `json:"inventory_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
