package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ProductStatus is the lifecycle state of a product.
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusDraft    ProductStatus = "draft"
	ProductStatusArchived ProductStatus = "archived"
)

// Validate implements the enum validator contract.
func (s ProductStatus) Validate() error {
	switch s {
	case ProductStatusActive, ProductStatusDraft, ProductStatusArchived:
		return nil
	default:
		return fmt.Errorf("invalid product status: %s", s)
	}
}

// Product is a sellable catalog entry. Products are never physically
// deleted; DeletedAt marks them as removed from listings.
type Product struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Description *string       `json:"description"`
	CategoryID  *uuid.UUID    `json:"category_id"`
	Status      ProductStatus `json:"status"`
	DeletedAt   *time.Time    `json:"deleted_at"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// ProductWithCategory is a product joined with its category name.
type ProductWithCategory struct {
	Product
	CategoryName *string `json:"category_name"`
}

// ProductDetail is a product with its full variant set, ordered by
// variant creation time ascending.
type ProductDetail struct {
	ProductWithCategory
	Variants []Variant `json:"variants"`
}

// ProductSummary is a listing row: the product plus aggregates derived
// from its variant set. Min/max prices are nil when the product has no
// variants.
type ProductSummary struct {
	ProductWithCategory
	VariantCount   int64  `json:"variant_count"`
	MinPriceCents  *int64 `json:"min_price_cents"`
	MaxPriceCents  *int64 `json:"max_price_cents"`
	TotalInventory int64  `json:"total_inventory"`
}
