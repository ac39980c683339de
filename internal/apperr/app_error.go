package apperr

import (
	"fmt"

	"github.com/tuanvumaihuynh/catalog-service/pkg/zerror"
)

// Predefined domain errors. Messages are part of the external contract
// and mirror what clients display verbatim.
var (
	ErrProductNotFound = zerror.NewNotFound("PRODUCT_NOT_FOUND", "Product not found")
	ErrVariantNotFound = zerror.NewNotFound("VARIANT_NOT_FOUND", "Variant not found")

	ErrProductNameRequired  = zerror.NewBadRequest("PRODUCT_NAME_REQUIRED", "Product name is required")
	ErrVariantsRequired     = zerror.NewBadRequest("VARIANTS_REQUIRED", "At least one variant is required")
	ErrVariantSkuRequired   = zerror.NewBadRequest("VARIANT_SKU_REQUIRED", "Variant SKU is required")
	ErrSkuRequired          = zerror.NewBadRequest("SKU_REQUIRED", "SKU is required")
	ErrNegativePrice        = zerror.NewBadRequest("NEGATIVE_PRICE", "Price must be >= 0")
	ErrNegativeInventory    = zerror.NewBadRequest("NEGATIVE_INVENTORY", "Inventory count must be >= 0")
	ErrLastVariant          = zerror.NewBadRequest("LAST_VARIANT", "Cannot delete the last variant of a product")
	ErrCategoryNameRequired = zerror.NewBadRequest("CATEGORY_NAME_REQUIRED", "Category name is required")
	ErrCategoryExists       = zerror.NewBadRequest("CATEGORY_EXISTS", "Category already exists")

	ValidationErr = zerror.NewValidationFailed("VALIDATION_FAILED", "validation error")
)

// NewDuplicateSku reports a SKU collision, naming the offending SKU.
func NewDuplicateSku(sku string) zerror.ZError {
	return zerror.NewBadRequest("SKU_EXISTS", fmt.Sprintf("SKU '%s' already exists", sku))
}
