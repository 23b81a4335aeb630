package valueobject

import (
	"fmt"
	"strings"

	"github.com/marginiq/marginiq-api/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// DiscountRequestItem is an immutable line item on a discount request: a
// product snapshot, a quantity, and a base/final unit price pair derived from
// the discount percentage. The final price is always recomputed from the base
// price and percentage, never set directly.
type DiscountRequestItem struct {
	productID      string
	productName    string
	quantity       int
	unitBasePrice  Money
	discountPct    decimal.Decimal
	unitFinalPrice Money
}

// NewDiscountRequestItem validates and builds a line item.
// ProductName is a denormalized snapshot so historical requests keep their
// wording when the catalog changes.
func NewDiscountRequestItem(productID, productName string, quantity int, unitBasePrice Money, discountPct decimal.Decimal) (DiscountRequestItem, error) {
	if strings.TrimSpace(productName) == "" {
		return DiscountRequestItem{}, fmt.Errorf("%w: product name is required", domain.ErrInvalidInput)
	}
	if quantity <= 0 {
		return DiscountRequestItem{}, fmt.Errorf("%w: quantity must be positive, got %d", domain.ErrInvalidInput, quantity)
	}
	if discountPct.IsNegative() || discountPct.GreaterThan(hundred) {
		return DiscountRequestItem{}, fmt.Errorf("%w: discount percentage must be between 0 and 100, got %s", domain.ErrInvalidInput, discountPct)
	}
	if unitBasePrice.Currency() == "" {
		return DiscountRequestItem{}, fmt.Errorf("%w: unit base price is required", domain.ErrInvalidInput)
	}
	final, err := deriveFinalPrice(unitBasePrice, discountPct)
	if err != nil {
		return DiscountRequestItem{}, err
	}
	return DiscountRequestItem{
		productID:      productID,
		productName:    productName,
		quantity:       quantity,
		unitBasePrice:  unitBasePrice,
		discountPct:    discountPct,
		unitFinalPrice: final,
	}, nil
}

// RehydrateDiscountRequestItem rebuilds an item from trusted storage. The
// final price is still derived, so a stale stored value can never drift from
// the base price and percentage.
func RehydrateDiscountRequestItem(productID, productName string, quantity int, unitBasePrice Money, discountPct decimal.Decimal) DiscountRequestItem {
	final, _ := deriveFinalPrice(unitBasePrice, discountPct)
	return DiscountRequestItem{
		productID:      productID,
		productName:    productName,
		quantity:       quantity,
		unitBasePrice:  unitBasePrice,
		discountPct:    discountPct,
		unitFinalPrice: final,
	}
}

func deriveFinalPrice(base Money, pct decimal.Decimal) (Money, error) {
	factor := decimal.NewFromInt(1).Sub(pct.Div(hundred))
	return base.Mul(factor)
}

// ProductID returns the product identifier.
func (i DiscountRequestItem) ProductID() string { return i.productID }

// ProductName returns the denormalized product name snapshot.
func (i DiscountRequestItem) ProductName() string { return i.productName }

// Quantity returns the item quantity.
func (i DiscountRequestItem) Quantity() int { return i.quantity }

// UnitBasePrice returns the undiscounted unit price.
func (i DiscountRequestItem) UnitBasePrice() Money { return i.unitBasePrice }

// DiscountPercentage returns the discount percentage in [0,100].
func (i DiscountRequestItem) DiscountPercentage() decimal.Decimal { return i.discountPct }

// UnitFinalPrice returns the derived discounted unit price.
func (i DiscountRequestItem) UnitFinalPrice() Money { return i.unitFinalPrice }

// TotalBasePrice returns unit base price × quantity.
func (i DiscountRequestItem) TotalBasePrice() Money {
	total, _ := i.unitBasePrice.Mul(decimal.NewFromInt(int64(i.quantity)))
	return total
}

// TotalFinalPrice returns unit final price × quantity.
func (i DiscountRequestItem) TotalFinalPrice() Money {
	total, _ := i.unitFinalPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
	return total
}

// TotalDiscountAmount returns total base minus total final.
func (i DiscountRequestItem) TotalDiscountAmount() Money {
	diff, _ := i.TotalBasePrice().Sub(i.TotalFinalPrice())
	return diff
}

// WithDiscountPercentage returns a copy with the given percentage and a
// recomputed final price, re-running the construction validation.
func (i DiscountRequestItem) WithDiscountPercentage(pct decimal.Decimal) (DiscountRequestItem, error) {
	return NewDiscountRequestItem(i.productID, i.productName, i.quantity, i.unitBasePrice, pct)
}

// WithQuantity returns a copy with the given quantity, re-running the
// construction validation.
func (i DiscountRequestItem) WithQuantity(quantity int) (DiscountRequestItem, error) {
	return NewDiscountRequestItem(i.productID, i.productName, quantity, i.unitBasePrice, i.discountPct)
}

// Equal compares product id, quantity and discount percentage. The price pair
// is deliberately excluded: the final price is fully determined by the other
// fields, so no identity information is lost.
func (i DiscountRequestItem) Equal(other DiscountRequestItem) bool {
	return i.productID == other.productID &&
		i.quantity == other.quantity &&
		i.discountPct.Equal(other.discountPct)
}
