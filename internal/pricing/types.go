// Package pricing turns requested line items into a priced, seller-grouped
// quote. Everything in here is pure computation over caller-supplied
// snapshots; the package performs no I/O and keeps no state between calls.
package pricing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jwpark-dev/moru-commerce/pkg/enums"
)

// Item is one requested line: a product, a count, and the selected option
// values. Duplicated option value ids are a validation error, not silently
// collapsed.
type Item struct {
	ProductID         int64
	Qty               int
	OptionValueIDList []int64
}

// OptionValueSnapshot is a selectable value of a product option.
type OptionValueSnapshot struct {
	ID int64
}

// OptionSnapshot is one option of a product with its selectable values.
type OptionSnapshot struct {
	ID         int64
	IsRequired bool
	Values     []OptionValueSnapshot
}

// ProductSnapshot is the caller's point-in-time read of a product. The engine
// treats it as ground truth for one invocation and never caches it.
type ProductSnapshot struct {
	ID        int64
	Status    enums.ProductStatus
	DeletedAt *time.Time
	Options   []OptionSnapshot
}

// ValidationResult reports a single validator's verdict. Reasons is empty
// when Valid is true.
type ValidationResult struct {
	Valid   bool
	Reasons []enums.ValidationIssue
}

// InvalidItem is a rejected item together with every reason it was rejected.
type InvalidItem struct {
	Item
	Reasons []enums.ValidationIssue
}

// BatchValidationResult partitions the input batch. Every input item appears
// exactly once, in exactly one of the two lists.
type BatchValidationResult struct {
	ValidItems   []Item
	InvalidItems []InvalidItem
}

// SellerInfo identifies the seller owning a product. A nil
// FreeShippingThreshold means the seller never waives shipping.
type SellerInfo struct {
	ID                    int64
	Name                  string
	FreeShippingThreshold *decimal.Decimal
}

// PricingData bundles the lookup maps the caller resolved from storage.
// Missing entries price as zero.
type PricingData struct {
	// BasePrice maps productID -> unit base price.
	BasePrice map[int64]decimal.Decimal
	// ExtraCharge maps optionValueID -> surcharge added to the unit price.
	ExtraCharge map[int64]decimal.Decimal
	// ShippingFee maps productID -> fee to ship that item alone.
	ShippingFee map[int64]decimal.Decimal
	// SellerByProduct maps productID -> owning seller.
	SellerByProduct map[int64]SellerInfo
}

// Discount is a reserved extension point; no rule emits one yet.
type Discount struct {
	Key    string
	Amount decimal.Decimal
}

// PricedItem is one line after the rule pipeline. Purchasable turns false on
// a configured negative base price; the item stays in the output so callers
// can see it, but it must not be charged.
type PricedItem struct {
	ProductID         int64
	Qty               int
	OptionValueIDList []int64
	UnitPrice         decimal.Decimal
	TotalPrice        decimal.Decimal
	ShippingFee       decimal.Decimal
	Purchasable       bool
	Messages          []string
	Discounts         []Discount
}

// SellerSubtotal aggregates one seller's priced items.
type SellerSubtotal struct {
	SellerID              int64
	SellerName            string
	FreeShippingThreshold *decimal.Decimal
	MerchandiseSubtotal   decimal.Decimal
	ShippingFeeSubtotal   decimal.Decimal
	FreeApplied           bool
	Items                 []PricedItem
}

// SellerSubtotalResult is the full quote: per-seller groups plus grand
// totals, which are the sums of the per-seller fields.
type SellerSubtotalResult struct {
	SubtotalMerchandise decimal.Decimal
	SubtotalShippingFee decimal.Decimal
	List                []SellerSubtotal
}

// Context carries per-call ambient values for the rule pipeline.
type Context struct {
	Now      time.Time
	Currency enums.Currency
}
