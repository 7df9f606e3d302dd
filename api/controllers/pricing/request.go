package pricing

import (
	enginepricing "github.com/jwpark-dev/moru-commerce/internal/pricing"
)

// PricingItemRequest is one requested line. Qty bounds are checked by the
// engine so an out-of-range count comes back as a rejection reason, not a
// malformed request.
type PricingItemRequest struct {
	ProductID         int64   `json:"productId" validate:"required,gt=0"`
	Qty               int     `json:"qty"`
	OptionValueIDList []int64 `json:"optionValueIdList"`
}

// ValidateProductsRequest is the payload for the validate endpoint.
type ValidateProductsRequest struct {
	Items []PricingItemRequest `json:"items" validate:"required,min=1,dive"`
}

// QuoteProductsRequest is the payload for the quote endpoint.
type QuoteProductsRequest struct {
	Items []PricingItemRequest `json:"items" validate:"required,min=1,dive"`
}

func toItems(payload []PricingItemRequest) []enginepricing.Item {
	items := make([]enginepricing.Item, 0, len(payload))
	for _, item := range payload {
		items = append(items, enginepricing.Item{
			ProductID:         item.ProductID,
			Qty:               item.Qty,
			OptionValueIDList: item.OptionValueIDList,
		})
	}
	return items
}
