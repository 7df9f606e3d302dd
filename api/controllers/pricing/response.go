package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/jwpark-dev/moru-commerce/internal/catalog"
	enginepricing "github.com/jwpark-dev/moru-commerce/internal/pricing"
)

// Amounts in responses are whole KRW; the engine rounds before this layer
// ever sees a value.

type ItemDTO struct {
	ProductID         int64   `json:"productId"`
	Qty               int     `json:"qty"`
	OptionValueIDList []int64 `json:"optionValueIdList"`
}

type InvalidItemDTO struct {
	ItemDTO
	Reasons []string `json:"reasons"`
}

type ValidateProductsResponse struct {
	ValidItems   []ItemDTO        `json:"validItems"`
	InvalidItems []InvalidItemDTO `json:"invalidItems"`
}

type OptionValueDTO struct {
	ID          int64  `json:"id"`
	ValueKr     string `json:"valueKr"`
	ValueEn     string `json:"valueEn"`
	ExtraCharge int64  `json:"extraCharge"`
}

type OptionDTO struct {
	ID         int64            `json:"id"`
	IsRequired bool             `json:"isRequired"`
	NameKr     string           `json:"nameKr"`
	NameEn     string           `json:"nameEn"`
	Values     []OptionValueDTO `json:"values"`
}

type ProductDTO struct {
	ID           int64       `json:"id"`
	Status       string      `json:"status"`
	NameKr       string      `json:"nameKr"`
	NameEn       string      `json:"nameEn"`
	ThumbnailURL string      `json:"thumbnailUrl"`
	Price        int64       `json:"price"`
	ShippingFee  int64       `json:"shippingFee"`
	Options      []OptionDTO `json:"options"`
}

type QuotedItemDTO struct {
	ProductID         int64       `json:"productId"`
	Qty               int         `json:"qty"`
	OptionValueIDList []int64     `json:"optionValueIdList"`
	UnitPrice         int64       `json:"unitPrice"`
	TotalPrice        int64       `json:"totalPrice"`
	ShippingFee       int64       `json:"shippingFee"`
	Purchasable       bool        `json:"purchasable"`
	Messages          []string    `json:"messages"`
	Product           *ProductDTO `json:"product,omitempty"`
}

type SellerQuoteDTO struct {
	SellerID              int64           `json:"sellerId"`
	SellerName            string          `json:"sellerName"`
	FreeShippingThreshold *int64          `json:"freeShippingThreshold"`
	SubtotalMerchandise   int64           `json:"subtotalMerchandise"`
	SubtotalShippingFee   int64           `json:"subtotalShippingFee"`
	FreeApplied           bool            `json:"freeApplied"`
	Items                 []QuotedItemDTO `json:"items"`
}

type QuoteProductsResponse struct {
	SubtotalMerchandise int64            `json:"subtotalMerchandise"`
	SubtotalShippingFee int64            `json:"subtotalShippingFee"`
	InvalidItems        []InvalidItemDTO `json:"invalidItems"`
	List                []SellerQuoteDTO `json:"list"`
}

func newValidateResponse(result *enginepricing.BatchValidationResult) ValidateProductsResponse {
	valid := make([]ItemDTO, 0, len(result.ValidItems))
	for _, item := range result.ValidItems {
		valid = append(valid, newItemDTO(item))
	}
	return ValidateProductsResponse{
		ValidItems:   valid,
		InvalidItems: newInvalidItemDTOs(result.InvalidItems),
	}
}

func newQuoteResponse(result *catalog.QuoteResult) QuoteProductsResponse {
	list := make([]SellerQuoteDTO, 0, len(result.List))
	for _, group := range result.List {
		items := make([]QuotedItemDTO, 0, len(group.Items))
		for _, item := range group.Items {
			items = append(items, QuotedItemDTO{
				ProductID:         item.ProductID,
				Qty:               item.Qty,
				OptionValueIDList: item.OptionValueIDList,
				UnitPrice:         item.UnitPrice.IntPart(),
				TotalPrice:        item.TotalPrice.IntPart(),
				ShippingFee:       item.ShippingFee.IntPart(),
				Purchasable:       item.Purchasable,
				Messages:          item.Messages,
				Product:           newProductDTO(item.Product),
			})
		}
		list = append(list, SellerQuoteDTO{
			SellerID:              group.SellerID,
			SellerName:            group.SellerName,
			FreeShippingThreshold: decimalPtrToInt64(group.FreeShippingThreshold),
			SubtotalMerchandise:   group.MerchandiseSubtotal.IntPart(),
			SubtotalShippingFee:   group.ShippingFeeSubtotal.IntPart(),
			FreeApplied:           group.FreeApplied,
			Items:                 items,
		})
	}
	return QuoteProductsResponse{
		SubtotalMerchandise: result.SubtotalMerchandise.IntPart(),
		SubtotalShippingFee: result.SubtotalShippingFee.IntPart(),
		InvalidItems:        newInvalidItemDTOs(result.InvalidItems),
		List:                list,
	}
}

func newItemDTO(item enginepricing.Item) ItemDTO {
	return ItemDTO{
		ProductID:         item.ProductID,
		Qty:               item.Qty,
		OptionValueIDList: item.OptionValueIDList,
	}
}

func newInvalidItemDTOs(invalid []enginepricing.InvalidItem) []InvalidItemDTO {
	out := make([]InvalidItemDTO, 0, len(invalid))
	for _, item := range invalid {
		reasons := make([]string, 0, len(item.Reasons))
		for _, reason := range item.Reasons {
			reasons = append(reasons, reason.String())
		}
		out = append(out, InvalidItemDTO{
			ItemDTO: newItemDTO(item.Item),
			Reasons: reasons,
		})
	}
	return out
}

func newProductDTO(detail *catalog.ProductDetail) *ProductDTO {
	if detail == nil {
		return nil
	}
	options := make([]OptionDTO, 0, len(detail.Options))
	for _, option := range detail.Options {
		values := make([]OptionValueDTO, 0, len(option.Values))
		for _, value := range option.Values {
			values = append(values, OptionValueDTO{
				ID:          value.ID,
				ValueKr:     value.ValueKr,
				ValueEn:     value.ValueEn,
				ExtraCharge: value.ExtraCharge.IntPart(),
			})
		}
		options = append(options, OptionDTO{
			ID:         option.ID,
			IsRequired: option.IsRequired,
			NameKr:     option.NameKr,
			NameEn:     option.NameEn,
			Values:     values,
		})
	}
	return &ProductDTO{
		ID:           detail.ID,
		Status:       detail.Status.String(),
		NameKr:       detail.NameKr,
		NameEn:       detail.NameEn,
		ThumbnailURL: detail.ThumbnailURL,
		Price:        detail.Price.IntPart(),
		ShippingFee:  detail.ShippingFee.IntPart(),
		Options:      options,
	}
}

func decimalPtrToInt64(value *decimal.Decimal) *int64 {
	if value == nil {
		return nil
	}
	v := value.IntPart()
	return &v
}
