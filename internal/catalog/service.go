package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jwpark-dev/moru-commerce/internal/pricing"
	"github.com/jwpark-dev/moru-commerce/pkg/config"
	"github.com/jwpark-dev/moru-commerce/pkg/db/models"
	"github.com/jwpark-dev/moru-commerce/pkg/enums"
	pkgerrors "github.com/jwpark-dev/moru-commerce/pkg/errors"
	"github.com/jwpark-dev/moru-commerce/pkg/metrics"
)

// Service exposes validation and quoting over the live catalog.
type Service interface {
	ValidateProducts(ctx context.Context, items []pricing.Item) (*pricing.BatchValidationResult, error)
	QuoteProducts(ctx context.Context, items []pricing.Item) (*QuoteResult, error)
}

// QuoteResult is the quote plus the rejected lines and enriched product
// detail for display.
type QuoteResult struct {
	SubtotalMerchandise decimal.Decimal
	SubtotalShippingFee decimal.Decimal
	InvalidItems        []pricing.InvalidItem
	List                []SellerQuote
}

// SellerQuote is one seller's group with product detail attached to each line.
type SellerQuote struct {
	SellerID              int64
	SellerName            string
	FreeShippingThreshold *decimal.Decimal
	MerchandiseSubtotal   decimal.Decimal
	ShippingFeeSubtotal   decimal.Decimal
	FreeApplied           bool
	Items                 []QuotedItem
}

// QuotedItem is a priced line with its catalog detail. Product is nil when
// the row vanished between pricing and enrichment.
type QuotedItem struct {
	pricing.PricedItem
	Product *ProductDetail
}

// ProductDetail is the display payload attached to quoted lines.
type ProductDetail struct {
	ID           int64
	Status       enums.ProductStatus
	NameKr       string
	NameEn       string
	ThumbnailURL string
	Price        decimal.Decimal
	ShippingFee  decimal.Decimal
	Options      []OptionDetail
}

// OptionDetail is one option of a product with its values.
type OptionDetail struct {
	ID         int64
	IsRequired bool
	NameKr     string
	NameEn     string
	Values     []OptionValueDetail
}

// OptionValueDetail is one selectable value with its surcharge.
type OptionValueDetail struct {
	ID          int64
	ValueKr     string
	ValueEn     string
	ExtraCharge decimal.Decimal
}

type catalogReader interface {
	LoadSnapshots(ctx context.Context, productIDs []int64) (map[int64]pricing.ProductSnapshot, error)
	LoadPricingData(ctx context.Context, productIDs, optionValueIDs []int64) (*pricing.PricingData, error)
	LoadProducts(ctx context.Context, productIDs []int64) (map[int64]models.Product, error)
}

type service struct {
	repo    catalogReader
	cfg     config.PricingConfig
	metrics *metrics.QuoteMetrics
	nowFn   func() time.Time
}

// NewService constructs the catalog pricing service.
func NewService(repo *Repository, cfg config.PricingConfig, quoteMetrics *metrics.QuoteMetrics) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{
		repo:    repo,
		cfg:     cfg,
		metrics: quoteMetrics,
		nowFn:   time.Now,
	}, nil
}

// ValidateProducts checks the requested lines against current catalog state
// and partitions them into valid and invalid.
func (s *service) ValidateProducts(ctx context.Context, items []pricing.Item) (*pricing.BatchValidationResult, error) {
	started := s.nowFn()

	snapshots, err := s.repo.LoadSnapshots(ctx, productIDs(items))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load product snapshots")
	}

	result := pricing.ValidateItems(items, snapshots, s.policyOverrides())
	s.recordValidation(started, &result)
	return &result, nil
}

// QuoteProducts validates, prices, and groups the requested lines, then
// attaches product detail. Invalid lines ride along untouched.
func (s *service) QuoteProducts(ctx context.Context, items []pricing.Item) (*QuoteResult, error) {
	started := s.nowFn()

	validated, err := s.ValidateProducts(ctx, items)
	if err != nil {
		return nil, err
	}

	if len(validated.ValidItems) == 0 {
		s.observeQuote(started)
		return &QuoteResult{
			SubtotalMerchandise: decimal.Zero,
			SubtotalShippingFee: decimal.Zero,
			InvalidItems:        validated.InvalidItems,
			List:                []SellerQuote{},
		}, nil
	}

	data, err := s.repo.LoadPricingData(ctx, productIDs(validated.ValidItems), optionValueIDs(validated.ValidItems))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load pricing data")
	}

	quote := pricing.BuildQuote(validated.ValidItems, pricing.Context{
		Now:      s.nowFn(),
		Currency: enums.CurrencyKRW,
	}, *data, nil)

	enriched, err := s.enrich(ctx, quote.List)
	if err != nil {
		return nil, err
	}

	s.observeQuote(started)
	return &QuoteResult{
		SubtotalMerchandise: quote.SubtotalMerchandise,
		SubtotalShippingFee: quote.SubtotalShippingFee,
		InvalidItems:        validated.InvalidItems,
		List:                enriched,
	}, nil
}

// enrich attaches catalog detail to every priced line. The quote itself is
// already final; this pass only decorates it.
func (s *service) enrich(ctx context.Context, list []pricing.SellerSubtotal) ([]SellerQuote, error) {
	seen := make(map[int64]struct{})
	var ids []int64
	for _, group := range list {
		for _, item := range group.Items {
			if _, ok := seen[item.ProductID]; ok {
				continue
			}
			seen[item.ProductID] = struct{}{}
			ids = append(ids, item.ProductID)
		}
	}

	products, err := s.repo.LoadProducts(ctx, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load product detail")
	}

	quotes := make([]SellerQuote, 0, len(list))
	for _, group := range list {
		quoted := SellerQuote{
			SellerID:              group.SellerID,
			SellerName:            group.SellerName,
			FreeShippingThreshold: group.FreeShippingThreshold,
			MerchandiseSubtotal:   group.MerchandiseSubtotal,
			ShippingFeeSubtotal:   group.ShippingFeeSubtotal,
			FreeApplied:           group.FreeApplied,
			Items:                 make([]QuotedItem, 0, len(group.Items)),
		}
		for _, item := range group.Items {
			quotedItem := QuotedItem{PricedItem: item}
			if product, ok := products[item.ProductID]; ok {
				quotedItem.Product = detailFromModel(product)
			}
			quoted.Items = append(quoted.Items, quotedItem)
		}
		quotes = append(quotes, quoted)
	}
	return quotes, nil
}

func (s *service) policyOverrides() *pricing.ValidationPolicyOverrides {
	overrides := &pricing.ValidationPolicyOverrides{}
	if s.cfg.QtyMin != 0 || s.cfg.QtyMax != 0 {
		quantity := &pricing.QuantityPolicyOverride{}
		if s.cfg.QtyMin != 0 {
			min := s.cfg.QtyMin
			quantity.Min = &min
		}
		if s.cfg.QtyMax != 0 {
			max := s.cfg.QtyMax
			quantity.Max = &max
		}
		overrides.Quantity = quantity
	}
	one := s.cfg.OneValuePerOption
	overrides.Option = &pricing.OptionPolicyOverride{OneValuePerOption: &one}
	return overrides
}

func (s *service) recordValidation(started time.Time, result *pricing.BatchValidationResult) {
	if s.metrics == nil {
		return
	}
	s.metrics.ObserveDuration("validate", s.nowFn().Sub(started))
	s.metrics.AddValidItems(len(result.ValidItems))
	s.metrics.AddInvalidItems(len(result.InvalidItems))
	for _, invalid := range result.InvalidItems {
		for _, reason := range invalid.Reasons {
			s.metrics.IncRejection(reason.String())
		}
	}
}

func (s *service) observeQuote(started time.Time) {
	if s.metrics == nil {
		return
	}
	s.metrics.ObserveDuration("quote", s.nowFn().Sub(started))
}

func productIDs(items []pricing.Item) []int64 {
	seen := make(map[int64]struct{}, len(items))
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}
	return ids
}

func optionValueIDs(items []pricing.Item) []int64 {
	seen := make(map[int64]struct{})
	var ids []int64
	for _, item := range items {
		for _, id := range item.OptionValueIDList {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}

func detailFromModel(product models.Product) *ProductDetail {
	detail := &ProductDetail{
		ID:           product.ID,
		Status:       product.Status,
		NameKr:       product.NameKr,
		NameEn:       product.NameEn,
		ThumbnailURL: product.ThumbnailURL,
		Price:        product.Price,
		ShippingFee:  product.ShippingFee,
		Options:      make([]OptionDetail, 0, len(product.Options)),
	}
	for _, option := range product.Options {
		values := make([]OptionValueDetail, 0, len(option.Values))
		for _, value := range option.Values {
			values = append(values, OptionValueDetail{
				ID:          value.ID,
				ValueKr:     value.ValueKr,
				ValueEn:     value.ValueEn,
				ExtraCharge: value.ExtraCharge,
			})
		}
		detail.Options = append(detail.Options, OptionDetail{
			ID:         option.ID,
			IsRequired: option.IsRequired,
			NameKr:     option.NameKr,
			NameEn:     option.NameEn,
			Values:     values,
		})
	}
	return detail
}
