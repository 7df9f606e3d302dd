package catalog

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/jwpark-dev/moru-commerce/internal/pricing"
	"github.com/jwpark-dev/moru-commerce/pkg/db/models"
)

// Repository loads the catalog reads the pricing engine needs. All methods
// are read-only; quotes never write back to the catalog.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// LoadSnapshots returns validation snapshots keyed by product id. Soft
// deleted products are included on purpose so validation can report them;
// deleted options and values are filtered out here.
func (r *Repository) LoadSnapshots(ctx context.Context, productIDs []int64) (map[int64]pricing.ProductSnapshot, error) {
	snapshots := make(map[int64]pricing.ProductSnapshot, len(productIDs))
	if len(productIDs) == 0 {
		return snapshots, nil
	}

	var products []models.Product
	err := r.db.WithContext(ctx).
		Preload("Options", func(tx *gorm.DB) *gorm.DB {
			return tx.Where("deleted_at IS NULL").Order("id ASC")
		}).
		Preload("Options.Values", func(tx *gorm.DB) *gorm.DB {
			return tx.Where("deleted_at IS NULL").Order("id ASC")
		}).
		Where("id IN ?", productIDs).
		Find(&products).Error
	if err != nil {
		return nil, err
	}

	for _, product := range products {
		snapshots[product.ID] = snapshotFromModel(product)
	}
	return snapshots, nil
}

// LoadPricingData resolves the price lookups for the given products and
// selected option values. Missing ids simply stay absent from the maps.
func (r *Repository) LoadPricingData(ctx context.Context, productIDs, optionValueIDs []int64) (*pricing.PricingData, error) {
	data := &pricing.PricingData{
		BasePrice:       make(map[int64]decimal.Decimal, len(productIDs)),
		ExtraCharge:     make(map[int64]decimal.Decimal, len(optionValueIDs)),
		ShippingFee:     make(map[int64]decimal.Decimal, len(productIDs)),
		SellerByProduct: make(map[int64]pricing.SellerInfo, len(productIDs)),
	}
	if len(productIDs) == 0 {
		return data, nil
	}

	var products []models.Product
	err := r.db.WithContext(ctx).
		Preload("Seller").
		Where("id IN ?", productIDs).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	for _, product := range products {
		data.BasePrice[product.ID] = product.Price
		data.ShippingFee[product.ID] = product.ShippingFee
		if product.Seller != nil {
			data.SellerByProduct[product.ID] = pricing.SellerInfo{
				ID:                    product.Seller.ID,
				Name:                  product.Seller.Name,
				FreeShippingThreshold: product.Seller.FreeShippingThreshold,
			}
		}
	}

	if len(optionValueIDs) > 0 {
		var values []models.ProductOptionValue
		err := r.db.WithContext(ctx).
			Where("id IN ? AND deleted_at IS NULL", optionValueIDs).
			Find(&values).Error
		if err != nil {
			return nil, err
		}
		for _, value := range values {
			data.ExtraCharge[value.ID] = value.ExtraCharge
		}
	}

	return data, nil
}

// LoadProducts returns full product rows, keyed by id, for response
// enrichment. Options and values keep their deleted rows filtered.
func (r *Repository) LoadProducts(ctx context.Context, productIDs []int64) (map[int64]models.Product, error) {
	byID := make(map[int64]models.Product, len(productIDs))
	if len(productIDs) == 0 {
		return byID, nil
	}

	var products []models.Product
	err := r.db.WithContext(ctx).
		Preload("Options", func(tx *gorm.DB) *gorm.DB {
			return tx.Where("deleted_at IS NULL").Order("id ASC")
		}).
		Preload("Options.Values", func(tx *gorm.DB) *gorm.DB {
			return tx.Where("deleted_at IS NULL").Order("id ASC")
		}).
		Where("id IN ?", productIDs).
		Find(&products).Error
	if err != nil {
		return nil, err
	}

	for _, product := range products {
		byID[product.ID] = product
	}
	return byID, nil
}

func snapshotFromModel(product models.Product) pricing.ProductSnapshot {
	snapshot := pricing.ProductSnapshot{
		ID:        product.ID,
		Status:    product.Status,
		DeletedAt: product.DeletedAt,
		Options:   make([]pricing.OptionSnapshot, 0, len(product.Options)),
	}
	for _, option := range product.Options {
		values := make([]pricing.OptionValueSnapshot, 0, len(option.Values))
		for _, value := range option.Values {
			values = append(values, pricing.OptionValueSnapshot{ID: value.ID})
		}
		snapshot.Options = append(snapshot.Options, pricing.OptionSnapshot{
			ID:         option.ID,
			IsRequired: option.IsRequired,
			Values:     values,
		})
	}
	return snapshot
}
