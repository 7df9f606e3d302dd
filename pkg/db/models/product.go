package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jwpark-dev/moru-commerce/pkg/enums"
)

// Product is the canonical catalog listing. Prices are whole KRW; DeletedAt
// is a soft-delete marker the pricing engine treats as unavailable.
type Product struct {
	ID           int64               `gorm:"column:id;primaryKey;autoIncrement"`
	SellerID     int64               `gorm:"column:seller_id;not null;index"`
	Status       enums.ProductStatus `gorm:"column:status;type:varchar(1);not null"`
	NameKr       string              `gorm:"column:name_kr;not null"`
	NameEn       string              `gorm:"column:name_en"`
	ThumbnailURL string              `gorm:"column:thumbnail_url"`
	Price        decimal.Decimal     `gorm:"column:price;type:numeric(12,0);not null"`
	ShippingFee  decimal.Decimal     `gorm:"column:shipping_fee;type:numeric(12,0);not null"`
	Seller       *Seller             `gorm:"foreignKey:SellerID"`
	Options      []ProductOption     `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time           `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt    *time.Time          `gorm:"column:deleted_at;index"`
}

// TableName pins the table name.
func (Product) TableName() string {
	return "products"
}

// ProductOption is one selectable axis of a product (e.g. weight).
type ProductOption struct {
	ID         int64                `gorm:"column:id;primaryKey;autoIncrement"`
	ProductID  int64                `gorm:"column:product_id;not null;index"`
	IsRequired bool                 `gorm:"column:is_required;not null;default:false"`
	NameKr     string               `gorm:"column:name_kr"`
	NameEn     string               `gorm:"column:name_en"`
	Values     []ProductOptionValue `gorm:"foreignKey:ProductOptionID;constraint:OnDelete:CASCADE"`
	DeletedAt  *time.Time           `gorm:"column:deleted_at;index"`
}

// TableName pins the table name.
func (ProductOption) TableName() string {
	return "product_options"
}

// ProductOptionValue is one selectable value; ExtraCharge is added to the
// unit price when the value is chosen.
type ProductOptionValue struct {
	ID              int64           `gorm:"column:id;primaryKey;autoIncrement"`
	ProductOptionID int64           `gorm:"column:product_option_id;not null;index"`
	ValueKr         string          `gorm:"column:value_kr"`
	ValueEn         string          `gorm:"column:value_en"`
	ExtraCharge     decimal.Decimal `gorm:"column:extra_charge;type:numeric(12,0);not null;default:0"`
	DeletedAt       *time.Time      `gorm:"column:deleted_at;index"`
}

// TableName pins the table name.
func (ProductOptionValue) TableName() string {
	return "product_option_values"
}
