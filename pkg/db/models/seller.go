package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Seller is the merchant that owns products. FreeShippingThreshold is the
// merchandise subtotal at which the seller waives shipping; nil disables the
// waiver.
type Seller struct {
	ID                    int64            `gorm:"column:id;primaryKey;autoIncrement"`
	Name                  string           `gorm:"column:name;not null"`
	FreeShippingThreshold *decimal.Decimal `gorm:"column:free_shipping_threshold;type:numeric(12,0)"`
	CreatedAt             time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt             time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName pins the table name.
func (Seller) TableName() string {
	return "sellers"
}
