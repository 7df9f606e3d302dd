package enums

import "fmt"

// ProductStatus mirrors the catalog's sale-state column. The single-letter
// codes are the persisted legacy values.
type ProductStatus string

const (
	ProductStatusOnSale    ProductStatus = "A"
	ProductStatusSuspended ProductStatus = "B"
)

var validProductStatuses = []ProductStatus{
	ProductStatusOnSale,
	ProductStatusSuspended,
}

// String implements fmt.Stringer.
func (p ProductStatus) String() string {
	return string(p)
}

// IsValid reports whether the value is known.
func (p ProductStatus) IsValid() bool {
	for _, candidate := range validProductStatuses {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParseProductStatus converts raw input into a ProductStatus.
func ParseProductStatus(value string) (ProductStatus, error) {
	for _, candidate := range validProductStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product status %q", value)
}
