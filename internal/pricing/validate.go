package pricing

import "time"

// ValidateItems partitions a batch into purchasable and rejected items.
// Validators run per item in a fixed order, availability then quantity then
// option selection, and the item stops at its first failing stage: a rejected
// entry carries only that stage's reasons. Items passing all three stages are
// appended unmodified.
func ValidateItems(items []Item, products map[int64]ProductSnapshot, overrides *ValidationPolicyOverrides) BatchValidationResult {
	policies := MergeValidationPolicies(DefaultValidationPolicies(time.Time{}), overrides)

	result := BatchValidationResult{
		ValidItems:   make([]Item, 0, len(items)),
		InvalidItems: make([]InvalidItem, 0),
	}

	for _, it := range items {
		product := snapshotFor(products, it.ProductID)

		if r := ValidateAvailability(product, policies.Availability); !r.Valid {
			result.InvalidItems = append(result.InvalidItems, InvalidItem{Item: it, Reasons: r.Reasons})
			continue
		}

		if r := ValidateQuantity(it.Qty, policies.Quantity); !r.Valid {
			result.InvalidItems = append(result.InvalidItems, InvalidItem{Item: it, Reasons: r.Reasons})
			continue
		}

		if r := ValidateOptionSelection(product, it.OptionValueIDList, policies.Option); !r.Valid {
			result.InvalidItems = append(result.InvalidItems, InvalidItem{Item: it, Reasons: r.Reasons})
			continue
		}

		result.ValidItems = append(result.ValidItems, it)
	}

	return result
}

func snapshotFor(products map[int64]ProductSnapshot, productID int64) *ProductSnapshot {
	if snap, ok := products[productID]; ok {
		return &snap
	}
	return nil
}
