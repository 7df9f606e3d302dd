package pricing

import "github.com/jwpark-dev/moru-commerce/pkg/enums"

// ValidateAvailability checks that the product exists, is not soft-deleted,
// and is on sale. The checks short-circuit, so at most one reason comes back.
func ValidateAvailability(product *ProductSnapshot, policy AvailabilityPolicy) ValidationResult {
	if product == nil {
		return invalid(enums.ValidationIssueProductNotFound)
	}
	if product.DeletedAt != nil {
		return invalid(enums.ValidationIssueProductDeleted)
	}
	if product.Status != enums.ProductStatusOnSale {
		return invalid(enums.ValidationIssueProductOff)
	}
	return ValidationResult{Valid: true}
}

func invalid(reasons ...enums.ValidationIssue) ValidationResult {
	return ValidationResult{Valid: false, Reasons: reasons}
}
