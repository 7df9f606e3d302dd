package pricing

import "github.com/jwpark-dev/moru-commerce/pkg/enums"

// ValidateQuantity checks the requested count against the inclusive policy
// bounds.
func ValidateQuantity(qty int, policy QuantityPolicy) ValidationResult {
	if qty < policy.Min || qty > policy.Max {
		return invalid(enums.ValidationIssueQtyOutOfRange)
	}
	return ValidationResult{Valid: true}
}
