package pricing

import "github.com/jwpark-dev/moru-commerce/pkg/enums"

// ValidateOptionSelection checks the selected option values against the
// product's option tree. Unlike the other validators it accumulates: every
// applicable reason is reported together so the caller can surface them all
// at once.
func ValidateOptionSelection(product *ProductSnapshot, selected []int64, policy OptionPolicy) ValidationResult {
	if product == nil {
		return invalid(enums.ValidationIssueProductNotFound)
	}

	var reasons []enums.ValidationIssue

	seen := make(map[int64]struct{}, len(selected))
	unique := make([]int64, 0, len(selected))
	for _, id := range selected {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	if len(unique) != len(selected) {
		reasons = append(reasons, enums.ValidationIssueDuplicateOptionValue)
	}

	valueToOption := make(map[int64]int64)
	for _, opt := range product.Options {
		for _, v := range opt.Values {
			valueToOption[v.ID] = opt.ID
		}
	}

	// Only the first foreign id is reported.
	for _, id := range selected {
		if _, ok := valueToOption[id]; !ok {
			reasons = append(reasons, enums.ValidationIssueOptionValueNotBelongs)
			break
		}
	}

	selectedPerOption := make(map[int64]int, len(product.Options))
	for _, id := range unique {
		if optionID, ok := valueToOption[id]; ok {
			selectedPerOption[optionID]++
		}
	}

	for _, opt := range product.Options {
		count := selectedPerOption[opt.ID]
		if opt.IsRequired && count == 0 {
			reasons = append(reasons, enums.ValidationIssueRequiredOptionMissing)
		}
		if policy.OneValuePerOption && count > 1 {
			reasons = append(reasons, enums.ValidationIssueRequiredOptionTooMany)
		}
	}

	if len(reasons) > 0 {
		return ValidationResult{Valid: false, Reasons: reasons}
	}
	return ValidationResult{Valid: true}
}
