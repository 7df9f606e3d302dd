package enums

import "fmt"

// ValidationIssue is the closed set of reason codes a line item can be
// rejected with. Rejections always carry codes from this set, never free text.
type ValidationIssue string

const (
	ValidationIssueProductNotFound       ValidationIssue = "PRODUCT_NOT_FOUND"
	ValidationIssueProductOff            ValidationIssue = "PRODUCT_OFF"
	ValidationIssueProductDeleted        ValidationIssue = "PRODUCT_DELETED"
	ValidationIssueSaleWindowClosed      ValidationIssue = "SALE_WINDOW_CLOSED"
	ValidationIssueQtyOutOfRange         ValidationIssue = "QTY_OUT_OF_RANGE"
	ValidationIssueDuplicateOptionValue  ValidationIssue = "DUPLICATE_OPTION_VALUE"
	ValidationIssueRequiredOptionMissing ValidationIssue = "REQUIRED_OPTION_MISSING"
	ValidationIssueRequiredOptionTooMany ValidationIssue = "REQUIRED_OPTION_TOO_MANY"
	ValidationIssueOptionValueNotBelongs ValidationIssue = "OPTION_VALUE_NOT_BELONGS"
)

var validValidationIssues = []ValidationIssue{
	ValidationIssueProductNotFound,
	ValidationIssueProductOff,
	ValidationIssueProductDeleted,
	ValidationIssueSaleWindowClosed,
	ValidationIssueQtyOutOfRange,
	ValidationIssueDuplicateOptionValue,
	ValidationIssueRequiredOptionMissing,
	ValidationIssueRequiredOptionTooMany,
	ValidationIssueOptionValueNotBelongs,
}

// String implements fmt.Stringer.
func (v ValidationIssue) String() string {
	return string(v)
}

// IsValid reports whether the value is known.
func (v ValidationIssue) IsValid() bool {
	for _, candidate := range validValidationIssues {
		if candidate == v {
			return true
		}
	}
	return false
}

// ParseValidationIssue converts raw input into a ValidationIssue.
func ParseValidationIssue(value string) (ValidationIssue, error) {
	for _, candidate := range validValidationIssues {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid validation issue %q", value)
}
