package pricing

import (
	"testing"

	"github.com/jwpark-dev/moru-commerce/pkg/enums"
)

func TestOptionSelectionAccumulatesReasons(t *testing.T) {
	t.Parallel()

	product := onSaleProduct(1,
		requiredOption(10, 100, 101),
		optionalOption(20, 200, 201),
	)

	// Duplicate optional value while the required option is satisfied:
	// only the duplicate is reported.
	r := ValidateOptionSelection(&product, []int64{100, 200, 200}, OptionPolicy{OneValuePerOption: true})
	if r.Valid {
		t.Fatal("expected rejection for duplicate value")
	}
	if !reasonsEqual(r.Reasons, enums.ValidationIssueDuplicateOptionValue) {
		t.Fatalf("expected only [DUPLICATE_OPTION_VALUE], got %v", r.Reasons)
	}
}

func TestOptionSelectionReportsAllApplicableReasons(t *testing.T) {
	t.Parallel()

	product := onSaleProduct(1,
		requiredOption(10, 100, 101),
		requiredOption(20, 200, 201),
	)

	// Duplicate + foreign id + first required option over-selected + second
	// required option unselected, all in one verdict.
	r := ValidateOptionSelection(&product, []int64{100, 101, 999, 999}, OptionPolicy{OneValuePerOption: true})
	if r.Valid {
		t.Fatal("expected rejection")
	}
	want := []enums.ValidationIssue{
		enums.ValidationIssueDuplicateOptionValue,
		enums.ValidationIssueOptionValueNotBelongs,
		enums.ValidationIssueRequiredOptionTooMany,
		enums.ValidationIssueRequiredOptionMissing,
	}
	if !reasonsEqual(r.Reasons, want...) {
		t.Fatalf("expected %v, got %v", want, r.Reasons)
	}
}

func TestOptionSelectionReportsForeignValueOnce(t *testing.T) {
	t.Parallel()

	product := onSaleProduct(1)

	r := ValidateOptionSelection(&product, []int64{5, 6, 7}, OptionPolicy{OneValuePerOption: true})
	if r.Valid {
		t.Fatal("expected rejection for foreign values")
	}
	if !reasonsEqual(r.Reasons, enums.ValidationIssueOptionValueNotBelongs) {
		t.Fatalf("expected a single [OPTION_VALUE_NOT_BELONGS], got %v", r.Reasons)
	}
}

func TestOptionSelectionMultiChoicePolicy(t *testing.T) {
	t.Parallel()

	product := onSaleProduct(1, requiredOption(10, 100, 101))

	single := ValidateOptionSelection(&product, []int64{100, 101}, OptionPolicy{OneValuePerOption: true})
	if single.Valid || !reasonsEqual(single.Reasons, enums.ValidationIssueRequiredOptionTooMany) {
		t.Fatalf("single-choice policy expected [REQUIRED_OPTION_TOO_MANY], got %v", single.Reasons)
	}

	multi := ValidateOptionSelection(&product, []int64{100, 101}, OptionPolicy{OneValuePerOption: false})
	if !multi.Valid {
		t.Fatalf("multi-choice policy should accept two values, got %v", multi.Reasons)
	}
}

func TestOptionSelectionPassesWhenSatisfied(t *testing.T) {
	t.Parallel()

	product := onSaleProduct(1,
		requiredOption(10, 100, 101),
		optionalOption(20, 200),
	)

	r := ValidateOptionSelection(&product, []int64{101}, OptionPolicy{OneValuePerOption: true})
	if !r.Valid {
		t.Fatalf("expected pass, got %v", r.Reasons)
	}

	empty := onSaleProduct(2)
	if r := ValidateOptionSelection(&empty, nil, OptionPolicy{OneValuePerOption: true}); !r.Valid {
		t.Fatalf("optionless product with no selection should pass, got %v", r.Reasons)
	}
}
