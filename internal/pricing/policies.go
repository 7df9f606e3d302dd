package pricing

import "time"

// QuantityPolicy bounds the requested count per line, inclusive.
type QuantityPolicy struct {
	Min int
	Max int
}

// AvailabilityPolicy carries the evaluation instant. Reserved for sale-window
// checks; no validator reads it yet.
type AvailabilityPolicy struct {
	Now time.Time
}

// OptionPolicy controls option-selection constraints.
type OptionPolicy struct {
	// OneValuePerOption allows at most one value per option when true.
	OneValuePerOption bool
}

// RoundingPolicy controls the precision stage of the rule pipeline.
type RoundingPolicy struct {
	// KRWInteger rounds unit prices to whole won.
	KRWInteger bool
}

// ValidationPolicies groups the knobs the validators consult.
type ValidationPolicies struct {
	Quantity     QuantityPolicy
	Availability AvailabilityPolicy
	Option       OptionPolicy
}

// PricingPolicies groups the knobs the rule pipeline consults.
type PricingPolicies struct {
	Rounding RoundingPolicy
}

// Override structs use pointer fields: nil keeps the base value, non-nil
// replaces it. Merging never touches the base.

type QuantityPolicyOverride struct {
	Min *int
	Max *int
}

type AvailabilityPolicyOverride struct {
	Now *time.Time
}

type OptionPolicyOverride struct {
	OneValuePerOption *bool
}

type RoundingPolicyOverride struct {
	KRWInteger *bool
}

type ValidationPolicyOverrides struct {
	Quantity     *QuantityPolicyOverride
	Availability *AvailabilityPolicyOverride
	Option       *OptionPolicyOverride
}

type PricingPolicyOverrides struct {
	Rounding *RoundingPolicyOverride
}

// DefaultValidationPolicies builds a fresh policy set for one call. A zero
// now falls back to the wall clock.
func DefaultValidationPolicies(now time.Time) ValidationPolicies {
	if now.IsZero() {
		now = time.Now()
	}
	return ValidationPolicies{
		Quantity:     QuantityPolicy{Min: 1, Max: 99},
		Availability: AvailabilityPolicy{Now: now},
		Option:       OptionPolicy{OneValuePerOption: true},
	}
}

// MergeValidationPolicies applies a one-level-deep override per policy group
// and returns a new value; base is never mutated.
func MergeValidationPolicies(base ValidationPolicies, override *ValidationPolicyOverrides) ValidationPolicies {
	merged := base
	if override == nil {
		return merged
	}
	if o := override.Quantity; o != nil {
		if o.Min != nil {
			merged.Quantity.Min = *o.Min
		}
		if o.Max != nil {
			merged.Quantity.Max = *o.Max
		}
	}
	if o := override.Availability; o != nil {
		if o.Now != nil {
			merged.Availability.Now = *o.Now
		}
	}
	if o := override.Option; o != nil {
		if o.OneValuePerOption != nil {
			merged.Option.OneValuePerOption = *o.OneValuePerOption
		}
	}
	return merged
}

// DefaultPricingPolicies builds a fresh pricing policy set for one call.
func DefaultPricingPolicies() PricingPolicies {
	return PricingPolicies{
		Rounding: RoundingPolicy{KRWInteger: true},
	}
}

// MergePricingPolicies applies a one-level-deep override per policy group and
// returns a new value; base is never mutated.
func MergePricingPolicies(base PricingPolicies, override *PricingPolicyOverrides) PricingPolicies {
	merged := base
	if override == nil {
		return merged
	}
	if o := override.Rounding; o != nil {
		if o.KRWInteger != nil {
			merged.Rounding.KRWInteger = *o.KRWInteger
		}
	}
	return merged
}
