package pricing

import "github.com/shopspring/decimal"

const invalidBasePriceMessage = "base price is not valid"

// BuildQuote runs the ordered rule pipeline over already-validated items:
// base price, option extras, rounding, then seller subtotal aggregation.
// Every stage returns fresh values; the input slice and the pricing maps are
// never written to, so callers may share them across concurrent calls.
func BuildQuote(items []Item, ctx Context, data PricingData, overrides *PricingPolicyOverrides) SellerSubtotalResult {
	policies := MergePricingPolicies(DefaultPricingPolicies(), overrides)

	priced := applyBasePrice(items, data)
	priced = applyOptionExtras(priced, data)
	priced = applyRounding(priced, policies.Rounding)
	return applySubtotal(priced, data)
}

// applyBasePrice seeds each line with its base unit price and per-item
// shipping fee. A missing map entry prices as zero; a configured negative
// price keeps the item in the output but flags it unpurchasable.
func applyBasePrice(items []Item, data PricingData) []PricedItem {
	priced := make([]PricedItem, 0, len(items))
	for _, it := range items {
		base := data.BasePrice[it.ProductID]
		purchasable := !base.IsNegative()

		messages := []string{}
		if !purchasable {
			messages = append(messages, invalidBasePriceMessage)
		}

		priced = append(priced, PricedItem{
			ProductID:         it.ProductID,
			Qty:               it.Qty,
			OptionValueIDList: it.OptionValueIDList,
			UnitPrice:         base,
			TotalPrice:        base.Mul(decimal.NewFromInt(int64(it.Qty))),
			ShippingFee:       data.ShippingFee[it.ProductID],
			Purchasable:       purchasable,
			Messages:          messages,
			Discounts:         []Discount{},
		})
	}
	return priced
}

// applyOptionExtras adds the selected option surcharges to the unit price of
// purchasable lines and recomputes the line total. Option validity was
// settled by the validators; unknown value ids price as zero here.
func applyOptionExtras(priced []PricedItem, data PricingData) []PricedItem {
	out := make([]PricedItem, 0, len(priced))
	for _, item := range priced {
		if item.Purchasable {
			extras := decimal.Zero
			for _, valueID := range item.OptionValueIDList {
				extras = extras.Add(data.ExtraCharge[valueID])
			}
			item.UnitPrice = item.UnitPrice.Add(extras)
			item.TotalPrice = item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Qty)))
		}
		out = append(out, item)
	}
	return out
}

// applyRounding fixes unit prices to whole won and floors them at zero, then
// recomputes totals from the rounded unit. This is the only stage allowed to
// change numeric precision and it is idempotent: already-rounded items pass
// through unchanged.
func applyRounding(priced []PricedItem, policy RoundingPolicy) []PricedItem {
	if !policy.KRWInteger {
		return priced
	}
	out := make([]PricedItem, 0, len(priced))
	for _, item := range priced {
		unit := item.UnitPrice.Round(0)
		if unit.IsNegative() {
			unit = decimal.Zero
		}
		total := unit.Mul(decimal.NewFromInt(int64(item.Qty))).Round(0)
		if total.IsNegative() {
			total = decimal.Zero
		}
		item.UnitPrice = unit
		item.TotalPrice = total
		out = append(out, item)
	}
	return out
}

type sellerBucket struct {
	name      string
	threshold *decimal.Decimal
	items     []PricedItem
}

// applySubtotal groups priced lines by owning seller, in first-encounter
// order, and settles each group's shipping charge.
//
// Shipping is not summed within a group: the buyer pays the single greatest
// per-item fee among the seller's bundled lines, picked with a running
// strict-greater comparison so ties keep the earliest line. When the group's
// merchandise subtotal meets the seller's threshold (inclusive) the charge is
// waived entirely. Each fee models "cost to ship this item alone"; that
// semantic is the caller's contract, not enforced here.
func applySubtotal(priced []PricedItem, data PricingData) SellerSubtotalResult {
	order := make([]int64, 0)
	buckets := make(map[int64]*sellerBucket)

	for _, item := range priced {
		seller := data.SellerByProduct[item.ProductID]
		bucket, ok := buckets[seller.ID]
		if !ok {
			bucket = &sellerBucket{name: seller.Name, threshold: seller.FreeShippingThreshold}
			buckets[seller.ID] = bucket
			order = append(order, seller.ID)
		}
		bucket.items = append(bucket.items, item)
	}

	result := SellerSubtotalResult{
		SubtotalMerchandise: decimal.Zero,
		SubtotalShippingFee: decimal.Zero,
		List:                make([]SellerSubtotal, 0, len(order)),
	}

	for _, sellerID := range order {
		bucket := buckets[sellerID]

		merchandise := decimal.Zero
		for _, item := range bucket.items {
			merchandise = merchandise.Add(item.TotalPrice)
		}

		freeApplied := bucket.threshold != nil && bucket.threshold.LessThanOrEqual(merchandise)

		picked := 0
		for i := 1; i < len(bucket.items); i++ {
			if bucket.items[i].ShippingFee.GreaterThan(bucket.items[picked].ShippingFee) {
				picked = i
			}
		}
		pickedFee := bucket.items[picked].ShippingFee
		if pickedFee.IsNegative() {
			pickedFee = decimal.Zero
		}
		bucket.items[picked].ShippingFee = pickedFee

		shipping := pickedFee
		if freeApplied {
			shipping = decimal.Zero
		}

		result.List = append(result.List, SellerSubtotal{
			SellerID:              sellerID,
			SellerName:            bucket.name,
			FreeShippingThreshold: bucket.threshold,
			MerchandiseSubtotal:   merchandise,
			ShippingFeeSubtotal:   shipping,
			FreeApplied:           freeApplied,
			Items:                 bucket.items,
		})

		result.SubtotalMerchandise = result.SubtotalMerchandise.Add(merchandise)
		result.SubtotalShippingFee = result.SubtotalShippingFee.Add(shipping)
	}

	return result
}
