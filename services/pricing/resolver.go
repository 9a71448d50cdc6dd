package pricing

import (
	"math"
	"strconv"
	"strings"

	"shootflow/models"
)

// overrideEpsilon is the smallest price difference treated as a real manual
// override; anything closer to the computed base is the same figure retyped.
const overrideEpsilon = 0.01

// ResolvePrice determines the applicable price for a service on a property.
//
// For a variable-priced service with a usable square footage, the ordered
// sqft ranges are scanned in insertion order and the first match wins; when
// no range matches, the service's base price applies. Fixed-priced services
// and missing square footage always use the base price. A manual override
// replaces the computed figure only when it differs materially.
func ResolvePrice(service models.Service, sqft *float64, overrideValue string) models.PriceResolution {
	res := models.PriceResolution{
		BasePrice:       service.Price,
		DurationMinutes: 0,
	}
	if service.PhotographerPay != nil {
		res.PhotographerPay = *service.PhotographerPay
	}
	if service.PhotoCount != nil {
		res.PhotoCount = *service.PhotoCount
	}

	if service.PricingType == models.PricingVariable && usableSqft(sqft) && len(service.SqftRanges) > 0 {
		for _, r := range service.SqftRanges {
			if r.Contains(*sqft) {
				res.BasePrice = r.Price
				res.DurationMinutes = r.DurationMinutes
				res.PhotographerPay = r.PhotographerPay
				if r.PhotoCount > 0 {
					res.PhotoCount = r.PhotoCount
				}
				break
			}
		}
	}

	res.Price = res.BasePrice
	if override, ok := parseOverride(overrideValue); ok && materiallyDifferent(override, res.BasePrice) {
		res.Price = override
		res.HasOverride = true
	}
	return res
}

// usableSqft reports whether sqft can drive a range lookup. Negative or
// non-finite values are treated as absent.
func usableSqft(sqft *float64) bool {
	if sqft == nil {
		return false
	}
	v := *sqft
	return v >= 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

// parseOverride parses a manual price override. Empty or malformed input is
// ignored rather than rejected.
func parseOverride(s string) (float64, bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// materiallyDifferent reports whether an override actually changes the base
// figure: either the base is zero and the override is positive, or the two
// differ by more than a cent.
func materiallyDifferent(override, base float64) bool {
	if base == 0 {
		return override > 0
	}
	return math.Abs(override-base) > overrideEpsilon
}
