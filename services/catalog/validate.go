package catalog

import (
	"fmt"
	"sort"

	"shootflow/models"
)

// ValidateService checks a service definition before it is persisted.
//
// Overlapping sqft ranges are rejected outright: the resolver scans ranges
// first-match-wins, so an overlap would silently shadow the later range and
// produce quotes nobody intended.
func ValidateService(svc *models.Service) error {
	if svc.Name == "" {
		return fmt.Errorf("service name is required")
	}
	if svc.Price < 0 {
		return fmt.Errorf("service price must not be negative")
	}
	switch svc.PricingType {
	case models.PricingFixed, models.PricingVariable:
	default:
		return fmt.Errorf("pricing type must be %q or %q", models.PricingFixed, models.PricingVariable)
	}
	if svc.PhotoCount != nil && svc.Quantity != nil {
		return fmt.Errorf("photo count and quantity are mutually exclusive")
	}
	if svc.PricingType == models.PricingVariable {
		if err := validateRanges(svc.SqftRanges); err != nil {
			return err
		}
	}
	return nil
}

func validateRanges(ranges []models.SqftRange) error {
	for i, r := range ranges {
		if r.SqftFrom < 0 {
			return fmt.Errorf("range %d: sqft_from must not be negative", i)
		}
		if r.SqftTo < r.SqftFrom {
			return fmt.Errorf("range %d: sqft_to must not be below sqft_from", i)
		}
		if r.Price < 0 {
			return fmt.Errorf("range %d: price must not be negative", i)
		}
	}

	// Sort a copy by lower bound; adjacent overlap checking then covers
	// every pair.
	sorted := make([]models.SqftRange, len(ranges))
	copy(sorted, ranges)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].SqftFrom < sorted[j].SqftFrom })
	for i := 1; i < len(sorted); i++ {
		if sorted[i].SqftFrom <= sorted[i-1].SqftTo {
			return fmt.Errorf("sqft ranges [%g, %g] and [%g, %g] overlap",
				sorted[i-1].SqftFrom, sorted[i-1].SqftTo, sorted[i].SqftFrom, sorted[i].SqftTo)
		}
	}
	return nil
}
