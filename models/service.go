package models

// Pricing types for a sellable service.
const (
	PricingFixed    = "fixed"
	PricingVariable = "variable"
)

// SqftRange maps an inclusive square-footage interval to the figures that
// apply when a property falls inside it.
type SqftRange struct {
	SqftFrom        float64 `bson:"sqft_from" json:"sqft_from"`
	SqftTo          float64 `bson:"sqft_to" json:"sqft_to"`
	Price           float64 `bson:"price" json:"price"`
	DurationMinutes int     `bson:"duration_minutes" json:"duration_minutes"`
	PhotographerPay float64 `bson:"photographer_pay" json:"photographer_pay"`
	PhotoCount      int     `bson:"photo_count,omitempty" json:"photo_count,omitempty"`
}

// Contains reports whether sqft falls inside the range (bounds inclusive).
func (r SqftRange) Contains(sqft float64) bool {
	return sqft >= r.SqftFrom && sqft <= r.SqftTo
}

// Service is a sellable offering in the catalog. A variable-priced service
// owns an ordered set of SqftRanges; when none matches, Price is the
// fallback.
type Service struct {
	ID                   string      `bson:"id" json:"id"`
	Name                 string      `bson:"name" json:"name"`
	Description          string      `bson:"description,omitempty" json:"description,omitempty"`
	PricingType          string      `bson:"pricing_type" json:"pricing_type"`
	Price                float64     `bson:"price" json:"price"`
	SqftRanges           []SqftRange `bson:"sqft_ranges,omitempty" json:"sqft_ranges,omitempty"`
	DeliveryTimeHours    int         `bson:"delivery_time_hours" json:"delivery_time_hours"`
	PhotographerRequired bool        `bson:"photographer_required" json:"photographer_required"`
	PhotographerPay      *float64    `bson:"photographer_pay,omitempty" json:"photographer_pay,omitempty"`
	CategoryID           string      `bson:"category_id" json:"category_id"`
	PhotoCount           *int        `bson:"photo_count,omitempty" json:"photo_count,omitempty"`
	Quantity             *int        `bson:"quantity,omitempty" json:"quantity,omitempty"`
	Active               bool        `bson:"active" json:"active"`
	SortOrder            int         `bson:"sort_order,omitempty" json:"sort_order,omitempty"`
}

// ServiceCategory groups services for dashboard tabbing.
type ServiceCategory struct {
	ID        string `bson:"id" json:"id"`
	Name      string `bson:"name" json:"name"`
	Icon      string `bson:"icon,omitempty" json:"icon,omitempty"`
	SortOrder int    `bson:"sort_order,omitempty" json:"sort_order,omitempty"`
}
