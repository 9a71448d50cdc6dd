package models

// PriceResolution is the output of resolving one service's price against a
// property's square footage and an optional manual override.
type PriceResolution struct {
	Price           float64 `json:"price"`
	BasePrice       float64 `json:"base_price"`
	HasOverride     bool    `json:"has_override"`
	DurationMinutes int     `json:"duration_minutes,omitempty"`
	PhotographerPay float64 `json:"photographer_pay,omitempty"`
	PhotoCount      int     `json:"photo_count,omitempty"`
}

// QuoteLine pairs a service with its override input for quoting.
type QuoteLine struct {
	Service  Service `json:"service"`
	Quantity int     `json:"quantity"`
	Override string  `json:"override,omitempty"`
}

// Quote is the running total for a set of selected services on a shoot.
type Quote struct {
	Lines      []SelectedService `json:"lines"`
	BaseQuote  float64           `json:"base_quote"`
	TaxAmount  float64           `json:"tax_amount"`
	TaxManual  bool              `json:"tax_manual"`
	TotalQuote float64           `json:"total_quote"`
}
