package models

import "time"

// Shoot statuses. A shoot is never deleted in the normal flow; decline and
// cancel set a status instead.
const (
	ShootStatusPending   = "pending"
	ShootStatusScheduled = "scheduled"
	ShootStatusCompleted = "completed"
	ShootStatusDeclined  = "declined"
	ShootStatusCancelled = "cancelled"
)

// SelectedService is a frozen snapshot of a priced service attached to a
// shoot at booking or edit time. ResolvedPrice is never recomputed later.
type SelectedService struct {
	ServiceID       string  `bson:"service_id" json:"service_id"`
	Name            string  `bson:"name" json:"name"`
	ResolvedPrice   float64 `bson:"resolved_price" json:"resolved_price"`
	Quantity        int     `bson:"quantity" json:"quantity"`
	PhotographerPay float64 `bson:"photographer_pay,omitempty" json:"photographer_pay,omitempty"`
	PriceOverridden bool    `bson:"price_overridden,omitempty" json:"price_overridden,omitempty"`
	CategoryID      string  `bson:"category_id,omitempty" json:"category_id,omitempty"`
}

// PaymentSummary carries the quote figures persisted on a shoot.
// TaxManual marks a hand-entered tax amount; once set, quote recomputation
// keeps the manual figure until the flag is cleared explicitly.
type PaymentSummary struct {
	BaseQuote  float64 `bson:"base_quote" json:"base_quote"`
	TaxAmount  float64 `bson:"tax_amount" json:"tax_amount"`
	TaxManual  bool    `bson:"tax_manual" json:"tax_manual"`
	TotalQuote float64 `bson:"total_quote" json:"total_quote"`
	TotalPaid  float64 `bson:"total_paid" json:"total_paid"`
}

// PropertyDetails describes the property being shot.
type PropertyDetails struct {
	Beds       float64 `bson:"beds,omitempty" json:"beds,omitempty"`
	Baths      float64 `bson:"baths,omitempty" json:"baths,omitempty"`
	Sqft       float64 `bson:"sqft,omitempty" json:"sqft,omitempty"`
	AccessInfo string  `bson:"access_info,omitempty" json:"access_info,omitempty"`
	Notes      string  `bson:"notes,omitempty" json:"notes,omitempty"`
}

// TourLinks is the bag of branded/MLS URLs and embeds rendered on the
// public tour pages.
type TourLinks struct {
	MatterportURL string   `bson:"matterport_url,omitempty" json:"matterport_url,omitempty"`
	IGuideURL     string   `bson:"iguide_url,omitempty" json:"iguide_url,omitempty"`
	Zillow3DURL   string   `bson:"zillow_3d_url,omitempty" json:"zillow_3d_url,omitempty"`
	VideoURL      string   `bson:"video_url,omitempty" json:"video_url,omitempty"`
	BrandedURL    string   `bson:"branded_url,omitempty" json:"branded_url,omitempty"`
	UnbrandedURL  string   `bson:"unbranded_url,omitempty" json:"unbranded_url,omitempty"`
	Embeds        []string `bson:"embeds,omitempty" json:"embeds,omitempty"`
}

// ClientRef identifies the client who booked the shoot.
type ClientRef struct {
	ID    string `bson:"id,omitempty" json:"id,omitempty"`
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email,omitempty" json:"email,omitempty"`
	Phone string `bson:"phone,omitempty" json:"phone,omitempty"`
}

// Shoot is a scheduled photography engagement.
type Shoot struct {
	ID            string    `bson:"id" json:"id"`
	Status        string    `bson:"status" json:"status"`
	ScheduledDate string    `bson:"scheduled_date" json:"scheduled_date"` // "2006-01-02"
	Time          string    `bson:"time" json:"time"`                     // "15:04"
	Location      Address   `bson:"location" json:"location"`
	Client        ClientRef `bson:"client" json:"client"`
	Photographer  *string   `bson:"photographer_id,omitempty" json:"photographer_id,omitempty"`

	// Per-category assignments override the single photographer when set.
	CategoryPhotographers map[string]string `bson:"category_photographers,omitempty" json:"category_photographers,omitempty"`

	// Flat list of every assigned photographer, kept in sync on assignment
	// so schedule queries stay indexable.
	PhotographerIDs []string `bson:"photographer_ids,omitempty" json:"photographer_ids,omitempty"`

	Services      []SelectedService `bson:"services" json:"services"`
	Payment       PaymentSummary    `bson:"payment" json:"payment"`
	Property      PropertyDetails   `bson:"property_details" json:"property_details"`
	TourLinks     TourLinks         `bson:"tour_links" json:"tour_links"`
	MediaURLs     []string          `bson:"media_urls,omitempty" json:"media_urls,omitempty"`
	DeclineReason string            `bson:"decline_reason,omitempty" json:"decline_reason,omitempty"`
	CreatedAt     time.Time         `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time         `bson:"updated_at" json:"updated_at"`
}
