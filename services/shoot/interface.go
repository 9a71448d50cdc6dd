package shoot

import (
	"context"

	"shootflow/models"
)

// BookingRequest is the payload for creating a shoot.
type BookingRequest struct {
	ScheduledDate string                 `json:"scheduled_date" binding:"required"`
	Time          string                 `json:"time" binding:"required"`
	Location      models.Address         `json:"location" binding:"required"`
	Client        models.ClientRef       `json:"client" binding:"required"`
	Property      models.PropertyDetails `json:"property_details"`

	// Selected services with optional per-service manual price overrides.
	Services []BookingService `json:"services" binding:"required"`

	// Manual tax entry; when set, auto-calculation is suppressed.
	ManualTaxAmount *float64 `json:"manual_tax_amount,omitempty"`
}

// BookingService selects one catalog service for a booking.
type BookingService struct {
	ServiceID string `json:"service_id" binding:"required"`
	Quantity  int    `json:"quantity"`
	Override  string `json:"override,omitempty"`
}

// QuoteRequest re-prices a service selection without persisting anything.
type QuoteRequest struct {
	Services        []BookingService `json:"services" binding:"required"`
	Sqft            *float64         `json:"sqft,omitempty"`
	ManualTaxAmount *float64         `json:"manual_tax_amount,omitempty"`
}

// ShootService drives the shoot lifecycle: booking, quoting, assignment,
// decline and tour-link publication.
type ShootService interface {
	Book(ctx context.Context, req BookingRequest) (*models.Shoot, error)
	Quote(ctx context.Context, req QuoteRequest) (*models.Quote, error)
	Get(ctx context.Context, id string) (*models.Shoot, error)
	List(ctx context.Context, status string) ([]models.Shoot, error)
	Patch(ctx context.Context, id string, raw map[string]interface{}) (*models.Shoot, error)
	Decline(ctx context.Context, id, reason string) error
	Assign(ctx context.Context, shootID, photographerID, categoryID string) (*models.Shoot, error)
	Candidates(ctx context.Context, shootID, sortBy, searchQuery string) ([]models.PhotographerCandidate, error)
	UpdateTourLinks(ctx context.Context, shootID string, links models.TourLinks) (*models.Shoot, error)
	AttachMedia(ctx context.Context, shootID string, urls []string) (*models.Shoot, error)
}
