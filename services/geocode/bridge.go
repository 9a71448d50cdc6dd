package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"shootflow/config"
)

// PropertyMetrics carries the listing figures pulled from the Bridge Data
// RESO Web API to prefill a booking's property details.
type PropertyMetrics struct {
	Beds  float64 `json:"beds"`
	Baths float64 `json:"baths"`
	Sqft  float64 `json:"sqft"`
}

// PropertyService looks up listing metrics for an address.
type PropertyService interface {
	LookupMetrics(ctx context.Context, streetAddress, zip string) (*PropertyMetrics, error)
}

// BridgePropertyService queries the Bridge Data OData endpoint.
type BridgePropertyService struct {
	HTTPClient *http.Client
}

// NewBridgePropertyService creates a lookup client with a bounded timeout.
func NewBridgePropertyService() *BridgePropertyService {
	return &BridgePropertyService{
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type bridgeResponse struct {
	Value []struct {
		BedroomsTotal     float64 `json:"BedroomsTotal"`
		BathroomsTotal    float64 `json:"BathroomsTotalInteger"`
		LivingArea        float64 `json:"LivingArea"`
		UnparsedAddress   string  `json:"UnparsedAddress"`
		PostalCode        string  `json:"PostalCode"`
		StandardStatus    string  `json:"StandardStatus"`
		ModificationStamp string  `json:"ModificationTimestamp"`
	} `json:"value"`
}

// LookupMetrics fetches beds/baths/sqft for an address. A miss returns nil
// metrics, not an error; the booking form simply leaves the fields blank.
func (s *BridgePropertyService) LookupMetrics(ctx context.Context, streetAddress, zip string) (*PropertyMetrics, error) {
	token := config.AppConfig.BridgeAPIToken
	if token == "" {
		return nil, fmt.Errorf("bridge: no API token configured")
	}

	filter := fmt.Sprintf("contains(UnparsedAddress,'%s')", streetAddress)
	if zip != "" {
		filter += fmt.Sprintf(" and PostalCode eq '%s'", zip)
	}
	endpoint := fmt.Sprintf(
		"%s/Property?$filter=%s&$top=1&access_token=%s",
		config.AppConfig.BridgeAPIURL, url.QueryEscape(filter), token,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("bridge: failed to build request: %w", err)
	}
	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("bridge: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bridge: unexpected status %d", resp.StatusCode)
	}

	var decoded bridgeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("bridge: failed to decode response: %w", err)
	}
	if len(decoded.Value) == 0 {
		return nil, nil
	}

	p := decoded.Value[0]
	return &PropertyMetrics{
		Beds:  p.BedroomsTotal,
		Baths: p.BathroomsTotal,
		Sqft:  p.LivingArea,
	}, nil
}
