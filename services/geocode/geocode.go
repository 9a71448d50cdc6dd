package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"shootflow/config"
	"shootflow/models"
)

// AddressSuggestion is one autocomplete hit for the booking form.
type AddressSuggestion struct {
	PlaceID     string `json:"place_id"`
	Description string `json:"description"`
}

// GeocodeService wraps the Google Geocoding and Places APIs.
type GeocodeService interface {
	Geocode(ctx context.Context, addr models.Address) (models.GeoPoint, error)
	Search(ctx context.Context, query string) ([]AddressSuggestion, error)
	Details(ctx context.Context, placeID string) (*models.Address, error)
}

// GoogleGeocodeService is the production implementation.
type GoogleGeocodeService struct {
	HTTPClient *http.Client
}

// NewGoogleGeocodeService creates a geocoder with a bounded request timeout.
func NewGoogleGeocodeService() *GoogleGeocodeService {
	return &GoogleGeocodeService{
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type geocodeResponse struct {
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
		FormattedAddress string `json:"formatted_address"`
	} `json:"results"`
	Status string `json:"status"`
}

// Geocode resolves a postal address to coordinates.
func (s *GoogleGeocodeService) Geocode(ctx context.Context, addr models.Address) (models.GeoPoint, error) {
	apiKey := config.AppConfig.GoogleAPIKey
	if apiKey == "" {
		return models.GeoPoint{}, fmt.Errorf("geocode: no API key configured")
	}

	endpoint := fmt.Sprintf(
		"https://maps.googleapis.com/maps/api/geocode/json?address=%s&key=%s",
		url.QueryEscape(addr.Line()), apiKey,
	)

	var decoded geocodeResponse
	if err := s.getJSON(ctx, endpoint, &decoded); err != nil {
		return models.GeoPoint{}, err
	}
	if decoded.Status != "OK" || len(decoded.Results) == 0 {
		return models.GeoPoint{}, fmt.Errorf("geocode: no result for %q (status %s)", addr.Line(), decoded.Status)
	}

	loc := decoded.Results[0].Geometry.Location
	return models.GeoPoint{Latitude: loc.Lat, Longitude: loc.Lng}, nil
}

type autocompleteResponse struct {
	Predictions []struct {
		PlaceID     string `json:"place_id"`
		Description string `json:"description"`
	} `json:"predictions"`
	Status string `json:"status"`
}

// Search returns address autocomplete suggestions for the booking form.
func (s *GoogleGeocodeService) Search(ctx context.Context, query string) ([]AddressSuggestion, error) {
	apiKey := config.AppConfig.GoogleAPIKey
	if apiKey == "" {
		return nil, fmt.Errorf("geocode: no API key configured")
	}

	endpoint := fmt.Sprintf(
		"https://maps.googleapis.com/maps/api/place/autocomplete/json?input=%s&types=address&key=%s",
		url.QueryEscape(query), apiKey,
	)

	var decoded autocompleteResponse
	if err := s.getJSON(ctx, endpoint, &decoded); err != nil {
		return nil, err
	}
	if decoded.Status != "OK" && decoded.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("geocode: autocomplete failed (status %s)", decoded.Status)
	}

	suggestions := make([]AddressSuggestion, 0, len(decoded.Predictions))
	for _, p := range decoded.Predictions {
		suggestions = append(suggestions, AddressSuggestion{
			PlaceID:     p.PlaceID,
			Description: p.Description,
		})
	}
	return suggestions, nil
}

type detailsResponse struct {
	Result struct {
		FormattedAddress  string `json:"formatted_address"`
		AddressComponents []struct {
			LongName  string   `json:"long_name"`
			ShortName string   `json:"short_name"`
			Types     []string `json:"types"`
		} `json:"address_components"`
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"result"`
	Status string `json:"status"`
}

// Details resolves a place ID into a structured address with coordinates.
func (s *GoogleGeocodeService) Details(ctx context.Context, placeID string) (*models.Address, error) {
	apiKey := config.AppConfig.GoogleAPIKey
	if apiKey == "" {
		return nil, fmt.Errorf("geocode: no API key configured")
	}

	endpoint := fmt.Sprintf(
		"https://maps.googleapis.com/maps/api/place/details/json?place_id=%s&fields=address_components,formatted_address,geometry&key=%s",
		url.QueryEscape(placeID), apiKey,
	)

	var decoded detailsResponse
	if err := s.getJSON(ctx, endpoint, &decoded); err != nil {
		return nil, err
	}
	if decoded.Status != "OK" {
		return nil, fmt.Errorf("geocode: place details failed (status %s)", decoded.Status)
	}

	addr := &models.Address{
		Display: decoded.Result.FormattedAddress,
		Geo: &models.GeoPoint{
			Latitude:  decoded.Result.Geometry.Location.Lat,
			Longitude: decoded.Result.Geometry.Location.Lng,
		},
	}
	var streetNumber, route string
	for _, comp := range decoded.Result.AddressComponents {
		for _, t := range comp.Types {
			switch t {
			case "street_number":
				streetNumber = comp.LongName
			case "route":
				route = comp.LongName
			case "locality":
				addr.City = comp.LongName
			case "administrative_area_level_1":
				addr.State = comp.ShortName
			case "postal_code":
				addr.Zip = comp.LongName
			}
		}
	}
	addr.Street = streetNumber
	if route != "" {
		if addr.Street != "" {
			addr.Street += " "
		}
		addr.Street += route
	}
	return addr, nil
}

func (s *GoogleGeocodeService) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("geocode: failed to build request: %w", err)
	}
	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("geocode: request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("geocode: failed to decode response: %w", err)
	}
	return nil
}
