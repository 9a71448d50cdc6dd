package ranking

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"shootflow/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Sort orders for the assignment dialog.
const (
	SortByDistance = "distance"
	SortByName     = "name"
)

// Geocoder resolves an address to coordinates. The Google-backed
// implementation lives in services/geocode; tests inject a stub.
type Geocoder interface {
	Geocode(ctx context.Context, addr models.Address) (models.GeoPoint, error)
}

// RankerService produces the ordered candidate list for the assignment
// dialog.
type RankerService interface {
	Rank(ctx context.Context, shootLocation models.Address, candidates []models.PhotographerCandidate, sortBy, searchQuery string) ([]models.PhotographerCandidate, error)
}

// DefaultRankerService is the production implementation. Results are cached
// briefly in Redis keyed on a digest of the full ranking input, so a change
// in any candidate's availability produces a fresh entry.
type DefaultRankerService struct {
	Geocoder    Geocoder
	CacheClient *redis.Client
	Logger      *zap.Logger
}

// Rank filters, measures and orders the candidates for one shoot.
//
// A geocoding failure for a single candidate never aborts the batch; that
// candidate simply has no distance and sorts last.
func (s *DefaultRankerService) Rank(ctx context.Context, shootLocation models.Address, candidates []models.PhotographerCandidate, sortBy, searchQuery string) ([]models.PhotographerCandidate, error) {
	filtered := FilterCandidates(candidates, searchQuery)

	cacheKey := s.cacheKey(shootLocation, filtered, sortBy)
	if s.CacheClient != nil {
		if cached, err := s.CacheClient.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
			var out []models.PhotographerCandidate
			if err := json.Unmarshal([]byte(cached), &out); err == nil {
				return out, nil
			}
			// Unreadable cache entry falls through to recomputation.
		}
	}

	shootGeo, geoErr := s.resolve(ctx, shootLocation)
	for i := range filtered {
		c := &filtered[i]
		c.SegmentsFree = AvailabilityStrip(c.NetSlots)
		if c.DistanceKm != nil {
			continue
		}
		if geoErr != nil {
			continue
		}
		originGeo, err := s.resolve(ctx, c.OriginAddress)
		if err != nil {
			if s.Logger != nil {
				s.Logger.Debug("Rank: geocode failed for candidate",
					zap.String("candidateID", c.ID), zap.Error(err))
			}
			continue
		}
		d := Haversine(shootGeo.Latitude, shootGeo.Longitude, originGeo.Latitude, originGeo.Longitude)
		c.DistanceKm = &d
	}

	SortCandidates(filtered, sortBy)

	if s.CacheClient != nil {
		if payload, err := json.Marshal(filtered); err == nil {
			s.CacheClient.Set(ctx, cacheKey, payload, 2*time.Minute)
		}
	}
	return filtered, nil
}

// cacheKey digests the entire ranking input, candidate slots included. Two
// shoots at the same address on different dates, or the same shoot after a
// photographer edits availability, must never share a cache entry.
func (s *DefaultRankerService) cacheKey(loc models.Address, candidates []models.PhotographerCandidate, sortBy string) string {
	payload, err := json.Marshal(struct {
		Location   string                         `json:"location"`
		SortBy     string                         `json:"sortBy"`
		Candidates []models.PhotographerCandidate `json:"candidates"`
	}{loc.Line(), sortBy, candidates})
	if err != nil {
		return fmt.Sprintf("rank:%s:%s", loc.Line(), sortBy)
	}
	return fmt.Sprintf("rank:%x", sha256.Sum256(payload))
}

func (s *DefaultRankerService) resolve(ctx context.Context, addr models.Address) (models.GeoPoint, error) {
	if addr.Geo != nil && !addr.Geo.IsZero() {
		return *addr.Geo, nil
	}
	if s.Geocoder == nil {
		return models.GeoPoint{}, fmt.Errorf("no geocoder configured")
	}
	return s.Geocoder.Geocode(ctx, addr)
}

// FilterCandidates keeps candidates matching the query against name, email,
// city or state (case-insensitive substring). An empty query keeps all.
func FilterCandidates(candidates []models.PhotographerCandidate, query string) []models.PhotographerCandidate {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]models.PhotographerCandidate, 0, len(candidates))
	for _, c := range candidates {
		if q == "" ||
			strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Email), q) ||
			strings.Contains(strings.ToLower(c.OriginAddress.City), q) ||
			strings.Contains(strings.ToLower(c.OriginAddress.State), q) {
			out = append(out, c)
		}
	}
	return out
}

// SortCandidates orders candidates in place: ascending distance with unknown
// distances last, or lexicographic name.
func SortCandidates(candidates []models.PhotographerCandidate, sortBy string) {
	switch sortBy {
	case SortByName:
		sort.SliceStable(candidates, func(i, j int) bool {
			return strings.ToLower(candidates[i].Name) < strings.ToLower(candidates[j].Name)
		})
	default:
		sort.SliceStable(candidates, func(i, j int) bool {
			di, dj := candidates[i].DistanceKm, candidates[j].DistanceKm
			if di == nil {
				return false
			}
			if dj == nil {
				return true
			}
			return *di < *dj
		})
	}
}

// Haversine calculates the great-circle distance (in km) between two lat/lon points.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	const R = 6371
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return R * c
}
