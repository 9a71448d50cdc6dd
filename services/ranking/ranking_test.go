package ranking

import (
	"context"
	"fmt"
	"testing"

	"shootflow/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGeocoder struct {
	points map[string]models.GeoPoint
}

func (g *stubGeocoder) Geocode(ctx context.Context, addr models.Address) (models.GeoPoint, error) {
	if p, ok := g.points[addr.Street]; ok {
		return p, nil
	}
	return models.GeoPoint{}, fmt.Errorf("no fix for %q", addr.Street)
}

func km(v float64) *float64 { return &v }

func candidate(id, name, email, city string) models.PhotographerCandidate {
	return models.PhotographerCandidate{
		ID:            id,
		Name:          name,
		Email:         email,
		OriginAddress: models.Address{Street: id + " St", City: city, State: "TX"},
	}
}

func TestFilterCandidates(t *testing.T) {
	candidates := []models.PhotographerCandidate{
		candidate("p1", "Alice Ray", "alice@example.com", "Austin"),
		candidate("p2", "Bob Chen", "bob@example.com", "Dallas"),
		candidate("p3", "Carol Diaz", "carol@shots.io", "Austin"),
	}

	assert.Len(t, FilterCandidates(candidates, ""), 3)
	assert.Len(t, FilterCandidates(candidates, "  "), 3)

	byName := FilterCandidates(candidates, "bob")
	require.Len(t, byName, 1)
	assert.Equal(t, "p2", byName[0].ID)

	byEmail := FilterCandidates(candidates, "shots.io")
	require.Len(t, byEmail, 1)
	assert.Equal(t, "p3", byEmail[0].ID)

	byCity := FilterCandidates(candidates, "austin")
	assert.Len(t, byCity, 2)

	// Every candidate is in TX.
	byState := FilterCandidates(candidates, "tx")
	assert.Len(t, byState, 3)

	assert.Empty(t, FilterCandidates(candidates, "zzz"))
}

func TestSortCandidatesByDistanceNilLast(t *testing.T) {
	candidates := []models.PhotographerCandidate{
		{ID: "far", DistanceKm: km(42)},
		{ID: "unknown-a"},
		{ID: "near", DistanceKm: km(3.5)},
		{ID: "unknown-b"},
		{ID: "mid", DistanceKm: km(17)},
	}

	SortCandidates(candidates, SortByDistance)

	ids := make([]string, len(candidates))
	for i, c := range candidates {
		ids[i] = c.ID
	}
	assert.Equal(t, []string{"near", "mid", "far", "unknown-a", "unknown-b"}, ids)
}

func TestSortCandidatesByName(t *testing.T) {
	candidates := []models.PhotographerCandidate{
		{ID: "p1", Name: "carol"},
		{ID: "p2", Name: "Alice"},
		{ID: "p3", Name: "Bob"},
	}

	SortCandidates(candidates, SortByName)

	assert.Equal(t, "Alice", candidates[0].Name)
	assert.Equal(t, "Bob", candidates[1].Name)
	assert.Equal(t, "carol", candidates[2].Name)
}

func TestHaversine(t *testing.T) {
	// One degree of longitude at the equator is about 111.2 km.
	assert.InDelta(t, 111.2, Haversine(0, 0, 0, 1), 0.3)
	assert.Equal(t, 0.0, Haversine(30.27, -97.74, 30.27, -97.74))

	// Austin to Dallas is roughly 290 km.
	assert.InDelta(t, 290, Haversine(30.2672, -97.7431, 32.7767, -96.7970), 15)
}

func TestRankComputesDistancesAndStrip(t *testing.T) {
	geo := &stubGeocoder{points: map[string]models.GeoPoint{
		"shoot St": {Latitude: 30.0, Longitude: -97.0},
		"p1 St":    {Latitude: 30.0, Longitude: -97.1},
		"p2 St":    {Latitude: 30.0, Longitude: -98.0},
	}}
	svc := &DefaultRankerService{Geocoder: geo}

	candidates := []models.PhotographerCandidate{
		candidate("p2", "Bob", "bob@example.com", "Austin"),
		candidate("p1", "Alice", "alice@example.com", "Austin"),
	}
	candidates[1].NetSlots = []models.AvailabilitySlot{{Start: 9 * 60, End: 11 * 60}}

	shootLoc := models.Address{Street: "shoot St", City: "Austin", State: "TX"}
	ranked, err := svc.Rank(context.Background(), shootLoc, candidates, SortByDistance, "")
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	// p1 is closer and must come first.
	assert.Equal(t, "p1", ranked[0].ID)
	require.NotNil(t, ranked[0].DistanceKm)
	require.NotNil(t, ranked[1].DistanceKm)
	assert.Less(t, *ranked[0].DistanceKm, *ranked[1].DistanceKm)

	// The strip is always rendered, twelve segments wide.
	require.Len(t, ranked[0].SegmentsFree, models.StripSegments)
	assert.True(t, ranked[0].SegmentsFree[1])  // 09:00–10:00
	assert.False(t, ranked[0].SegmentsFree[0]) // 08:00–09:00
}

func TestRankGeocodeFailureLeavesDistanceNil(t *testing.T) {
	geo := &stubGeocoder{points: map[string]models.GeoPoint{
		"shoot St": {Latitude: 30.0, Longitude: -97.0},
		"p1 St":    {Latitude: 30.0, Longitude: -97.1},
	}}
	svc := &DefaultRankerService{Geocoder: geo}

	candidates := []models.PhotographerCandidate{
		candidate("p1", "Alice", "alice@example.com", "Austin"),
		candidate("p2", "Bob", "bob@example.com", "Austin"), // no fix
	}

	shootLoc := models.Address{Street: "shoot St"}
	ranked, err := svc.Rank(context.Background(), shootLoc, candidates, SortByDistance, "")
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	assert.Equal(t, "p1", ranked[0].ID)
	assert.Nil(t, ranked[1].DistanceKm)
}

func TestRankUsesEmbeddedCoordinates(t *testing.T) {
	// No geocoder at all; every address already carries coordinates.
	svc := &DefaultRankerService{}

	near := candidate("p1", "Alice", "alice@example.com", "Austin")
	near.OriginAddress.Geo = &models.GeoPoint{Latitude: 30.0, Longitude: -97.1}
	far := candidate("p2", "Bob", "bob@example.com", "Austin")
	far.OriginAddress.Geo = &models.GeoPoint{Latitude: 30.0, Longitude: -99.0}

	shootLoc := models.Address{
		Street: "shoot St",
		Geo:    &models.GeoPoint{Latitude: 30.0, Longitude: -97.0},
	}
	ranked, err := svc.Rank(context.Background(), shootLoc, []models.PhotographerCandidate{far, near}, SortByDistance, "")
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "p1", ranked[0].ID)
}

func TestCacheKeyCoversCandidateAvailability(t *testing.T) {
	s := &DefaultRankerService{}
	loc := models.Address{Street: "100 Main St", City: "Austin", State: "TX"}

	booked := candidate("p1", "Alice Ray", "alice@example.com", "Austin")
	booked.NetSlots = []models.AvailabilitySlot{{Date: "2026-09-14", Start: 9 * 60, End: 11 * 60}}
	idle := candidate("p1", "Alice Ray", "alice@example.com", "Austin")

	// Same photographer set, different availability: distinct entries.
	assert.NotEqual(t,
		s.cacheKey(loc, []models.PhotographerCandidate{booked}, SortByDistance),
		s.cacheKey(loc, []models.PhotographerCandidate{idle}, SortByDistance))

	// Same slots on a different date: distinct entries.
	nextDay := booked
	nextDay.NetSlots = []models.AvailabilitySlot{{Date: "2026-09-15", Start: 9 * 60, End: 11 * 60}}
	assert.NotEqual(t,
		s.cacheKey(loc, []models.PhotographerCandidate{booked}, SortByDistance),
		s.cacheKey(loc, []models.PhotographerCandidate{nextDay}, SortByDistance))

	// Sort order and location also distinguish.
	assert.NotEqual(t,
		s.cacheKey(loc, []models.PhotographerCandidate{booked}, SortByDistance),
		s.cacheKey(loc, []models.PhotographerCandidate{booked}, SortByName))
	other := models.Address{Street: "42 Lakeview Dr", City: "Austin", State: "TX"}
	assert.NotEqual(t,
		s.cacheKey(loc, []models.PhotographerCandidate{booked}, SortByDistance),
		s.cacheKey(other, []models.PhotographerCandidate{booked}, SortByDistance))

	// Identical input stays a stable hit.
	assert.Equal(t,
		s.cacheKey(loc, []models.PhotographerCandidate{booked}, SortByDistance),
		s.cacheKey(loc, []models.PhotographerCandidate{booked}, SortByDistance))
}
