package ranking

import (
	"testing"

	"shootflow/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slot(startHour, endHour int) models.AvailabilitySlot {
	return models.AvailabilitySlot{Date: "2026-09-07", Start: startHour * 60, End: endHour * 60}
}

func TestAvailabilityStripMarksOverlappingSegments(t *testing.T) {
	segments := AvailabilityStrip([]models.AvailabilitySlot{slot(9, 11)})

	require.Len(t, segments, models.StripSegments)
	assert.False(t, segments[0]) // 08:00
	assert.True(t, segments[1])  // 09:00
	assert.True(t, segments[2])  // 10:00
	for i := 3; i < models.StripSegments; i++ {
		assert.False(t, segments[i], "segment %d should be busy", i)
	}
}

func TestAvailabilityStripBoundariesAreExclusive(t *testing.T) {
	// A slot ending exactly at a segment's start does not free that segment.
	segments := AvailabilityStrip([]models.AvailabilitySlot{slot(8, 9)})
	assert.True(t, segments[0])
	assert.False(t, segments[1])

	// A 15-minute sliver still frees the segment it touches.
	sliver := models.AvailabilitySlot{Start: 10*60 + 45, End: 11 * 60}
	segments = AvailabilityStrip([]models.AvailabilitySlot{sliver})
	assert.True(t, segments[2])
	assert.False(t, segments[3])
}

func TestAvailabilityStripEmptySlots(t *testing.T) {
	segments := AvailabilityStrip(nil)
	require.Len(t, segments, models.StripSegments)
	for _, free := range segments {
		assert.False(t, free)
	}
}

func TestAvailabilityStripIgnoresOutOfWindowSlots(t *testing.T) {
	// Early morning and late evening work never shows on the strip.
	segments := AvailabilityStrip([]models.AvailabilitySlot{slot(5, 8), slot(20, 23)})
	for _, free := range segments {
		assert.False(t, free)
	}
}

func TestNetAvailableSlotsSplitsAroundBooking(t *testing.T) {
	declared := []models.AvailabilitySlot{slot(8, 20)}
	booked := []models.AvailabilitySlot{slot(10, 11)}

	net := NetAvailableSlots(declared, booked)
	require.Len(t, net, 2)
	assert.Equal(t, 8*60, net[0].Start)
	assert.Equal(t, 10*60, net[0].End)
	assert.Equal(t, 11*60, net[1].Start)
	assert.Equal(t, 20*60, net[1].End)
}

func TestNetAvailableSlotsFullyBooked(t *testing.T) {
	declared := []models.AvailabilitySlot{slot(9, 12)}
	booked := []models.AvailabilitySlot{slot(8, 13)}

	assert.Empty(t, NetAvailableSlots(declared, booked))
}

func TestNetAvailableSlotsMultipleBookings(t *testing.T) {
	declared := []models.AvailabilitySlot{slot(8, 20)}
	booked := []models.AvailabilitySlot{slot(9, 10), slot(14, 16)}

	net := NetAvailableSlots(declared, booked)
	require.Len(t, net, 3)
	assert.Equal(t, 8*60, net[0].Start)
	assert.Equal(t, 9*60, net[0].End)
	assert.Equal(t, 10*60, net[1].Start)
	assert.Equal(t, 14*60, net[1].End)
	assert.Equal(t, 16*60, net[2].Start)
	assert.Equal(t, 20*60, net[2].End)
}

func TestNetAvailableSlotsTouchingBookingDoesNotCut(t *testing.T) {
	declared := []models.AvailabilitySlot{slot(8, 12)}
	booked := []models.AvailabilitySlot{slot(12, 13)}

	net := NetAvailableSlots(declared, booked)
	require.Len(t, net, 1)
	assert.Equal(t, declared[0], net[0])
}
