package models

// Fixed window for the availability strip shown in the assignment dialog:
// twelve one-hour segments between 08:00 and 20:00.
const (
	StripStartMinutes = 8 * 60
	StripEndMinutes   = 20 * 60
	StripSegments     = (StripEndMinutes - StripStartMinutes) / 60
)

// PhotographerCandidate is the ephemeral ranking view of a photographer for
// one shoot. It is recomputed each time the assignment dialog opens and is
// never persisted.
type PhotographerCandidate struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	Email          string             `json:"email"`
	AvatarURL      string             `json:"avatar_url,omitempty"`
	OriginAddress  Address            `json:"origin_address"`
	DistanceKm     *float64           `json:"distance_km,omitempty"`
	AvailableSlots []AvailabilitySlot `json:"available_slots,omitempty"`
	NetSlots       []AvailabilitySlot `json:"net_available_slots,omitempty"`
	SegmentsFree   []bool             `json:"segments_free"`
	ShootsToday    int                `json:"shoots_today"`
}
