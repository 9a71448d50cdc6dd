package ranking

import "shootflow/models"

// AvailabilityStrip partitions the fixed 08:00–20:00 window into one-hour
// segments and marks each segment free when any net available slot overlaps
// it. The result always has models.StripSegments entries so the dialog can
// render a fixed-width busy/free strip.
func AvailabilityStrip(netSlots []models.AvailabilitySlot) []bool {
	segments := make([]bool, models.StripSegments)
	for i := range segments {
		segStart := models.StripStartMinutes + i*60
		segEnd := segStart + 60
		for _, slot := range netSlots {
			if slot.Overlaps(segStart, segEnd) {
				segments[i] = true
				break
			}
		}
	}
	return segments
}

// NetAvailableSlots subtracts booked windows from a photographer's declared
// availability, producing the net windows the strip and ranking use.
func NetAvailableSlots(declared []models.AvailabilitySlot, booked []models.AvailabilitySlot) []models.AvailabilitySlot {
	var net []models.AvailabilitySlot
	for _, d := range declared {
		remaining := []models.AvailabilitySlot{d}
		for _, b := range booked {
			var next []models.AvailabilitySlot
			for _, r := range remaining {
				next = append(next, subtract(r, b)...)
			}
			remaining = next
		}
		net = append(net, remaining...)
	}
	return net
}

// subtract removes the booked window from one availability slot, returning
// zero, one or two remaining fragments.
func subtract(slot, booked models.AvailabilitySlot) []models.AvailabilitySlot {
	if !slot.Overlaps(booked.Start, booked.End) {
		return []models.AvailabilitySlot{slot}
	}
	var out []models.AvailabilitySlot
	if booked.Start > slot.Start {
		out = append(out, models.AvailabilitySlot{Date: slot.Date, Start: slot.Start, End: booked.Start})
	}
	if booked.End < slot.End {
		out = append(out, models.AvailabilitySlot{Date: slot.Date, Start: booked.End, End: slot.End})
	}
	return out
}
