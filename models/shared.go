package models

// GeoPoint holds a WGS84 coordinate pair.
type GeoPoint struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

// IsZero reports whether the point carries no coordinate.
func (g GeoPoint) IsZero() bool {
	return g.Latitude == 0 && g.Longitude == 0
}

// Address is a postal address plus optional resolved coordinates.
type Address struct {
	Street  string    `bson:"street" json:"street"`
	City    string    `bson:"city" json:"city"`
	State   string    `bson:"state" json:"state"`
	Zip     string    `bson:"zip" json:"zip"`
	Geo     *GeoPoint `bson:"geo,omitempty" json:"geo,omitempty"`
	Display string    `bson:"display,omitempty" json:"display,omitempty"`
}

// Line returns the single-line form used in pushes and logs.
func (a Address) Line() string {
	if a.Display != "" {
		return a.Display
	}
	s := a.Street
	if a.City != "" {
		s += ", " + a.City
	}
	if a.State != "" {
		s += ", " + a.State
	}
	if a.Zip != "" {
		s += " " + a.Zip
	}
	return s
}
