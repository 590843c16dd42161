package places

import (
	"context"
	"strings"
)

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Place is one geocoding result. Any field may be empty.
type Place struct {
	City      string
	Subregion string
	Region    string
	District  string
	Name      string
	Country   string

	Coordinates Coordinates
}

type Geocoder interface {
	Geocode(ctx context.Context, text string) ([]Place, error)
	ReverseGeocode(ctx context.Context, at Coordinates) ([]Place, error)
}

// Label renders a place as "<locality>, <country>", dropping whichever part
// is missing. The locality is the most specific non-empty name.
func Label(p Place) string {
	var parts []string
	for _, locality := range []string{p.City, p.Subregion, p.Region, p.District, p.Name} {
		if locality = strings.TrimSpace(locality); locality != "" {
			parts = append(parts, locality)
			break
		}
	}
	if country := strings.TrimSpace(p.Country); country != "" {
		parts = append(parts, country)
	}
	return strings.Join(parts, ", ")
}
