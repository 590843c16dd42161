package places

import (
	"context"
	"math"
	"strings"
)

const earthRadiusKm = 6371.0

type capital struct {
	city, country string
	lat, lon      float64
}

var capitals = []capital{
	{"Abu Dhabi", "United Arab Emirates", 24.47, 54.37},
	{"Amsterdam", "Netherlands", 52.37, 4.89},
	{"Ankara", "Turkey", 39.93, 32.86},
	{"Athens", "Greece", 37.98, 23.73},
	{"Bangkok", "Thailand", 13.75, 100.52},
	{"Beijing", "China", 39.92, 116.38},
	{"Berlin", "Germany", 52.52, 13.40},
	{"Bern", "Switzerland", 46.92, 7.47},
	{"Bogotá", "Colombia", 4.71, -74.07},
	{"Brasília", "Brazil", -15.79, -47.88},
	{"Bratislava", "Slovakia", 48.15, 17.12},
	{"Brussels", "Belgium", 50.83, 4.33},
	{"Bucharest", "Romania", 44.43, 26.10},
	{"Budapest", "Hungary", 47.50, 19.08},
	{"Buenos Aires", "Argentina", -34.58, -58.67},
	{"Cairo", "Egypt", 30.05, 31.25},
	{"Canberra", "Australia", -35.27, 149.13},
	{"Chișinău", "Moldova", 47.01, 28.90},
	{"Copenhagen", "Denmark", 55.67, 12.58},
	{"Dublin", "Ireland", 53.32, -6.23},
	{"Helsinki", "Finland", 60.17, 24.93},
	{"Jakarta", "Indonesia", -6.17, 106.82},
	{"Kyiv", "Ukraine", 50.43, 30.52},
	{"Lisbon", "Portugal", 38.72, -9.13},
	{"Ljubljana", "Slovenia", 46.05, 14.52},
	{"London", "United Kingdom", 51.50, -0.08},
	{"Madrid", "Spain", 40.40, -3.68},
	{"Mexico City", "Mexico", 19.43, -99.13},
	{"Moscow", "Russia", 55.75, 37.60},
	{"Nairobi", "Kenya", -1.28, 36.82},
	{"New Delhi", "India", 28.60, 77.20},
	{"Oslo", "Norway", 59.92, 10.75},
	{"Ottawa", "Canada", 45.42, -75.70},
	{"Paris", "France", 48.87, 2.33},
	{"Prague", "Czechia", 50.08, 14.47},
	{"Reykjavik", "Iceland", 64.15, -21.95},
	{"Riga", "Latvia", 56.95, 24.10},
	{"Rome", "Italy", 41.90, 12.48},
	{"Seoul", "South Korea", 37.55, 126.98},
	{"Sofia", "Bulgaria", 42.68, 23.32},
	{"Stockholm", "Sweden", 59.33, 18.05},
	{"Tallinn", "Estonia", 59.43, 24.72},
	{"Tokyo", "Japan", 35.68, 139.75},
	{"Vienna", "Austria", 48.20, 16.37},
	{"Vilnius", "Lithuania", 54.68, 25.32},
	{"Warsaw", "Poland", 52.25, 21.00},
	{"Washington, D.C.", "United States", 38.89, -77.05},
	{"Wellington", "New Zealand", -41.30, 174.78},
	{"Zagreb", "Croatia", 45.80, 16.00},
}

// Gazetteer is an offline Geocoder over a table of world capitals.
type Gazetteer struct{}

func NewGazetteer() *Gazetteer {
	return &Gazetteer{}
}

// Geocode matches text case-insensitively as a prefix of the capital or of
// its country, in table order.
func (g *Gazetteer) Geocode(ctx context.Context, text string) ([]Place, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(text))
	if q == "" {
		return nil, nil
	}

	var out []Place
	for _, c := range capitals {
		if strings.HasPrefix(strings.ToLower(c.city), q) || strings.HasPrefix(strings.ToLower(c.country), q) {
			out = append(out, c.place())
		}
	}
	return out, nil
}

// ReverseGeocode returns the capital nearest to at. Coordinates that are not
// finite match nothing.
func (g *Gazetteer) ReverseGeocode(ctx context.Context, at Coordinates) ([]Place, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	best, bestDist := -1, math.Inf(1)
	for i, c := range capitals {
		if d := Distance(at, Coordinates{Latitude: c.lat, Longitude: c.lon}); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return nil, nil
	}
	return []Place{capitals[best].place()}, nil
}

func (c capital) place() Place {
	return Place{
		City:        c.city,
		Country:     c.country,
		Coordinates: Coordinates{Latitude: c.lat, Longitude: c.lon},
	}
}

// Distance is the great-circle distance between a and b in kilometres.
func Distance(a, b Coordinates) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := lat2 - lat1
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}
