package roster

import (
	"strconv"

	"github.com/couchcryptid/quake-impact-service/internal/domain"
)

// Reference county names.
const (
	CountySanFrancisco = "San Francisco"
	CountySanMateo     = "San Mateo"
)

// ReferenceEpicenter is the downtown San Francisco point used by the default scenario.
var ReferenceEpicenter = domain.Geo{Lat: 37.7949, Lon: -122.4194}

type refEntry struct {
	name     string
	typ      domain.StructuralType
	stories  int
	year     int
	lat, lon float64
	elderly  float64
	poverty  float64
	density  float64
	sovi     float64
}

var sanFrancisco = []refEntry{
	{"Transamerica Pyramid", domain.ModernSeismic, 48, 1972, 37.7952, -122.4028, 18, 9, 15000, 0.30},
	{"Salesforce Tower", domain.ModernSeismic, 61, 2018, 37.7897, -122.3968, 15, 8, 18000, 0.25},
	{"Financial District Office", domain.Steel, 30, 1985, 37.7933, -122.3968, 16, 10, 16000, 0.30},
	{"Bayview-Hunters Point Apartment", domain.Masonry, 4, 1955, 37.7299, -122.3880, 22, 28, 8500, 0.85},
	{"Visitacion Valley Housing", domain.Wood, 3, 1940, 37.7130, -122.4040, 26, 24, 9000, 0.82},
	{"Chinatown Building", domain.Masonry, 5, 1910, 37.7948, -122.4078, 38, 20, 22000, 0.75},
	{"Marina District House", domain.Wood, 2, 1925, 37.8021, -122.4383, 28, 7, 12000, 0.55},
	{"SOMA Warehouse", domain.Concrete, 3, 1960, 37.7758, -122.4128, 14, 12, 11000, 0.40},
	{"Civic Center Building", domain.Concrete, 8, 1955, 37.7799, -122.4193, 32, 22, 9500, 0.72},
	{"Modern Condo (SOMA)", domain.ModernSeismic, 12, 2015, 37.7794, -122.4039, 12, 6, 13000, 0.28},
	{"Sunset District Home", domain.Wood, 2, 1950, 37.7536, -122.4663, 30, 11, 7500, 0.58},
	{"Richmond District Duplex", domain.Wood, 3, 1940, 37.7796, -122.4687, 29, 10, 8000, 0.56},
	{"Hayes Valley Apartment", domain.Masonry, 4, 1915, 37.7755, -122.4238, 24, 16, 13500, 0.65},
	{"Nob Hill High-rise", domain.Steel, 25, 1978, 37.7925, -122.4152, 35, 8, 14500, 0.48},
	{"Embarcadero Office", domain.ModernSeismic, 20, 2005, 37.7946, -122.3965, 17, 9, 15500, 0.32},
}

var sanMateo = []refEntry{
	{"Pacifica Coastal Home", domain.Wood, 2, 1965, 37.6139, -122.4869, 31, 9, 3800, 0.62},
	{"Daly City Apartment", domain.Concrete, 5, 1970, 37.7058, -122.4664, 27, 11, 9500, 0.58},
	{"South San Francisco Office", domain.Steel, 8, 1988, 37.6547, -122.4077, 23, 8, 7200, 0.45},
	{"East Palo Alto Community Building", domain.Masonry, 3, 1962, 37.4688, -122.1411, 18, 19, 6500, 0.78},
	{"San Bruno Residential", domain.Wood, 3, 1955, 37.6305, -122.4111, 25, 10, 8800, 0.54},
	{"Millbrae Station Area", domain.Concrete, 4, 1975, 37.5985, -122.3867, 28, 7, 6900, 0.48},
	{"Half Moon Bay House", domain.Wood, 2, 1968, 37.4636, -122.4286, 33, 8, 2100, 0.58},
	{"Redwood City Apartment", domain.ModernSeismic, 6, 2010, 37.4852, -122.2364, 21, 9, 5800, 0.38},
	{"San Mateo Downtown Office", domain.Steel, 12, 1982, 37.5630, -122.3255, 24, 8, 7400, 0.42},
	{"Foster City Condo", domain.ModernSeismic, 8, 2008, 37.5585, -122.2711, 26, 5, 4900, 0.35},
}

// Reference returns the 25-building San Francisco and San Mateo roster with
// IDs "1" through "25". Each call returns a fresh slice.
func Reference() []domain.Building {
	out := make([]domain.Building, 0, len(sanFrancisco)+len(sanMateo))
	add := func(county string, entries []refEntry) {
		for _, e := range entries {
			out = append(out, domain.Building{
				ID:             strconv.Itoa(len(out) + 1),
				Name:           e.name,
				Location:       &domain.Geo{Lat: e.lat, Lon: e.lon},
				Type:           e.typ,
				Stories:        e.stories,
				YearBuilt:      e.year,
				County:         county,
				ElderlyPct:     e.elderly,
				PovertyPct:     e.poverty,
				DensityPerSqMi: e.density,
				SoVI:           e.sovi,
			})
		}
	}
	add(CountySanFrancisco, sanFrancisco)
	add(CountySanMateo, sanMateo)
	return out
}
