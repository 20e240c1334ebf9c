package domain

import "math"

// Attenuation coefficients for log10(PGA) = c1 + c2(M-6) + c3(M-6)^2 - c4 log10(R) - c5 R.
const (
	attC1 = 0.321
	attC2 = 0.55
	attC3 = 0.02
	attC4 = 1.0
	attC5 = 0.002

	// MinDistanceKm floors the hypocentral distance fed to the attenuation relation.
	MinDistanceKm = 1.0
	// MaxPGA caps near-field acceleration, in g.
	MaxPGA = 1.5

	earthRadiusKm = 6371.0
)

// PGA returns peak ground acceleration in g at the given epicentral distance
// from an event of the given magnitude and depth. Negative distance or depth
// is treated as zero.
func PGA(magnitude, distanceKm, depthKm float64) float64 {
	r := HypocentralDistance(distanceKm, depthKm)
	dm := magnitude - 6
	logPGA := attC1 + attC2*dm + attC3*dm*dm - attC4*math.Log10(r) - attC5*r
	return math.Min(math.Pow(10, logPGA), MaxPGA)
}

// HypocentralDistance combines epicentral distance and depth into the
// straight-line distance to the rupture, floored at MinDistanceKm.
func HypocentralDistance(epicentralKm, depthKm float64) float64 {
	d := math.Max(epicentralKm, 0)
	h := math.Max(depthKm, 0)
	return math.Max(math.Hypot(d, h), MinDistanceKm)
}

// Distance returns the great-circle (haversine) distance between two points in km.
func Distance(a, b Geo) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}
