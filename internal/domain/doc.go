// Package domain models earthquake shaking and building impact for a fixed
// roster of buildings under a single earthquake scenario.
//
// # Ground Motion
//
// Peak ground acceleration (PGA, in g) follows a simplified Boore-Atkinson
// style log-linear relation:
//
//	log10(PGA) = c1 + c2·(M−6) + c3·(M−6)² − c4·log10(R) − c5·R
//
//	c1 = 0.321, c2 = 0.55, c3 = 0.02, c4 = 1.0, c5 = 0.002
//
// R is the hypocentral distance sqrt(epicentral² + depth²) in km, floored at
// 1 km so a building sitting on the epicenter of a zero-depth event still gets
// a finite value. Depth enters only through R. Results are capped at 1.5 g.
// The relation is non-decreasing in magnitude over 0–10 and decreasing in R.
//
// Epicentral distance is the haversine great-circle distance on a sphere of
// radius 6371 km.
//
// # Wave Fronts
//
// P waves travel at 6.0 km/s and S waves at 3.5 km/s. Strong shaking starts
// with the S arrival and lasts 10 + (M−5)·8 seconds.
//
// # Damage
//
// Each structural type carries a fragility capacity in g. The damage ratio is
//
//	ratio = 1 − exp(−(PGA·height / capacity)²)
//
// where height is 0.8 for 1–3 stories, 1.0 for 4–10 and 1.2 above. Known
// construction years reduce capacity by 0.5% per year of age relative to
// 2025, at most 30%. PGA under 0.02 g does no damage.
//
//	wood 0.45 g | masonry 0.25 g | concrete 0.55 g | steel 0.70 g | modern_seismic 1.00 g
//
// Ratios map onto FEMA HAZUS states with inclusive lower bounds:
//
//	None <0.05 | Slight <0.15 | Moderate <0.30 | Extensive <0.60 | Severe <0.90 | Collapse
//
// # Social Vulnerability
//
// The recovery multiplier starts at 1.0 and adds 0.3 for elderly share above
// 25%, 0.3 for poverty above 15%, 0.2 for density above 10,000 per square
// mile and up to 0.4 scaled by the SoVI score. Base recovery days per state
// are 0, 7, 30, 90, 180 and 365; the multiplier scales them and the result is
// rounded to whole days.
//
// The combined vulnerability score is damage percent weighted by the
// multiplier relative to its 2.2 ceiling, giving a 0–100 scale.
package domain
