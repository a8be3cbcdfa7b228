// Package stopindex derives distance-matrix and bearing data from stop
// coordinates, for callers that only have lat/lon and need to build the
// flat travel-time table and per-stop bearings the pool core requires.
// The pool core itself never computes distances — per the spec, the
// distance matrix is always a caller-supplied table — this package only
// serves test-fixture and CLI-tool construction of that table.
package stopindex

import "math"

// earthRadiusKM is the mean Earth radius, the same constant the teacher's
// recompute_distances tool uses.
const earthRadiusKM = 6371.0088

// cabSpeedKmh is the assumed average cab speed used to convert a
// great-circle distance into minutes, matching the synthetic test
// harness's CAB_SPEED constant.
const cabSpeedKmh = 30.0

// HaversineKM returns the great-circle distance between two lat/lon points
// in kilometers.
func HaversineKM(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	la1 := lat1 * math.Pi / 180
	la2 := lat2 * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(la1)*math.Cos(la2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKM * c
}

// HaversineMinutes converts the great-circle distance between two points
// into whole minutes of cab travel time at cabSpeedKmh, with a floor of one
// minute for any pair of distinct, non-collocated stops — a transfer
// always takes at least a minute, matching the synthetic harness.
func HaversineMinutes(lat1, lon1, lat2, lon2 float64) int {
	km := HaversineKM(lat1, lon1, lat2, lon2)
	minutes := km * (60.0 / cabSpeedKmh)
	m := int(minutes)
	if m == 0 && km > 0 {
		m = 1
	}
	return m
}

// InitialBearing returns the initial compass bearing, in whole degrees
// [0,360), for travel from (lat1,lon1) to (lat2,lon2). It is used to
// derive a Stop's Bearing field from real coordinates when importing stops
// from a source that has no bearing of its own (e.g. OSM extraction).
func InitialBearing(lat1, lon1, lat2, lon2 float64) int {
	la1 := lat1 * math.Pi / 180
	la2 := lat2 * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	y := math.Sin(dLon) * math.Cos(la2)
	x := math.Cos(la1)*math.Sin(la2) - math.Sin(la1)*math.Cos(la2)*math.Cos(dLon)
	deg := math.Atan2(y, x) * 180 / math.Pi
	deg = math.Mod(deg+360, 360)
	return int(math.Round(deg)) % 360
}
