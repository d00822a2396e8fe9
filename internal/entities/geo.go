package entities

import "math"

type GeoPoint struct {
	Lat float64
	Lon float64
}

// Valid проверяет что координаты конечные и в пределах диапазона WGS84.
func (p GeoPoint) Valid() bool {
	if math.IsNaN(p.Lat) || math.IsInf(p.Lat, 0) {
		return false
	}
	if math.IsNaN(p.Lon) || math.IsInf(p.Lon, 0) {
		return false
	}
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}
