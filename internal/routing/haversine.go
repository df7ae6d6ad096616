package routing

import "math"

// earthRadiusKm is the mean Earth radius used for great-circle distance.
const earthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance in kilometers between two
// latitude/longitude pairs.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	rlat1 := degreesToRadians(lat1)
	rlat2 := degreesToRadians(lat2)
	dlat := degreesToRadians(lat2 - lat1)
	dlon := degreesToRadians(lon2 - lon1)

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(rlat1)*math.Cos(rlat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
