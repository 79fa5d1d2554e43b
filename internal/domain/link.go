package domain

import "strconv"

const directionsBaseURL = "https://www.google.com/maps/dir/?api=1&destination="

// DirectionsURL builds a Google Maps directions deep link to the coordinates.
// Coordinates are written in their shortest decimal form and are not range
// checked.
func DirectionsURL(lat, lng float64) string {
	return directionsBaseURL + formatCoord(lat) + "," + formatCoord(lng)
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
