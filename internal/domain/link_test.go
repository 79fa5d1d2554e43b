package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionsURL(t *testing.T) {
	tests := []struct {
		name     string
		lat, lng float64
		expected string
	}{
		{"whole degrees", 41.0, 29.0, "https://www.google.com/maps/dir/?api=1&destination=41,29"},
		{"fractional", 36.2021, 36.1604, "https://www.google.com/maps/dir/?api=1&destination=36.2021,36.1604"},
		{"negative", -33.8688, 151.2093, "https://www.google.com/maps/dir/?api=1&destination=-33.8688,151.2093"},
		{"out of range passes through", 123.5, -200, "https://www.google.com/maps/dir/?api=1&destination=123.5,-200"},
		{"zero", 0, 0, "https://www.google.com/maps/dir/?api=1&destination=0,0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DirectionsURL(tt.lat, tt.lng))
		})
	}
}

func TestDirectionsURL_NaN(t *testing.T) {
	assert.Equal(t, "https://www.google.com/maps/dir/?api=1&destination=NaN,1", DirectionsURL(math.NaN(), 1))
}
