package geofence_test

import (
	"errors"
	"math"
	"testing"

	"go-hrportal/internal/geofence"
	"go-hrportal/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
)

var jakartaOffice = geofence.Point{Lat: -6.2088, Lng: 106.8456}

func TestEvaluate_Scenarios(t *testing.T) {
	t.Run("employee near office is within radius", func(t *testing.T) {
		res, err := geofence.Evaluate(
			geofence.Office{Point: jakartaOffice, RadiusMeters: 100},
			geofence.Point{Lat: -6.2090, Lng: 106.8460},
		)

		assert.NoError(t, err)
		assert.InDelta(t, 52, res.DistanceMeters, 5)
		assert.Equal(t, int64(math.Round(res.DistanceMeters)), res.DisplayMeters)
		assert.True(t, res.WithinRadius)
	})

	t.Run("employee 200m away is outside a 50m radius", func(t *testing.T) {
		res, err := geofence.Evaluate(
			geofence.Office{Point: jakartaOffice, RadiusMeters: 50},
			geofence.Point{Lat: jakartaOffice.Lat + 0.0018, Lng: jakartaOffice.Lng},
		)

		assert.NoError(t, err)
		assert.InDelta(t, 200, res.DistanceMeters, 2)
		assert.False(t, res.WithinRadius)
	})

	t.Run("same point is distance zero", func(t *testing.T) {
		res, err := geofence.Evaluate(geofence.Office{Point: jakartaOffice, RadiusMeters: 1}, jakartaOffice)

		assert.NoError(t, err)
		assert.Equal(t, 0.0, res.DistanceMeters)
		assert.True(t, res.WithinRadius)
	})

	t.Run("boundary uses full precision", func(t *testing.T) {
		loc := geofence.Point{Lat: -6.2090, Lng: 106.8460}
		d := geofence.Distance(jakartaOffice, loc)

		// radius equal to the rounded display value but below the true distance
		radius := math.Floor(d)
		res, err := geofence.Evaluate(geofence.Office{Point: jakartaOffice, RadiusMeters: radius}, loc)
		assert.NoError(t, err)
		assert.False(t, res.WithinRadius)

		res, err = geofence.Evaluate(geofence.Office{Point: jakartaOffice, RadiusMeters: d}, loc)
		assert.NoError(t, err)
		assert.True(t, res.WithinRadius)
	})
}

func TestDistance_Symmetric(t *testing.T) {
	pairs := [][2]geofence.Point{
		{jakartaOffice, {Lat: -6.2090, Lng: 106.8460}},
		{{Lat: 51.5074, Lng: -0.1278}, {Lat: 40.7128, Lng: -74.0060}},
		{{Lat: 89.9, Lng: 179.9}, {Lat: -89.9, Lng: -179.9}},
		{{Lat: 0, Lng: 0}, {Lat: 0, Lng: 180}},
	}

	for _, p := range pairs {
		assert.Equal(t, geofence.Distance(p[0], p[1]), geofence.Distance(p[1], p[0]))
	}
}

func TestDistance_Antipodal(t *testing.T) {
	d := geofence.Distance(geofence.Point{Lat: 0, Lng: 0}, geofence.Point{Lat: 0, Lng: 180})
	assert.InDelta(t, math.Pi*geofence.EarthRadiusMeters, d, 1)
}

func TestEvaluate_WithinRadiusMonotonic(t *testing.T) {
	loc := geofence.Point{Lat: -6.2100, Lng: 106.8470}

	prev := true
	for radius := 1000.0; radius >= 1; radius -= 7 {
		res, err := geofence.Evaluate(geofence.Office{Point: jakartaOffice, RadiusMeters: radius}, loc)
		assert.NoError(t, err)
		if !prev {
			assert.False(t, res.WithinRadius, "radius %.0f flipped back inside", radius)
		}
		prev = res.WithinRadius
	}
	assert.False(t, prev)
}

func TestEvaluate_InvalidInput(t *testing.T) {
	valid := geofence.Point{Lat: -6.2090, Lng: 106.8460}

	tests := []struct {
		name   string
		office geofence.Office
		loc    geofence.Point
	}{
		{"nan latitude", geofence.Office{Point: jakartaOffice, RadiusMeters: 100}, geofence.Point{Lat: math.NaN(), Lng: 106.8}},
		{"inf longitude", geofence.Office{Point: jakartaOffice, RadiusMeters: 100}, geofence.Point{Lat: -6.2, Lng: math.Inf(1)}},
		{"latitude out of range", geofence.Office{Point: jakartaOffice, RadiusMeters: 100}, geofence.Point{Lat: 91, Lng: 0}},
		{"longitude out of range", geofence.Office{Point: jakartaOffice, RadiusMeters: 100}, geofence.Point{Lat: 0, Lng: -181}},
		{"office nan", geofence.Office{Point: geofence.Point{Lat: math.NaN(), Lng: 0}, RadiusMeters: 100}, valid},
		{"zero radius", geofence.Office{Point: jakartaOffice, RadiusMeters: 0}, valid},
		{"negative radius", geofence.Office{Point: jakartaOffice, RadiusMeters: -5}, valid},
		{"infinite radius", geofence.Office{Point: jakartaOffice, RadiusMeters: math.Inf(1)}, valid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := geofence.Evaluate(tt.office, tt.loc)

			assert.Error(t, err)
			assert.True(t, errors.Is(err, geofence.ErrInvalidCoordinate))
			assert.True(t, apperror.Is(err, apperror.CodeInvalidInput))
			assert.Equal(t, 400, apperror.ToHTTP(err).Status)
		})
	}
}
