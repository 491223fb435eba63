// Package geofence decides whether a recorded coordinate falls inside an
// office's allowed radius and how far from the office it was taken.
package geofence

import (
	"fmt"
	"math"
	"net/http"

	"go-hrportal/internal/shared/apperror"
)

// EarthRadiusMeters is the IUGG mean earth radius.
const EarthRadiusMeters = 6371008.8

var ErrInvalidCoordinate = apperror.New(
	apperror.CodeInvalidInput,
	"invalid coordinate",
	http.StatusBadRequest,
)

type Point struct {
	Lat float64
	Lng float64
}

type Office struct {
	Point
	RadiusMeters float64
}

type Result struct {
	DistanceMeters float64
	DisplayMeters  int64
	WithinRadius   bool
}

// Evaluate compares loc with the office circle. The radius comparison uses the
// unrounded distance; DisplayMeters is only for presentation.
func Evaluate(office Office, loc Point) (Result, error) {
	if err := ValidateOffice(office); err != nil {
		return Result{}, err
	}
	if err := validatePoint("location", loc); err != nil {
		return Result{}, err
	}

	d := Distance(office.Point, loc)
	return Result{
		DistanceMeters: d,
		DisplayMeters:  int64(math.Round(d)),
		WithinRadius:   d <= office.RadiusMeters,
	}, nil
}

// Distance returns the haversine great-circle distance in meters. Inputs are
// assumed valid; use Evaluate for untrusted coordinates.
func Distance(a, b Point) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng
	// rounding can push h a hair past 1 for antipodal points
	h = math.Min(1, h)

	return 2 * EarthRadiusMeters * math.Asin(math.Sqrt(h))
}

func ValidatePoint(p Point) error {
	return validatePoint("location", p)
}

// ValidateOffice checks the office centre and that the radius is a finite
// value greater than zero.
func ValidateOffice(o Office) error {
	if err := validatePoint("office", o.Point); err != nil {
		return err
	}
	if !isFinite(o.RadiusMeters) || o.RadiusMeters <= 0 {
		return apperror.InvalidInput("office radius must be a finite value greater than zero", ErrInvalidCoordinate)
	}
	return nil
}

func validatePoint(name string, p Point) error {
	if !isFinite(p.Lat) || !isFinite(p.Lng) {
		return apperror.InvalidInput(fmt.Sprintf("%s coordinates must be finite numbers", name), ErrInvalidCoordinate)
	}
	if p.Lat < -90 || p.Lat > 90 {
		return apperror.InvalidInput(fmt.Sprintf("%s latitude must be between -90 and 90", name), ErrInvalidCoordinate)
	}
	if p.Lng < -180 || p.Lng > 180 {
		return apperror.InvalidInput(fmt.Sprintf("%s longitude must be between -180 and 180", name), ErrInvalidCoordinate)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
