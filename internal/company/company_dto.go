package company

import (
	"time"

	"go-hrportal/internal/geofence"
)

type UpdateOfficeLocationRequest struct {
	Latitude      *float64 `json:"latitude" binding:"required"`
	Longitude     *float64 `json:"longitude" binding:"required"`
	RadiusMeters  float64  `json:"radius_meters" binding:"required"`
	Address       string   `json:"address" binding:"max=500"`
	EnforceRadius bool     `json:"enforce_radius"`
}

type OfficeLocationResponse struct {
	CompanyID     string    `json:"company_id"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	RadiusMeters  float64   `json:"radius_meters"`
	Address       string    `json:"address"`
	EnforceRadius bool      `json:"enforce_radius"`
	UpdatedBy     string    `json:"updated_by,omitempty"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (r OfficeLocationResponse) Office() geofence.Office {
	return geofence.Office{
		Point:        geofence.Point{Lat: r.Latitude, Lng: r.Longitude},
		RadiusMeters: r.RadiusMeters,
	}
}

func mapToResponse(o OfficeLocation) OfficeLocationResponse {
	resp := OfficeLocationResponse{
		CompanyID:     o.CompanyID.String(),
		Latitude:      o.Latitude,
		Longitude:     o.Longitude,
		RadiusMeters:  o.RadiusMeters,
		Address:       o.Address,
		EnforceRadius: o.EnforceRadius,
		UpdatedAt:     o.UpdatedAt,
	}
	if o.UpdatedBy != nil {
		resp.UpdatedBy = o.UpdatedBy.String()
	}
	return resp
}
