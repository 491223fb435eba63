package company

import (
	"time"

	"go-hrportal/internal/geofence"

	"github.com/google/uuid"
)

// OfficeLocation is the single attendance geofence of a company.
type OfficeLocation struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID     uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	Latitude      float64    `gorm:"type:double precision;not null"`
	Longitude     float64    `gorm:"type:double precision;not null"`
	RadiusMeters  float64    `gorm:"type:double precision;not null"`
	Address       string     `gorm:"type:text"`
	EnforceRadius bool       `gorm:"not null;default:false"`
	UpdatedBy     *uuid.UUID `gorm:"type:uuid"`
	CreatedAt     time.Time  `gorm:"not null;default:now()"`
	UpdatedAt     time.Time  `gorm:"not null;default:now()"`
}

func (OfficeLocation) TableName() string {
	return "office_locations"
}

func (o OfficeLocation) Office() geofence.Office {
	return geofence.Office{
		Point:        geofence.Point{Lat: o.Latitude, Lng: o.Longitude},
		RadiusMeters: o.RadiusMeters,
	}
}
