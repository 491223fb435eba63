package events

import "time"

const (
	GeofenceViolatedTopic     = "hr.attendance.geofence.violated.v1"
	GeofenceViolatedEventType = "attendance.geofence_violated"
)

// GeofenceViolatedEvent is emitted when a clock-in is accepted outside the
// office radius because the company does not enforce it.
type GeofenceViolatedEvent struct {
	EventType      string    `json:"event_type"`
	AttendanceID   string    `json:"attendance_id"`
	CompanyID      string    `json:"company_id"`
	EmployeeID     string    `json:"employee_id"`
	EmployeeName   string    `json:"employee_name"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	Address        string    `json:"address,omitempty"`
	DistanceMeters int64     `json:"distance_meters"`
	RadiusMeters   float64   `json:"radius_meters"`
	OccurredAt     time.Time `json:"occurred_at"`
}
