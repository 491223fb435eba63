package attendance

import "time"

type ClockInRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Address   string   `json:"address" binding:"max=500"`
	Source    string   `json:"source" binding:"omitempty,oneof=WEB MOBILE"`
	Notes     *string  `json:"notes" binding:"omitempty,max=1000"`
}

type ClockOutRequest struct {
	Notes *string `json:"notes" binding:"omitempty,max=1000"`
}

type CheckLocationRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
}

type GeofenceCheckResponse struct {
	DistanceMeters int64   `json:"distance_meters"`
	WithinRadius   bool    `json:"within_radius"`
	RadiusMeters   float64 `json:"radius_meters"`
	EnforceRadius  bool    `json:"enforce_radius"`
	OfficeAddress  string  `json:"office_address,omitempty"`
}

// GetAttendancesFilterRequest dates use YYYY-MM-DD and are inclusive.
type GetAttendancesFilterRequest struct {
	From       string `form:"from"`
	To         string `form:"to"`
	EmployeeID string `form:"employee_id"`
	Status     string `form:"status" binding:"omitempty,oneof=PRESENT LATE ABSENT"`
}

type AttendanceQueryFilter struct {
	EmployeeID string
	Status     string
	From       *time.Time
	To         *time.Time
}

type LocationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

type AttendanceResponse struct {
	ID             string            `json:"id"`
	CompanyID      string            `json:"company_id"`
	EmployeeID     string            `json:"employee_id"`
	EmployeeName   string            `json:"employee_name,omitempty"`
	AttendanceDate string            `json:"attendance_date"`
	Status         string            `json:"status"`
	ClockIn        *string           `json:"clock_in,omitempty"`
	ClockOut       *string           `json:"clock_out,omitempty"`
	Location       *LocationResponse `json:"location,omitempty"`
	DistanceMeters *int64            `json:"distance_meters,omitempty"`
	WithinRadius   *bool             `json:"within_radius,omitempty"`
	Source         string            `json:"source"`
	Notes          *string           `json:"notes,omitempty"`
}

type MarkAbsentResult struct {
	Date   string `json:"date"`
	Marked int64  `json:"marked"`
}

type ExportFile struct {
	FileName string
	Content  []byte
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.Format(time.RFC3339)
	return &v
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:             a.ID.String(),
		CompanyID:      a.CompanyID.String(),
		EmployeeID:     a.EmployeeID.String(),
		EmployeeName:   a.employeeName(),
		AttendanceDate: a.AttendanceDate.Format(time.DateOnly),
		Status:         a.Status,
		ClockIn:        formatTime(a.ClockIn),
		ClockOut:       formatTime(a.ClockOut),
		DistanceMeters: a.DistanceMeters,
		WithinRadius:   a.WithinRadius,
		Source:         a.Source,
		Notes:          a.Notes,
	}
	if a.Latitude != nil && a.Longitude != nil {
		resp.Location = &LocationResponse{Latitude: *a.Latitude, Longitude: *a.Longitude}
		if a.Address != nil {
			resp.Location.Address = *a.Address
		}
	}
	return resp
}

func mapToListResponse(rows []Attendance) []AttendanceResponse {
	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res
}
