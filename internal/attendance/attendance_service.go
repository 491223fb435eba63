package attendance

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	attendanceerrors "go-hrportal/internal/attendance/errors"
	"go-hrportal/internal/company"
	companyerrors "go-hrportal/internal/company/errors"
	"go-hrportal/internal/events"
	"go-hrportal/internal/geocode"
	"go-hrportal/internal/geofence"
	"go-hrportal/internal/messaging/kafka"
	"go-hrportal/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	aggregateAttendance = "attendance"
	maxExportDays       = 93
)

// OfficeProvider resolves a company's configured office geofence.
type OfficeProvider interface {
	GetOfficeLocation(ctx context.Context, companyID string) (company.OfficeLocationResponse, error)
}

type Service interface {
	ClockIn(ctx context.Context, companyID, employeeID string, req ClockInRequest) (AttendanceResponse, error)
	ClockOut(ctx context.Context, companyID, employeeID string, req ClockOutRequest) (AttendanceResponse, error)
	CheckLocation(ctx context.Context, companyID string, req CheckLocationRequest) (GeofenceCheckResponse, error)
	GetAll(ctx context.Context, companyID, actorID string, canReadAll bool, filter GetAttendancesFilterRequest) ([]AttendanceResponse, error)
	GetByID(ctx context.Context, companyID, actorID string, canReadAll bool, id string) (AttendanceResponse, error)
	MarkAbsent(ctx context.Context, companyID, date string) (MarkAbsentResult, error)
	Export(ctx context.Context, companyID string, filter GetAttendancesFilterRequest) (ExportFile, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	offices  OfficeProvider
	outbox   kafka.OutboxRepository
	geocoder geocode.Reverser
	schedule Schedule
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, offices OfficeProvider, schedule Schedule, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, offices, nil, nil, schedule, logger...)
}

// NewServiceWithOutbox also records geofence violations in the outbox and
// fills missing addresses through geocoder. Both may be nil.
func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	offices OfficeProvider,
	outboxRepo kafka.OutboxRepository,
	geocoder geocode.Reverser,
	schedule Schedule,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	if geocoder == nil {
		geocoder = geocode.Nop()
	}
	return &service{
		db:       db,
		repo:     repo,
		offices:  offices,
		outbox:   outboxRepo,
		geocoder: geocoder,
		schedule: schedule,
		now:      time.Now,
		logger:   l,
	}
}

// officeFor returns nil when the company has not configured an office yet.
func (s *service) officeFor(ctx context.Context, companyID string) (*company.OfficeLocationResponse, error) {
	if s.offices == nil {
		return nil, nil
	}
	office, err := s.offices.GetOfficeLocation(ctx, companyID)
	if errors.Is(err, companyerrors.ErrOfficeLocationNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &office, nil
}

func parseLocation(lat, lng *float64) (*geofence.Point, error) {
	if lat == nil && lng == nil {
		return nil, nil
	}
	if lat == nil || lng == nil {
		return nil, attendanceerrors.ErrIncompleteLocation
	}
	p := geofence.Point{Lat: *lat, Lng: *lng}
	if err := geofence.ValidatePoint(p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *service) ClockIn(ctx context.Context, companyID, employeeID string, req ClockInRequest) (AttendanceResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidCompanyID
	}
	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	loc, err := parseLocation(req.Latitude, req.Longitude)
	if err != nil {
		return AttendanceResponse{}, err
	}

	employee, err := s.repo.FindEmployee(ctx, companyID, employeeID)
	if err != nil {
		return AttendanceResponse{}, err
	}

	office, err := s.officeFor(ctx, companyID)
	if err != nil {
		return AttendanceResponse{}, err
	}

	now := s.now().UTC()
	source := req.Source
	if source == "" {
		source = SourceWeb
	}

	row := &Attendance{
		ID:             uuid.New(),
		CompanyID:      companyUUID,
		EmployeeID:     employeeUUID,
		AttendanceDate: s.schedule.Date(now),
		ClockIn:        &now,
		Status:         s.schedule.Status(now),
		Source:         source,
		Notes:          req.Notes,
		Employee:       employee,
	}

	var violation *geofence.Result
	if loc != nil {
		row.Latitude = &loc.Lat
		row.Longitude = &loc.Lng

		if office != nil {
			result, err := geofence.Evaluate(office.Office(), *loc)
			if err != nil {
				return AttendanceResponse{}, err
			}
			if !result.WithinRadius && office.EnforceRadius {
				log.Info("clock-in rejected outside office radius",
					zap.Int64("distance_meters", result.DisplayMeters),
					zap.Float64("radius_meters", office.RadiusMeters),
				)
				return AttendanceResponse{}, attendanceerrors.ErrOutsideAllowedRadius
			}
			row.DistanceMeters = &result.DisplayMeters
			row.WithinRadius = &result.WithinRadius
			if !result.WithinRadius {
				violation = &result
			}
		}

		// Alamat bersifat best effort, kegagalan geocoder tidak menggagalkan absen
		address := strings.TrimSpace(req.Address)
		if address == "" {
			resolved, err := s.geocoder.Reverse(ctx, loc.Lat, loc.Lng)
			if err != nil {
				log.Debug("reverse geocode skipped", zap.Error(err))
			}
			address = resolved
		}
		if address != "" {
			row.Address = &address
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	_, err = qtx.FindByEmployeeAndDate(ctx, companyID, employeeID, row.AttendanceDate)
	if err == nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyClockedIn
	}
	if !errors.Is(err, attendanceerrors.ErrClockInNotFound) {
		return AttendanceResponse{}, err
	}

	if err := qtx.Create(ctx, row); err != nil {
		return AttendanceResponse{}, err
	}

	if violation != nil && s.outbox != nil {
		event, err := kafka.NewOutboxEvent(
			contextutil.GetRequestID(ctx),
			aggregateAttendance,
			row.ID.String(),
			events.GeofenceViolatedEventType,
			events.GeofenceViolatedTopic,
			events.GeofenceViolatedEvent{
				EventType:      events.GeofenceViolatedEventType,
				AttendanceID:   row.ID.String(),
				CompanyID:      companyID,
				EmployeeID:     employeeID,
				EmployeeName:   employee.FullName,
				Latitude:       loc.Lat,
				Longitude:      loc.Lng,
				Address:        stringValue(row.Address),
				DistanceMeters: violation.DisplayMeters,
				RadiusMeters:   office.RadiusMeters,
				OccurredAt:     now,
			},
		)
		if err != nil {
			return AttendanceResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
			return AttendanceResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	log.Info("clocked in",
		zap.String("attendance_id", row.ID.String()),
		zap.String("status", row.Status),
		zap.Bool("outside_radius", violation != nil),
	)

	return mapToResponse(*row), nil
}

func (s *service) ClockOut(ctx context.Context, companyID, employeeID string, req ClockOutRequest) (AttendanceResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidCompanyID
	}
	if _, err := uuid.Parse(employeeID); err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := s.now().UTC()

	row, err := qtx.FindByEmployeeAndDateForUpdate(ctx, companyID, employeeID, s.schedule.Date(now))
	if err != nil {
		return AttendanceResponse{}, err
	}
	// Baris ABSENT dari batch tidak punya jam masuk
	if row.ClockIn == nil {
		return AttendanceResponse{}, attendanceerrors.ErrClockInNotFound
	}
	if row.ClockOut != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyClockedOut
	}

	row.ClockOut = &now
	row.UpdatedAt = now
	if req.Notes != nil {
		row.Notes = req.Notes
	}

	if err := qtx.UpdateClockOut(ctx, row); err != nil {
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("clocked out", zap.String("attendance_id", row.ID.String()))
	return mapToResponse(*row), nil
}

func (s *service) CheckLocation(ctx context.Context, companyID string, req CheckLocationRequest) (GeofenceCheckResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return GeofenceCheckResponse{}, attendanceerrors.ErrInvalidCompanyID
	}
	loc, err := parseLocation(req.Latitude, req.Longitude)
	if err != nil {
		return GeofenceCheckResponse{}, err
	}
	if loc == nil {
		return GeofenceCheckResponse{}, attendanceerrors.ErrIncompleteLocation
	}

	office, err := s.officeFor(ctx, companyID)
	if err != nil {
		return GeofenceCheckResponse{}, err
	}
	if office == nil {
		return GeofenceCheckResponse{}, companyerrors.ErrOfficeLocationNotFound
	}

	result, err := geofence.Evaluate(office.Office(), *loc)
	if err != nil {
		return GeofenceCheckResponse{}, err
	}

	return GeofenceCheckResponse{
		DistanceMeters: result.DisplayMeters,
		WithinRadius:   result.WithinRadius,
		RadiusMeters:   office.RadiusMeters,
		EnforceRadius:  office.EnforceRadius,
		OfficeAddress:  office.Address,
	}, nil
}

func (s *service) GetAll(
	ctx context.Context,
	companyID, actorID string,
	canReadAll bool,
	filter GetAttendancesFilterRequest,
) ([]AttendanceResponse, error) {
	query, err := s.buildQuery(filter)
	if err != nil {
		return nil, err
	}
	if !canReadAll {
		if _, err := uuid.Parse(actorID); err != nil {
			return nil, attendanceerrors.ErrInvalidEmployeeID
		}
		query.EmployeeID = actorID
	}

	rows, err := s.repo.FindAll(ctx, companyID, query)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("list attendances failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetByID(ctx context.Context, companyID, actorID string, canReadAll bool, id string) (AttendanceResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidAttendanceID
	}

	row, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return AttendanceResponse{}, err
	}
	if !canReadAll && row.EmployeeID.String() != actorID {
		return AttendanceResponse{}, attendanceerrors.ErrAttendanceForbidden
	}
	return mapToResponse(*row), nil
}

func (s *service) MarkAbsent(ctx context.Context, companyID, date string) (MarkAbsentResult, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return MarkAbsentResult{}, attendanceerrors.ErrInvalidCompanyID
	}
	day, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return MarkAbsentResult{}, attendanceerrors.ErrInvalidDate
	}
	if day.After(s.schedule.Date(s.now())) {
		return MarkAbsentResult{}, attendanceerrors.ErrInvalidDate
	}

	marked, err := s.repo.CreateAbsentForDate(ctx, companyID, day)
	if err != nil {
		return MarkAbsentResult{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("absent rows created",
		zap.String("company_id", companyID),
		zap.String("date", date),
		zap.Int64("marked", marked),
	)
	return MarkAbsentResult{Date: date, Marked: marked}, nil
}

func (s *service) Export(ctx context.Context, companyID string, filter GetAttendancesFilterRequest) (ExportFile, error) {
	if filter.From == "" || filter.To == "" {
		return ExportFile{}, attendanceerrors.ErrInvalidDateRange
	}
	query, err := s.buildQuery(filter)
	if err != nil {
		return ExportFile{}, err
	}
	if query.To.Sub(*query.From) > maxExportDays*24*time.Hour {
		return ExportFile{}, attendanceerrors.ErrInvalidDateRange
	}

	rows, err := s.repo.FindAll(ctx, companyID, query)
	if err != nil {
		return ExportFile{}, err
	}

	content, err := buildAttendanceWorkbook(rows, s.schedule.location())
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("build attendance workbook failed", zap.Error(err))
		return ExportFile{}, err
	}

	return ExportFile{
		FileName: "attendance-" + filter.From + "_" + filter.To + ".xlsx",
		Content:  content,
	}, nil
}

func (s *service) buildQuery(filter GetAttendancesFilterRequest) (AttendanceQueryFilter, error) {
	query := AttendanceQueryFilter{
		EmployeeID: filter.EmployeeID,
		Status:     filter.Status,
	}
	if filter.EmployeeID != "" {
		if _, err := uuid.Parse(filter.EmployeeID); err != nil {
			return AttendanceQueryFilter{}, attendanceerrors.ErrInvalidEmployeeID
		}
	}
	if filter.From != "" {
		from, err := time.Parse(time.DateOnly, filter.From)
		if err != nil {
			return AttendanceQueryFilter{}, attendanceerrors.ErrInvalidDate
		}
		query.From = &from
	}
	if filter.To != "" {
		to, err := time.Parse(time.DateOnly, filter.To)
		if err != nil {
			return AttendanceQueryFilter{}, attendanceerrors.ErrInvalidDate
		}
		query.To = &to
	}
	if query.From != nil && query.To != nil && query.To.Before(*query.From) {
		return AttendanceQueryFilter{}, attendanceerrors.ErrInvalidDateRange
	}
	return query, nil
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
