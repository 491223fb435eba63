package attendance

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	attendanceerrors "go-hrportal/internal/attendance/errors"
	"go-hrportal/internal/company"
	companyerrors "go-hrportal/internal/company/errors"
	"go-hrportal/internal/events"
	"go-hrportal/internal/messaging/kafka"
	"go-hrportal/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type fakeRepo struct {
	createFn                func(ctx context.Context, a *Attendance) error
	findEmployeeFn          func(ctx context.Context, companyID, employeeID string) (*EmployeeRef, error)
	findByEmployeeAndDateFn func(ctx context.Context, companyID, employeeID string, date time.Time) (*Attendance, error)
	findForUpdateFn         func(ctx context.Context, companyID, employeeID string, date time.Time) (*Attendance, error)
	findByIDAndCompanyFn    func(ctx context.Context, companyID, id string) (*Attendance, error)
	findAllFn               func(ctx context.Context, companyID string, filter AttendanceQueryFilter) ([]Attendance, error)
	updateClockOutFn        func(ctx context.Context, a *Attendance) error
	createAbsentForDateFn   func(ctx context.Context, companyID string, date time.Time) (int64, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f }
func (f *fakeRepo) Create(ctx context.Context, a *Attendance) error {
	return f.createFn(ctx, a)
}
func (f *fakeRepo) FindEmployee(ctx context.Context, companyID, employeeID string) (*EmployeeRef, error) {
	return f.findEmployeeFn(ctx, companyID, employeeID)
}
func (f *fakeRepo) FindByEmployeeAndDate(ctx context.Context, companyID, employeeID string, date time.Time) (*Attendance, error) {
	return f.findByEmployeeAndDateFn(ctx, companyID, employeeID, date)
}
func (f *fakeRepo) FindByEmployeeAndDateForUpdate(ctx context.Context, companyID, employeeID string, date time.Time) (*Attendance, error) {
	return f.findForUpdateFn(ctx, companyID, employeeID, date)
}
func (f *fakeRepo) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Attendance, error) {
	return f.findByIDAndCompanyFn(ctx, companyID, id)
}
func (f *fakeRepo) FindAll(ctx context.Context, companyID string, filter AttendanceQueryFilter) ([]Attendance, error) {
	return f.findAllFn(ctx, companyID, filter)
}
func (f *fakeRepo) UpdateClockOut(ctx context.Context, a *Attendance) error {
	return f.updateClockOutFn(ctx, a)
}
func (f *fakeRepo) CreateAbsentForDate(ctx context.Context, companyID string, date time.Time) (int64, error) {
	return f.createAbsentForDateFn(ctx, companyID, date)
}

type fakeOffices struct {
	office company.OfficeLocationResponse
	err    error
}

func (f *fakeOffices) GetOfficeLocation(ctx context.Context, companyID string) (company.OfficeLocationResponse, error) {
	return f.office, f.err
}

type fakeGeocoder struct {
	address string
	err     error
	calls   int
}

func (f *fakeGeocoder) Reverse(ctx context.Context, lat, lng float64) (string, error) {
	f.calls++
	return f.address, f.err
}

type fakeOutboxRepository struct {
	created []kafka.OutboxEvent
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }
func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.created = append(f.created, event)
	return nil
}
func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error { return nil }
func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}
func (f *fakeOutboxRepository) PurgeSent(ctx context.Context, before time.Time) (int64, error) {
	return 0, nil
}

var (
	testCompanyID  = uuid.MustParse("6f1d3a2e-4b5c-4d6e-8f70-1a2b3c4d5e6f")
	testEmployeeID = uuid.MustParse("0b8c7d6e-5f4a-4b3c-9d2e-1f0a9b8c7d6e")
	// 08:50 WIB
	morning = time.Date(2026, 3, 2, 1, 50, 0, 0, time.UTC)
)

func f64(v float64) *float64 { return &v }

func testOffice(enforce bool) *fakeOffices {
	return &fakeOffices{office: company.OfficeLocationResponse{
		CompanyID:     testCompanyID.String(),
		Latitude:      -6.2088,
		Longitude:     106.8456,
		RadiusMeters:  100,
		Address:       "Jl. M.H. Thamrin No.1",
		EnforceRadius: enforce,
	}}
}

// newRepo returns a repository where the employee exists and has no
// attendance yet; tests override what they need.
func newRepo() *fakeRepo {
	return &fakeRepo{
		findEmployeeFn: func(ctx context.Context, companyID, employeeID string) (*EmployeeRef, error) {
			return &EmployeeRef{ID: testEmployeeID, FullName: "Siti Rahma", EmployeeNumber: "EMP-001"}, nil
		},
		findByEmployeeAndDateFn: func(ctx context.Context, companyID, employeeID string, date time.Time) (*Attendance, error) {
			return nil, attendanceerrors.ErrClockInNotFound
		},
		createFn: func(ctx context.Context, a *Attendance) error { return nil },
	}
}

type serviceDeps struct {
	sqlMock  sqlmock.Sqlmock
	outbox   *fakeOutboxRepository
	geocoder *fakeGeocoder
	svc      *service
}

func newTestService(t *testing.T, repo Repository, offices OfficeProvider, now time.Time) serviceDeps {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	outbox := &fakeOutboxRepository{}
	geocoder := &fakeGeocoder{address: "Jl. Kebon Sirih"}
	svc := NewServiceWithOutbox(db, repo, offices, outbox, geocoder, jakartaSchedule(t)).(*service)
	svc.now = func() time.Time { return now }

	return serviceDeps{sqlMock: mock, outbox: outbox, geocoder: geocoder, svc: svc}
}

func TestService_ClockIn_WithinRadius(t *testing.T) {
	var saved Attendance
	repo := newRepo()
	repo.createFn = func(ctx context.Context, a *Attendance) error { saved = *a; return nil }

	deps := newTestService(t, repo, testOffice(true), morning)
	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()

	resp, err := deps.svc.ClockIn(context.Background(), testCompanyID.String(), testEmployeeID.String(), ClockInRequest{
		Latitude:  f64(-6.2090),
		Longitude: f64(106.8460),
	})

	require.NoError(t, err)
	assert.Equal(t, StatusPresent, resp.Status)
	assert.Equal(t, "2026-03-02", resp.AttendanceDate)
	assert.Equal(t, "Siti Rahma", resp.EmployeeName)
	require.NotNil(t, resp.DistanceMeters)
	assert.InDelta(t, 50, *resp.DistanceMeters, 5)
	assert.True(t, *resp.WithinRadius)
	assert.Equal(t, "Jl. Kebon Sirih", resp.Location.Address)
	assert.Equal(t, SourceWeb, saved.Source)
	assert.Empty(t, deps.outbox.created)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestService_ClockIn_OutsideRadiusNotEnforced(t *testing.T) {
	repo := newRepo()
	// 09:30 WIB
	deps := newTestService(t, repo, testOffice(false), time.Date(2026, 3, 2, 2, 30, 0, 0, time.UTC))
	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()

	resp, err := deps.svc.ClockIn(context.Background(), testCompanyID.String(), testEmployeeID.String(), ClockInRequest{
		Latitude:  f64(-6.2088 + 0.0018),
		Longitude: f64(106.8456),
		Address:   "Sarinah",
	})

	require.NoError(t, err)
	assert.Equal(t, StatusLate, resp.Status)
	assert.False(t, *resp.WithinRadius)
	assert.InDelta(t, 200, *resp.DistanceMeters, 2)
	assert.Equal(t, "Sarinah", resp.Location.Address)
	assert.Zero(t, deps.geocoder.calls)

	require.Len(t, deps.outbox.created, 1)
	event := deps.outbox.created[0]
	assert.Equal(t, events.GeofenceViolatedTopic, event.Topic)
	assert.Equal(t, events.GeofenceViolatedEventType, event.EventType)

	var payload events.GeofenceViolatedEvent
	require.NoError(t, json.Unmarshal(event.Payload, &payload))
	assert.Equal(t, resp.ID, payload.AttendanceID)
	assert.Equal(t, "Siti Rahma", payload.EmployeeName)
	assert.Equal(t, 100.0, payload.RadiusMeters)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestService_ClockIn_OutsideRadiusEnforced(t *testing.T) {
	repo := newRepo()
	repo.createFn = func(ctx context.Context, a *Attendance) error {
		t.Fatal("must not persist a rejected clock-in")
		return nil
	}
	deps := newTestService(t, repo, testOffice(true), morning)

	_, err := deps.svc.ClockIn(context.Background(), testCompanyID.String(), testEmployeeID.String(), ClockInRequest{
		Latitude:  f64(-6.2088 + 0.0018),
		Longitude: f64(106.8456),
	})

	assert.ErrorIs(t, err, attendanceerrors.ErrOutsideAllowedRadius)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestService_ClockIn_NoOfficeOrLocation(t *testing.T) {
	t.Run("office not configured", func(t *testing.T) {
		deps := newTestService(t, newRepo(), &fakeOffices{err: companyerrors.ErrOfficeLocationNotFound}, morning)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		resp, err := deps.svc.ClockIn(context.Background(), testCompanyID.String(), testEmployeeID.String(), ClockInRequest{
			Latitude:  f64(-6.2),
			Longitude: f64(106.8),
		})

		require.NoError(t, err)
		assert.Nil(t, resp.DistanceMeters)
		assert.Nil(t, resp.WithinRadius)
		assert.NotNil(t, resp.Location)
	})

	t.Run("no location sent", func(t *testing.T) {
		deps := newTestService(t, newRepo(), testOffice(true), morning)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		resp, err := deps.svc.ClockIn(context.Background(), testCompanyID.String(), testEmployeeID.String(), ClockInRequest{Source: SourceMobile})

		require.NoError(t, err)
		assert.Nil(t, resp.Location)
		assert.Nil(t, resp.DistanceMeters)
		assert.Equal(t, SourceMobile, resp.Source)
		assert.Zero(t, deps.geocoder.calls)
	})

	t.Run("geocoder failure is ignored", func(t *testing.T) {
		deps := newTestService(t, newRepo(), testOffice(false), morning)
		deps.geocoder.address = ""
		deps.geocoder.err = errors.New("timeout")
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		resp, err := deps.svc.ClockIn(context.Background(), testCompanyID.String(), testEmployeeID.String(), ClockInRequest{
			Latitude:  f64(-6.2090),
			Longitude: f64(106.8460),
		})

		require.NoError(t, err)
		assert.Empty(t, resp.Location.Address)
		assert.Equal(t, 1, deps.geocoder.calls)
	})
}

func TestService_ClockIn_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		req     ClockInRequest
		wantErr error
		code    string
	}{
		{name: "only latitude", req: ClockInRequest{Latitude: f64(-6.2)}, wantErr: attendanceerrors.ErrIncompleteLocation},
		{name: "latitude out of range", req: ClockInRequest{Latitude: f64(-95), Longitude: f64(106.8)}, code: apperror.CodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := newTestService(t, newRepo(), testOffice(true), morning)

			_, err := deps.svc.ClockIn(context.Background(), testCompanyID.String(), testEmployeeID.String(), tt.req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.True(t, apperror.Is(err, tt.code), "got %v", err)
			}
		})
	}

	t.Run("invalid employee id", func(t *testing.T) {
		deps := newTestService(t, newRepo(), testOffice(true), morning)
		_, err := deps.svc.ClockIn(context.Background(), testCompanyID.String(), "x", ClockInRequest{})
		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidEmployeeID)
	})

	t.Run("employee of another company", func(t *testing.T) {
		repo := newRepo()
		repo.findEmployeeFn = func(ctx context.Context, companyID, employeeID string) (*EmployeeRef, error) {
			return nil, attendanceerrors.ErrEmployeeNotFound
		}
		deps := newTestService(t, repo, testOffice(true), morning)

		_, err := deps.svc.ClockIn(context.Background(), testCompanyID.String(), testEmployeeID.String(), ClockInRequest{})

		assert.ErrorIs(t, err, attendanceerrors.ErrEmployeeNotFound)
	})
}

func TestService_ClockIn_Duplicate(t *testing.T) {
	t.Run("pre-check finds today's row", func(t *testing.T) {
		repo := newRepo()
		repo.findByEmployeeAndDateFn = func(ctx context.Context, companyID, employeeID string, date time.Time) (*Attendance, error) {
			assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), date)
			return &Attendance{ID: uuid.New()}, nil
		}
		deps := newTestService(t, repo, testOffice(true), morning)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		_, err := deps.svc.ClockIn(context.Background(), testCompanyID.String(), testEmployeeID.String(), ClockInRequest{})

		assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyClockedIn)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unique violation from a concurrent request", func(t *testing.T) {
		repo := newRepo()
		repo.createFn = func(ctx context.Context, a *Attendance) error { return attendanceerrors.ErrAlreadyClockedIn }
		deps := newTestService(t, repo, testOffice(true), morning)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		_, err := deps.svc.ClockIn(context.Background(), testCompanyID.String(), testEmployeeID.String(), ClockInRequest{})

		assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyClockedIn)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestService_ClockOut(t *testing.T) {
	evening := time.Date(2026, 3, 2, 10, 5, 0, 0, time.UTC)
	clockIn := morning

	t.Run("success keeps check-in location", func(t *testing.T) {
		lat, lng := -6.2090, 106.8460
		existing := &Attendance{ID: uuid.New(), ClockIn: &clockIn, Latitude: &lat, Longitude: &lng, Status: StatusPresent}

		var updated *Attendance
		repo := newRepo()
		repo.findForUpdateFn = func(ctx context.Context, companyID, employeeID string, date time.Time) (*Attendance, error) {
			return existing, nil
		}
		repo.updateClockOutFn = func(ctx context.Context, a *Attendance) error { updated = a; return nil }

		deps := newTestService(t, repo, testOffice(true), evening)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		note := "pulang"
		resp, err := deps.svc.ClockOut(context.Background(), testCompanyID.String(), testEmployeeID.String(), ClockOutRequest{Notes: &note})

		require.NoError(t, err)
		require.NotNil(t, resp.ClockOut)
		assert.Equal(t, evening, *updated.ClockOut)
		assert.Equal(t, lat, *updated.Latitude)
		assert.Equal(t, "pulang", *resp.Notes)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	cases := []struct {
		name    string
		row     *Attendance
		findErr error
		wantErr error
	}{
		{name: "not clocked in", findErr: attendanceerrors.ErrClockInNotFound, wantErr: attendanceerrors.ErrClockInNotFound},
		{name: "marked absent", row: &Attendance{ID: uuid.New(), Status: StatusAbsent}, wantErr: attendanceerrors.ErrClockInNotFound},
		{name: "already clocked out", row: &Attendance{ID: uuid.New(), ClockIn: &clockIn, ClockOut: &evening}, wantErr: attendanceerrors.ErrAlreadyClockedOut},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			repo := newRepo()
			repo.findForUpdateFn = func(ctx context.Context, companyID, employeeID string, date time.Time) (*Attendance, error) {
				return tt.row, tt.findErr
			}
			deps := newTestService(t, repo, testOffice(true), evening)
			deps.sqlMock.ExpectBegin()
			deps.sqlMock.ExpectRollback()

			_, err := deps.svc.ClockOut(context.Background(), testCompanyID.String(), testEmployeeID.String(), ClockOutRequest{})

			assert.ErrorIs(t, err, tt.wantErr)
			assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		})
	}
}

func TestService_CheckLocation(t *testing.T) {
	t.Run("inside", func(t *testing.T) {
		deps := newTestService(t, newRepo(), testOffice(true), morning)

		resp, err := deps.svc.CheckLocation(context.Background(), testCompanyID.String(), CheckLocationRequest{
			Latitude:  f64(-6.2090),
			Longitude: f64(106.8460),
		})

		require.NoError(t, err)
		assert.True(t, resp.WithinRadius)
		assert.True(t, resp.EnforceRadius)
		assert.Equal(t, 100.0, resp.RadiusMeters)
	})

	t.Run("office missing", func(t *testing.T) {
		deps := newTestService(t, newRepo(), &fakeOffices{err: companyerrors.ErrOfficeLocationNotFound}, morning)

		_, err := deps.svc.CheckLocation(context.Background(), testCompanyID.String(), CheckLocationRequest{
			Latitude:  f64(-6.2090),
			Longitude: f64(106.8460),
		})

		assert.ErrorIs(t, err, companyerrors.ErrOfficeLocationNotFound)
	})
}

func TestService_GetAll_Scoping(t *testing.T) {
	var got AttendanceQueryFilter
	repo := newRepo()
	repo.findAllFn = func(ctx context.Context, companyID string, filter AttendanceQueryFilter) ([]Attendance, error) {
		got = filter
		return []Attendance{{ID: uuid.New(), EmployeeID: testEmployeeID, Status: StatusPresent}}, nil
	}
	deps := newTestService(t, repo, nil, morning)
	other := uuid.New().String()

	_, err := deps.svc.GetAll(context.Background(), testCompanyID.String(), testEmployeeID.String(), false,
		GetAttendancesFilterRequest{EmployeeID: other, From: "2026-03-01", To: "2026-03-31"})
	require.NoError(t, err)
	assert.Equal(t, testEmployeeID.String(), got.EmployeeID)
	assert.Equal(t, "2026-03-01", got.From.Format(time.DateOnly))

	rows, err := deps.svc.GetAll(context.Background(), testCompanyID.String(), testEmployeeID.String(), true,
		GetAttendancesFilterRequest{EmployeeID: other})
	require.NoError(t, err)
	assert.Equal(t, other, got.EmployeeID)
	assert.Len(t, rows, 1)

	_, err = deps.svc.GetAll(context.Background(), testCompanyID.String(), testEmployeeID.String(), true,
		GetAttendancesFilterRequest{From: "2026-03-31", To: "2026-03-01"})
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidDateRange)
}

func TestService_GetByID(t *testing.T) {
	id := uuid.New()
	repo := newRepo()
	repo.findByIDAndCompanyFn = func(ctx context.Context, companyID, rowID string) (*Attendance, error) {
		return &Attendance{ID: id, EmployeeID: uuid.New()}, nil
	}
	deps := newTestService(t, repo, nil, morning)

	_, err := deps.svc.GetByID(context.Background(), testCompanyID.String(), testEmployeeID.String(), false, id.String())
	assert.ErrorIs(t, err, attendanceerrors.ErrAttendanceForbidden)

	resp, err := deps.svc.GetByID(context.Background(), testCompanyID.String(), testEmployeeID.String(), true, id.String())
	require.NoError(t, err)
	assert.Equal(t, id.String(), resp.ID)

	_, err = deps.svc.GetByID(context.Background(), testCompanyID.String(), testEmployeeID.String(), true, "bad")
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidAttendanceID)
}

func TestService_MarkAbsent(t *testing.T) {
	repo := newRepo()
	repo.createAbsentForDateFn = func(ctx context.Context, companyID string, date time.Time) (int64, error) {
		assert.Equal(t, "2026-03-01", date.Format(time.DateOnly))
		return 4, nil
	}
	deps := newTestService(t, repo, nil, morning)

	res, err := deps.svc.MarkAbsent(context.Background(), testCompanyID.String(), "2026-03-01")
	require.NoError(t, err)
	assert.Equal(t, int64(4), res.Marked)

	_, err = deps.svc.MarkAbsent(context.Background(), testCompanyID.String(), "01-03-2026")
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidDate)

	_, err = deps.svc.MarkAbsent(context.Background(), testCompanyID.String(), "2026-03-05")
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidDate)
}

func TestService_Export(t *testing.T) {
	lat, lng := -6.2090, 106.8460
	distance := int64(50)
	within := true
	clockIn := morning

	repo := newRepo()
	repo.findAllFn = func(ctx context.Context, companyID string, filter AttendanceQueryFilter) ([]Attendance, error) {
		return []Attendance{
			{
				ID:             uuid.New(),
				AttendanceDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
				ClockIn:        &clockIn,
				Latitude:       &lat,
				Longitude:      &lng,
				DistanceMeters: &distance,
				WithinRadius:   &within,
				Status:         StatusPresent,
				Source:         SourceWeb,
				Employee:       &EmployeeRef{FullName: "Siti Rahma", EmployeeNumber: "EMP-001"},
			},
			{
				ID:             uuid.New(),
				AttendanceDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
				Status:         StatusAbsent,
				Source:         SourceSystem,
			},
		}, nil
	}
	deps := newTestService(t, repo, nil, morning)

	file, err := deps.svc.Export(context.Background(), testCompanyID.String(), GetAttendancesFilterRequest{From: "2026-03-01", To: "2026-03-02"})
	require.NoError(t, err)
	assert.Equal(t, "attendance-2026-03-01_2026-03-02.xlsx", file.FileName)

	wb, err := excelize.OpenReader(bytes.NewReader(file.Content))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Date", rows[0][0])
	assert.Equal(t, "Siti Rahma", rows[1][2])
	assert.Equal(t, "08:50:00", rows[1][4])
	assert.Equal(t, "50", rows[1][9])
	assert.Equal(t, "Yes", rows[1][10])
	assert.Equal(t, StatusAbsent, rows[2][3])

	_, err = deps.svc.Export(context.Background(), testCompanyID.String(), GetAttendancesFilterRequest{From: "2026-01-01"})
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidDateRange)

	_, err = deps.svc.Export(context.Background(), testCompanyID.String(), GetAttendancesFilterRequest{From: "2025-01-01", To: "2026-01-01"})
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidDateRange)
}
