package attendance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	attendanceerrors "go-hrportal/internal/attendance/errors"
	"go-hrportal/internal/tenant"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const uniqueEmployeeDate = "uq_attendance_employee_date"

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Attendance) error
	FindEmployee(ctx context.Context, companyID, employeeID string) (*EmployeeRef, error)
	FindByEmployeeAndDate(ctx context.Context, companyID, employeeID string, date time.Time) (*Attendance, error)
	FindByEmployeeAndDateForUpdate(ctx context.Context, companyID, employeeID string, date time.Time) (*Attendance, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Attendance, error)
	FindAll(ctx context.Context, companyID string, filter AttendanceQueryFilter) ([]Attendance, error)
	UpdateClockOut(ctx context.Context, a *Attendance) error
	CreateAbsentForDate(ctx context.Context, companyID string, date time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return attendanceerrors.ErrAttendanceNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == uniqueEmployeeDate {
		return attendanceerrors.ErrAlreadyClockedIn
	}

	return err
}

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return mapRepositoryError(r.conn(ctx).Create(a).Error)
}

func (r *repository) FindEmployee(ctx context.Context, companyID, employeeID string) (*EmployeeRef, error) {
	var emp EmployeeRef
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", employeeID).
		First(&emp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, attendanceerrors.ErrEmployeeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *repository) findToday(db *gorm.DB, companyID, employeeID string, date time.Time) (*Attendance, error) {
	var a Attendance
	err := db.
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("attendance_date = ?", date.Format(time.DateOnly)).
		First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, attendanceerrors.ErrClockInNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, companyID, employeeID string, date time.Time) (*Attendance, error) {
	return r.findToday(r.conn(ctx), companyID, employeeID, date)
}

func (r *repository) FindByEmployeeAndDateForUpdate(ctx context.Context, companyID, employeeID string, date time.Time) (*Attendance, error) {
	return r.findToday(r.conn(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), companyID, employeeID, date)
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Attendance, error) {
	var a Attendance
	err := r.conn(ctx).
		Preload("Employee").
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		First(&a).Error
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return &a, nil
}

func (r *repository) FindAll(ctx context.Context, companyID string, filter AttendanceQueryFilter) ([]Attendance, error) {
	var rows []Attendance
	db := r.conn(ctx).
		Preload("Employee").
		Scopes(tenant.OwnRows(companyID, filter.EmployeeID, filter.EmployeeID == ""))

	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.From != nil {
		db = db.Where("attendance_date >= ?", filter.From.Format(time.DateOnly))
	}
	if filter.To != nil {
		db = db.Where("attendance_date <= ?", filter.To.Format(time.DateOnly))
	}

	err := db.Order("attendance_date DESC, clock_in DESC").Find(&rows).Error
	return rows, err
}

// UpdateClockOut only touches the clock-out columns; the check-in location
// is never rewritten.
func (r *repository) UpdateClockOut(ctx context.Context, a *Attendance) error {
	return r.conn(ctx).
		Model(a).
		Select("clock_out", "notes", "updated_at").
		Updates(a).Error
}

// CreateAbsentForDate inserts an ABSENT row for every employee of the company
// that has no attendance on date.
func (r *repository) CreateAbsentForDate(ctx context.Context, companyID string, date time.Time) (int64, error) {
	day := date.Format(time.DateOnly)
	res := r.conn(ctx).Exec(`
		INSERT INTO attendances (company_id, employee_id, attendance_date, status, source, created_at, updated_at)
		SELECT e.company_id, e.id, ?, ?, ?, NOW(), NOW()
		FROM employees e
		WHERE e.company_id = ?
		  AND NOT EXISTS (
			SELECT 1 FROM attendances a
			WHERE a.employee_id = e.id
			  AND a.attendance_date = ?
			  AND a.deleted_at IS NULL
		  )
		ON CONFLICT DO NOTHING`,
		day, StatusAbsent, SourceSystem, companyID, day,
	)
	return res.RowsAffected, res.Error
}
