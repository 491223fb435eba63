package payroll

import (
	"context"
	"database/sql"
	"errors"
	"time"

	payrollerrors "go-hrportal/internal/payroll/errors"
	"go-hrportal/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindAllByCompany(ctx context.Context, companyID string, filter PayslipQueryFilter) ([]Payslip, error)
	FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Payslip, error)
	FindByIDForUpdate(ctx context.Context, companyID string, id string) (*Payslip, error)
	SaveOverrides(ctx context.Context, payslip *Payslip) error
	SaveTotals(ctx context.Context, payslip *Payslip) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

// conn runs statements on the bound *sql.Tx when there is one.
func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string, filter PayslipQueryFilter) ([]Payslip, error) {
	var payslips []Payslip
	db := r.conn(ctx).
		Preload("Employee").
		Scopes(tenant.OwnRows(companyID, filter.EmployeeID, filter.EmployeeID == ""))

	if filter.PeriodMonth != "" {
		start, err := time.Parse("2006-01-02", filter.PeriodMonth)
		if err != nil {
			return nil, payrollerrors.ErrInvalidPeriodFormat
		}
		db = db.Where("period_start >= ? AND period_start < ?", start, start.AddDate(0, 1, 0))
	}

	err := db.Order("period_start DESC").Order("created_at DESC").Find(&payslips).Error
	return payslips, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Payslip, error) {
	var payslip Payslip
	err := r.conn(ctx).
		Preload("Employee").
		Scopes(tenant.Scope(companyID)).
		First(&payslip, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, payrollerrors.ErrPayslipNotFound
	}
	if err != nil {
		return nil, err
	}
	return &payslip, nil
}

func (r *repository) FindByIDForUpdate(ctx context.Context, companyID string, id string) (*Payslip, error) {
	var payslip Payslip
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(tenant.Scope(companyID)).
		First(&payslip, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, payrollerrors.ErrPayslipNotFound
	}
	if err != nil {
		return nil, err
	}
	return &payslip, nil
}

// SaveOverrides writes the override columns and the derived totals in a single UPDATE.
func (r *repository) SaveOverrides(ctx context.Context, payslip *Payslip) error {
	return r.conn(ctx).
		Model(payslip).
		Select(
			"overtime", "overtime_hours", "bonus", "tax_deduction", "loan_deduction",
			"allowances_total", "deductions_total", "net_salary",
			"updated_by", "updated_at",
		).
		Updates(payslip).Error
}

func (r *repository) SaveTotals(ctx context.Context, payslip *Payslip) error {
	return r.conn(ctx).
		Model(payslip).
		Select("allowances_total", "deductions_total", "net_salary", "updated_at").
		Updates(payslip).Error
}
