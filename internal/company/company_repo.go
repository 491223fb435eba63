package company

import (
	"context"
	"database/sql"
	"errors"

	companyerrors "go-hrportal/internal/company/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=company_repo.go -destination=mock/company_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindOfficeByCompany(ctx context.Context, companyID string) (*OfficeLocation, error)
	UpsertOffice(ctx context.Context, office *OfficeLocation) error
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

func (r *repository) FindOfficeByCompany(ctx context.Context, companyID string) (*OfficeLocation, error) {
	var office OfficeLocation
	err := r.conn(ctx).Where("company_id = ?", companyID).First(&office).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, companyerrors.ErrOfficeLocationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &office, nil
}

// UpsertOffice inserts or replaces the company's office row keyed by company_id.
func (r *repository) UpsertOffice(ctx context.Context, office *OfficeLocation) error {
	return r.conn(ctx).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{{Name: "company_id"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"latitude", "longitude", "radius_meters", "address",
					"enforce_radius", "updated_by", "updated_at",
				}),
			},
			clause.Returning{},
		).
		Create(office).Error
}
