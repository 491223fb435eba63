package tenant

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Scope limits a query to one company. The column is qualified with the
// statement's own table so joins and preloads stay unambiguous.
func Scope(companyID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(clause.Eq{
			Column: clause.Column{Table: clause.CurrentTable, Name: "company_id"},
			Value:  companyID,
		})
	}
}

// OwnRows additionally limits the query to one employee unless the caller
// may read the whole company.
func OwnRows(companyID, employeeID string, canReadAll bool) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = Scope(companyID)(db)
		if canReadAll {
			return db
		}
		return db.Where(clause.Eq{
			Column: clause.Column{Table: clause.CurrentTable, Name: "employee_id"},
			Value:  employeeID,
		})
	}
}
