package rbac

import (
	"fmt"

	"gorm.io/gorm"
)

type Repository interface {
	GetCompanyPolicy(companyID string) (CompanyPolicy, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CompanyPolicy is every role assignment and permission grant of one company.
type CompanyPolicy struct {
	Assignments []RoleAssignment
	Grants      []PermissionGrant
}

type RoleAssignment struct {
	EmployeeID string
	RoleID     string
}

type PermissionGrant struct {
	RoleID   string
	Resource string
	Action   string
}

func (r *repository) GetCompanyPolicy(companyID string) (CompanyPolicy, error) {
	var policy CompanyPolicy

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Table("employee_roles").
			Select("employee_roles.employee_id, employee_roles.role_id").
			Joins("JOIN roles ON roles.id = employee_roles.role_id").
			Where("roles.company_id = ?", companyID).
			Order("employee_roles.employee_id").
			Scan(&policy.Assignments).Error; err != nil {
			return fmt.Errorf("load role assignments: %w", err)
		}

		if err := tx.
			Table("role_permissions").
			Select("role_permissions.role_id, permissions.resource, permissions.action").
			Joins("JOIN roles ON roles.id = role_permissions.role_id").
			Joins("JOIN permissions ON permissions.id = role_permissions.permission_id").
			Where("roles.company_id = ?", companyID).
			Order("role_permissions.role_id").
			Scan(&policy.Grants).Error; err != nil {
			return fmt.Errorf("load permission grants: %w", err)
		}
		return nil
	})

	return policy, err
}
