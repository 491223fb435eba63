package app

import (
	"go-hrportal/internal/attendance"
	"go-hrportal/internal/company"
	"go-hrportal/internal/config"
	"go-hrportal/internal/messaging/kafka"
	"go-hrportal/internal/payroll"
	"go-hrportal/internal/rbac"
	"go-hrportal/internal/rbac/infra"
)

type services struct {
	rbac       rbac.Service
	company    company.Service
	attendance attendance.Service
	payroll    payroll.Service
}

func buildServices(cfg config.Config, in *Infra) (*services, error) {
	schedule, err := attendance.NewSchedule(cfg.Shift)
	if err != nil {
		return nil, err
	}

	enforcer, err := infra.NewEnforcer(rbacModelPath(cfg.RBACModel))
	if err != nil {
		return nil, err
	}

	// --- Repositories ---
	rbacRepo := rbac.NewRepository(in.GormDB)
	companyRepo := company.NewRepository(in.GormDB)
	attendanceRepo := attendance.NewRepository(in.GormDB)
	payrollRepo := payroll.NewRepository(in.GormDB)
	outboxRepo := kafka.NewOutboxRepository(in.SQLDB)

	// --- Services ---
	companyService := company.NewService(companyRepo, in.Redis, in.Audit)

	return &services{
		rbac:    rbac.NewService(rbacRepo, enforcer),
		company: companyService,
		attendance: attendance.NewServiceWithOutbox(
			in.SQLDB, attendanceRepo, companyService, outboxRepo, newGeocoder(cfg), schedule,
		),
		payroll: payroll.NewServiceWithOutbox(
			in.SQLDB, payrollRepo, outboxRepo, in.Audit, newSender(cfg),
		),
	}, nil
}
