package payroll

import (
	"context"
	"database/sql"
	"time"

	"go-hrportal/internal/audit"
	"go-hrportal/internal/events"
	"go-hrportal/internal/messaging/kafka"
	"go-hrportal/internal/notification"
	payrollerrors "go-hrportal/internal/payroll/errors"
	"go-hrportal/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const aggregatePayslip = "payslip"

type Service interface {
	GetAll(ctx context.Context, companyID, actorID string, canReadAll bool, filter GetPayslipsFilterRequest) ([]PayslipResponse, error)
	GetByID(ctx context.Context, companyID, actorID string, canReadAll bool, id string) (PayslipResponse, error)
	Preview(ctx context.Context, companyID, id string, req OverridesRequest) (PreviewResponse, error)
	UpdateOverrides(ctx context.Context, companyID, actorID, id string, req OverridesRequest) (PayslipResponse, error)
	RecomputeAll(ctx context.Context, companyID string, dryRun bool) (RecomputeResult, error)
	DownloadPayslip(ctx context.Context, companyID, actorID string, canReadAll bool, id string) (PayslipFile, error)
	SendPayslip(ctx context.Context, companyID, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	audit  audit.Logger
	sender notification.Sender
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, nil, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	auditLogger audit.Logger,
	sender notification.Sender,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	if auditLogger == nil {
		auditLogger = audit.Nop()
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		audit:  auditLogger,
		sender: sender,
		logger: l,
	}
}

func (s *service) GetAll(
	ctx context.Context,
	companyID, actorID string,
	canReadAll bool,
	filter GetPayslipsFilterRequest,
) ([]PayslipResponse, error) {
	query := PayslipQueryFilter{EmployeeID: filter.EmployeeID}
	if !canReadAll {
		query.EmployeeID = actorID
	}
	if filter.Period != "" {
		month, err := time.Parse("2006-01", filter.Period)
		if err != nil {
			return nil, payrollerrors.ErrInvalidPeriodFormat
		}
		query.PeriodMonth = month.Format("2006-01-02")
	}

	payslips, err := s.repo.FindAllByCompany(ctx, companyID, query)
	if err != nil {
		return nil, err
	}

	return mapToListResponse(payslips), nil
}

func (s *service) GetByID(
	ctx context.Context,
	companyID, actorID string,
	canReadAll bool,
	id string,
) (PayslipResponse, error) {
	payslip, err := s.findVisible(ctx, companyID, actorID, canReadAll, id)
	if err != nil {
		return PayslipResponse{}, err
	}
	return mapToResponse(*payslip), nil
}

// Preview recomputes with the proposed overrides without persisting anything.
func (s *service) Preview(
	ctx context.Context,
	companyID, id string,
	req OverridesRequest,
) (PreviewResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PreviewResponse{}, payrollerrors.ErrInvalidPayslipID
	}

	payslip, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return PreviewResponse{}, err
	}

	overrides, totals, err := resolveOverrides(*payslip, req)
	if err != nil {
		return PreviewResponse{}, err
	}

	return PreviewResponse{
		PayslipID:       payslip.ID.String(),
		Overtime:        overrides.Overtime,
		Bonus:           overrides.Bonus,
		TaxDeduction:    overrides.TaxDeduction,
		LoanDeduction:   overrides.LoanDeduction,
		AllowancesTotal: totals.AllowancesTotal,
		DeductionsTotal: totals.DeductionsTotal,
		NetSalary:       totals.NetSalary,
	}, nil
}

func (s *service) UpdateOverrides(
	ctx context.Context,
	companyID, actorID, id string,
	req OverridesRequest,
) (PayslipResponse, error) {
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return PayslipResponse{}, payrollerrors.ErrInvalidActorID
	}
	if _, err := uuid.Parse(id); err != nil {
		return PayslipResponse{}, payrollerrors.ErrInvalidPayslipID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayslipResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	payslip, err := qtx.FindByIDForUpdate(ctx, companyID, id)
	if err != nil {
		return PayslipResponse{}, err
	}

	overrides, totals, err := resolveOverrides(*payslip, req)
	if err != nil {
		return PayslipResponse{}, err
	}

	previous := payslip.Totals()
	payslip.apply(overrides, totals)
	payslip.OvertimeHours = req.OvertimeHours
	payslip.UpdatedBy = &actorUUID

	if err := qtx.SaveOverrides(ctx, payslip); err != nil {
		return PayslipResponse{}, err
	}

	if s.outbox != nil {
		event, err := kafka.NewOutboxEvent(
			contextutil.GetRequestID(ctx),
			aggregatePayslip,
			payslip.ID.String(),
			events.PayslipUpdatedEventType,
			events.PayslipUpdatedTopic,
			events.PayslipUpdatedEvent{
				EventType:      events.PayslipUpdatedEventType,
				PayslipID:      payslip.ID.String(),
				CompanyID:      companyID,
				EmployeeID:     payslip.EmployeeID.String(),
				UpdatedBy:      actorID,
				NetSalary:      payslip.NetSalary,
				NotifyEmployee: req.NotifyEmployee,
				OccurredAt:     time.Now().UTC(),
			},
		)
		if err != nil {
			return PayslipResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
			return PayslipResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return PayslipResponse{}, err
	}

	s.audit.Log(ctx, audit.Entry{
		Action:       audit.ActionPayslipOverride,
		Message:      "payslip overrides updated",
		CompanyID:    companyID,
		ActorID:      actorID,
		ResourceType: aggregatePayslip,
		ResourceID:   payslip.ID.String(),
		Meta: map[string]any{
			"overtime":           overrides.Overtime,
			"bonus":              overrides.Bonus,
			"tax_deduction":      overrides.TaxDeduction,
			"loan_deduction":     overrides.LoanDeduction,
			"previous_net":       previous.NetSalary,
			"net_salary":         totals.NetSalary,
			"overtime_from_hour": req.OvertimeHours != nil,
		},
	})

	contextutil.GetLogger(ctx, s.logger).Info("payslip overrides updated",
		zap.String("payslip_id", payslip.ID.String()),
		zap.Int64("net_salary", totals.NetSalary),
	)

	return mapToResponse(*payslip), nil
}

// RecomputeAll repairs payslips whose stored totals no longer match their inputs.
func (s *service) RecomputeAll(ctx context.Context, companyID string, dryRun bool) (RecomputeResult, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return RecomputeResult{}, payrollerrors.ErrInvalidCompanyID
	}

	payslips, err := s.repo.FindAllByCompany(ctx, companyID, PayslipQueryFilter{})
	if err != nil {
		return RecomputeResult{}, err
	}

	result := RecomputeResult{IDs: []string{}}
	for i := range payslips {
		p := &payslips[i]
		result.Checked++

		totals, err := Recompute(p.Fixed(), p.Overrides())
		if err != nil {
			s.logger.Warn("skip payslip with invalid amounts", zap.String("payslip_id", p.ID.String()), zap.Error(err))
			continue
		}
		if totals == p.Totals() {
			continue
		}

		result.Drifted++
		result.IDs = append(result.IDs, p.ID.String())
		if dryRun {
			continue
		}

		fixed, err := s.repairTotals(ctx, companyID, p.ID.String())
		if err != nil {
			return result, err
		}
		if fixed {
			result.Fixed++
		}
	}

	if result.Fixed > 0 {
		s.audit.Log(ctx, audit.Entry{
			Action:       audit.ActionPayslipRecompute,
			Message:      "payslip totals recomputed",
			CompanyID:    companyID,
			ResourceType: aggregatePayslip,
			Meta:         map[string]any{"fixed": result.Fixed, "ids": result.IDs},
		})
	}

	s.logger.Info("payslip recompute finished",
		zap.String("company_id", companyID),
		zap.Bool("dry_run", dryRun),
		zap.Int("checked", result.Checked),
		zap.Int("drifted", result.Drifted),
		zap.Int("fixed", result.Fixed),
	)

	return result, nil
}

// repairTotals recomputes one payslip from its locked row, so an override
// edit committed after the scan is never overwritten with stale totals.
func (s *service) repairTotals(ctx context.Context, companyID, id string) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	locked, err := qtx.FindByIDForUpdate(ctx, companyID, id)
	if err != nil {
		return false, err
	}

	totals, err := Recompute(locked.Fixed(), locked.Overrides())
	if err != nil {
		s.logger.Warn("skip payslip with invalid amounts", zap.String("payslip_id", id), zap.Error(err))
		return false, nil
	}
	// sudah dibetulkan oleh edit lain
	if totals == locked.Totals() {
		return false, nil
	}

	locked.apply(locked.Overrides(), totals)
	if err := qtx.SaveTotals(ctx, locked); err != nil {
		return false, err
	}
	if err := tx.Commit(); err != nil {
		return false, err
	}
	return true, nil
}

func (s *service) DownloadPayslip(
	ctx context.Context,
	companyID, actorID string,
	canReadAll bool,
	id string,
) (PayslipFile, error) {
	payslip, err := s.findVisible(ctx, companyID, actorID, canReadAll, id)
	if err != nil {
		return PayslipFile{}, err
	}
	return renderPayslip(*payslip)
}

func (s *service) SendPayslip(ctx context.Context, companyID, id string) error {
	if s.sender == nil {
		return payrollerrors.ErrNotifierDisabled
	}

	payslip, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return err
	}
	if payslip.Employee == nil || payslip.Employee.Email == nil || *payslip.Employee.Email == "" {
		return payrollerrors.ErrEmployeeEmailMissing
	}

	file, err := renderPayslip(*payslip)
	if err != nil {
		return err
	}

	period := payslip.PeriodStart.Format("January 2006")
	return s.sender.Send(ctx, notification.Message{
		To:      []string{*payslip.Employee.Email},
		Subject: "Slip gaji " + period,
		Body: "Halo " + payslip.Employee.FullName + ",\n\n" +
			"Slip gaji Anda untuk periode " + period + " telah diperbarui. Silakan lihat lampiran.\n",
		Attachments: []notification.Attachment{
			{FileName: file.FileName, ContentType: "application/pdf", Content: file.Content},
		},
	})
}

func (s *service) findVisible(ctx context.Context, companyID, actorID string, canReadAll bool, id string) (*Payslip, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, payrollerrors.ErrInvalidPayslipID
	}

	payslip, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if !canReadAll && payslip.EmployeeID.String() != actorID {
		return nil, payrollerrors.ErrPayslipForbidden
	}
	return payslip, nil
}

// resolveOverrides default-fills the request, converts overtime hours and
// recomputes. Preview and UpdateOverrides both go through here.
func resolveOverrides(p Payslip, req OverridesRequest) (OverrideFields, Totals, error) {
	if req.OvertimeHours != nil && req.Overtime != nil {
		return OverrideFields{}, Totals{}, payrollerrors.ErrOvertimeConflict
	}

	overrides := req.toOverrides()
	if req.OvertimeHours != nil {
		pay, err := OvertimePay(p.BasicSalary, *req.OvertimeHours)
		if err != nil {
			return OverrideFields{}, Totals{}, err
		}
		overrides.Overtime = pay
	}

	totals, err := Recompute(p.Fixed(), overrides)
	if err != nil {
		return OverrideFields{}, Totals{}, err
	}
	return overrides, totals, nil
}

func mapToResponse(p Payslip) PayslipResponse {
	resp := PayslipResponse{
		ID:                  p.ID.String(),
		CompanyID:           p.CompanyID.String(),
		EmployeeID:          p.EmployeeID.String(),
		PeriodStart:         p.PeriodStart.Format("2006-01-02"),
		PeriodEnd:           p.PeriodEnd.Format("2006-01-02"),
		BasicSalary:         p.BasicSalary,
		PositionAllowance:   p.PositionAllowance,
		TransportAllowance:  p.TransportAllowance,
		MealAllowance:       p.MealAllowance,
		BPJSHealthAllowance: p.BPJSHealthAllowance,
		BPJSLaborAllowance:  p.BPJSLaborAllowance,
		BPJSHealthDeduction: p.BPJSHealthDeduction,
		BPJSLaborDeduction:  p.BPJSLaborDeduction,
		Overtime:            p.Overtime,
		Bonus:               p.Bonus,
		TaxDeduction:        p.TaxDeduction,
		LoanDeduction:       p.LoanDeduction,
		AllowancesTotal:     p.AllowancesTotal,
		DeductionsTotal:     p.DeductionsTotal,
		NetSalary:           p.NetSalary,
		UpdatedAt:           p.UpdatedAt.Format(time.RFC3339),
	}

	if p.OvertimeHours != nil {
		v := p.OvertimeHours.String()
		resp.OvertimeHours = &v
	}
	if p.UpdatedBy != nil {
		v := p.UpdatedBy.String()
		resp.UpdatedBy = &v
	}
	if p.Employee != nil {
		resp.Employee = &EmployeeSummary{
			ID:             p.Employee.ID.String(),
			FullName:       p.Employee.FullName,
			EmployeeNumber: p.Employee.EmployeeNumber,
			Email:          p.Employee.Email,
		}
	}

	return resp
}

func mapToListResponse(payslips []Payslip) []PayslipResponse {
	resp := make([]PayslipResponse, len(payslips))
	for i, p := range payslips {
		resp[i] = mapToResponse(p)
	}
	return resp
}
