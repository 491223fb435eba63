package audit

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const (
	ActionServerShutdown       = "SERVER_SHUTDOWN"
	ActionOfficeLocationUpdate = "OFFICE_LOCATION_UPDATED"
	ActionPayslipOverride      = "PAYSLIP_OVERRIDES_UPDATED"
	ActionPayslipRecompute     = "PAYSLIP_TOTALS_RECOMPUTED"
)

type Entry struct {
	Action       string
	Message      string
	CompanyID    string
	ActorID      string
	ResourceType string
	ResourceID   string
	Meta         map[string]any
	OccurredAt   time.Time
}

//go:generate mockgen -source=audit.go -destination=mock/audit_mock.go -package=mock
type Logger interface {
	Log(ctx context.Context, entry Entry)
}

type StdoutLogger struct {
	logger *zap.Logger
}

func NewStdoutLogger(logger ...*zap.Logger) *StdoutLogger {
	l := zap.L().Named("audit")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &StdoutLogger{logger: l}
}

func (l *StdoutLogger) Log(ctx context.Context, entry Entry) {
	if entry.OccurredAt.IsZero() {
		entry.OccurredAt = time.Now().UTC()
	}
	l.logger.Info("audit event",
		zap.String("timestamp", entry.OccurredAt.Format(time.RFC3339)),
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
		zap.String("company_id", entry.CompanyID),
		zap.String("actor_id", entry.ActorID),
		zap.String("resource_type", entry.ResourceType),
		zap.String("resource_id", entry.ResourceID),
		zap.Any("meta", entry.Meta),
	)
}

type nopLogger struct{}

func (nopLogger) Log(context.Context, Entry) {}

func Nop() Logger {
	return nopLogger{}
}
