package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"go-hrportal/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// PayslipSender is satisfied by payroll.Service.
type PayslipSender interface {
	SendPayslip(ctx context.Context, companyID, id string) error
}

// ConsumePayslipUpdated emails the refreshed payslip PDF when the editor
// asked for the employee to be notified.
func ConsumePayslipUpdated(
	ctx context.Context,
	reader MessageReader,
	payrollService PayslipSender,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payslip_updated")

	consume(ctx, reader, log, func(ctx context.Context, msg kafkago.Message) error {
		var event events.PayslipUpdatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return fmt.Errorf("%w: decode payslip_updated: %v", errSkip, err)
		}

		if !event.NotifyEmployee {
			return nil
		}

		if err := payrollService.SendPayslip(ctx, event.CompanyID, event.PayslipID); err != nil {
			return err
		}

		log.Info("payslip emailed",
			zap.String("payslip_id", event.PayslipID),
			zap.String("company_id", event.CompanyID),
		)
		return nil
	})
}
