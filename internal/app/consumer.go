package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"go-hrportal/internal/config"
	"go-hrportal/internal/events"
	"go-hrportal/internal/messaging/kafka"
	"go-hrportal/internal/messaging/kafka/consumer"
	"go-hrportal/internal/payroll"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func newReader(cfg config.Config, topic, group string) *kafkago.Reader {
	return kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		Topic:          topic,
		GroupID:        group,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
}

// RunConsumer runs the payslip mailer and the geofence alert consumers
// until SIGINT/SIGTERM.
func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	in, err := ConnectInfra(cfg, false)
	if err != nil {
		return err
	}
	defer in.Close()

	sender := newSender(cfg)
	payrollRepo := payroll.NewRepository(in.GormDB)
	payrollService := payroll.NewServiceWithOutbox(
		in.SQLDB, payrollRepo, kafka.NewOutboxRepository(in.SQLDB), in.Audit, sender,
	)

	payslipReader := newReader(cfg, events.PayslipUpdatedTopic, cfg.KafkaConsumerGroup+"-payslip-mailer")
	defer payslipReader.Close()
	geofenceReader := newReader(cfg, events.GeofenceViolatedTopic, cfg.KafkaConsumerGroup+"-geofence-alert")
	defer geofenceReader.Close()

	hrRecipients := splitRecipients(cfg.HRNotifyTo)
	if len(hrRecipients) == 0 {
		logger.Warn("HR_NOTIFY_EMAIL is empty, geofence alerts will be dropped")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		consumer.ConsumePayslipUpdated(ctx, payslipReader, payrollService, logger)
	}()
	go func() {
		defer wg.Done()
		consumer.ConsumeGeofenceViolated(ctx, geofenceReader, sender, hrRecipients, logger)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()
	wg.Wait()

	return nil
}
