package consumer

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go-hrportal/internal/shared/apperror"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumers use.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// errSkip marks a message that can never succeed; it is committed and dropped.
var errSkip = errors.New("skip message")

type handleFunc func(ctx context.Context, msg kafkago.Message) error

var (
	initialRetryDelay = 500 * time.Millisecond
	maxRetryDelay     = 30 * time.Second
)

// consume fetches until ctx is done. A transient handler error is retried in
// place with backoff, so no later offset of the partition is committed past
// it. A message interrupted by shutdown stays uncommitted and is redelivered.
func consume(ctx context.Context, reader MessageReader, log *zap.Logger, handle handleFunc) {
	log.Info("consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("consumer stopped")
				return
			}
			log.Error("fetch message failed", zap.Error(err))
			continue
		}

		msgLog := log.With(
			zap.String("topic", msg.Topic),
			zap.Int("partition", msg.Partition),
			zap.Int64("offset", msg.Offset),
		)

		if err := handleWithRetry(ctx, msg, msgLog, handle); err != nil {
			if ctx.Err() != nil {
				log.Info("consumer stopped", zap.Int64("uncommitted_offset", msg.Offset))
				return
			}
			msgLog.Warn("dropping message", zap.Error(err))
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			msgLog.Error("commit message failed", zap.Error(err))
		}
	}
}

// handleWithRetry returns nil on success, the permanent error that ends the
// retries, or ctx.Err() when shutdown interrupts the backoff.
func handleWithRetry(ctx context.Context, msg kafkago.Message, log *zap.Logger, handle handleFunc) error {
	delay := initialRetryDelay
	for attempt := 1; ; attempt++ {
		err := handle(ctx, msg)
		if err == nil || isPermanent(err) {
			return err
		}

		log.Error("handle message failed, retrying",
			zap.Int("attempt", attempt),
			zap.Duration("retry_in", delay),
			zap.Error(err),
		)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		delay *= 2
		if delay > maxRetryDelay {
			delay = maxRetryDelay
		}
	}
}

// isPermanent reports errors that retrying the same message cannot fix:
// undecodable payloads and client-side application errors.
func isPermanent(err error) bool {
	if errors.Is(err, errSkip) {
		return true
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.ClientFault() || appErr.HTTPStatus == http.StatusServiceUnavailable
	}
	return false
}
