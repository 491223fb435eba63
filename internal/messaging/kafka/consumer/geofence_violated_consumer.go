package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go-hrportal/internal/events"
	"go-hrportal/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeGeofenceViolated alerts HR about clock-ins accepted outside the
// office radius.
func ConsumeGeofenceViolated(
	ctx context.Context,
	reader MessageReader,
	sender notification.Sender,
	hrRecipients []string,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.geofence_violated")

	consume(ctx, reader, log, func(ctx context.Context, msg kafkago.Message) error {
		var event events.GeofenceViolatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return fmt.Errorf("%w: decode geofence_violated: %v", errSkip, err)
		}

		if len(hrRecipients) == 0 {
			log.Warn("no HR recipient configured, alert not sent", zap.String("attendance_id", event.AttendanceID))
			return nil
		}

		if err := sender.Send(ctx, geofenceAlert(event, hrRecipients)); err != nil {
			return err
		}

		log.Info("geofence alert sent",
			zap.String("attendance_id", event.AttendanceID),
			zap.Int64("distance_meters", event.DistanceMeters),
		)
		return nil
	})
}

func geofenceAlert(e events.GeofenceViolatedEvent, to []string) notification.Message {
	name := e.EmployeeName
	if name == "" {
		name = e.EmployeeID
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s melakukan absen masuk di luar radius kantor.\n\n", name)
	fmt.Fprintf(&b, "Waktu   : %s\n", e.OccurredAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(&b, "Jarak   : %d m (radius %.0f m)\n", e.DistanceMeters, e.RadiusMeters)
	fmt.Fprintf(&b, "Lokasi  : %.6f, %.6f\n", e.Latitude, e.Longitude)
	if e.Address != "" {
		fmt.Fprintf(&b, "Alamat  : %s\n", e.Address)
	}
	fmt.Fprintf(&b, "Peta    : https://www.openstreetmap.org/?mlat=%.6f&mlon=%.6f#map=18/%.6f/%.6f\n",
		e.Latitude, e.Longitude, e.Latitude, e.Longitude)

	return notification.Message{
		To:      to,
		Subject: "[Absensi] Clock-in di luar radius: " + name,
		Body:    b.String(),
	}
}
