// Package notify provides delivery backends for the engine's booking
// notifications.
package notify

import (
	"context"

	"innkeeper/internal/hotel"
	"innkeeper/pkg/logger"
)

// LogNotifier renders each booking event as one structured log line.
type LogNotifier struct {
	log *logger.Logger
}

func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(ctx context.Context, event hotel.Notification) error {
	n.log.Info("Booking notification",
		"guest_id", event.GuestID,
		"message", event.Message,
		"reservation_id", event.ReservationID,
		"room_id", event.RoomID,
	)
	return nil
}
