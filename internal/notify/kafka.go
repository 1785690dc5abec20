package notify

import (
	"context"

	"innkeeper/internal/hotel"
	"innkeeper/pkg/kafka"
)

const EventTypeBookingNotification = "booking.notification"

// KafkaNotifier publishes each booking event to a topic, keyed by guest id so
// one guest's events stay ordered.
type KafkaNotifier struct {
	producer *kafka.Producer
	source   string
}

func NewKafkaNotifier(producer *kafka.Producer, source string) *KafkaNotifier {
	return &KafkaNotifier{
		producer: producer,
		source:   source,
	}
}

func (n *KafkaNotifier) Notify(ctx context.Context, event hotel.Notification) error {
	msg := kafka.NewMessage().
		WithKey(event.GuestID).
		WithValue(event).
		WithEventType(EventTypeBookingNotification).
		WithSource(n.source).
		Build()

	return n.producer.Publish(ctx, msg)
}
