package hotel

import "context"

// Notification is the payload of one booking event. Each event has exactly
// one addressee: the guest who holds the booking.
type Notification struct {
	GuestID       string `json:"guest_id"`
	Message       string `json:"message"`
	ReservationID string `json:"reservation_id"`
	RoomID        string `json:"room_id"`
}

// Notifier delivers a booking event to its guest. Implementations decide how
// to render it; delivery mechanics stay outside the engine, and failures are
// logged rather than surfaced to the booking caller.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}
