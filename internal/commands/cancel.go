package commands

import (
	"context"

	"innkeeper/internal/hotel"
)

// CancelBookingCommand cancels a booking by reservation id.
type CancelBookingCommand struct {
	hotel         *hotel.Hotel
	reservationID string
	result        hotel.TransitionResult
}

func NewCancelBookingCommand(h *hotel.Hotel, reservationID string) *CancelBookingCommand {
	return &CancelBookingCommand{
		hotel:         h,
		reservationID: reservationID,
	}
}

// Result reports the transition outcome after Execute: not applied means the
// booking was past the point of cancellation.
func (c *CancelBookingCommand) Result() hotel.TransitionResult {
	return c.result
}

func (c *CancelBookingCommand) Execute(ctx context.Context) error {
	result, err := c.hotel.CancelBooking(ctx, c.reservationID)
	if err != nil {
		return err
	}
	c.result = result
	return nil
}
