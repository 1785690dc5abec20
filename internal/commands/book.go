package commands

import (
	"context"

	"innkeeper/internal/hotel"
	"innkeeper/pkg/model"

	"github.com/google/uuid"
)

// BookRoomCommand creates a booking and confirms it in one step. A missing
// reservation id is filled with a generated one at construction, so the id is
// known before Execute runs.
type BookRoomCommand struct {
	hotel   *hotel.Hotel
	req     model.BookingRequest
	booking *hotel.Booking
}

func NewBookRoomCommand(h *hotel.Hotel, req model.BookingRequest) *BookRoomCommand {
	if req.ReservationID == "" {
		req.ReservationID = uuid.New().String()
	}
	return &BookRoomCommand{
		hotel: h,
		req:   req,
	}
}

func (c *BookRoomCommand) ReservationID() string {
	return c.req.ReservationID
}

// Booking returns the created booking after a successful Execute.
func (c *BookRoomCommand) Booking() *hotel.Booking {
	return c.booking
}

func (c *BookRoomCommand) Execute(ctx context.Context) error {
	booking, err := c.hotel.CreateBooking(ctx, &c.req)
	if err != nil {
		return err
	}
	c.booking = booking
	c.hotel.ConfirmBooking(ctx, booking)
	return nil
}
