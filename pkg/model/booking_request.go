package model

import "time"

// BookingRequest carries the inputs of a single reservation attempt. The
// engine validates it before any room lock is taken.
type BookingRequest struct {
	ReservationID string    `json:"reservation_id" validate:"required,min=1,max=64"`
	RoomID        string    `json:"room_id" validate:"required,min=1,max=32"`
	GuestID       string    `json:"guest_id" validate:"required,min=1,max=32"`
	StartDate     time.Time `json:"start_date" validate:"required"`
	Nights        int       `json:"nights" validate:"required,min=1"`
}
