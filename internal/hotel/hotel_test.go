package hotel

import (
	"io"
	"testing"
	"time"

	"innkeeper/internal/hotel/validator"
	"innkeeper/pkg/config"
	"innkeeper/pkg/logger"
	"innkeeper/pkg/model"

	"github.com/shopspring/decimal"
)

func newTestConfig() *config.Config {
	return &config.Config{
		HotelName:        "Grand Plaza",
		BookingGrace:     24 * time.Hour,
		MaxStayNights:    365,
		SimulatorWorkers: 4,
		Log:              logger.New(logger.Config{Level: logger.ERROR, Output: io.Discard}),
	}
}

func newTestHotel(t *testing.T) *Hotel {
	t.Helper()

	cfg := newTestConfig()
	v := validator.NewBookingValidator(cfg.Log, cfg.BookingGrace)
	h := New(cfg, v, nil)

	mustAddRoom(t, h, "101", StyleDeluxe, "150.00", false)
	mustAddRoom(t, h, "102", StyleDeluxe, "150.00", true)
	mustAddRoom(t, h, "201", StyleFamilySuite, "450.00", false)

	mustAddAccount(t, h, NewGuest("G001", "Alice", "alice@example.com", "+12125550101"))
	mustAddAccount(t, h, NewGuest("G002", "Bob", "bob@example.com", "+12125550102"))
	mustAddAccount(t, h, NewReceptionist("R001", "Carol", "carol@hotel.example", "+12125550103"))

	return h
}

func mustAddRoom(t *testing.T, h *Hotel, id string, style RoomStyle, price string, smoking bool) *Room {
	t.Helper()
	room, err := NewRoom(id, style, decimal.RequireFromString(price), smoking)
	if err != nil {
		t.Fatalf("NewRoom(%s): %v", id, err)
	}
	if err := h.AddRoom(room); err != nil {
		t.Fatalf("AddRoom(%s): %v", id, err)
	}
	return room
}

func mustAddAccount(t *testing.T, h *Hotel, a *Account) {
	t.Helper()
	if err := h.AddAccount(a); err != nil {
		t.Fatalf("AddAccount(%s): %v", a.ID(), err)
	}
}

func bookingReq(id, roomID, guestID string, start time.Time, nights int) *model.BookingRequest {
	return &model.BookingRequest{
		ReservationID: id,
		RoomID:        roomID,
		GuestID:       guestID,
		StartDate:     start,
		Nights:        nights,
	}
}

// futureDate is a fixed offset from now so every window in a test is valid.
func futureDate(days int) time.Time {
	return time.Now().AddDate(0, 0, days)
}
