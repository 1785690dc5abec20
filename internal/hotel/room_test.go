package hotel

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestNewRoom_Validation(t *testing.T) {
	if _, err := NewRoom("", StyleDeluxe, decimal.RequireFromString("100"), false); err == nil {
		t.Error("expected error for empty room id")
	}
	if _, err := NewRoom("  ", StyleDeluxe, decimal.RequireFromString("100"), false); err == nil {
		t.Error("expected error for blank room id")
	}
	if _, err := NewRoom("101", StyleDeluxe, decimal.Zero, false); err == nil {
		t.Error("expected error for non-positive price")
	}

	room, err := NewRoom("101", StyleDeluxe, decimal.RequireFromString("150.00"), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if room.Status() != RoomAvailable {
		t.Errorf("new room should be available, got %s", room.Status())
	}
	if !room.Smoking() {
		t.Error("smoking flag lost")
	}
}

func TestRoom_Available_InvalidInputs(t *testing.T) {
	h := newTestHotel(t)
	room, _ := h.RoomByID("101")

	if room.Available(time.Time{}, 2) {
		t.Error("absent start date must not be available")
	}
	if room.Available(futureDate(7), 0) {
		t.Error("zero nights must not be available")
	}
	if room.Available(futureDate(7), -1) {
		t.Error("negative nights must not be available")
	}
}

func TestRoom_Available_OverlapEdges(t *testing.T) {
	h := newTestHotel(t)
	ctx := context.Background()
	room, _ := h.RoomByID("101")
	start := futureDate(10)

	b, err := h.CreateBooking(ctx, bookingReq("RES_BASE", "101", "G001", start, 3))
	if err != nil {
		t.Fatalf("seed booking failed: %v", err)
	}
	h.ConfirmBooking(ctx, b)

	tests := []struct {
		name      string
		start     time.Time
		nights    int
		available bool
	}{
		{"same window", start, 3, false},
		{"overlap at tail", start.AddDate(0, 0, 2), 2, false},
		{"starts inside", start.AddDate(0, 0, 1), 1, false},
		{"covers whole window", start.AddDate(0, 0, -1), 5, false},
		{"adjacent after", start.AddDate(0, 0, 3), 2, true},
		{"adjacent before", start.AddDate(0, 0, -1), 1, true},
		{"well before", start.AddDate(0, 0, -5), 2, true},
		{"well after", start.AddDate(0, 0, 30), 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := room.Available(tt.start, tt.nights); got != tt.available {
				t.Errorf("Available(%v, %d) = %v, want %v", tt.start, tt.nights, got, tt.available)
			}
		})
	}
}

func TestRoom_Available_OccupiedRoomBlocksEverything(t *testing.T) {
	h := newTestHotel(t)
	ctx := context.Background()
	room, _ := h.RoomByID("101")

	b, err := h.CreateBooking(ctx, bookingReq("RES_OCC", "101", "G001", futureDate(1), 2))
	if err != nil {
		t.Fatalf("booking failed: %v", err)
	}
	h.ConfirmBooking(ctx, b)
	h.CheckIn(ctx, b)

	if room.Status() != RoomOccupied {
		t.Fatalf("expected occupied room, got %s", room.Status())
	}
	// Even a window far away is refused while a guest is in the room.
	if room.Available(futureDate(60), 1) {
		t.Error("occupied room must not report availability")
	}

	h.CheckOut(ctx, b)
	if !room.Available(futureDate(60), 1) {
		t.Error("vacated room should report availability again")
	}
}

func TestRoom_Available_ExcludesFinishedStays(t *testing.T) {
	h := newTestHotel(t)
	ctx := context.Background()
	room, _ := h.RoomByID("101")
	start := futureDate(5)

	b, err := h.CreateBooking(ctx, bookingReq("RES_DONE", "101", "G001", start, 2))
	if err != nil {
		t.Fatalf("booking failed: %v", err)
	}
	h.ConfirmBooking(ctx, b)
	h.CheckIn(ctx, b)
	h.CheckOut(ctx, b)

	// A checked-out stay no longer holds its window.
	if !room.Available(start, 2) {
		t.Error("checked-out booking must not block the window")
	}
}
