package hotel

import (
	"testing"

	"github.com/shopspring/decimal"
)

func newDetachedBooking(t *testing.T) *Booking {
	t.Helper()
	room, err := NewRoom("101", StyleDeluxe, decimal.RequireFromString("150.00"), false)
	if err != nil {
		t.Fatalf("NewRoom: %v", err)
	}
	guest := NewGuest("G001", "Alice", "alice@example.com", "+12125550101")
	return newBooking("RES_001", room, guest, futureDate(7), 3)
}

func TestBooking_TotalIsPriceTimesNights(t *testing.T) {
	b := newDetachedBooking(t)

	want := decimal.RequireFromString("450.00")
	if !b.Total().Equal(want) {
		t.Errorf("Total() = %s, want %s", b.Total(), want)
	}
}

func TestBooking_Window(t *testing.T) {
	b := newDetachedBooking(t)

	start, end := b.Window()
	if !start.Equal(b.StartDate()) {
		t.Errorf("window start %v != start date %v", start, b.StartDate())
	}
	if !end.Equal(start.AddDate(0, 0, 3)) {
		t.Errorf("window end %v, want start+3d", end)
	}
}

func TestBooking_StatusMachine(t *testing.T) {
	type step struct {
		to      BookingStatus
		from    []BookingStatus
		applied bool
		status  BookingStatus
	}

	tests := []struct {
		name  string
		steps []step
	}{
		{
			name: "happy path to check-out",
			steps: []step{
				{StatusConfirmed, []BookingStatus{StatusPending}, true, StatusConfirmed},
				{StatusCheckedIn, []BookingStatus{StatusConfirmed}, true, StatusCheckedIn},
				{StatusCheckedOut, []BookingStatus{StatusCheckedIn}, true, StatusCheckedOut},
			},
		},
		{
			name: "cancel while pending",
			steps: []step{
				{StatusCancelled, []BookingStatus{StatusPending, StatusConfirmed}, true, StatusCancelled},
			},
		},
		{
			name: "cancel while confirmed",
			steps: []step{
				{StatusConfirmed, []BookingStatus{StatusPending}, true, StatusConfirmed},
				{StatusCancelled, []BookingStatus{StatusPending, StatusConfirmed}, true, StatusCancelled},
			},
		},
		{
			name: "check-in requires confirmation",
			steps: []step{
				{StatusCheckedIn, []BookingStatus{StatusConfirmed}, false, StatusPending},
			},
		},
		{
			name: "check-out requires check-in",
			steps: []step{
				{StatusConfirmed, []BookingStatus{StatusPending}, true, StatusConfirmed},
				{StatusCheckedOut, []BookingStatus{StatusCheckedIn}, false, StatusConfirmed},
			},
		},
		{
			name: "confirm twice is a no-op",
			steps: []step{
				{StatusConfirmed, []BookingStatus{StatusPending}, true, StatusConfirmed},
				{StatusConfirmed, []BookingStatus{StatusPending}, false, StatusConfirmed},
			},
		},
		{
			name: "cancel after check-in is a no-op",
			steps: []step{
				{StatusConfirmed, []BookingStatus{StatusPending}, true, StatusConfirmed},
				{StatusCheckedIn, []BookingStatus{StatusConfirmed}, true, StatusCheckedIn},
				{StatusCancelled, []BookingStatus{StatusPending, StatusConfirmed}, false, StatusCheckedIn},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newDetachedBooking(t)
			for i, s := range tt.steps {
				res := b.transition(s.to, s.from...)
				if res.Applied != s.applied {
					t.Errorf("step %d: Applied = %v, want %v", i, res.Applied, s.applied)
				}
				if res.Status != s.status {
					t.Errorf("step %d: Status = %s, want %s", i, res.Status, s.status)
				}
				if b.Status() != s.status {
					t.Errorf("step %d: booking status = %s, want %s", i, b.Status(), s.status)
				}
			}
		})
	}
}
