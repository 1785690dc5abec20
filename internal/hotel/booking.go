package hotel

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Booking is a time-bounded claim on one room by one guest. Identity, window
// and total price are fixed at construction; only the status moves.
type Booking struct {
	id     string
	room   *Room
	guest  *Account
	start  time.Time
	nights int
	total  decimal.Decimal

	mu     sync.Mutex
	status BookingStatus
}

func newBooking(id string, room *Room, guest *Account, start time.Time, nights int) *Booking {
	return &Booking{
		id:     id,
		room:   room,
		guest:  guest,
		start:  start,
		nights: nights,
		total:  room.price.Mul(decimal.NewFromInt(int64(nights))),
		status: StatusPending,
	}
}

func (b *Booking) ID() string             { return b.id }
func (b *Booking) Room() *Room            { return b.room }
func (b *Booking) Guest() *Account        { return b.guest }
func (b *Booking) StartDate() time.Time   { return b.start }
func (b *Booking) Nights() int            { return b.nights }
func (b *Booking) Total() decimal.Decimal { return b.total }

// Window returns the half-open stay interval [start, end).
func (b *Booking) Window() (time.Time, time.Time) {
	return b.start, b.start.AddDate(0, 0, b.nights)
}

func (b *Booking) Status() BookingStatus {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.status
}

// TransitionResult reports a status transition attempt. Applied is false when
// the booking was not in an eligible state; Status is the status after the
// attempt either way. An inapplicable transition is an outcome to inspect,
// not an error.
type TransitionResult struct {
	Applied bool
	Status  BookingStatus
}

// transition moves the booking to the target status when its current status
// is one of from. It holds only the booking's own mutex and performs no side
// effects, so callers can acquire room locks afterwards without ordering
// hazards.
func (b *Booking) transition(to BookingStatus, from ...BookingStatus) TransitionResult {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, f := range from {
		if b.status == f {
			b.status = to
			return TransitionResult{Applied: true, Status: to}
		}
	}
	return TransitionResult{Applied: false, Status: b.status}
}
