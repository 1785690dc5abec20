package hotel

import (
	"strings"
	"sync"
	"time"

	apperrors "innkeeper/pkg/errors"

	"github.com/shopspring/decimal"
)

// Room owns its occupancy state and its booking collection. Every read and
// write of either goes through the room's own mutex; no lock is shared
// between rooms, so bookings against different rooms never block each other.
type Room struct {
	id      string
	style   RoomStyle
	price   decimal.Decimal
	smoking bool

	mu       sync.Mutex
	status   OccupancyStatus
	bookings []*Booking
}

func NewRoom(id string, style RoomStyle, price decimal.Decimal, smoking bool) (*Room, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.InvalidInput("Room id cannot be empty")
	}
	if !price.IsPositive() {
		return nil, apperrors.InvalidInput("Room price must be positive")
	}

	return &Room{
		id:      id,
		style:   style,
		price:   price,
		smoking: smoking,
		status:  RoomAvailable,
	}, nil
}

func (r *Room) ID() string             { return r.id }
func (r *Room) Style() RoomStyle       { return r.style }
func (r *Room) Price() decimal.Decimal { return r.price }
func (r *Room) Smoking() bool          { return r.smoking }

func (r *Room) Status() OccupancyStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

// Bookings returns a snapshot of the room's booking collection.
func (r *Room) Bookings() []*Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Booking, len(r.bookings))
	copy(out, r.bookings)
	return out
}

// Available reports whether the room can take a stay over
// [start, start+nights). It is a read-only check: a pending booking from an
// in-flight request is not a final admission and does not count here; the
// actual race between concurrent requests is closed by reserve.
func (r *Room) Available(start time.Time, nights int) bool {
	if start.IsZero() || nights <= 0 {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.status != RoomAvailable {
		return false
	}
	return !r.overlapsLocked(start, nights, false)
}

// overlapsLocked scans the booking collection for a window crossing
// [start, start+nights), half-open on both sides so back-to-back stays don't
// collide. includePending widens the scan to admitted-but-unconfirmed
// bookings. Caller must hold r.mu.
func (r *Room) overlapsLocked(start time.Time, nights int, includePending bool) bool {
	end := start.AddDate(0, 0, nights)
	for _, b := range r.bookings {
		switch b.Status() {
		case StatusCancelled, StatusCheckedOut:
			continue
		case StatusPending:
			if !includePending {
				continue
			}
		}
		bookedEnd := b.start.AddDate(0, 0, b.nights)
		if start.Before(bookedEnd) && b.start.Before(end) {
			return true
		}
	}
	return false
}

// reserve is the admission critical section. Under the room lock it checks
// occupancy and window overlap (pending bookings block here: the loser of a
// race must observe the winner's just-attached booking), attaches b, and runs
// commit before releasing. commit inserts b into the other views, so all
// three become visible as one step relative to any concurrent reserve on the
// same room. A commit error rolls the attach back and is returned unchanged.
func (r *Room) reserve(b *Booking, commit func() error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.status != RoomAvailable {
		return ErrRoomUnavailable
	}
	if r.overlapsLocked(b.start, b.nights, true) {
		return ErrRoomUnavailable
	}

	r.bookings = append(r.bookings, b)
	if commit != nil {
		if err := commit(); err != nil {
			r.bookings = r.bookings[:len(r.bookings)-1]
			return err
		}
	}
	return nil
}

// release detaches b and runs commit under the same lock hold, mirroring
// reserve so the three views always change together.
func (r *Room) release(b *Booking, commit func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, attached := range r.bookings {
		if attached == b {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			break
		}
	}
	if commit != nil {
		commit()
	}
}

func (r *Room) markOccupied() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status = RoomOccupied
}

func (r *Room) markVacant() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status = RoomAvailable
}
