package hotel

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"innkeeper/pkg/config"
	apperrors "innkeeper/pkg/errors"
	"innkeeper/pkg/model"
	"innkeeper/pkg/sanitizer"

	"innkeeper/internal/hotel/validator"
)

// Hotel is the process-wide registry: rooms, accounts, and the global booking
// index. It orchestrates the booking protocol across a room and a booking and
// triggers the post-transition notification. There is deliberately no global
// lock spanning rooms; the only serialization point for an admission is the
// target room's own mutex.
type Hotel struct {
	name      string
	cfg       *config.Config
	validator *validator.BookingValidator
	notifier  Notifier

	mu        sync.RWMutex
	rooms     map[string]*Room
	roomOrder []string
	accounts  map[string]*Account

	index bookingIndex
}

// New builds a registry. notifier becomes the default delivery callback for
// accounts registered without their own; nil means events are dropped for
// such accounts.
func New(cfg *config.Config, v *validator.BookingValidator, notifier Notifier) *Hotel {
	return &Hotel{
		name:      cfg.HotelName,
		cfg:       cfg,
		validator: v,
		notifier:  notifier,
		rooms:     make(map[string]*Room),
		accounts:  make(map[string]*Account),
		index:     bookingIndex{byID: make(map[string]*Booking)},
	}
}

func (h *Hotel) Name() string { return h.name }

func (h *Hotel) AddRoom(r *Room) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.rooms[r.ID()]; exists {
		return apperrors.Conflict(fmt.Sprintf("room %s is already registered", r.ID()))
	}
	h.rooms[r.ID()] = r
	h.roomOrder = append(h.roomOrder, r.ID())

	h.cfg.Log.Info("Room registered",
		"room_id", r.ID(),
		"style", r.Style(),
		"price", r.Price(),
		"smoking", r.Smoking(),
	)
	return nil
}

func (h *Hotel) AddAccount(a *Account) error {
	a.name = sanitizer.NormalizeName(a.name)
	a.phone = sanitizer.SanitizePhone(a.phone)

	h.mu.Lock()
	if _, exists := h.accounts[a.ID()]; exists {
		h.mu.Unlock()
		return apperrors.Conflict(fmt.Sprintf("account %s is already registered", a.ID()))
	}
	h.accounts[a.ID()] = a
	h.mu.Unlock()

	a.mu.Lock()
	if a.notifier == nil {
		a.notifier = h.notifier
	}
	a.mu.Unlock()

	h.cfg.Log.Info("Account registered", "account_id", a.ID(), "kind", a.Kind())
	return nil
}

func (h *Hotel) RoomByID(id string) (*Room, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	r, ok := h.rooms[id]
	return r, ok
}

func (h *Hotel) AccountByID(id string) (*Account, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	a, ok := h.accounts[id]
	return a, ok
}

// FindBooking looks a booking up by reservation id in the global index.
func (h *Hotel) FindBooking(reservationID string) (*Booking, bool) {
	return h.index.get(reservationID)
}

// Bookings returns a snapshot of the global booking index.
func (h *Hotel) Bookings() []*Booking {
	return h.index.snapshot()
}

// CreateBooking runs the booking protocol: validate inputs, resolve the room
// and the guest, then admit and commit under the room's lock. On any error
// the registry is left untouched; on success the returned booking is PENDING
// and already present in all three views (global index, room collection,
// guest list).
func (h *Hotel) CreateBooking(ctx context.Context, req *model.BookingRequest) (*Booking, error) {
	if req == nil {
		return nil, apperrors.InvalidInput("Booking request cannot be nil")
	}

	if err := h.validator.Validate(req); err != nil {
		h.cfg.Log.Warn("Booking validation failed", "reservation_id", req.ReservationID, "error", err)
		return nil, apperrors.Validation("Invalid booking", map[string]any{"error": err.Error()})
	}
	if req.Nights > h.cfg.MaxStayNights {
		return nil, apperrors.Validation("Invalid booking", map[string]any{
			"error": fmt.Sprintf("nights (%d) exceeds the maximum stay (%d)", req.Nights, h.cfg.MaxStayNights),
		})
	}

	room, ok := h.RoomByID(req.RoomID)
	if !ok {
		return nil, apperrors.InvalidInput(fmt.Sprintf("Room %s not found", req.RoomID))
	}

	guest, ok := h.AccountByID(req.GuestID)
	if !ok || !guest.Kind().CanBook() {
		return nil, apperrors.InvalidInput(fmt.Sprintf("Account %s is not a valid guest", req.GuestID))
	}
	if guest.Status() != AccountActive {
		return nil, apperrors.InvalidInput(fmt.Sprintf("Account %s is blocked", req.GuestID))
	}

	if _, exists := h.index.get(req.ReservationID); exists {
		return nil, apperrors.Conflict(fmt.Sprintf("Booking %s already exists", req.ReservationID))
	}

	booking := newBooking(req.ReservationID, room, guest, req.StartDate, req.Nights)

	// The three-view insert runs inside the room's lock hold; releasing the
	// lock between admission and commit would let the index expose an
	// unattached booking, or let a racing request double-book the window.
	// The index insert is add-if-absent: two concurrent creates carrying the
	// same reservation id against different rooms both pass the check above,
	// and the index lock decides the winner. The loser's attach is rolled
	// back by reserve.
	err := room.reserve(booking, func() error {
		if !h.index.add(booking) {
			return apperrors.Conflict(fmt.Sprintf("Booking %s already exists", req.ReservationID))
		}
		guest.addBooking(booking)
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrRoomUnavailable) {
			return nil, apperrors.Unavailable(fmt.Sprintf("Room %s is not available for the requested dates", room.ID()))
		}
		return nil, err
	}

	h.cfg.Log.Info("Booking created",
		"reservation_id", booking.ID(),
		"room_id", room.ID(),
		"guest_id", guest.ID(),
		"start_date", booking.StartDate(),
		"nights", booking.Nights(),
		"total", booking.Total(),
	)
	return booking, nil
}

// ConfirmBooking moves a pending booking to confirmed and notifies the guest.
// Any other current status leaves the booking unchanged and reports a
// non-applied result.
func (h *Hotel) ConfirmBooking(ctx context.Context, b *Booking) TransitionResult {
	if b == nil {
		return TransitionResult{}
	}

	res := b.transition(StatusConfirmed, StatusPending)
	if !res.Applied {
		h.cfg.Log.Warn("Could not confirm booking", "reservation_id", b.ID(), "status", res.Status)
		return res
	}

	h.cfg.Log.Info("Booking confirmed", "reservation_id", b.ID(), "room_id", b.Room().ID())
	h.notify(ctx, b, fmt.Sprintf("Your booking %s has been confirmed.", b.ID()))
	return res
}

// CancelBooking cancels a pending or confirmed booking by reservation id and
// removes it from all three views under the room's lock. An unknown id is a
// not-found error; an ineligible status is a non-applied result.
func (h *Hotel) CancelBooking(ctx context.Context, reservationID string) (TransitionResult, error) {
	b, ok := h.index.get(reservationID)
	if !ok {
		return TransitionResult{}, apperrors.NotFoundWithID("Booking", reservationID)
	}

	res := b.transition(StatusCancelled, StatusPending, StatusConfirmed)
	if !res.Applied {
		h.cfg.Log.Warn("Could not cancel booking", "reservation_id", b.ID(), "status", res.Status)
		return res, nil
	}

	b.Room().release(b, func() {
		h.index.remove(b.ID())
		b.Guest().removeBooking(b)
	})

	h.cfg.Log.Info("Booking cancelled", "reservation_id", b.ID(), "room_id", b.Room().ID())
	h.notify(ctx, b, fmt.Sprintf("Your booking %s has been cancelled.", b.ID()))
	return res, nil
}

// CheckIn admits the guest: confirmed -> checked_in, room -> occupied.
func (h *Hotel) CheckIn(ctx context.Context, b *Booking) TransitionResult {
	if b == nil {
		return TransitionResult{}
	}

	res := b.transition(StatusCheckedIn, StatusConfirmed)
	if !res.Applied {
		h.cfg.Log.Warn("Could not check in booking", "reservation_id", b.ID(), "status", res.Status)
		return res
	}

	b.Room().markOccupied()
	h.cfg.Log.Info("Guest checked in", "reservation_id", b.ID(), "room_id", b.Room().ID())
	return res
}

// CheckOut releases the room: checked_in -> checked_out, room -> available.
func (h *Hotel) CheckOut(ctx context.Context, b *Booking) TransitionResult {
	if b == nil {
		return TransitionResult{}
	}

	res := b.transition(StatusCheckedOut, StatusCheckedIn)
	if !res.Applied {
		h.cfg.Log.Warn("Could not check out booking", "reservation_id", b.ID(), "status", res.Status)
		return res
	}

	b.Room().markVacant()
	h.cfg.Log.Info("Guest checked out", "reservation_id", b.ID(), "room_id", b.Room().ID())
	return res
}

func (h *Hotel) notify(ctx context.Context, b *Booking, message string) {
	n := Notification{
		GuestID:       b.Guest().ID(),
		Message:       message,
		ReservationID: b.ID(),
		RoomID:        b.Room().ID(),
	}
	if err := b.Guest().notify(ctx, n); err != nil {
		h.cfg.Log.Warn("Failed to deliver booking notification",
			"reservation_id", b.ID(),
			"guest_id", n.GuestID,
			"error", err,
		)
	}
}

// roomsSnapshot enumerates rooms in registration order.
func (h *Hotel) roomsSnapshot() []*Room {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]*Room, 0, len(h.roomOrder))
	for _, id := range h.roomOrder {
		out = append(out, h.rooms[id])
	}
	return out
}

// bookingIndex is the global reservation-id index. Cross-view consistency
// comes from the room lock held around every insert and remove; the index's
// own lock keeps the container coherent and arbitrates duplicate ids arriving
// through different rooms.
type bookingIndex struct {
	mu   sync.RWMutex
	byID map[string]*Booking
}

// add inserts b unless its id is already taken and reports whether the
// insert happened.
func (idx *bookingIndex) add(b *Booking) bool {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	if _, exists := idx.byID[b.ID()]; exists {
		return false
	}
	idx.byID[b.ID()] = b
	return true
}

func (idx *bookingIndex) remove(id string) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	delete(idx.byID, id)
}

func (idx *bookingIndex) get(id string) (*Booking, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	b, ok := idx.byID[id]
	return b, ok
}

func (idx *bookingIndex) snapshot() []*Booking {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	out := make([]*Booking, 0, len(idx.byID))
	for _, b := range idx.byID {
		out = append(out, b)
	}
	return out
}
