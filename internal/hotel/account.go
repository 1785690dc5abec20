package hotel

import (
	"context"
	"sync"
)

// AccountKind tags what an account is for. The capability to hold bookings
// hangs off the kind, so requester validation never needs type inspection.
type AccountKind string

const (
	KindGuest        AccountKind = "guest"
	KindReceptionist AccountKind = "receptionist"
)

// CanBook reports whether accounts of this kind may hold bookings.
func (k AccountKind) CanBook() bool {
	return k == KindGuest
}

type AccountStatus string

const (
	AccountActive  AccountStatus = "active"
	AccountBlocked AccountStatus = "blocked"
)

// Account is a registered user of the hotel: a guest who holds bookings and
// receives notifications, or a receptionist who runs check-in and check-out.
type Account struct {
	id    string
	name  string
	email string
	phone string
	kind  AccountKind

	mu       sync.Mutex
	status   AccountStatus
	bookings []*Booking
	notifier Notifier
}

func NewGuest(id, name, email, phone string) *Account {
	return newAccount(id, name, email, phone, KindGuest)
}

func NewReceptionist(id, name, email, phone string) *Account {
	return newAccount(id, name, email, phone, KindReceptionist)
}

func newAccount(id, name, email, phone string, kind AccountKind) *Account {
	return &Account{
		id:     id,
		name:   name,
		email:  email,
		phone:  phone,
		kind:   kind,
		status: AccountActive,
	}
}

func (a *Account) ID() string        { return a.id }
func (a *Account) Name() string      { return a.name }
func (a *Account) Email() string     { return a.email }
func (a *Account) Phone() string     { return a.phone }
func (a *Account) Kind() AccountKind { return a.kind }

func (a *Account) Status() AccountStatus {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.status
}

func (a *Account) Block() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.status = AccountBlocked
}

func (a *Account) Activate() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.status = AccountActive
}

// Bookings returns a snapshot of the account's personal booking list.
func (a *Account) Bookings() []*Booking {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]*Booking, len(a.bookings))
	copy(out, a.bookings)
	return out
}

func (a *Account) addBooking(b *Booking) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.bookings = append(a.bookings, b)
}

func (a *Account) removeBooking(b *Booking) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i, held := range a.bookings {
		if held == b {
			a.bookings = append(a.bookings[:i], a.bookings[i+1:]...)
			return
		}
	}
}

// SetNotifier installs the callback booking events for this account are
// delivered through.
func (a *Account) SetNotifier(n Notifier) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.notifier = n
}

func (a *Account) notify(ctx context.Context, n Notification) error {
	a.mu.Lock()
	notifier := a.notifier
	a.mu.Unlock()

	if notifier == nil {
		return nil
	}
	return notifier.Notify(ctx, n)
}
