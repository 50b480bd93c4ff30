package repository

import "github.com/iliyamo/hotel-reservation/internal/model"

// GuestRepo stores guests keyed by national ID. Guest IDs are assigned
// sequentially starting at 1 and never reused; iteration order is
// insertion order.
type GuestRepo struct {
	guests       []*model.Guest // records in insertion order
	byNationalID map[string]int // national ID -> index into guests
	byID         map[int64]int  // guest ID -> index into guests
	nextID       int64          // next guest ID to assign
}

// NewGuestRepo constructs an empty guest store.
func NewGuestRepo() *GuestRepo {
	return &GuestRepo{
		byNationalID: make(map[string]int),
		byID:         make(map[int64]int),
		nextID:       1,
	}
}

// Create inserts a new guest and assigns its sequential ID. It returns
// ErrDuplicateGuest when the national ID is already registered; on
// error the store, including the ID counter, is unchanged.
func (r *GuestRepo) Create(g *model.Guest) error {
	if _, ok := r.byNationalID[g.NationalID]; ok {
		return ErrDuplicateGuest
	}
	g.ID = r.nextID
	r.nextID++
	r.byNationalID[g.NationalID] = len(r.guests)
	r.byID[g.ID] = len(r.guests)
	r.guests = append(r.guests, g)
	return nil
}

// GetByNationalID returns the guest registered under the given
// national ID or ErrGuestNotFound.
func (r *GuestRepo) GetByNationalID(nationalID string) (*model.Guest, error) {
	i, ok := r.byNationalID[nationalID]
	if !ok {
		return nil, ErrGuestNotFound
	}
	return r.guests[i], nil
}

// GetByID returns the guest with the given guest ID or ErrGuestNotFound.
func (r *GuestRepo) GetByID(id int64) (*model.Guest, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, ErrGuestNotFound
	}
	return r.guests[i], nil
}

// AppendHistory appends a resolved reservation ID to the guest's
// history. The history is append-only and records resolution order.
func (r *GuestRepo) AppendHistory(guestID, reservationID int64) error {
	g, err := r.GetByID(guestID)
	if err != nil {
		return err
	}
	g.History = append(g.History, reservationID)
	return nil
}

// List returns all guests in insertion order.
func (r *GuestRepo) List() []*model.Guest {
	out := make([]*model.Guest, len(r.guests))
	copy(out, r.guests)
	return out
}
