// registry/registry.go
package registry

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"houserental/model"
)

// ErrUnavailable is returned by CreateReservation when the unit is
// globally unavailable or the date range collides with a confirmed
// reservation.
var ErrUnavailable = errors.New("not available for the selected dates")

// Registry owns the fixed unit inventory and the authoritative list of
// confirmed reservations. Pending reservations live with their caller
// until payment settles them; they never block other availability
// checks — payment is the commitment point.
//
// Not safe for concurrent use: the model assumes one active reservation
// workflow at a time. A concurrent deployment would need to make the
// availability check and the confirm-on-payment step a single atomic
// operation (hold at creation, or a per-unit lock).
type Registry struct {
	units        []*model.Unit
	reservations []*model.Reservation
	nextID       int64
}

// New seeds the ten-unit inventory. The price schedule is configuration:
// two units per tier, all starting available.
func New() *Registry {
	r := &Registry{nextID: 1}
	schedule := []int64{1000, 1000, 1200, 1200, 1500, 1500, 1800, 1800, 2000, 2000}
	for i, price := range schedule {
		r.units = append(r.units, &model.Unit{
			ID:           int64(i + 1),
			NightlyPrice: decimal.NewFromInt(price),
			Available:    true,
		})
	}
	return r
}

// FindUnit returns nil when no unit carries the id; the id is user
// input, so absence is an expected outcome rather than an error.
func (r *Registry) FindUnit(id int64) *model.Unit {
	for _, u := range r.units {
		if u.ID == id {
			return u
		}
	}
	return nil
}

// IsAvailable reports whether the unit can host the candidate range.
// Only confirmed reservations block. The boundary is inclusive: a
// check-in equal to an existing check-out still conflicts (no same-day
// turnover).
func (r *Registry) IsAvailable(unit *model.Unit, checkIn, checkOut time.Time) bool {
	if !unit.Available {
		return false
	}
	for _, b := range r.reservations {
		if b.Unit.ID != unit.ID {
			continue
		}
		// Disjoint only when the candidate ends strictly before the
		// existing stay begins, or starts strictly after it ends.
		if checkOut.Before(b.CheckIn) || checkIn.After(b.CheckOut) {
			continue
		}
		return false
	}
	return true
}

// CreateReservation builds a pending reservation for the range. It is
// NOT added to the confirmed list; that happens when payment succeeds.
// On a conflict no reservation is constructed and no id is consumed.
func (r *Registry) CreateReservation(unit *model.Unit, customer model.Customer, checkIn, checkOut time.Time) (*model.Reservation, error) {
	if !r.IsAvailable(unit, checkIn, checkOut) {
		return nil, fmt.Errorf("unit %d: %w", unit.ID, ErrUnavailable)
	}
	res := model.NewReservation(r.nextID, unit, customer, checkIn, checkOut)
	r.nextID++
	return res, nil
}

// Confirm appends a reservation to the confirmed list. Calling it again
// with the same reservation is a no-op, as is calling it with nil.
func (r *Registry) Confirm(res *model.Reservation) {
	if res == nil {
		return
	}
	for _, b := range r.reservations {
		if b == res {
			return
		}
	}
	r.reservations = append(r.reservations, res)
}

// ProcessPayment settles a reservation. The amount must equal the total
// exactly — no tolerance. On a match the reservation is marked paid,
// the unit flagged unavailable and the reservation confirmed; on a
// mismatch nothing changes and the caller may retry or abandon.
func (r *Registry) ProcessPayment(res *model.Reservation, amount decimal.Decimal) bool {
	if res == nil {
		return false
	}
	if !amount.Equal(res.TotalPrice) {
		return false
	}
	res.MarkPaid()
	res.Unit.SetAvailable(false)
	r.Confirm(res)
	return true
}

// Units returns the inventory in id order.
func (r *Registry) Units() []*model.Unit { return r.units }

// Reservations returns confirmed reservations in insertion order.
func (r *Registry) Reservations() []*model.Reservation { return r.reservations }
