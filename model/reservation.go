// model/reservation.go
package model

import (
	"time"

	"github.com/shopspring/decimal"

	"houserental/util/dates"
)

// Reservation is a priced stay request for one unit over a date range.
// It starts pending (unpaid, held by its creator) and becomes confirmed
// once the registry settles its payment.
type Reservation struct {
	ID         int64           `json:"id"`
	Unit       *Unit           `json:"unit"`
	Customer   Customer        `json:"customer"`
	CheckIn    time.Time       `json:"check_in"`
	CheckOut   time.Time       `json:"check_out"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Paid       bool            `json:"paid"`
}

// NewReservation builds an unpaid reservation and prices it:
// nights × nightly price. The id comes from the registry's counter.
func NewReservation(id int64, unit *Unit, customer Customer, checkIn, checkOut time.Time) *Reservation {
	r := &Reservation{
		ID:       id,
		Unit:     unit,
		Customer: customer,
		CheckIn:  dates.Midnight(checkIn),
		CheckOut: dates.Midnight(checkOut),
	}
	r.TotalPrice = unit.NightlyPrice.Mul(decimal.NewFromInt(r.Nights()))
	return r
}

// Nights is the billable night count. An inverted or same-day range
// counts as a single night; rejecting such ranges is the caller's job.
// Dates never change after construction, so this always agrees with the
// count used to price the reservation.
func (r *Reservation) Nights() int64 {
	days := dates.DaysBetween(r.CheckIn, r.CheckOut)
	if days <= 0 {
		return 1
	}
	return days
}

// MarkPaid records payment. The unit's availability flag is registry
// state and is not touched here.
func (r *Reservation) MarkPaid() { r.Paid = true }
