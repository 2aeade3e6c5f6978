package reservation

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"houserental/model"
)

// errors used by controllers

type ErrCode string

const (
	ErrUnitNotFound    ErrCode = "UNIT_NOT_FOUND"
	ErrUnavailable     ErrCode = "UNAVAILABLE"
	ErrInvalidRange    ErrCode = "INVALID_RANGE"
	ErrNotFound        ErrCode = "RESERVATION_NOT_FOUND"
	ErrPaymentMismatch ErrCode = "PAYMENT_MISMATCH"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// Registry is the booking core the service drives.
type Registry interface {
	FindUnit(id int64) *model.Unit
	CreateReservation(unit *model.Unit, customer model.Customer, checkIn, checkOut time.Time) (*model.Reservation, error)
	ProcessPayment(res *model.Reservation, amount decimal.Decimal) bool
	Reservations() []*model.Reservation
}

type Service interface {
	// Create: build a pending reservation, held here until payment.
	Create(ctx context.Context, unitID int64, customer model.Customer, checkIn, checkOut time.Time) (*model.Reservation, error)

	// Pay: settle a pending reservation; the amount must match exactly.
	Pay(ctx context.Context, reservationID int64, amount decimal.Decimal) (*model.Reservation, error)

	// Detail: look up a reservation, pending or confirmed.
	Detail(ctx context.Context, reservationID int64) (*model.Reservation, error)

	// History: confirmed reservations in insertion order.
	History(ctx context.Context) ([]*model.Reservation, error)
}

// ----- Service implementation -----

type service struct {
	reg Registry

	// pending holds created-but-unpaid reservations so a later payment
	// request can find them. Abandoned entries are never confirmed and
	// need no cleanup.
	pending map[int64]*model.Reservation
}

func New(reg Registry) Service {
	return &service{reg: reg, pending: make(map[int64]*model.Reservation)}
}

func (s *service) Create(ctx context.Context, unitID int64, customer model.Customer, checkIn, checkOut time.Time) (*model.Reservation, error) {
	unit := s.reg.FindUnit(unitID)
	if unit == nil {
		return nil, makeErr(ErrUnitNotFound)
	}

	// The entity clamps an inverted range to a one-night stay instead
	// of failing, so the range must be rejected before construction.
	if !checkOut.After(checkIn) {
		return nil, makeErr(ErrInvalidRange)
	}

	res, err := s.reg.CreateReservation(unit, customer, checkIn, checkOut)
	if err != nil {
		return nil, makeErr(ErrUnavailable)
	}

	s.pending[res.ID] = res
	return res, nil
}

func (s *service) Pay(ctx context.Context, reservationID int64, amount decimal.Decimal) (*model.Reservation, error) {
	res := s.lookup(reservationID)
	if res == nil {
		return nil, makeErr(ErrNotFound)
	}
	if !s.reg.ProcessPayment(res, amount) {
		// Reservation stays pending and unpaid; the caller may retry
		// with the corrected amount.
		return nil, makeErr(ErrPaymentMismatch)
	}
	return res, nil
}

func (s *service) Detail(ctx context.Context, reservationID int64) (*model.Reservation, error) {
	res := s.lookup(reservationID)
	if res == nil {
		return nil, makeErr(ErrNotFound)
	}
	return res, nil
}

func (s *service) History(ctx context.Context) ([]*model.Reservation, error) {
	return s.reg.Reservations(), nil
}

func (s *service) lookup(id int64) *model.Reservation {
	if res, ok := s.pending[id]; ok {
		return res
	}
	for _, res := range s.reg.Reservations() {
		if res.ID == id {
			return res
		}
	}
	return nil
}
