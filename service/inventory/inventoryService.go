package inventorysvc

import (
	"context"
	"errors"
	"time"

	"houserental/model"
)

var ErrUnitNotFound = errors.New("unit not found")

// Registry is the read side of the booking core.
type Registry interface {
	Units() []*model.Unit
	FindUnit(id int64) *model.Unit
	IsAvailable(unit *model.Unit, checkIn, checkOut time.Time) bool
}

type Service interface {
	List(ctx context.Context) ([]*model.Unit, error)
	Detail(ctx context.Context, id int64) (*model.Unit, error)

	// CheckAvailability probes a unit for a candidate date range
	// without creating anything.
	CheckAvailability(ctx context.Context, unitID int64, checkIn, checkOut time.Time) (bool, error)
}

type service struct{ reg Registry }

func New(reg Registry) Service { return &service{reg: reg} }

func (s *service) List(ctx context.Context) ([]*model.Unit, error) {
	return s.reg.Units(), nil
}

func (s *service) Detail(ctx context.Context, id int64) (*model.Unit, error) {
	u := s.reg.FindUnit(id)
	if u == nil {
		return nil, ErrUnitNotFound
	}
	return u, nil
}

func (s *service) CheckAvailability(ctx context.Context, unitID int64, checkIn, checkOut time.Time) (bool, error) {
	u := s.reg.FindUnit(unitID)
	if u == nil {
		return false, ErrUnitNotFound
	}
	return s.reg.IsAvailable(u, checkIn, checkOut), nil
}
