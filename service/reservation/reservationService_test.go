// service/reservation/reservation_service_test.go
package reservation_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"houserental/model"
	reservationsvc "houserental/service/reservation"
)

type regMock struct {
	findFn   func(id int64) *model.Unit
	createFn func(unit *model.Unit, customer model.Customer, checkIn, checkOut time.Time) (*model.Reservation, error)
	payFn    func(res *model.Reservation, amount decimal.Decimal) bool
	listFn   func() []*model.Reservation
}

var _ reservationsvc.Registry = (*regMock)(nil)

func (m *regMock) FindUnit(id int64) *model.Unit {
	if m.findFn == nil {
		return nil
	}
	return m.findFn(id)
}
func (m *regMock) CreateReservation(unit *model.Unit, customer model.Customer, checkIn, checkOut time.Time) (*model.Reservation, error) {
	return m.createFn(unit, customer, checkIn, checkOut)
}
func (m *regMock) ProcessPayment(res *model.Reservation, amount decimal.Decimal) bool {
	return m.payFn(res, amount)
}
func (m *regMock) Reservations() []*model.Reservation {
	if m.listFn == nil {
		return nil
	}
	return m.listFn()
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testUnit() *model.Unit {
	return &model.Unit{ID: 1, NightlyPrice: decimal.NewFromInt(1000), Available: true}
}

func testCustomer() model.Customer {
	return model.Customer{FullName: "Somchai Jaidee", Phone: "081-234-5678", Email: "somchai@example.com"}
}

func TestCreate_UnitNotFound(t *testing.T) {
	s := reservationsvc.New(&regMock{})

	_, err := s.Create(context.Background(), 99, testCustomer(), date(2025, 12, 15), date(2025, 12, 18))
	if got := reservationsvc.Code(err); got != reservationsvc.ErrUnitNotFound {
		t.Fatalf("code = %q; want UNIT_NOT_FOUND", got)
	}
}

func TestCreate_InvalidRange_RejectedBeforeConstruction(t *testing.T) {
	called := false
	m := &regMock{
		findFn: func(id int64) *model.Unit { return testUnit() },
		createFn: func(unit *model.Unit, customer model.Customer, in, out time.Time) (*model.Reservation, error) {
			called = true
			return nil, nil
		},
	}
	s := reservationsvc.New(m)

	// check_out == check_in
	_, err := s.Create(context.Background(), 1, testCustomer(), date(2025, 12, 15), date(2025, 12, 15))
	if got := reservationsvc.Code(err); got != reservationsvc.ErrInvalidRange {
		t.Fatalf("code = %q; want INVALID_RANGE", got)
	}

	// inverted
	_, err = s.Create(context.Background(), 1, testCustomer(), date(2025, 12, 18), date(2025, 12, 15))
	if got := reservationsvc.Code(err); got != reservationsvc.ErrInvalidRange {
		t.Fatalf("code = %q; want INVALID_RANGE", got)
	}

	if called {
		t.Fatal("registry must not be asked to construct for an invalid range")
	}
}

func TestCreate_Unavailable(t *testing.T) {
	m := &regMock{
		findFn: func(id int64) *model.Unit { return testUnit() },
		createFn: func(unit *model.Unit, customer model.Customer, in, out time.Time) (*model.Reservation, error) {
			return nil, context.DeadlineExceeded // any registry error maps to UNAVAILABLE
		},
	}
	s := reservationsvc.New(m)

	_, err := s.Create(context.Background(), 1, testCustomer(), date(2025, 12, 15), date(2025, 12, 18))
	if got := reservationsvc.Code(err); got != reservationsvc.ErrUnavailable {
		t.Fatalf("code = %q; want UNAVAILABLE", got)
	}
}

func TestCreate_ThenPay(t *testing.T) {
	u := testUnit()
	m := &regMock{
		findFn: func(id int64) *model.Unit { return u },
		createFn: func(unit *model.Unit, customer model.Customer, in, out time.Time) (*model.Reservation, error) {
			return model.NewReservation(1, unit, customer, in, out), nil
		},
		payFn: func(res *model.Reservation, amount decimal.Decimal) bool {
			if !amount.Equal(res.TotalPrice) {
				return false
			}
			res.MarkPaid()
			return true
		},
	}
	s := reservationsvc.New(m)

	res, err := s.Create(context.Background(), 1, testCustomer(), date(2025, 12, 15), date(2025, 12, 18))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !res.TotalPrice.Equal(decimal.NewFromInt(3000)) {
		t.Fatalf("total = %s; want 3000", res.TotalPrice)
	}

	// The pending reservation is findable by id for the payment step.
	paid, err := s.Pay(context.Background(), res.ID, decimal.NewFromInt(3000))
	if err != nil {
		t.Fatalf("pay: %v", err)
	}
	if !paid.Paid {
		t.Fatal("reservation should be paid")
	}
}

func TestPay_NotFound(t *testing.T) {
	s := reservationsvc.New(&regMock{})

	_, err := s.Pay(context.Background(), 42, decimal.NewFromInt(1000))
	if got := reservationsvc.Code(err); got != reservationsvc.ErrNotFound {
		t.Fatalf("code = %q; want RESERVATION_NOT_FOUND", got)
	}
}

func TestPay_Mismatch_StaysPending(t *testing.T) {
	u := testUnit()
	m := &regMock{
		findFn: func(id int64) *model.Unit { return u },
		createFn: func(unit *model.Unit, customer model.Customer, in, out time.Time) (*model.Reservation, error) {
			return model.NewReservation(1, unit, customer, in, out), nil
		},
		payFn: func(res *model.Reservation, amount decimal.Decimal) bool {
			return amount.Equal(res.TotalPrice)
		},
	}
	s := reservationsvc.New(m)

	res, err := s.Create(context.Background(), 1, testCustomer(), date(2025, 12, 15), date(2025, 12, 18))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = s.Pay(context.Background(), res.ID, decimal.RequireFromString("2999.99"))
	if got := reservationsvc.Code(err); got != reservationsvc.ErrPaymentMismatch {
		t.Fatalf("code = %q; want PAYMENT_MISMATCH", got)
	}

	// Still pending: Detail finds it and a retry is possible.
	again, err := s.Detail(context.Background(), res.ID)
	if err != nil || again.Paid {
		t.Fatalf("detail after mismatch: res=%+v err=%v", again, err)
	}
	if _, err := s.Pay(context.Background(), res.ID, decimal.NewFromInt(3000)); err != nil {
		t.Fatalf("retry pay: %v", err)
	}
}

func TestDetail_FallsBackToConfirmedList(t *testing.T) {
	u := testUnit()
	confirmed := model.NewReservation(9, u, testCustomer(), date(2025, 12, 1), date(2025, 12, 3))
	confirmed.MarkPaid()

	s := reservationsvc.New(&regMock{
		listFn: func() []*model.Reservation { return []*model.Reservation{confirmed} },
	})

	got, err := s.Detail(context.Background(), 9)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if got != confirmed {
		t.Fatal("expected the confirmed reservation")
	}

	rows, err := s.History(context.Background())
	if err != nil || len(rows) != 1 {
		t.Fatalf("history: rows=%v err=%v", rows, err)
	}
}
