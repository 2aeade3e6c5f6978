package reservation

import "github.com/shopspring/decimal"

type CustomerReq struct {
	FullName string `json:"full_name" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
}

type CreateReservationReq struct {
	UnitID   int64       `json:"unit_id" validate:"required,gt=0"`
	Customer CustomerReq `json:"customer" validate:"required"`
	CheckIn  string      `json:"check_in" validate:"required"`
	CheckOut string      `json:"check_out" validate:"required"`
}

type PayReq struct {
	Amount decimal.Decimal `json:"amount" validate:"required"`
}
