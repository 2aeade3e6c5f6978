package reservation

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"houserental/model"
	rs "houserental/service/reservation"
	"houserental/util/dates"
)

type Controller struct {
	Svc rs.Service
	V   *validator.Validate
	Log *slog.Logger
}

type reservationResp struct {
	ID         int64          `json:"id"`
	UnitID     int64          `json:"unit_id"`
	Customer   model.Customer `json:"customer"`
	CheckIn    string         `json:"check_in"`
	CheckOut   string         `json:"check_out"`
	Nights     int64          `json:"nights"`
	TotalPrice string         `json:"total_price"`
	Paid       bool           `json:"paid"`
}

func toResp(r *model.Reservation) reservationResp {
	return reservationResp{
		ID:         r.ID,
		UnitID:     r.Unit.ID,
		Customer:   r.Customer,
		CheckIn:    dates.Format(r.CheckIn),
		CheckOut:   dates.Format(r.CheckOut),
		Nights:     r.Nights(),
		TotalPrice: r.TotalPrice.StringFixed(2),
		Paid:       r.Paid,
	}
}

// POST /v1/reservations
func (h *Controller) Create(c echo.Context) error {
	var req CreateReservationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	checkIn, err := dates.Parse(req.CheckIn)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid date", "field": "check_in"})
	}
	checkOut, err := dates.Parse(req.CheckOut)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid date", "field": "check_out"})
	}

	customer := model.Customer{
		FullName: req.Customer.FullName,
		Phone:    req.Customer.Phone,
		Email:    req.Customer.Email,
	}

	res, err := h.Svc.Create(c.Request().Context(), req.UnitID, customer, checkIn, checkOut)
	if err != nil {
		h.Log.Error("reservation create", "err", err)
		switch rs.Code(err) {
		case rs.ErrUnitNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "unit not found"})
		case rs.ErrInvalidRange:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "check_out must be after check_in"})
		case rs.ErrUnavailable:
			return c.JSON(http.StatusConflict, echo.Map{"message": "unit not available for the selected dates"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"reservation_id": res.ID,
		"status":         "PENDING",
		"nights":         res.Nights(),
		"nightly_price":  res.Unit.NightlyPrice.StringFixed(2),
		"total_price":    res.TotalPrice.StringFixed(2),
	})
}

// POST /v1/reservations/:id/payment
func (h *Controller) Pay(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req PayReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": echo.Map{"amount": "required"}})
	}

	res, err := h.Svc.Pay(c.Request().Context(), id, req.Amount)
	if err != nil {
		h.Log.Error("reservation pay", "err", err)
		switch rs.Code(err) {
		case rs.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "reservation not found"})
		case rs.ErrPaymentMismatch:
			// Re-expose the required amount so the caller can retry.
			body := echo.Map{"message": "payment amount mismatch"}
			if pending, derr := h.Svc.Detail(c.Request().Context(), id); derr == nil {
				body["required"] = pending.TotalPrice.StringFixed(2)
			}
			return c.JSON(http.StatusConflict, body)
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"reservation_id": res.ID,
		"status":         "CONFIRMED",
		"paid":           res.Paid,
		"total_price":    res.TotalPrice.StringFixed(2),
	})
}

// GET /v1/reservations/:id
func (h *Controller) Detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	res, err := h.Svc.Detail(c.Request().Context(), id)
	if err != nil {
		switch rs.Code(err) {
		case rs.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "reservation not found"})
		default:
			h.Log.Error("reservation detail", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, toResp(res))
}

// GET /v1/reservations
func (h *Controller) History(c echo.Context) error {
	rows, err := h.Svc.History(c.Request().Context())
	if err != nil {
		h.Log.Error("reservation history", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	out := make([]reservationResp, 0, len(rows))
	for _, r := range rows {
		out = append(out, toResp(r))
	}
	return c.JSON(http.StatusOK, echo.Map{"data": out})
}
