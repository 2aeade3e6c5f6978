package unit

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"houserental/model"
	inventorysvc "houserental/service/inventory"
	"houserental/util/dates"
)

type Controller struct {
	Svc inventorysvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

type unitResp struct {
	ID           int64  `json:"id"`
	NightlyPrice string `json:"nightly_price"`
	Available    bool   `json:"available"`
}

func toResp(u *model.Unit) unitResp {
	return unitResp{
		ID:           u.ID,
		NightlyPrice: u.NightlyPrice.StringFixed(2),
		Available:    u.Available,
	}
}

// GET /v1/units
func (h *Controller) List(c echo.Context) error {
	units, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("unit list error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	out := make([]unitResp, 0, len(units))
	for _, u := range units {
		out = append(out, toResp(u))
	}
	return c.JSON(http.StatusOK, echo.Map{"data": out})
}

// GET /v1/units/:id
func (h *Controller) Detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	u, err := h.Svc.Detail(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, inventorysvc.ErrUnitNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "unit not found"})
		}
		h.Log.Error("unit detail error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, toResp(u))
}

// GET /v1/units/:id/availability?check_in=DD/MM/YYYY&check_out=DD/MM/YYYY
func (h *Controller) Availability(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	checkIn, err := dates.Parse(c.QueryParam("check_in"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid date", "field": "check_in"})
	}
	checkOut, err := dates.Parse(c.QueryParam("check_out"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid date", "field": "check_out"})
	}

	ok, err := h.Svc.CheckAvailability(c.Request().Context(), id, checkIn, checkOut)
	if err != nil {
		if errors.Is(err, inventorysvc.ErrUnitNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "unit not found"})
		}
		h.Log.Error("availability error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"unit_id":   id,
		"check_in":  dates.Format(checkIn),
		"check_out": dates.Format(checkOut),
		"available": ok,
	})
}
