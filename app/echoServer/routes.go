package echoServer

import (
	"github.com/labstack/echo/v4"

	"houserental/app/echoServer/controller/reservation"
	"houserental/app/echoServer/controller/unit"
)

type C struct {
	Unit        *unit.Controller
	Reservation *reservation.Controller
}

func Register(e *echo.Echo, c C) {
	v1 := e.Group("/v1")

	// Inventory
	v1.GET("/units", c.Unit.List)
	v1.GET("/units/:id", c.Unit.Detail)
	v1.GET("/units/:id/availability", c.Unit.Availability)

	// Reservations
	v1.POST("/reservations", c.Reservation.Create)
	v1.GET("/reservations", c.Reservation.History)
	v1.GET("/reservations/:id", c.Reservation.Detail)
	v1.POST("/reservations/:id/payment", c.Reservation.Pay)
}
