// Package main house rental API.
//
// @title           House Rental API
// @version         1.0
// @description     reservation service for a fixed inventory of ten rental units.
// @BasePath        /
// @schemes         http
package main

import (
	"log/slog"
	"os"

	"houserental/app/echoServer"
	resctrl "houserental/app/echoServer/controller/reservation"
	unitctrl "houserental/app/echoServer/controller/unit"
	"houserental/app/echoServer/validation"
	"houserental/config"
	"houserental/repository/registry"
	inventorysvc "houserental/service/inventory"
	reservationsvc "houserental/service/reservation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func main() {

	cfg := config.Load()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// booking core: in-memory, seeded with the fixed ten-unit inventory
	reg := registry.New()

	// services
	is := inventorysvc.New(reg)
	rs := reservationsvc.New(reg)

	// controllers
	v := validator.New()
	unitC := &unitctrl.Controller{Svc: is, V: v, Log: log}
	resC := &resctrl.Controller{Svc: rs, V: v, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Unit:        unitC,
		Reservation: resC,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}
	if port == "" {
		port = "8080"
	}

	log.Info("starting server", "env", cfg.Env, "port", port)

	e.Logger.Fatal(e.Start(":" + port))
}
