package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Victor-armando18/checkout-functions/internal/logging"
	"github.com/Victor-armando18/checkout-functions/internal/metrics"
	"github.com/Victor-armando18/checkout-functions/pkg/engine"
)

type PatchRequest struct {
	Input json.RawMessage `json:"input"`
	Patch json.RawMessage `json:"patch"`
}

func newServer(runner *engine.Runner, m *metrics.Metrics, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodPost, http.MethodPatch, http.MethodOptions, http.MethodGet},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAccept},
	}))
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := logging.NewContext(c.Request().Context(), logger)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	})

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	e.POST("/functions/:target", handleRun(runner, m))
	e.PATCH("/functions/:target", handlePatch(runner, m))
	e.POST("/functions/:target/preview", handlePreview(runner, m))

	return e
}

func handleRun(runner *engine.Runner, m *metrics.Metrics) echo.HandlerFunc {
	return func(c echo.Context) error {
		target, err := engine.ParseTarget(c.Param("target"))
		if err != nil {
			return errorJSON(c, err)
		}

		input, err := readBody(c)
		if err != nil {
			return errorJSON(c, err)
		}

		result, err := runner.Run(c.Request().Context(), target, input)
		m.RecordInvocation(target, result, err)
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(http.StatusOK, result)
	}
}

func handlePatch(runner *engine.Runner, m *metrics.Metrics) echo.HandlerFunc {
	return func(c echo.Context) error {
		target, err := engine.ParseTarget(c.Param("target"))
		if err != nil {
			return errorJSON(c, err)
		}

		var req PatchRequest
		if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid patch request"})
		}

		input, err := engine.ApplyInputPatch(req.Input, req.Patch)
		if err != nil {
			return errorJSON(c, err)
		}

		result, err := runner.Run(c.Request().Context(), target, input)
		m.RecordInvocation(target, result, err)
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(http.StatusOK, result)
	}
}

func handlePreview(runner *engine.Runner, m *metrics.Metrics) echo.HandlerFunc {
	return func(c echo.Context) error {
		target, err := engine.ParseTarget(c.Param("target"))
		if err != nil {
			return errorJSON(c, err)
		}

		input, err := readBody(c)
		if err != nil {
			return errorJSON(c, err)
		}

		preview, err := runner.Preview(c.Request().Context(), target, input)
		if err != nil {
			m.RecordInvocation(target, nil, err)
			return errorJSON(c, err)
		}
		m.RecordInvocation(target, preview.Result, nil)
		return c.JSON(http.StatusOK, preview)
	}
}

func readBody(c echo.Context) ([]byte, error) {
	var raw json.RawMessage
	if err := json.NewDecoder(c.Request().Body).Decode(&raw); err != nil {
		return nil, errors.Join(engine.ErrMalformedInput, err)
	}
	return raw, nil
}

// errorJSON maps function errors to HTTP statuses.
func errorJSON(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, engine.ErrUnknownTarget):
		status = http.StatusNotFound
	case errors.Is(err, engine.ErrMalformedInput):
		status = http.StatusBadRequest
	case errors.Is(err, engine.ErrConfigurationMalformed), errors.Is(err, engine.ErrUnparsableAmount):
		status = http.StatusUnprocessableEntity
	}
	logging.WithContext(c.Request().Context()).Warn("request failed",
		slog.Int("status", status),
		slog.String("path", c.Path()),
		slog.Any("error", err),
	)
	return c.JSON(status, map[string]string{"error": err.Error()})
}
