package api

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"cpu-scheduler/config"
)

// NewApp wires the scheduler handlers under /api/v1.
func NewApp(cfg *config.SchedulerConfig, logger zerolog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(recover.New())
	app.Use(requestLogger(logger))

	app.Get("/healthz", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"status": "ok"})
	})

	handler := NewSchedulerHandlerImpl(cfg, logger)

	api := app.Group("/api")
	v1 := api.Group("/v1", rateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	{
		v1.Get("/algorithms", handler.ListAlgorithms)
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/srt", handler.ShortestRemainingTime)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/all", handler.AllAlgorithms)
	}

	return app
}

// Serve blocks until ctx is cancelled or the listener fails.
func Serve(ctx context.Context, app *fiber.App, port int, logger zerolog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info().Int("port", port).Msg("scheduler api listening")
		errCh <- app.Listen(fmt.Sprintf(":%d", port))
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info().Msg("shutting down scheduler api")
		return app.Shutdown()
	}
}

// rateLimit applies one token bucket to every request of the group.
// rps <= 0 disables limiting.
func rateLimit(rps, burst int) fiber.Handler {
	if rps <= 0 {
		return func(ctx *fiber.Ctx) error { return ctx.Next() }
	}
	if burst <= 0 {
		burst = rps
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	return func(ctx *fiber.Ctx) error {
		if !limiter.Allow() {
			return writeError(ctx, fiber.StatusTooManyRequests, "rate limit exceeded")
		}
		return ctx.Next()
	}
}

func requestLogger(logger zerolog.Logger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()
		logger.Info().
			Str("method", ctx.Method()).
			Str("path", ctx.Path()).
			Int("status", ctx.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Msg("request")
		return err
	}
}
