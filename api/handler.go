package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	ShortestRemainingTime(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	ListAlgorithms(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	logger zerolog.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, logger zerolog.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, logger: logger}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.scheduleOne(ctx, schedulers.AlgorithmFCFS)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.scheduleOne(ctx, schedulers.AlgorithmSJF)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTime(ctx *fiber.Ctx) error {
	return s.scheduleOne(ctx, schedulers.AlgorithmSRT)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.scheduleOne(ctx, schedulers.AlgorithmRR)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return writeError(ctx, fiber.StatusBadRequest, "invalid request format")
	}
	names := request.Algorithms
	if len(names) == 0 {
		names = s.config.Algorithms
	}
	algorithms, err := schedulers.ParseAlgorithms(names)
	if err != nil {
		return s.writeScheduleError(ctx, err)
	}

	results, err := schedulers.ScheduleAll(algorithms, request.ToProcesses(), s.quantum(request), s.options()...)
	if err != nil {
		return s.writeScheduleError(ctx, err)
	}
	return ctx.JSON(responses.FromResults(results))
}

func (s *SchedulerHandlerImpl) ListAlgorithms(ctx *fiber.Ctx) error {
	type algorithm struct {
		Name  string `json:"name"`
		Title string `json:"title"`
	}
	out := make([]algorithm, len(schedulers.Algorithms))
	for i, a := range schedulers.Algorithms {
		out[i] = algorithm{Name: string(a), Title: a.Title()}
	}
	return ctx.JSON(fiber.Map{
		"algorithms":           out,
		"default_time_quantum": s.config.RoundRobinTimeQuantum,
	})
}

func (s *SchedulerHandlerImpl) scheduleOne(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return writeError(ctx, fiber.StatusBadRequest, "invalid request format")
	}

	result, err := schedulers.Schedule(algorithm, request.ToProcesses(), s.quantum(request), s.options()...)
	if err != nil {
		return s.writeScheduleError(ctx, err)
	}
	return ctx.JSON(responses.FromResult(result))
}

func (s *SchedulerHandlerImpl) quantum(request requests.ScheduleRequest) int {
	if request.TimeQuantum != 0 {
		return request.TimeQuantum
	}
	return s.config.RoundRobinTimeQuantum
}

func (s *SchedulerHandlerImpl) options() []schedulers.Option {
	return []schedulers.Option{
		schedulers.WithMaxSteps(s.config.MaxSteps),
		schedulers.WithLogger(s.logger),
	}
}

func (s *SchedulerHandlerImpl) writeScheduleError(ctx *fiber.Ctx, err error) error {
	var invalid *core.InvalidProcessError
	var stalled *schedulers.SimulationStalledError

	switch {
	case errors.As(err, &invalid),
		errors.Is(err, core.ErrNoProcesses),
		errors.Is(err, schedulers.ErrInvalidQuantum),
		errors.Is(err, schedulers.ErrUnknownAlgorithm):
		return writeError(ctx, fiber.StatusBadRequest, err.Error())
	case errors.As(err, &stalled):
		s.logger.Warn().Err(err).Msg("simulation stalled")
		return writeError(ctx, fiber.StatusUnprocessableEntity, err.Error())
	}
	s.logger.Error().Err(err).Msg("can not process request")
	return writeError(ctx, fiber.StatusInternalServerError, "can not process request")
}

func writeError(ctx *fiber.Ctx, status int, message string) error {
	return ctx.Status(status).JSON(responses.ErrorResponse{Error: message})
}
