package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"cpu-scheduler/api"
	"cpu-scheduler/config"
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/logging"
	"cpu-scheduler/internal/report"
	"cpu-scheduler/internal/schedulers"
	"cpu-scheduler/internal/watch"
	"cpu-scheduler/internal/workload"
)

const usage = `usage: cpusched <command> [flags]

commands:
  run    [flags] [workload-file]   simulate the workload and print the results
  watch  [flags] workload-file     re-run the simulation whenever the file changes
  serve  [flags]                   start the HTTP api

run "cpusched <command> -h" for the flags of a command.
`

var errUsage = errors.New("usage")

type common struct {
	configPath string
	quantum    int
	algorithms string
	inline     string
	logLevel   string
}

func (c *common) register(fs *flag.FlagSet, simulate bool) {
	fs.StringVar(&c.configPath, "config", "", "path to config yaml (default ./config.yaml when present)")
	fs.StringVar(&c.logLevel, "log-level", "", "override log.level")
	if simulate {
		fs.IntVar(&c.quantum, "quantum", 0, "round robin time quantum (default from config)")
		fs.StringVar(&c.algorithms, "algorithms", "", "comma separated algorithms: fcfs,sjf,srt,rr")
		fs.StringVar(&c.inline, "p", "", `inline processes as arrival:burst pairs, e.g. "0:5,1:3"`)
	}
}

type env struct {
	cfg    *config.SchedulerConfig
	logger zerolog.Logger
	stdout io.Writer
}

func (c *common) setup(stdout, stderr io.Writer) (*env, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}
	if c.logLevel != "" {
		cfg.Log.Level = c.logLevel
	}
	if c.quantum != 0 {
		cfg.RoundRobinTimeQuantum = c.quantum
	}
	if c.algorithms != "" {
		cfg.Algorithms = strings.Split(c.algorithms, ",")
	}
	logger := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Out: stderr})
	return &env{cfg: cfg, logger: logger, stdout: stdout}, nil
}

// Run executes one command and returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		_, _ = fmt.Fprint(stderr, usage)
		return 2
	}

	var err error
	switch args[0] {
	case "run":
		err = runCommand(args[1:], stdout, stderr)
	case "watch":
		err = watchCommand(ctx, args[1:], stdout, stderr)
	case "serve":
		err = serveCommand(ctx, args[1:], stdout, stderr)
	case "help", "-h", "--help":
		_, _ = fmt.Fprint(stdout, usage)
		return 0
	default:
		_, _ = fmt.Fprintf(stderr, "unknown command %q\n\n%s", args[0], usage)
		return 2
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, errUsage):
		return 2
	}
	_, _ = fmt.Fprintln(stderr, "error:", err)
	return 1
}

func runCommand(args []string, stdout, stderr io.Writer) error {
	var c common
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(stderr)
	c.register(fs, true)
	if err := fs.Parse(args); err != nil {
		return err
	}

	e, err := c.setup(stdout, stderr)
	if err != nil {
		return err
	}

	var processes []core.Process
	switch {
	case c.inline != "":
		processes, err = workload.Parse(c.inline)
	case fs.NArg() == 1:
		processes, err = workload.LoadFile(fs.Arg(0))
	default:
		_, _ = fmt.Fprintln(stderr, "run: give a workload file or -p")
		fs.Usage()
		return errUsage
	}
	if err != nil {
		return err
	}

	return simulate(e, processes)
}

func watchCommand(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var c common
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	c.register(fs, true)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		_, _ = fmt.Fprintln(stderr, "watch: give exactly one workload file")
		fs.Usage()
		return errUsage
	}
	path := fs.Arg(0)

	e, err := c.setup(stdout, stderr)
	if err != nil {
		return err
	}

	rerun := func() {
		processes, err := workload.LoadFile(path)
		if err == nil {
			err = simulate(e, processes)
		}
		if err != nil {
			e.logger.Error().Err(err).Str("file", path).Msg("simulation failed")
		}
	}

	rerun()
	e.logger.Info().Str("file", path).Msg("watching workload for changes")
	return watch.File(ctx, path, e.cfg.WatchDebounce, e.logger, func() {
		_, _ = fmt.Fprintln(stdout)
		e.logger.Info().Str("file", path).Msg("workload changed, re-running")
		rerun()
	})
}

func serveCommand(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var c common
	var port int
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	c.register(fs, false)
	fs.IntVar(&port, "port", 0, "listen port (default from config)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	e, err := c.setup(stdout, stderr)
	if err != nil {
		return err
	}
	if port != 0 {
		e.cfg.Port = port
	}

	app := api.NewApp(e.cfg, e.logger)
	return api.Serve(ctx, app, e.cfg.Port, e.logger)
}

func simulate(e *env, processes []core.Process) error {
	algorithms, err := schedulers.ParseAlgorithms(e.cfg.Algorithms)
	if err != nil {
		return err
	}
	results, err := schedulers.ScheduleAll(algorithms, processes, e.cfg.RoundRobinTimeQuantum,
		schedulers.WithMaxSteps(e.cfg.MaxSteps),
		schedulers.WithLogger(e.logger),
	)
	if err != nil {
		return err
	}
	report.WriteResults(e.stdout, results)
	return nil
}
