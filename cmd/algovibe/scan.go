package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ayushran32/Error-404-Algovibe/board"
	"github.com/ayushran32/Error-404-Algovibe/config"
	"github.com/ayushran32/Error-404-Algovibe/cue"
	"github.com/ayushran32/Error-404-Algovibe/engine"
	"github.com/ayushran32/Error-404-Algovibe/logging"
	"github.com/ayushran32/Error-404-Algovibe/metrics"
	"github.com/ayushran32/Error-404-Algovibe/parse"
	"github.com/ayushran32/Error-404-Algovibe/render"
	"github.com/ayushran32/Error-404-Algovibe/scan"
	"github.com/ayushran32/Error-404-Algovibe/wallgen"
)

const (
	flagStrengths   = "strengths"
	flagThreshold   = "threshold"
	flagDelay       = "delay"
	flagMute        = "mute"
	flagNoColor     = "no-color"
	flagInPlace     = "in-place"
	flagChart       = "chart"
	flagTrace       = "trace"
	flagMetricsAddr = "metrics-addr"
	flagGenerate    = "generate"
	flagCount       = "count"
	flagSeed        = "seed"

	shutdownTimeout = 5 * time.Second
)

// scanFlags mirror config keys; only flags the user set override config.
type scanFlags struct {
	strengths   string
	threshold   string
	delay       time.Duration
	mute        bool
	noColor     bool
	inPlace     bool
	chart       string
	trace       string
	metricsAddr string
	generate    string
	count       int
	seed        int64
}

func newScanCmd(rf *rootFlags) *cobra.Command {
	sf := &scanFlags{}

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Animate a scan and print the defense report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig(rf.configPath)
			if err != nil {
				return err
			}
			if err := sf.apply(cmd, cfg); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("validate flags: %w", err)
			}

			log, err := logging.NewSugaredLogger(rf.verbose)
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck // best-effort flush

			return runScan(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, log)
		},
	}

	f := cmd.Flags()
	f.StringVar(&sf.strengths, flagStrengths, config.DefaultStrengths, "comma-separated segment strengths")
	f.StringVarP(&sf.threshold, flagThreshold, "k", strconv.Itoa(config.DefaultThreshold), "threat level K, a non-negative integer")
	f.DurationVar(&sf.delay, flagDelay, config.DefaultDelay, "pause after every step")
	f.BoolVar(&sf.mute, flagMute, false, "disable sound cues")
	f.BoolVar(&sf.noColor, flagNoColor, false, "disable colored output")
	f.BoolVar(&sf.inPlace, flagInPlace, config.DefaultInPlace, "redraw frames on a single line")
	f.StringVar(&sf.chart, flagChart, "", "write an HTML bar chart to this path")
	f.StringVar(&sf.trace, flagTrace, "", "write the event trace to this .yaml/.json path")
	f.StringVar(&sf.metricsAddr, flagMetricsAddr, "", "serve Prometheus metrics on this address during the scan")
	f.StringVar(&sf.generate, flagGenerate, "", "scan a generated wall instead: pulse, random or ramp")
	f.IntVar(&sf.count, flagCount, config.DefaultGenerateCount, "generated wall length")
	f.Int64Var(&sf.seed, flagSeed, config.DefaultGenerateSeed, "generated wall seed")

	return cmd
}

// apply copies every explicitly set flag over cfg.
func (sf *scanFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	f := cmd.Flags()
	if f.Changed(flagStrengths) {
		cfg.Wall.Strengths = sf.strengths
	}
	if f.Changed(flagThreshold) {
		k, err := parse.Threshold(sf.threshold)
		if err != nil {
			return fmt.Errorf("--%s: %w", flagThreshold, err)
		}
		cfg.Wall.Threshold = k
	}
	if f.Changed(flagDelay) {
		cfg.Scan.Delay = sf.delay
	}
	if f.Changed(flagMute) {
		cfg.Scan.Mute = sf.mute
	}
	if f.Changed(flagNoColor) {
		cfg.Scan.NoColor = sf.noColor
	}
	if f.Changed(flagInPlace) {
		cfg.Scan.InPlace = sf.inPlace
	}
	if f.Changed(flagChart) {
		cfg.Output.Chart = sf.chart
	}
	if f.Changed(flagTrace) {
		cfg.Output.Trace = sf.trace
	}
	if f.Changed(flagMetricsAddr) {
		cfg.Metrics.Addr = sf.metricsAddr
	}
	if f.Changed(flagGenerate) {
		cfg.Generate.Shape = sf.generate
	}
	if f.Changed(flagCount) {
		cfg.Generate.Count = sf.count
	}
	if f.Changed(flagSeed) {
		cfg.Generate.Seed = sf.seed
	}
	return nil
}

// buildWall resolves the scanned strengths from a generator or the text.
func buildWall(cfg *config.Config, log *zap.SugaredLogger) ([]int, error) {
	if cfg.Generate.Shape != "" {
		wall, err := wallgen.ByName(cfg.Generate.Shape, cfg.Generate.Count, wallgen.WithSeed(cfg.Generate.Seed))
		if err != nil {
			return nil, fmt.Errorf("generate wall: %w", err)
		}
		return wall, nil
	}
	wall, dropped := parse.Split(cfg.Wall.Strengths)
	if len(dropped) > 0 {
		log.Warnw("ignored invalid strengths", "tokens", dropped)
	}
	if len(wall) == 0 {
		log.Warnw("wall has no segments", "strengths", cfg.Wall.Strengths)
	}
	return wall, nil
}

// traceLog collects emissions for the trace file.
type traceLog struct {
	mu     sync.Mutex
	runID  string
	events []scan.Event
}

func (tl *traceLog) add(em engine.Emission) {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	tl.runID = em.RunID
	tl.events = append(tl.events, em.Event)
}

func runScan(parent context.Context, stdout, stderr io.Writer, cfg *config.Config, log *zap.SugaredLogger) error {
	if parent == nil {
		parent = context.Background()
	}
	if cfg.Scan.NoColor {
		color.NoColor = true //nolint:reassign // intentional override of library global
	}

	wall, err := buildWall(cfg, log)
	if err != nil {
		return err
	}
	k := cfg.Wall.Threshold
	if ceiling := board.ThresholdCeiling(wall); k > ceiling {
		log.Warnw("threat level above the usual range", "threshold", k, "ceiling", ceiling)
	}

	var (
		m           *metrics.Metrics
		registry    *prometheus.Registry
		metricsSrv  *metrics.Server
		metricsErrs <-chan error
	)
	if cfg.Metrics.Addr != "" {
		registry = prometheus.NewRegistry()
		m, err = metrics.NewWithLabels(registry, metrics.Labels{Instance: cfg.Metrics.Instance})
		if err != nil {
			return fmt.Errorf("failed to create metrics: %w", err)
		}
	}

	b := board.New(wall, k)
	termOpts := []render.TerminalOption{render.WithInPlace(cfg.Scan.InPlace)}
	if cfg.Scan.NoColor {
		termOpts = append(termOpts, render.WithoutColor())
	}
	term := render.NewTerminal(stdout, termOpts...)
	sound := cue.NewSwitch(cue.Bell{W: stderr})
	sound.SetMuted(cfg.Scan.Mute)
	tl := &traceLog{}

	eng := engine.New(
		engine.WithDelay(cfg.Scan.Delay),
		engine.WithLogger(log),
		engine.WithMetrics(m),
		engine.WithObserver(func(em engine.Emission) {
			if !b.Apply(em) {
				return
			}
			tl.add(em)
			if err := term.Frame(b); err != nil {
				log.Warnw("frame render failed", "error", err)
			}
		}),
	)
	defer eng.Close()

	if registry != nil {
		metricsSrv = metrics.NewServer(cfg.Metrics.Addr, registry, func() string {
			return fmt.Sprintf("scan=%s generation=%d", eng.State(), eng.Generation())
		})
		metricsErrs = metricsSrv.Start()
		fmt.Fprintf(stderr, "metrics on http://%s/metrics\n", cfg.Metrics.Addr)
	}

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()
	runCtx, finish := context.WithCancel(ctx)
	defer finish()

	cue.Play(sound, cue.Click, log)
	ticket := eng.Start(wall, k)

	var res scan.Result
	g, gctx := errgroup.WithContext(runCtx)

	// Scan goroutine - ends the group when the result arrives
	g.Go(func() error {
		defer finish()
		r, err := eng.Await(gctx, ticket)
		if err != nil {
			eng.Stop()
			return err
		}
		res = r
		return nil
	})

	// Metrics server error monitoring goroutine
	if metricsErrs != nil {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return nil
			case err := <-metricsErrs:
				if err != nil {
					return fmt.Errorf("metrics server error: %w", err)
				}
				return nil
			}
		})
	}

	var result *multierror.Error
	if err := g.Wait(); err != nil {
		if errors.Is(err, context.Canceled) && ctx.Err() != nil {
			log.Infow("scan interrupted", "run_id", ticket.RunID)
			fmt.Fprintln(stdout)
		} else {
			result = multierror.Append(result, err)
		}
	}

	if metricsSrv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
			result = multierror.Append(result, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if ctx.Err() != nil || result.ErrorOrNil() != nil {
		return result.ErrorOrNil()
	}

	cue.Play(sound, cue.ForResult(res), log)
	fmt.Fprintln(stdout, render.Summary(b))

	if cfg.Output.Chart != "" {
		if err := writeChart(cfg.Output.Chart, wall, k, res); err != nil {
			result = multierror.Append(result, err)
		}
	}
	if cfg.Output.Trace != "" {
		tl.mu.Lock()
		tf := render.TraceFile{
			RunID:  tl.runID,
			Input:  render.TraceInput{Strengths: wall, Threshold: k},
			Events: tl.events,
			Result: res,
		}
		tl.mu.Unlock()
		if err := render.WriteTrace(cfg.Output.Trace, tf); err != nil {
			result = multierror.Append(result, err)
		}
	}

	return result.ErrorOrNil()
}

func writeChart(path string, wall []int, k int, res scan.Result) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close chart file: %w", cerr)
		}
	}()
	if err := render.Chart(f, wall, k, res); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
