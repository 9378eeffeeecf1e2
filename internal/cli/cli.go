// Package cli drives an nroads process: it reads commands one line at a
// time from standard input, applies them to a single in-memory road map,
// and reports the outcome, mirroring the original program's executeCommand
// loop line for line.
package cli

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/mkwasniak/nroads/internal/config"
	"github.com/mkwasniak/nroads/internal/roadmap"
	"github.com/mkwasniak/nroads/internal/telemetry"
	"github.com/mkwasniak/nroads/internal/version"
)

// Run parses flags, wires up the ambient stack (logging, config, tracing,
// metrics) and then drives the command loop over stdin/stdout/stderr. It
// returns an exit code so main can stay a one-line os.Exit wrapper.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("nroads", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a YAML configuration file")
	showVersion := fs.Bool("version", false, "print version information and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Fprintln(stdout, version.Full())
		return 0
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "failed to load config: %v\n", err)
		return 1
	}

	logger := newLogger(cfg, stderr)
	runID := uuid.NewString()
	logger = logger.With("run_id", runID)

	traceWriter, closeTrace, err := openTraceWriter(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "failed to open trace output: %v\n", err)
		return 1
	}
	defer closeTrace()

	tp, err := telemetry.NewTracerProvider(traceWriter)
	if err != nil {
		fmt.Fprintf(stderr, "failed to start tracer: %v\n", err)
		return 1
	}
	defer func() {
		if shutdownErr := telemetry.Shutdown(context.Background(), tp); shutdownErr != nil {
			logger.Warn("tracer shutdown failed", "error", shutdownErr)
		}
	}()

	metrics := telemetry.NewMetrics()

	m := roadmap.NewMap()
	d := &dispatcher{
		m:       m,
		logger:  logger,
		tracer:  telemetry.TracerFrom(tp),
		metrics: metrics,
	}

	if err := runLoop(stdin, stdout, stderr, d); err != nil {
		logger.Error("command loop failed", "error", err)
		return 1
	}

	if cfg.PrintMetricsOnExit {
		snapshot, snapErr := metrics.Snapshot()
		if snapErr != nil {
			logger.Warn("failed to render metrics snapshot", "error", snapErr)
		} else if snapshot != "" {
			fmt.Fprint(stderr, snapshot)
		}
	}

	return 0
}

func newLogger(cfg config.Config, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}

func openTraceWriter(cfg config.Config) (io.Writer, func(), error) {
	if cfg.TraceOutputPath == "" {
		return io.Discard, func() {}, nil
	}
	f, err := openAppendFile(cfg.TraceOutputPath)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

// openAppendFile opens path for append, creating it if necessary, matching
// how the original CLI opened its log/trace output.
func openAppendFile(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
}

// dispatcher holds everything one command line needs to be applied.
type dispatcher struct {
	m       *roadmap.Map
	logger  *slog.Logger
	tracer  trace.Tracer
	metrics *telemetry.Metrics
}

// runLoop reads command lines from r, one per call to dispatch, writing
// ERROR <line number> to errW for every rejected or malformed line, exactly
// as the original line-counted stderr reporting did.
func runLoop(r io.Reader, w, errW io.Writer, d *dispatcher) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lineNumber uint64
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !d.dispatch(line, w) {
			fmt.Fprintf(errW, "ERROR %d\n", lineNumber)
		}
	}
	return scanner.Err()
}

// dispatch parses and applies a single command line, returning false if the
// line was malformed or the map rejected the operation.
func (d *dispatcher) dispatch(line string, w io.Writer) bool {
	ctx, span := d.tracer.Start(context.Background(), "dispatch")
	defer span.End()
	_ = ctx

	fields := strings.Split(line, ";")
	command := fields[0]

	var ok bool
	switch command {
	case "addRoad":
		ok = d.dispatchAddRoad(fields)
	case "repairRoad":
		ok = d.dispatchRepairRoad(fields)
	case "getRouteDescription":
		ok = d.dispatchGetRouteDescription(fields, w)
	case "newRoute":
		ok = d.timedRouteSearch(func() bool { return d.dispatchNewRoute(fields) })
		if ok {
			d.metrics.ObserveRouteCreated()
		}
	case "extendRoute":
		ok = d.timedRouteSearch(func() bool { return d.dispatchExtendRoute(fields) })
	case "removeRoad":
		ok = d.timedRouteSearch(func() bool { return d.dispatchRemoveRoad(fields) })
		if ok {
			d.metrics.ObserveSegmentRemoved()
		}
	case "removeRoute":
		ok = d.dispatchRemoveRoute(fields)
	default:
		ok = d.dispatchCreateRoute(fields)
		command = "createRoute"
		if ok {
			d.metrics.ObserveRouteCreated()
		}
	}

	d.metrics.Observe(command, ok)
	d.logger.Debug("dispatched command", "command", command, "accepted", ok)
	return ok
}

// timedRouteSearch runs fn, which must invoke the route search engine, and
// records its wall-clock duration regardless of outcome.
func (d *dispatcher) timedRouteSearch(fn func() bool) bool {
	start := time.Now()
	ok := fn()
	d.metrics.ObserveRouteSearchDuration(time.Since(start))
	return ok
}

func (d *dispatcher) dispatchAddRoad(fields []string) bool {
	if len(fields) != 5 {
		return false
	}
	length, ok := parseUnsigned32(fields[3])
	if !ok {
		return false
	}
	year, ok := parseSigned32(fields[4])
	if !ok {
		return false
	}
	return d.m.AddRoad(fields[1], fields[2], length, year)
}

func (d *dispatcher) dispatchRepairRoad(fields []string) bool {
	if len(fields) != 4 {
		return false
	}
	year, ok := parseSigned32(fields[3])
	if !ok {
		return false
	}
	return d.m.RepairRoad(fields[1], fields[2], year)
}

// dispatchGetRouteDescription always succeeds once the line itself parses:
// an out-of-range id or an empty route slot yields an empty description,
// not a failure, matching getRouteDescription's "never errors" contract.
func (d *dispatcher) dispatchGetRouteDescription(fields []string, w io.Writer) bool {
	if len(fields) != 2 {
		return false
	}
	id, ok := parseRouteID(fields[1])
	if !ok {
		return false
	}
	fmt.Fprintf(w, "%s\n", d.m.RouteDescription(id))
	return true
}

func (d *dispatcher) dispatchNewRoute(fields []string) bool {
	if len(fields) != 4 {
		return false
	}
	id, ok := parseRouteID(fields[1])
	if !ok {
		return false
	}
	return d.m.NewRoute(id, fields[2], fields[3])
}

func (d *dispatcher) dispatchExtendRoute(fields []string) bool {
	if len(fields) != 3 {
		return false
	}
	id, ok := parseRouteID(fields[1])
	if !ok {
		return false
	}
	return d.m.ExtendRoute(id, fields[2])
}

func (d *dispatcher) dispatchRemoveRoad(fields []string) bool {
	if len(fields) != 3 {
		return false
	}
	return d.m.RemoveRoad(fields[1], fields[2])
}

func (d *dispatcher) dispatchRemoveRoute(fields []string) bool {
	if len(fields) != 2 {
		return false
	}
	id, ok := parseRouteID(fields[1])
	if !ok {
		return false
	}
	return d.m.RemoveRoute(id)
}

// dispatchCreateRoute handles the bare id;c0;len0;year0;c1;...;cn form: no
// leading command keyword, just a route ID followed by an alternating list
// of cities and leg (length, year) pairs.
func (d *dispatcher) dispatchCreateRoute(fields []string) bool {
	id, cities, lengths, years, ok := parseCreateRoute(fields)
	if !ok {
		return false
	}
	return d.m.CreateRoute(id, cities, lengths, years)
}

func parseCreateRoute(fields []string) (id uint32, cities []string, lengths []uint32, years []int32, ok bool) {
	if len(fields) < 5 || (len(fields)-2)%3 != 0 {
		return 0, nil, nil, nil, false
	}

	id, ok = parseRouteID(fields[0])
	if !ok {
		return 0, nil, nil, nil, false
	}

	legCount := (len(fields) - 2) / 3
	cities = make([]string, legCount+1)
	lengths = make([]uint32, legCount)
	years = make([]int32, legCount)

	for i := 0; i < legCount; i++ {
		base := 1 + 3*i
		cities[i] = fields[base]

		length, lengthOK := parseUnsigned32(fields[base+1])
		if !lengthOK {
			return 0, nil, nil, nil, false
		}
		lengths[i] = length

		year, yearOK := parseSigned32(fields[base+2])
		if !yearOK {
			return 0, nil, nil, nil, false
		}
		years[i] = year
	}
	cities[legCount] = fields[len(fields)-1]

	return id, cities, lengths, years, true
}

// parseUnsigned32 mirrors stringToUnsigned: no leading/trailing garbage, no
// leading whitespace, and the value must fit in 32 bits.
func parseUnsigned32(s string) (uint32, bool) {
	if s == "" || strings.TrimLeft(s, " \t\n\r") != s {
		return 0, false
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}

// parseSigned32 mirrors stringToInt with the same strictness.
func parseSigned32(s string) (int32, bool) {
	if s == "" || strings.TrimLeft(s, " \t\n\r") != s {
		return 0, false
	}
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(v), true
}

func parseRouteID(s string) (uint32, bool) {
	return parseUnsigned32(s)
}
