package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/pprof"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gocdcl/gocdcl/internal/sat"
	"github.com/gocdcl/gocdcl/parsers"
)

var flagCPUProfile = flag.Bool(
	"cpuprof",
	false,
	"save pprof CPU profile in cpuprof",
)

var flagMemProfile = flag.Bool(
	"memprof",
	false,
	"save pprof memory profile in memprof",
)

var flagMaxConflict = flag.Int64(
	"max_conflicts",
	-1,
	"maximum number of conflicts allowed to solve the problem (-1 = no maximum)",
)

var flagTimeout = flag.Duration(
	"timeout",
	0,
	"abort the search after this long and report INTERRUPTED (0 = no timeout)",
)

var flagPprofHTTP = flag.String(
	"pprof-http",
	"",
	"address to serve net/http/pprof on (e.g. :6060); disabled if empty",
)

type config struct {
	instanceFile string
	gzipped      bool
	memProfile   bool
	cpuProfile   bool
	maxConflicts int64
	timeout      time.Duration
	pprofHTTP    string
}

func parseConfig() (*config, error) {
	flag.Parse()

	if flag.NArg() == 0 || flag.Arg(0) == "" {
		return nil, fmt.Errorf("missing instance file")
	}
	instanceFile := flag.Arg(0)
	return &config{
		instanceFile: instanceFile,
		gzipped:      strings.HasSuffix(instanceFile, ".gz"),
		memProfile:   *flagMemProfile,
		cpuProfile:   *flagCPUProfile,
		maxConflicts: *flagMaxConflict,
		timeout:      *flagTimeout,
		pprofHTTP:    *flagPprofHTTP,
	}, nil
}

func solverOptions(cfg *config) sat.Options {
	options := sat.DefaultOptions
	if cfg.maxConflicts >= 0 {
		options.MaxConflicts = cfg.maxConflicts
	}
	return options
}

// exitCode maps a solve outcome to the process exit status: a completed
// SAT/UNSAT verdict always exits 0, so scripts can distinguish "solver
// finished" from "solver gave up" by exit code alone.
func exitCode(status sat.Status, err error) int {
	if err != nil {
		return 2
	}
	switch status {
	case sat.Sat, sat.Unsat:
		return 0
	case sat.Interrupted:
		return 1
	default:
		return 2
	}
}

func run(cfg *config) (sat.Status, error) {
	s, nClauses, err := parsers.LoadDIMACS(cfg.instanceFile, cfg.gzipped, solverOptions(cfg))
	if err != nil {
		return sat.Interrupted, fmt.Errorf("could not parse instance: %w", err)
	}

	fmt.Printf("c file:       %s\n", filepath.Base(cfg.instanceFile))
	fmt.Printf("c variables:  %d\n", s.NVars())
	fmt.Printf("c clauses:    %d\n", nClauses)

	var stop atomic.Bool

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		if _, ok := <-sigs; ok {
			stop.Store(true)
		}
	}()

	var timer *time.Timer
	if cfg.timeout > 0 {
		timer = time.AfterFunc(cfg.timeout, func() { stop.Store(true) })
		defer timer.Stop()
	}

	t := time.Now()
	status := s.Solve(stop.Load)
	elapsed := time.Since(t)

	if err := s.Err(); err != nil {
		return status, fmt.Errorf("solver error: %w", err)
	}

	printSearchStats(s, status, elapsed)

	return status, nil
}

// printSearchStats reports the search counters the way yass's
// printSearchStats does: elapsed time, conflicts with their rate,
// restarts and decisions, then the status and the "s" result line. It
// prints no learned-clause count or arena usage figure.
func printSearchStats(s *sat.Solver, status sat.Status, elapsed time.Duration) {
	fmt.Printf("c time (sec): %f\n", elapsed.Seconds())
	fmt.Printf("c conflicts:  %d (%.2f /sec)\n", s.Conflicts, float64(s.Conflicts)/elapsed.Seconds())
	fmt.Printf("c restarts:   %d\n", s.Restarts)
	fmt.Printf("c decisions:  %d\n", s.Decisions)
	fmt.Printf("c status:     %s\n", status.String())
	switch status {
	case sat.Sat:
		fmt.Println("s SATISFIABLE")
	case sat.Unsat:
		fmt.Println("s UNSATISFIABLE")
	}
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.pprofHTTP != "" {
		go func() {
			log.Println(http.ListenAndServe(cfg.pprofHTTP, nil))
		}()
	}

	if cfg.cpuProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
	}

	status, err := run(cfg)
	if err != nil {
		log.Print(err)
	}

	if cfg.cpuProfile {
		pprof.StopCPUProfile()
	}

	if cfg.memProfile {
		f, err := os.Create("memprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}

	os.Exit(exitCode(status, err))
}
