// Command ettbench stress-tests the Euler tour forest against the naive
// oracle and prints throughput, or walks through the reference link/cut
// scenarios.
package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/alecthomas/kingpin"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/eulerforest/eulertour"
	"github.com/katalvlaran/eulerforest/workload"
)

var (
	app = kingpin.New("ettbench", "Euler tour forest benchmark and scenario runner")
)

var (
	runCmd     = app.Command("run", "replay generated workloads and check them against the oracle")
	runNodes   = runCmd.Flag("nodes", "nodes per forest").Default("1000").Int()
	runOps     = runCmd.Flag("ops", "ops per worker").Default("100000").Int()
	runSeed    = runCmd.Flag("seed", "base seed, worker w uses seed+w").Default("1").Uint32()
	runWorkers = runCmd.Flag("workers", "independent forests replayed in parallel").Default("1").Int()
	runInvalid = runCmd.Flag("invalid", "fraction of deliberately invalid ops").Default("0").Float64()
	runVerify  = runCmd.Flag("verify", "check every invariant after each mutation").Bool()
)

// BenchResult is one line of the report.
type BenchResult struct {
	Name     string
	Duration time.Duration
	Stats    workload.Stats
}

func (r BenchResult) String() string {
	ops := r.Stats.Total()
	perSec := float64(ops) / r.Duration.Seconds()

	return fmt.Sprintf("%-24s %12v  (%d ops, %.2f ops/sec) links=%d cuts=%d finds=%d rejected=%d",
		r.Name, r.Duration.Round(time.Millisecond), ops, perSec,
		r.Stats.Links, r.Stats.Cuts, r.Stats.Finds, r.Stats.Rejected)
}

func runFn() error {
	if *runNodes < 1 || *runWorkers < 1 || *runOps < 0 {
		return fmt.Errorf("nodes and workers must be positive, ops non-negative")
	}
	fmt.Println("Euler tour forest benchmark")
	fmt.Println("===========================")
	fmt.Printf("Nodes: %d  Ops/worker: %d  Workers: %d  Seed: %d\n", *runNodes, *runOps, *runWorkers, *runSeed)
	fmt.Printf("Go version: %s  GOMAXPROCS: %d\n\n", runtime.Version(), runtime.GOMAXPROCS(0))

	results := make([]BenchResult, *runWorkers)
	eg, ctx := errgroup.WithContext(context.Background())
	for w := 0; w < *runWorkers; w++ {
		eg.Go(func() error {
			res, err := replayWorker(ctx, w)
			if err != nil {
				return fmt.Errorf("worker %d: %w", w, err)
			}
			results[w] = res

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	var total BenchResult
	total.Name = "total"
	for _, r := range results {
		fmt.Println(r)
		total.Stats = total.Stats.Add(r.Stats)
		total.Duration = max(total.Duration, r.Duration)
	}
	fmt.Println()
	fmt.Println(total)

	return nil
}

// replayWorker builds one forest and replays its own workload on it.
func replayWorker(ctx context.Context, w int) (BenchResult, error) {
	var opts []eulertour.Option
	if *runVerify {
		opts = append(opts, eulertour.WithVerify())
	}
	ops := workload.NewGenerator(*runNodes, *runSeed+uint32(w), workload.WithInvalidRate(*runInvalid)).Ops(*runOps)
	if err := ctx.Err(); err != nil {
		return BenchResult{}, err
	}

	f := eulertour.New[int](append(opts, eulertour.WithCapacity(2*(*runNodes)))...)
	ids := workload.Populate(f, *runNodes)

	start := time.Now()
	st, err := workload.Replay(f, ids, ops)
	d := time.Since(start)
	if err != nil {
		return BenchResult{}, err
	}
	if err := f.Verify(); err != nil {
		return BenchResult{}, err
	}

	return BenchResult{Name: fmt.Sprintf("worker %d", w), Duration: d, Stats: st}, nil
}

var (
	scenarioCmd = app.Command("scenario", "run the reference link/cut scenarios and print the tours")
)

func scenarioFn() error {
	f := eulertour.New[string](eulertour.WithVerify())
	a, b, c, d := f.Add("A"), f.Add("B"), f.Add("C"), f.Add("D")

	show := func(title string, v eulertour.NodeID) error {
		tour, err := f.Tour(v)
		if err != nil {
			return err
		}
		names := make([]string, len(tour))
		for i, id := range tour {
			names[i], _ = f.Value(id)
		}
		root, err := f.FindRoot(v)
		if err != nil {
			return err
		}
		rootName, _ := f.Value(root)
		fmt.Printf("%-28s root=%s tour=%s\n", title, rootName, strings.Join(names, " "))

		return nil
	}

	steps := []struct {
		title string
		apply func() error
		node  eulertour.NodeID
	}{
		{"single node A", func() error { return nil }, a},
		{"link B, C under A", func() error {
			if err := f.Link(b, a); err != nil {
				return err
			}
			return f.Link(c, a)
		}, a},
		{"link D under C", func() error { return f.Link(d, c) }, d},
		{"cut C", func() error { _, err := f.Cut(c); return err }, d},
		{"remaining tree of A", func() error { return nil }, b},
	}
	for _, s := range steps {
		if err := s.apply(); err != nil {
			return fmt.Errorf("%s: %w", s.title, err)
		}
		if err := show(s.title, s.node); err != nil {
			return err
		}
	}

	if err := f.Link(c, d); err != nil {
		fmt.Printf("%-28s rejected: %v\n", "link C under D", err)
	}

	return nil
}

func dispatch() error {
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))
	switch cmd {
	case runCmd.FullCommand():
		return runFn()
	case scenarioCmd.FullCommand():
		return scenarioFn()
	}
	return fmt.Errorf("unknown command: %s", cmd)
}

func main() {
	err := dispatch()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
