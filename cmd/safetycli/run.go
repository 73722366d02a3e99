package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/flowgraph/mfdsafety/antichain"
	"github.com/flowgraph/mfdsafety/cover"
	"github.com/flowgraph/mfdsafety/ilpiface"
	"github.com/flowgraph/mfdsafety/ioformat"
	"github.com/flowgraph/mfdsafety/safeseq"
	"github.com/flowgraph/mfdsafety/stdag"
)

// Config is the CLI's flag surface (§6).
type Config struct {
	InputPath         string
	Threads           int
	TimeoutSeconds    int
	Epsilon           float64
	ClearLogOnSuccess bool
	Mode              int
}

// RunContext threads a logger and a deterministic RNG seed through the
// driver — per §9's "Global state" note, neither is a package-level
// global.
type RunContext struct {
	Logger *slog.Logger
	RNG    *rand.Rand
	Solver ilpiface.Solver
}

// NewRunContext builds a RunContext with a fixed seed for reproducible
// runs.
func NewRunContext(logger *slog.Logger, seed int64) *RunContext {
	return &RunContext{Logger: logger, RNG: rand.New(rand.NewSource(seed))}
}

// Run executes the full pipeline (§6 data flow: A through J) over every
// graph in cfg.InputPath, appending one result row per graph to the
// output file. Exit code policy (non-zero only on fatal input errors)
// is enforced by main: per-graph ILP failures are captured in the
// output, not returned as an error here.
func Run(rc *RunContext, cfg Config) error {
	f, err := os.Open(cfg.InputPath)
	if err != nil {
		return fmt.Errorf("safetycli: opening input: %w", err)
	}
	defer f.Close()

	graphs, err := ioformat.ParseGraphs(f)
	if err != nil {
		return fmt.Errorf("safetycli: parsing input: %w", err)
	}

	outPath := outputPath(cfg.Mode, cfg.InputPath)
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("safetycli: creating output: %w", err)
	}
	defer out.Close()

	fmt.Fprintf(out, "%s\nThreads:%d, Timeout:%d, Mode:%d\n", cfg.InputPath, cfg.Threads, cfg.TimeoutSeconds, cfg.Mode)

	for _, pg := range graphs {
		rc.Logger.Info("processing graph", "id", pg.ID, "n", pg.N)

		g, err := ioformat.Canonicalize(pg)
		if err != nil {
			rc.Logger.Error("invalid graph, skipping", "id", pg.ID, "error", err)
			continue
		}

		if g.IsZeroFlowEverywhere() {
			rc.Logger.Info("zero flow everywhere, skipping graph", "id", pg.ID)
			continue
		}

		fmt.Fprintf(out, "#Graph %s\n", pg.ID)
		if err := processGraph(rc, cfg, g, out); err != nil {
			rc.Logger.Error("processing graph failed", "id", pg.ID, "error", err)
		}
	}

	if cfg.ClearLogOnSuccess {
		_ = os.Truncate(outPath, 0)
	}
	return nil
}

// processGraph runs components A-G on g and, for ILP modes with a
// Solver wired, dispatches to it; mode 3 (safety-only) and any mode
// with no Solver wired write the safety artifact alone.
func processGraph(rc *RunContext, cfg Config, g *stdag.Graph, out *os.File) error {
	x := make(map[stdag.Edge]bool, len(g.Edges()))
	for _, e := range g.Edges() {
		x[e] = true
	}

	sequences := safeseq.ViaDominators(g, x)
	fixSet, err := cover.FixSet(g, sequences, antichain.DefaultSolverOptions())
	if err != nil {
		return fmt.Errorf("computing fix-set: %w", err)
	}

	width, _, err := antichain.MaxEdgeAntichain(g, nil, false, antichain.DefaultSolverOptions())
	if err != nil {
		return fmt.Errorf("computing width: %w", err)
	}

	artifact := ioformat.Artifact{
		FixSet: ioformat.EncodeFixSet(fixSet, g.N()-2),
		Width:  width,
	}
	if err := ioformat.WriteArtifact(out, artifact); err != nil {
		return fmt.Errorf("writing artifact: %w", err)
	}

	if cfg.Mode == 3 || rc.Solver == nil {
		rc.Logger.Info("safety-only mode or no ILP solver wired, skipping ILP", "mode", cfg.Mode)
		return nil
	}

	mode := ilpiface.Mode(cfg.Mode)
	objective, err := rc.Solver.Solve(mode, toSolverFixSet(artifact.FixSet), artifact.Width)
	if err != nil {
		var timeout *ilpiface.SolverTimeout
		var infeasible *ilpiface.Infeasible
		switch {
		case errors.As(err, &timeout):
			fmt.Fprintf(out, "timeout %s\n", timeout.Context)
		case errors.As(err, &infeasible):
			fmt.Fprintf(out, "infeasible %s\n", infeasible.Context)
		default:
			return err
		}
		return nil
	}
	fmt.Fprintf(out, "objective %f\n", objective)
	return nil
}

// toSolverFixSet re-shapes the artifact's fix-set into ilpiface's own
// EdgePair type, keeping ilpiface import-independent of ioformat.
func toSolverFixSet(fixSet [][]ioformat.EdgePair) [][]ilpiface.EdgePair {
	out := make([][]ilpiface.EdgePair, len(fixSet))
	for i, seq := range fixSet {
		converted := make([]ilpiface.EdgePair, len(seq))
		for j, e := range seq {
			converted[j] = ilpiface.EdgePair{U: e.U, V: e.V}
		}
		out[i] = converted
	}
	return out
}

func outputPath(mode int, inputPath string) string {
	base := filepath.Base(inputPath)
	sanitised := strings.NewReplacer("/", "_", " ", "_").Replace(base)
	timestamp := time.Now().Format("02-01-15-04-05")
	return fmt.Sprintf("%d_%s_%s_final.out", mode, sanitised, timestamp)
}
