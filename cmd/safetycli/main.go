// Command safetycli drives the safety engine over an input file of
// stDAGs, per §6's pinned CLI surface. The ILP encodings themselves are
// out of scope; in modes 0-2 this driver logs that no Solver was wired
// and falls back to safety-only output.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
)

func main() {
	var cfg Config
	flag.StringVar(&cfg.InputPath, "i", "", "input file (required)")
	flag.IntVar(&cfg.Threads, "t", 4, "solver threads")
	flag.IntVar(&cfg.TimeoutSeconds, "g", 300, "solver timeout in seconds")
	flag.Float64Var(&cfg.Epsilon, "e", 0.25, "ILP relative-improvement epsilon in (0,1)")
	flag.BoolVar(&cfg.ClearLogOnSuccess, "c", false, "clear the run's log file on success")
	flag.IntVar(&cfg.Mode, "m", 3, "mode: 0=L1 1=L2 2=optimizing-loop 3=safety-only")
	flag.Parse()

	if cfg.InputPath == "" {
		fmt.Fprintln(os.Stderr, "safetycli: -i is required")
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	rc := NewRunContext(logger, 73)

	if err := Run(rc, cfg); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}
