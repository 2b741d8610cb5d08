package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/agarick/muck/internal/config"
	"github.com/agarick/muck/lisp"
	"github.com/agarick/muck/prelude"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("muck", flag.ContinueOnError)
	configPath := fs.String("config", "muck.yaml", "path to YAML config file")
	verbose := fs.Bool("v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "muck: %v\n", err)
		return 2
	}
	level, _ := cfg.Level()
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	var preload func(*lisp.Lisp) error
	if cfg.Prelude {
		preload = prelude.Load
	}
	l := lisp.New(lisp.WithLogger(logger))
	if preload != nil {
		if err := preload(l); err != nil {
			logger.Error("startup failed", "err", fmt.Errorf("load prelude: %w", err))
			return 1
		}
	}

	if fs.NArg() > 0 {
		return runFile(l, fs.Arg(0))
	}
	r := &repl{lisp: l, preload: preload, out: os.Stdout, logger: logger}
	return r.run(cfg)
}

// runFile evaluates every expression in filename, reporting only errors.
func runFile(l *lisp.Lisp, filename string) int {
	exps, err := lisp.ParseFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", lisp.Kind(err), err)
		return 1
	}
	for _, e := range exps {
		if _, err := l.EvalExpr(e); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", lisp.Kind(err), err)
			return 1
		}
	}
	return 0
}
