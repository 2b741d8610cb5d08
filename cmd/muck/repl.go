package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/peterh/liner"

	"github.com/agarick/muck/internal/config"
	"github.com/agarick/muck/lisp"
)

const helpText = `REPL commands:
  :help         Show this text
  :env          List root bindings
  :ast <expr>   Dump the parsed expression tree
  :reset        Start over with a fresh environment
  :quit         Exit (so does (exit) or Ctrl-D)
`

// preload runs on every fresh root env and is nil when the prelude is off.
type repl struct {
	lisp    *lisp.Lisp
	preload func(*lisp.Lisp) error
	out     io.Writer
	logger  *slog.Logger
}

func (r *repl) run(cfg config.Config) int {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(cfg.HistoryFile); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		f, err := os.Create(cfg.HistoryFile)
		if err != nil {
			r.logger.Warn("cannot write history", "path", cfg.HistoryFile, "err", err)
			return
		}
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}()

	for {
		line, err := ln.Prompt(cfg.Prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				r.logger.Error("read failed", "err", err)
			}
			fmt.Fprintln(r.out)
			return 0
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)
		if r.handle(line) {
			return 0
		}
	}
}

// handle processes one line of input and reports whether the REPL should exit.
func (r *repl) handle(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "(exit)" {
		return true
	}
	if strings.HasPrefix(trimmed, ":") {
		return r.command(trimmed)
	}
	v, err := r.lisp.Eval(line)
	if err != nil {
		fmt.Fprintf(r.out, "%s: %v\n", lisp.Kind(err), err)
		return false
	}
	fmt.Fprintf(r.out, "=> %s\n", v)
	return false
}

func (r *repl) command(line string) bool {
	cmd, arg, _ := strings.Cut(line, " ")
	switch strings.ToLower(cmd) {
	case ":quit", ":exit":
		return true
	case ":help":
		fmt.Fprint(r.out, helpText)
	case ":env":
		for _, s := range r.lisp.Env.Names() {
			v, _ := r.lisp.Env.Lookup(s)
			fmt.Fprintf(r.out, "%s = %s\n", s, v)
		}
	case ":ast":
		e, _, err := lisp.Parse(lisp.Tokenize(arg))
		if err != nil {
			fmt.Fprintf(r.out, "%s: %v\n", lisp.Kind(err), err)
			return false
		}
		cs := spew.ConfigState{Indent: "  ", DisableMethods: true, DisablePointerAddresses: true, DisableCapacities: true}
		cs.Fdump(r.out, e)
	case ":reset":
		r.lisp.Reset()
		if r.preload != nil {
			if err := r.preload(r.lisp); err != nil {
				fmt.Fprintf(r.out, "%s: %v\n", lisp.Kind(err), err)
				return false
			}
		}
		fmt.Fprintln(r.out, "environment reset.")
	default:
		fmt.Fprintf(r.out, "unknown command %s. Type :help for a list.\n", cmd)
	}
	return false
}
