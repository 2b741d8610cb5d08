package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agarick/muck/lisp"
	"github.com/agarick/muck/prelude"
)

func newTestREPL(buf *bytes.Buffer) *repl {
	return &repl{
		lisp:   lisp.New(),
		out:    buf,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestREPLHandle(t *testing.T) {
	var buf bytes.Buffer
	r := newTestREPL(&buf)
	for i, tt := range []struct {
		input string
		want  string
		exit  bool
	}{
		{input: "(+ 1 2 3 4)", want: "=> 10\n"},
		{input: "(def x 5)", want: "=> x\n"},
		{input: "(+ x 1)", want: "=> 6\n"},
		{input: "(fn (a) a)", want: "=> #<closure>\n"},
		{input: "y", want: "eval error: unbound symbol y\n"},
		{input: "(+ 1", want: "parse error: missing ')'\n"},
		{input: ":nope", want: "unknown command :nope. Type :help for a list.\n"},
		{input: ":reset", want: "environment reset.\n"},
		{input: "x", want: "eval error: unbound symbol x\n"},
		{input: "(exit)", exit: true},
		{input: ":quit", exit: true},
	} {
		buf.Reset()
		exit := r.handle(tt.input)
		if exit != tt.exit {
			t.Errorf("%d) got exit %v want %v", i, exit, tt.exit)
		}
		if got := buf.String(); got != tt.want {
			t.Errorf("%d) got %q want %q", i, got, tt.want)
		}
	}
}

func TestREPLCommands(t *testing.T) {
	var buf bytes.Buffer
	r := newTestREPL(&buf)
	r.handle(":ast (+ 1 true)")
	for _, want := range []string{"lisp.List", "lisp.Symbol", "lisp.Number", "lisp.Bool"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("missing %s in %q", want, buf.String())
		}
	}

	buf.Reset()
	r.handle("(def a 1)")
	buf.Reset()
	r.handle(":env")
	if !strings.Contains(buf.String(), "a = 1\n") || !strings.Contains(buf.String(), "+ = #<builtin>\n") {
		t.Errorf("unexpected env listing %q", buf.String())
	}

	buf.Reset()
	r.handle(":help")
	if !strings.HasPrefix(buf.String(), "REPL commands:") {
		t.Errorf("unexpected help %q", buf.String())
	}
}

func TestREPLResetReloadsPrelude(t *testing.T) {
	var buf bytes.Buffer
	r := newTestREPL(&buf)
	r.preload = prelude.Load
	if err := r.preload(r.lisp); err != nil {
		t.Fatal(err)
	}
	for i, tt := range []struct {
		input string
		want  string
	}{
		{input: "(def inc 0)", want: "=> inc\n"},
		{input: "(def y 1)", want: "=> y\n"},
		{input: ":reset", want: "environment reset.\n"},
		{input: "(inc 1)", want: "=> 2\n"},
		{input: "y", want: "eval error: unbound symbol y\n"},
	} {
		buf.Reset()
		r.handle(tt.input)
		if got := buf.String(); got != tt.want {
			t.Errorf("%d) got %q want %q", i, got, tt.want)
		}
	}
}

func TestRunFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.lisp")
	bad := filepath.Join(dir, "bad.lisp")
	if err := os.WriteFile(good, []byte("(def sq (fn (n) (* n n)))\n(sq 4)\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte("(def a 1)\n(a 2)\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if code := runFile(lisp.New(), good); code != 0 {
		t.Errorf("got exit code %d for good file", code)
	}
	if code := runFile(lisp.New(), bad); code != 1 {
		t.Errorf("got exit code %d for bad file", code)
	}
	if code := runFile(lisp.New(), filepath.Join(dir, "missing.lisp")); code != 1 {
		t.Errorf("got exit code %d for missing file", code)
	}
}
