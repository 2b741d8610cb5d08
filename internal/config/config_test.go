package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	def := Default()
	if cfg != def {
		t.Errorf("got %+v want %+v", cfg, def)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "muck.yaml")
	data := "prompt: \"> \"\nprelude: false\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Prompt != "> " || cfg.Prelude || cfg.HistoryFile != Default().HistoryFile {
		t.Errorf("unexpected config %+v", cfg)
	}
	level, err := cfg.Level()
	if err != nil || level != slog.LevelDebug {
		t.Errorf("got %v %v want debug", level, err)
	}
}

func TestDecodeErrors(t *testing.T) {
	for i, input := range []string{
		"promt: typo\n",
		"log_level: loud\n",
		"prelude: [1, 2]\n",
	} {
		if _, err := decode(strings.NewReader(input), Default()); err == nil {
			t.Errorf("%d) %q: expected error", i, input)
		}
	}
}

func TestDecodeEmpty(t *testing.T) {
	cfg, err := decode(strings.NewReader(""), Default())
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Errorf("got %+v", cfg)
	}
}
