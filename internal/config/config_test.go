package config

import (
	"flag"
	"io"
	"strings"
	"testing"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("singe", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, rest, err := Load(newFlagSet(), []string{"HR"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Dictionary != "./ods4.txt" {
		t.Fatalf("expected default dictionary, got %q", cfg.Dictionary)
	}
	if cfg.LogLevel != "warn" || cfg.History != HistoryMemory || cfg.Seed != 0 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if len(rest) != 1 || rest[0] != "HR" {
		t.Fatalf("expected positional HR, got %v", rest)
	}
}

func TestLoadEnvAndFlags(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SINGE_DICTIONARY", "/tmp/words.txt")
	t.Setenv("SINGE_SEED", "7")
	t.Setenv("SINGE_HISTORY", "sqlite")

	cfg, _, err := Load(newFlagSet(), []string{"-seed", "9", "RRH"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Dictionary != "/tmp/words.txt" {
		t.Fatalf("expected env dictionary, got %q", cfg.Dictionary)
	}
	if cfg.Seed != 9 {
		t.Fatalf("expected flag to override env seed, got %d", cfg.Seed)
	}
	if cfg.History != HistorySQLite {
		t.Fatalf("expected sqlite history, got %q", cfg.History)
	}
}

func TestLoadEnvError(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SINGE_SEED", "not-an-int")

	_, _, err := Load(newFlagSet(), nil)
	if err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env error, got %v", err)
	}
}

func TestLoadUnknownHistory(t *testing.T) {
	t.Chdir(t.TempDir())

	if _, _, err := Load(newFlagSet(), []string{"-history", "redis"}); err == nil {
		t.Fatal("expected unknown history error")
	}
}
