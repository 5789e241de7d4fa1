package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 0 || cfg.App.Height != 0 {
		t.Fatalf("expected zero dimensions, got %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if cfg.App.ShowFooter || cfg.App.Verbose || cfg.Logging.Trace {
		t.Fatalf("expected boolean options off by default, got %#v", cfg)
	}
	if cfg.App.CatalogPath != "" || cfg.App.Category != "" {
		t.Fatalf("expected built-in catalog and no initial category, got %#v", cfg.App)
	}
	if cfg.Flags["footer"] != "false" {
		t.Fatalf("expected footer flag recorded as false, got %q", cfg.Flags["footer"])
	}
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	env := []string{
		envWidth + "=100",
		envHeight + "=30",
		envFooter + "=true",
		envCategory + "=Basic",
		envLogFile + "=/tmp/env.log",
	}
	cfg, err := LoadArgs([]string{"-width", "80", "-category", " Advanced ", "-trace"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 80 {
		t.Fatalf("expected flag width 80, got %d", cfg.App.Width)
	}
	if cfg.App.Height != 30 {
		t.Fatalf("expected env height 30, got %d", cfg.App.Height)
	}
	if !cfg.App.ShowFooter {
		t.Fatalf("expected footer enabled from environment")
	}
	if cfg.App.Category != "Advanced" {
		t.Fatalf("expected trimmed category Advanced, got %q", cfg.App.Category)
	}
	if !cfg.Logging.Trace {
		t.Fatalf("expected trace enabled")
	}
	if cfg.Logging.FilePath != "/tmp/env.log" {
		t.Fatalf("expected env log file, got %q", cfg.Logging.FilePath)
	}
	if len(cfg.Args) != 5 {
		t.Fatalf("expected args preserved, got %v", cfg.Args)
	}
}

func TestLoadArgsIgnoresMalformedEnvironment(t *testing.T) {
	env := []string{"", "NOEQUALS", envWidth + "=wide", envVerbose + "=maybe"}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 0 || cfg.App.Verbose {
		t.Fatalf("expected malformed values to fall back, got %#v", cfg.App)
	}
}

func TestLoadArgsRejectsInvalidValues(t *testing.T) {
	cases := [][]string{
		{"-width", "-1"},
		{"-height", "-5"},
		{"extra"},
	}
	for _, args := range cases {
		if _, err := LoadArgs(args, nil); err == nil {
			t.Fatalf("expected error for %v", args)
		}
	}
	if _, err := LoadArgs([]string{"-nope"}, nil); err == nil || !strings.Contains(err.Error(), "nope") {
		t.Fatalf("expected unknown flag error, got %v", err)
	}
	if _, err := LoadArgs([]string{"-h"}, nil); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("expected flag.ErrHelp, got %v", err)
	}
}

func TestValidateCatalogPath(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected built-in catalog to validate, got %v", err)
	}

	cfg.App.CatalogPath = filepath.Join(dir, "missing.yaml")
	if err := Validate(cfg); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}

	cfg.App.CatalogPath = dir
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected directory to be rejected")
	}

	path := filepath.Join(dir, "catalog.yaml")
	if err := os.WriteFile(path, []byte("categories: []\n"), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	cfg.App.CatalogPath = path
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected existing file to validate, got %v", err)
	}
}
