package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/math-helper/internal/app"
	"github.com/atomicstack/math-helper/internal/config"
	"github.com/atomicstack/math-helper/internal/logging"
	"github.com/atomicstack/math-helper/internal/logging/events"
	"golang.org/x/term"
)

const (
	exitOK     = 0
	exitError  = 1
	exitConfig = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.MustLoad()
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return exitConfig
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)

	cat, err := app.LoadCatalog(cfg.App)
	if err != nil {
		return fail(err)
	}
	events.App.Start(startupTracePayload(cfg, cat))

	if err := app.Run(cfg.App, cat); err != nil {
		return fail(err)
	}
	return exitOK
}

func fail(err error) int {
	logging.Error(err)
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return exitError
}

// startupTracePayload bundles the resolved configuration, the loaded catalog
// and the terminal we were started on.
func startupTracePayload(cfg config.Config, cat app.Catalog) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":       cfg.Args,
		"flags":      flags,
		"config":     cfg,
		"catalog":    cat.Source,
		"categories": cat.Names(),
		"terminal":   inspectTerminal(),
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	}
	return payload
}

type terminalReport struct {
	Size        *terminalSize      `json:"size,omitempty"`
	Descriptors []descriptorStatus `json:"descriptors"`
}

type terminalSize struct {
	From   string `json:"from"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type descriptorStatus struct {
	Name     string `json:"name"`
	Terminal bool   `json:"terminal"`
	Error    string `json:"error,omitempty"`
}

// inspectTerminal reports which standard descriptors are terminals and takes
// the window size from the first one that answers.
func inspectTerminal() terminalReport {
	files := []*os.File{os.Stdin, os.Stdout, os.Stderr}
	names := []string{"stdin", "stdout", "stderr"}
	report := terminalReport{Descriptors: make([]descriptorStatus, 0, len(files))}
	for i, f := range files {
		status := descriptorStatus{Name: names[i]}
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			status.Terminal = true
			width, height, err := term.GetSize(fd)
			switch {
			case err != nil:
				status.Error = err.Error()
			case report.Size == nil:
				report.Size = &terminalSize{From: names[i], Width: width, Height: height}
			}
		}
		report.Descriptors = append(report.Descriptors, status)
	}
	return report
}
