// Package main implements structman, a tool verifying (and optionally
// repairing) the directory structures within the well-known directories of
// the current user against a schema document.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
)

const (
	stackTraceBufMax = 1 << 24

	terminalHandlerName = "terminal"
	uiHandlerName       = "ui"
)

//nolint:gochecknoglobals
var (
	ExitCode = 0
	Version  string
)

func newLogHandler(w io.Writer, level slog.Leveler, noColor bool) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    noColor,
	})
}

func setupLogging(level slog.Leveler) *SlogManager {
	logManager := NewSlogManager()
	logManager.AddHandler(terminalHandlerName, newLogHandler(os.Stderr, level, false))

	slog.SetDefault(slog.New(logManager))

	return logManager
}

func setupSignalHandlers(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		<-sigChan
		cancel()
	}()

	sigChan2 := make(chan os.Signal, 1)
	signal.Notify(sigChan2, syscall.SIGUSR1)
	go func() {
		for range sigChan2 {
			buf := make([]byte, stackTraceBufMax)
			stacklen := runtime.Stack(buf, true)
			os.Stderr.Write(buf[:stacklen])
		}
	}()
}

func main() {
	defer func() {
		os.Exit(ExitCode)
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	level := &slog.LevelVar{}
	logManager := setupLogging(level)
	setupSignalHandlers(cancel)

	rootCmd := newRootCommand(cancel, logManager, level)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		ExitCode = 1
	}
}
