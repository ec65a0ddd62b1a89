// Package ui implements a command-line user interface using [tea].
package ui

import (
	"context"
	"fmt"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertwitch/structman/internal/schema"
	"github.com/desertwitch/structman/internal/verification"
)

// RootStartedMsg is a [tea.Msg] sent when the verification of a well-known
// directory starts.
type RootStartedMsg struct {
	Kind  schema.Kind
	Index int
	Total int
}

// RootFinishedMsg is a [tea.Msg] containing the [verification.Result] of a
// well-known directory.
type RootFinishedMsg struct {
	Result *verification.Result
}

// RunFinishedMsg is a [tea.Msg] sent when all verifications have ended.
type RunFinishedMsg struct {
	Summary *verification.Summary
	Err     error
}

// Handler is the principal implementation of a user interface [Handler]. It
// is also a [verification.Observer], forwarding the progress to the model.
type Handler struct {
	program *tea.Program
	cancel  context.CancelFunc

	LogWriter *TeaLogWriter

	Initialized atomic.Bool
	Ready       atomic.Bool
	Failed      atomic.Bool

	// Interrupted is set when the user requested the program teardown from
	// within the user interface.
	Interrupted atomic.Bool
}

// NewHandler returns a pointer to a new user interface [Handler].
func NewHandler(ctx context.Context, cancel context.CancelFunc) *Handler {
	handler := &Handler{cancel: cancel}

	model := NewTeaModel(handler)
	handler.program = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	handler.LogWriter = NewTeaLogWriter(handler.program)

	return handler
}

// Launch starts the command-line user interface (the [tea.Program]). An
// interrupt from within the user interface cancels the upstream context once
// the [tea.Program] has ended, and is returned as [context.Canceled].
func (uiHandler *Handler) Launch() error {
	defer uiHandler.LogWriter.Stop()

	_, err := uiHandler.program.Run()

	if uiHandler.Interrupted.Load() {
		if uiHandler.cancel != nil {
			uiHandler.cancel()
		}

		return fmt.Errorf("(ui) %w", context.Canceled)
	}

	if err != nil {
		uiHandler.Failed.Store(true)

		return fmt.Errorf("(ui) %w", err)
	}

	return nil
}

// RootStarted implements [verification.Observer].
func (uiHandler *Handler) RootStarted(kind schema.Kind, index int, total int) {
	uiHandler.LogWriter.Send(RootStartedMsg{Kind: kind, Index: index, Total: total})
}

// RootFinished implements [verification.Observer].
func (uiHandler *Handler) RootFinished(result *verification.Result) {
	uiHandler.LogWriter.Send(RootFinishedMsg{Result: result})
}

// RunFinished informs the user interface that all verifications have ended.
func (uiHandler *Handler) RunFinished(summary *verification.Summary, err error) {
	uiHandler.LogWriter.Send(RunFinishedMsg{Summary: summary, Err: err})
}
