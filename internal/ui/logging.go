package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// LogMsg is a regular string containing a log message. It is typed for
// identification as [tea.Msg] within a [tea.Program].
type LogMsg string

type teaProgramProvider interface {
	Send(msg tea.Msg)
}

// TeaLogWriter is an implementation of an [io.Writer], for use inside a
// [slog.Handler], that sends any logs to a [tea.Program] as [tea.Msg]. It
// also carries the verification progress messages, so that these arrive in
// order with the logs produced around them.
type TeaLogWriter struct {
	program  teaProgramProvider
	doneChan chan struct{}
	msgChan  chan tea.Msg
}

// NewTeaLogWriter returns a pointer to a new [TeaLogWriter]. It also starts the
// internal message processing function, which should eventually be stopped
// e.g. with a deferred [TeaLogWriter.Stop] call.
func NewTeaLogWriter(program teaProgramProvider) *TeaLogWriter {
	wr := &TeaLogWriter{
		program:  program,
		doneChan: make(chan struct{}),
		msgChan:  make(chan tea.Msg, 1000), //nolint:mnd
	}

	go wr.processMessages()

	return wr
}

// Stop destroys the [TeaLogWriter] and stops any message processing. This
// should be called when no more logs are actively being sent, as any in-flight
// or late messages will be discarded after calling this method.
func (wr *TeaLogWriter) Stop() {
	close(wr.doneChan)
}

func (wr *TeaLogWriter) processMessages() {
	for {
		select {
		case <-wr.doneChan:
			return
		case msg := <-wr.msgChan:
			wr.program.Send(msg)
		}
	}
}

// Send queues any [tea.Msg] for the [tea.Program].
func (wr *TeaLogWriter) Send(msg tea.Msg) {
	select {
	case <-wr.doneChan:
	case wr.msgChan <- msg:
	}
}

// Write receives a byte slice containing a log message from e.g. a
// [slog.Handler] and queues it as [LogMsg].
func (wr *TeaLogWriter) Write(p []byte) (int, error) {
	wr.Send(LogMsg(string(p)))

	return len(p), nil
}
