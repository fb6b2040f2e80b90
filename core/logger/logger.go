// Package logger captures session interaction events as newline
// delimited JSON so hosts can audit what a script or remote user did.
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"time"
)

// Event is one log line. Exactly one of the typed fields is set.
type Event struct {
	TimestampMicros int64  `json:"timestamp_micros"`
	SessionID       string `json:"session_id,omitempty"`

	SessionStart *SessionStart `json:"session_start,omitempty"`
	Step         *Step         `json:"step,omitempty"`
	StepError    *StepError    `json:"step_error,omitempty"`
}

// SessionStart records the creation of an interpreter session.
type SessionStart struct {
	User       string `json:"user,omitempty"`
	RemoteAddr string `json:"remote_addr,omitempty"`
	Capability string `json:"capability,omitempty"`
}

// Step records one committed interpreter step.
type Step struct {
	Name      string `json:"name"`
	Args      string `json:"args,omitempty"`
	Program   string `json:"program"`
	Transform string `json:"transform,omitempty"`
}

// StepError records a fatal dispatch failure.
type StepError struct {
	Name  string `json:"name"`
	Args  string `json:"args,omitempty"`
	Error string `json:"error"`
}

// Recorder is a callback that stores events in an external datastore.
type Recorder func(ev *Event) error

// Logger routes session events to a Recorder.
type Logger struct {
	Record Recorder

	// timeSource is overridable for deterministic tests.
	timeSource func() time.Time
}

// NewJSONLinesRecorder creates a Logger that exports events in newline
// delimited JSON object format.
func NewJSONLinesRecorder(w io.Writer) *Logger {
	return &Logger{
		Record: func(ev *Event) error {
			entry, err := json.Marshal(ev)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, string(entry))
			return err
		},
		timeSource: time.Now,
	}
}

// NewNopRecorder creates a Logger that discards all events.
func NewNopRecorder() *Logger {
	return &Logger{
		Record:     func(ev *Event) error { return nil },
		timeSource: time.Now,
	}
}

// SetTimeSource overrides the event timestamp clock.
func (l *Logger) SetTimeSource(now func() time.Time) {
	l.timeSource = now
}

// NewSession returns a logger whose events share a fresh session ID.
func (l *Logger) NewSession() *SessionLogger {
	return &SessionLogger{
		logger:    l,
		sessionID: fmt.Sprintf("%08x", rand.Uint32()),
	}
}

// SessionLogger tags events with a session ID.
type SessionLogger struct {
	logger    *Logger
	sessionID string
}

// SessionID returns the generated session identifier.
func (sl *SessionLogger) SessionID() string {
	return sl.sessionID
}

func (sl *SessionLogger) record(ev *Event) error {
	ev.TimestampMicros = sl.logger.timeSource().UnixNano() / int64(time.Microsecond)
	ev.SessionID = sl.sessionID
	return sl.logger.Record(ev)
}

// RecordSessionStart logs the beginning of a session.
func (sl *SessionLogger) RecordSessionStart(start *SessionStart) error {
	return sl.record(&Event{SessionStart: start})
}

// RecordStep logs one committed interpreter step.
func (sl *SessionLogger) RecordStep(step *Step) error {
	return sl.record(&Event{Step: step})
}

// RecordStepError logs a fatal dispatch failure.
func (sl *SessionLogger) RecordStepError(stepError *StepError) error {
	return sl.record(&Event{StepError: stepError})
}

// ReadJSONLinesLog parses a newline delimited JSON event log.
func ReadJSONLinesLog(r io.Reader, handler func(ev *Event)) error {
	decoder := json.NewDecoder(r)
	for decoder.More() {
		var ev Event
		if err := decoder.Decode(&ev); err != nil {
			return err
		}
		handler(&ev)
	}
	return nil
}
