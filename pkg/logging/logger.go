// Package logging provides tooling for structured logging.
package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"

	"go.llib.dev/testcase/clock"
)

// Default is the package level logger, it writes to the STDOUT.
var Default Logger

type Logger struct {
	Out io.Writer

	// Level is the logging level.
	// The default Level is LevelInfo.
	Level Level
	// Separator is used to separate log entries from each other.
	// By default, it is the current operation system's line separator.
	Separator string
	// MarshalFunc is used to serialise the logging message event.
	// When nil it defaults to JSON format.
	MarshalFunc func(any) ([]byte, error)
	// Hijack will hijack the logging and instead of letting it logged out to the Out,
	// the logging will be done with the Hijack function.
	Hijack HijackFunc

	outLock sync.Mutex
}

type HijackFunc func(ctx context.Context, level Level, msg string, fields Fields)

const (
	messageKey   = "message"
	levelKey     = "level"
	timestampKey = "timestamp"
)

func (l *Logger) Debug(ctx context.Context, msg string, ds ...Detail) {
	l.Log(ctx, LevelDebug, msg, ds...)
}

func (l *Logger) Info(ctx context.Context, msg string, ds ...Detail) {
	l.Log(ctx, LevelInfo, msg, ds...)
}

func (l *Logger) Warn(ctx context.Context, msg string, ds ...Detail) {
	l.Log(ctx, LevelWarn, msg, ds...)
}

func (l *Logger) Error(ctx context.Context, msg string, ds ...Detail) {
	l.Log(ctx, LevelError, msg, ds...)
}

func (l *Logger) Log(ctx context.Context, level Level, msg string, ds ...Detail) {
	if !isLevelEnabled(l.getLevel(), level) {
		return
	}
	if l.Hijack != nil {
		le := make(entry)
		for _, d := range ds {
			d.addTo(le)
		}
		l.Hijack(ctx, level, msg, Fields(le))
		return
	}
	_ = l.logTo(l.writer(), level, msg, ds)
}

// Enabled reports whether a log entry on the given level would be written.
func (l *Logger) Enabled(level Level) bool {
	return isLevelEnabled(l.getLevel(), level)
}

func (l *Logger) logTo(out io.Writer, level Level, msg string, ds []Detail) error {
	le := make(entry)
	for _, d := range ds {
		d.addTo(le)
	}
	le[levelKey] = level
	le[messageKey] = msg
	le[timestampKey] = clock.Now().Format(time.RFC3339)
	bs, err := l.marshalFunc()(map[string]any(le))
	if err != nil {
		return err
	}
	l.outLock.Lock()
	defer l.outLock.Unlock()
	_, err = out.Write(append(bs, []byte(l.separator())...))
	return err
}

func (l *Logger) writer() io.Writer {
	if l.Out != nil {
		return l.Out
	}
	return os.Stdout
}

func (l *Logger) marshalFunc() func(any) ([]byte, error) {
	if l.MarshalFunc != nil {
		return l.MarshalFunc
	}
	return json.Marshal
}

func (l *Logger) separator() string {
	if l.Separator != "" {
		return l.Separator
	}
	if os.PathSeparator == '\\' {
		return "\r\n"
	}
	return "\n"
}

func (l *Logger) getLevel() Level {
	if len(l.Level) == 0 {
		return defaultLevel
	}
	return l.Level
}

type testingTB interface {
	Helper()
	Cleanup(func())
	Log(args ...any)
}

// Stub returns a debug level Logger that records its output into the returned buffer.
// The recorded output is printed to the test log when the test finishes with a failure.
func Stub(tb testingTB) (*Logger, StubOutput) {
	tb.Helper()
	buf := &stubOutput{}
	l := &Logger{
		Level: LevelDebug,
		Out:   buf,
	}
	if f, ok := tb.(interface{ Failed() bool }); ok {
		tb.Cleanup(func() {
			if f.Failed() {
				tb.Log(buf.String())
			}
		})
	}
	return l, buf
}

type StubOutput interface {
	io.Reader
	String() string
	Bytes() []byte
}

type stubOutput struct {
	m   sync.Mutex
	buf bytes.Buffer
}

func (o *stubOutput) Read(p []byte) (n int, err error) {
	o.m.Lock()
	defer o.m.Unlock()
	return o.buf.Read(p)
}

func (o *stubOutput) Write(p []byte) (n int, err error) {
	o.m.Lock()
	defer o.m.Unlock()
	return o.buf.Write(p)
}

func (o *stubOutput) String() string {
	o.m.Lock()
	defer o.m.Unlock()
	return o.buf.String()
}

func (o *stubOutput) Bytes() []byte {
	o.m.Lock()
	defer o.m.Unlock()
	return append([]byte(nil), o.buf.Bytes()...)
}
