// Package logger defines the logging contract used across tickerbot.
package logger

type Level int8

const (
	Disabled   Level = -1   // Disabled turns logging off.
	TraceLevel Level = iota // TraceLevel is used for wire-level details.
	DebugLevel              // DebugLevel is used for debugging information.
	InfoLevel               // InfoLevel is used for informational messages.
	WarnLevel               // WarnLevel is used for recoverable problems.
	ErrorLevel              // ErrorLevel is used for failed operations.
	FatalLevel              // FatalLevel logs and exits the program.
)

// Logger is implemented by the zerolog adapter and by test doubles.
type Logger interface {
	WithField(key string, value any) Logger
	WithFields(fields map[string]any) Logger
	WithError(err error) Logger

	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
	Fatal(args ...any)

	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	Fatalf(format string, args ...any)

	SetLevel(level Level)
	GetLevel() Level
}

// Nop discards every entry.
type Nop struct{}

func (n Nop) WithField(string, any) Logger { return n }
func (n Nop) WithFields(map[string]any) Logger { return n }
func (n Nop) WithError(error) Logger { return n }
func (Nop) Debug(...any) {}
func (Nop) Info(...any) {}
func (Nop) Warn(...any) {}
func (Nop) Error(...any) {}
func (Nop) Fatal(...any) {}
func (Nop) Debugf(string, ...any) {}
func (Nop) Infof(string, ...any) {}
func (Nop) Warnf(string, ...any) {}
func (Nop) Errorf(string, ...any) {}
func (Nop) Fatalf(string, ...any) {}
func (Nop) SetLevel(Level) {}
func (Nop) GetLevel() Level { return Disabled }
