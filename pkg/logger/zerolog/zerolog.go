package zerolog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/goterm/term"
	"github.com/rs/zerolog"
)

// Options controls how New builds the console logger.
type Options struct {
	Level      string
	TimeLayout string
	Colored    bool
	JSON       bool
	Output     io.Writer
}

// New builds a zerolog logger from opts. JSON output skips the console
// formatting entirely.
func New(opts Options) (*zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
	}
	zerolog.SetGlobalLevel(level)

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	if opts.JSON {
		l := zerolog.New(out).With().Timestamp().Logger()
		return &l, nil
	}

	console := zerolog.ConsoleWriter{
		Out:             out,
		NoColor:         !opts.Colored,
		TimeFormat:      opts.TimeLayout,
		FormatLevel:     formatLevel,
		FormatMessage:   formatMessage,
		FormatCaller:    formatCaller,
		FormatTimestamp: func(i any) string { return formatTimestamp(i, opts.TimeLayout) },
	}

	l := zerolog.New(console).
		With().
		Timestamp().
		CallerWithSkipFrameCount(3).
		Logger()

	return &l, nil
}

func formatLevel(i any) string {
	switch i {
	case zerolog.LevelTraceValue:
		return term.Cyanf("[TRC]")
	case zerolog.LevelDebugValue:
		return term.Cyanf("[DBG]")
	case zerolog.LevelInfoValue:
		return term.Greenf("[INF]")
	case zerolog.LevelWarnValue:
		return term.Yellowf("[WAR]")
	case zerolog.LevelErrorValue:
		return term.Redf("[ERR]")
	case zerolog.LevelFatalValue:
		return term.Redf("[FTL]")
	default:
		return term.Whitef("[UNK]")
	}
}

func formatMessage(i any) string {
	const width = 60

	msg, ok := i.(string)
	if !ok || msg == "" {
		return ">"
	}

	if len(msg) < width {
		msg += strings.Repeat(" ", width-len(msg))
	}

	return term.Whitef("> %s", msg)
}

func formatCaller(i any) string {
	fname, ok := i.(string)
	if !ok || fname == "" {
		return ""
	}
	return term.Yellowf("[%s]", filepath.Base(fname))
}

func formatTimestamp(i any, layout string) string {
	s, ok := i.(string)
	if !ok {
		return term.Cyanf("[%v]", i)
	}

	if ts, err := time.ParseInLocation(time.RFC3339, s, time.Local); err == nil {
		s = ts.Format(layout)
	}

	return term.Cyanf("[%s]", s)
}
