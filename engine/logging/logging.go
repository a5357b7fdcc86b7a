// Package logging builds the zerolog loggers shared by the engine components.
package logging

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ParseLevel maps a config level name to a zerolog level. Unknown names fall back to info.
//
// Parameters:
//   - name: one of trace, debug, info, warn, error (case-insensitive)
//
// Returns:
//   - zerolog.Level: the matching level
func ParseLevel(name string) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// New builds a timestamped logger writing to every given writer.
// With pretty set, output uses the console format; the first writer gets colors.
//
// Parameters:
//   - level: minimum level name, see ParseLevel
//   - pretty: console format instead of JSON lines
//   - outs: destination writers, at least one
//
// Returns:
//   - zerolog.Logger: the configured logger
func New(level string, pretty bool, outs ...io.Writer) zerolog.Logger {
	writers := make([]io.Writer, 0, len(outs))
	for i, out := range outs {
		if pretty {
			out = zerolog.ConsoleWriter{
				Out:        out,
				TimeFormat: time.RFC3339,
				NoColor:    i > 0,
			}
		}
		writers = append(writers, out)
	}

	var w io.Writer = io.Discard
	switch len(writers) {
	case 0:
	case 1:
		w = writers[0]
	default:
		w = zerolog.MultiLevelWriter(writers...)
	}

	return zerolog.New(w).Level(ParseLevel(level)).With().Timestamp().Logger()
}

// FilePath builds a log file path for one session.
//
// Parameters:
//   - logsDir: directory holding the log files
//   - name: program name used as the file prefix
//   - sessionStart: start time, formatted into the file name
//
// Returns:
//   - string: the log file path
func FilePath(logsDir, name string, sessionStart time.Time) string {
	return filepath.Join(
		logsDir,
		fmt.Sprintf("%s.%s.log", name, sessionStart.Format("20060102_150405")),
	)
}
