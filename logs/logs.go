// Package logs builds the structured logger used by the command line
// tools and editor sessions.
package logs

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

type Options struct {
	// Level applies to every handler.
	Level slog.Leveler
	// File, if set, receives JSON records appended to it.
	File string
	// Journal also sends records to the systemd journal when available.
	Journal bool
}

// New returns a logger writing terse text records to w, fanned out to the
// handlers opts asks for.  The returned func closes the log file, if any.
func New(w io.Writer, opts Options) (*slog.Logger, func() error, error) {
	level := opts.Level
	if level == nil {
		level = slog.LevelInfo
	}
	handlers := []slog.Handler{
		slog.NewTextHandler(w, &slog.HandlerOptions{
			Level:       level,
			ReplaceAttr: terse,
		}),
	}
	closer := func() error { return nil }
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open log file %q: %w", opts.File, err)
		}
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
		closer = f.Close
	}
	if opts.Journal {
		jh, err := slogjournal.NewHandler(&slogjournal.Options{
			Level: level,
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				a.Key = JournalKey(a.Key)
				return a
			},
			ReplaceGroup: JournalKey,
		})
		if err != nil {
			slog.New(handlers[0]).Warn("systemd journal unavailable", "error", err)
		} else {
			handlers = append(handlers, jh)
		}
	}
	if len(handlers) == 1 {
		return slog.New(handlers[0]), closer, nil
	}
	return slog.New(slogmulti.Fanout(handlers...)), closer, nil
}

// terse drops the time and the INFO level label from text records.
func terse(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		return slog.Attr{}
	}
	if a.Key == slog.LevelKey && a.Value.String() == "INFO" {
		return slog.Attr{}
	}
	return a
}

// JournalKey maps an attribute key to a valid journal field name.
func JournalKey(key string) string {
	res := []byte(key)
	for i, c := range res {
		switch {
		case c >= 'a' && c <= 'z':
			res[i] = c - 'a' + 'A'
		case c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		default:
			res[i] = '_'
		}
	}
	return string(res)
}
