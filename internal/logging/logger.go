package logging

import (
	"io"

	"github.com/phuslu/log"
)

// New returns a console logger writing to w at the given level ("debug", "info", "warn", ...).
// Unknown levels fall back to info.
func New(level string, w io.Writer, color bool) *log.Logger {
	return &log.Logger{
		Level:      log.ParseLevel(level),
		TimeFormat: "15:04:05",
		Writer: &log.ConsoleWriter{
			Writer:      w,
			ColorOutput: color,
		},
	}
}

// Nop returns a logger that discards everything
func Nop() *log.Logger {
	return &log.Logger{
		Level:  log.PanicLevel,
		Writer: &log.IOWriter{Writer: io.Discard},
	}
}
