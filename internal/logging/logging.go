// Package logging configures the process-wide standard logger.
package logging

import (
	"io"
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup points the standard logger at a rotated file when path is set.
// Otherwise it logs to stderr in verbose mode and discards output otherwise.
func Setup(path string, verbose bool) (*log.Logger, io.Closer) {
	var (
		w      io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
	)

	if path != "" {
		lj := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    5, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		w, closer = lj, lj
	} else if !verbose {
		w = io.Discard
	}

	log.SetOutput(w)
	log.SetFlags(log.LstdFlags)
	return log.Default(), closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
