// Package logger holds the shared structured logger.
package logger

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. Components derive entries from it with For.
var Log = logrus.New()

func init() {
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableQuote:     true,
	})
	Log.SetLevel(logrus.InfoLevel)
}

// For returns an entry tagged with the component name.
func For(component string) *logrus.Entry {
	return Log.WithField("component", component)
}

// SetLevel parses a level name ("debug", "info", ...) and applies it.
// Unknown names leave the level unchanged and return the parse error.
func SetLevel(name string) error {
	lvl, err := logrus.ParseLevel(name)
	if err != nil {
		return err
	}
	Log.SetLevel(lvl)
	return nil
}

// Silence discards all output. Tests use it to keep frame logs quiet.
func Silence() {
	Log.SetOutput(io.Discard)
}
