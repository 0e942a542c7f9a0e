package log

import (
	"fmt"
	"github.com/sirupsen/logrus"
	"io"
)

// InitLogs creates a logger writing text to out at the given level (e.g. "debug", "info", "warning")
func InitLogs(out io.Writer, level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	return log, nil
}
