package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// ErrInvalidLogSetting indicates an unknown log level or format.
var ErrInvalidLogSetting = errors.New("invalid log setting")

// newLogger builds the CLI logger. --verbose and --quiet override the
// configured level; the flag format overrides the configured one.
func newLogger(w io.Writer, level, format string, quiet, verbose bool) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(w)

	switch {
	case verbose:
		logger.SetLevel(logrus.DebugLevel)
	case quiet:
		logger.SetLevel(logrus.ErrorLevel)
	case level == "":
		logger.SetLevel(logrus.WarnLevel)
	default:
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("%w: level %q", ErrInvalidLogSetting, level)
		}
		logger.SetLevel(lvl)
	}

	switch strings.ToLower(format) {
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: !verbose})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("%w: format %q (must be text or json)", ErrInvalidLogSetting, format)
	}

	return logger, nil
}
