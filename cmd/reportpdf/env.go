package main

import (
	"io"
	"os"
	"time"

	reportpdf "github.com/alnah/go-reportpdf"
	"github.com/alnah/go-reportpdf/internal/hints"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, environment variables, and asset fetching.
type Environment struct {
	Now     func() time.Time
	Stdout  io.Writer
	Stderr  io.Writer
	Getenv  func(string) string
	Fetcher reportpdf.Fetcher // nil means the configured resolver
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Getenv: os.Getenv,
	}
}

// defaultFontURL returns the font URL set in the environment, if any.
func (e *Environment) defaultFontURL() string {
	if e.Getenv == nil {
		return ""
	}
	return e.Getenv(hints.FontURLEnv)
}
