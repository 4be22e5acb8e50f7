package main

import (
	"context"
	"io"

	"github.com/fwojciec/classwatch"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Fetcher classwatch.Fetcher
	Parser  classwatch.ScheduleParser
	Rules   *classwatch.Ruleset
}

// WatchCmd runs the fetch, parse, filter, emit pipeline once.
type WatchCmd struct {
	URL string
}
