package main

import "time"

// Defaults for CLI commands.
const (
	DefaultHistoryLimit = 10
	PollInterval        = time.Minute
	NotifyDuration      = 10 * time.Second
)
