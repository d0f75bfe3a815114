package main

import (
	"log/slog"
	"strconv"
	"time"
)

// intervalArg parses the optional positional polling interval in seconds.
// Bad or non-positive input falls back to the default with a warning.
func intervalArg(args []string, fallback time.Duration) time.Duration {
	if len(args) == 0 {
		return fallback
	}

	secs, err := strconv.Atoi(args[0])
	if err != nil || secs <= 0 {
		slog.Warn("invalid interval, using default", "arg", args[0], "default", fallback)
		return fallback
	}
	return time.Duration(secs) * time.Second
}
