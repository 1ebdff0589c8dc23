package main

import (
	"fmt"
	"log/slog"
)

// report logs a failed shell command; the shell keeps going.
func report(log *slog.Logger, what string, err error) {
	if err == nil {
		return
	}
	log.Error(fmt.Sprintf("%s failed", what), "error", err)
}
