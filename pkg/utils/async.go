package utils

import (
	"context"
	"log"
	"runtime/debug"

	"golang-stock-watchlist/pkg/logger"
)

// GoSafe runs fn in a new goroutine and recovers from panics so a single
// worker cannot take down the process.
func GoSafe(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("recovered from panic: %v\n%s", r, debug.Stack())
			}
		}()
		fn()
	}()
}

// ShouldContinue reports whether the context is still active, logging once
// when it is not.
func ShouldContinue(ctx context.Context, log *logger.Logger) bool {
	select {
	case <-ctx.Done():
		log.Warn("Context cancelled, stopping early", logger.ErrorField(ctx.Err()))
		return false
	default:
		return true
	}
}
