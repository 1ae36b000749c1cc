// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package otitl

import (
	"context"
	"time"

	"github.com/petenewcomb/itl-go"
	"go.uber.org/zap"
)

// LoggedFuture adds structured logging to a future's lifecycle. It logs the
// first poll and the completing poll, including the number of polls taken,
// the wall-clock duration between them, and any error.
func LoggedFuture[T any](operationName string, inner itl.Future[T]) itl.Future[T] {
	var startTime time.Time
	polls := 0
	return itl.FutureFunc[T](func(ctx context.Context) (T, bool, error) {
		// Get logger from context or use a default
		// This implementation uses zap, but could be adapted for any logger
		logger := zap.L()

		if polls == 0 {
			startTime = time.Now()
			logger.Debug("Starting future",
				zap.String("operation", operationName),
				zap.String("component", "otitl"))
		}
		polls++

		result, done, err := inner.Poll(ctx)
		if !done {
			return result, false, err
		}

		// Log completion with appropriate level based on success/failure
		duration := time.Since(startTime)
		if err != nil {
			logger.Error("Future failed",
				zap.String("operation", operationName),
				zap.String("component", "otitl"),
				zap.Int("polls", polls),
				zap.Duration("duration", duration),
				zap.Error(err))
		} else {
			logger.Debug("Future completed",
				zap.String("operation", operationName),
				zap.String("component", "otitl"),
				zap.Int("polls", polls),
				zap.Duration("duration", duration))
		}
		return result, true, err
	})
}

// LoggedTask adds structured logging to a task function: one entry when the
// call starts and one when it returns, with the wall-clock duration and any
// error. It is the single-call form of [LoggedFuture].
func LoggedTask[T any](
	operationName string,
	taskFunc itl.TaskFunc[T],
) itl.TaskFunc[T] {
	return func(ctx context.Context) (T, error) {
		logger := zap.L()
		logger.Debug("Starting task",
			zap.String("operation", operationName),
			zap.String("component", "otitl"))

		startTime := time.Now()
		result, err := taskFunc(ctx)
		duration := time.Since(startTime)

		if err != nil {
			logger.Error("Task failed",
				zap.String("operation", operationName),
				zap.String("component", "otitl"),
				zap.Duration("duration", duration),
				zap.Error(err))
		} else {
			logger.Debug("Task completed",
				zap.String("operation", operationName),
				zap.String("component", "otitl"),
				zap.Duration("duration", duration))
		}
		return result, err
	}
}
