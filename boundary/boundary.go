// File: boundary.go
// Title: Task Boundary
// Description: Implements the supervisory wrapper around a task lifecycle.
//              A boundary runs a task, converts any returned error or escaped
//              panic into a taxonomy failure, forwards it to the dispatcher,
//              and hands the normalized failure back to the caller. Each run
//              carries a generated task ID so concurrent tasks' failures are
//              never misattributed in the log.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-09
// Modified: 2025-03-09
//
// Change History:
// - 2025-03-09 v0.1.0: Initial implementation

package boundary

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/msto63/fault/core/failure"
	"github.com/msto63/fault/core/log"
	"github.com/msto63/fault/dispatch"
)

// Code for failures produced by a panicking task
const CodeTaskPanic failure.Code = "TASK_PANIC"

// Task is one unit of work supervised by a boundary
type Task func(ctx context.Context) error

// Boundary wraps task lifecycles in a scoped capture region. It is safe for
// concurrent use; every Run derives its own logger.
type Boundary struct {
	dispatcher *dispatch.Dispatcher
	logger     *log.Logger
}

// New creates a boundary forwarding to the given dispatcher and logging task
// lifecycle events through the given sink
func New(dispatcher *dispatch.Dispatcher, logger *log.Logger) *Boundary {
	return &Boundary{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Run executes the task inside the capture region. Any error the task returns
// is normalized and dispatched; any panic is recovered into an Application
// failure and dispatched. The normalized failure is returned so the caller
// can still pattern-match on kind; nil means the task succeeded.
func (b *Boundary) Run(ctx context.Context, name string, task Task) (result *failure.Failure) {
	taskID := uuid.NewString()
	logger := b.logger.WithFields(log.Fields{
		"task":    name,
		"task_id": taskID,
	})

	logger.Debug("task started")

	defer func() {
		if r := recover(); r != nil {
			f := failure.NewApplication(
				fmt.Sprintf("panic in task %s: %v", name, r),
				failure.WithCode(CodeTaskPanic),
			)
			logger.Warn("task panicked")
			b.dispatcher.Dispatch(f)
			result = f
		}
	}()

	err := task(ctx)
	if err == nil {
		logger.Debug("task completed")
		return nil
	}

	f := failure.Ensure(err)
	logger.Debug("task failed", log.Fields{"failure_kind": f.Kind().String()})
	b.dispatcher.Dispatch(f)
	return f
}
