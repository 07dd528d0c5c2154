package parallel

import (
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
)

// ErrWorkerPanic is returned when a task panics. The panic value and stack
// are included in the wrapped message.
var ErrWorkerPanic = errors.New("parallel: worker panicked")

// Task is one unit of work. A non-nil error aborts the whole invocation.
type Task func() error

// Executor runs a batch of tasks to completion.
//
// Execute returns only after every task has finished. If any task fails,
// the error of the lowest-indexed failing task is returned, so the
// reported failure does not depend on scheduling.
type Executor interface {
	Execute(tasks []Task) error
	Name() string
}

// Threads runs every task on its own goroutine and joins them.
type Threads struct{}

// Name implements Executor.
func (Threads) Name() string { return "threads" }

// Execute implements Executor.
func (Threads) Execute(tasks []Task) error {
	errs := make([]error, len(tasks))

	var wg sync.WaitGroup
	wg.Add(len(tasks))
	for i, task := range tasks {
		go func() {
			defer wg.Done()
			errs[i] = runTask(i, task)
		}()
	}
	wg.Wait()

	return firstError(errs)
}

// runTask calls task, converting a panic into ErrWorkerPanic.
func runTask(i int, task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: task %d: %v\n%s", ErrWorkerPanic, i, r, debug.Stack())
		}
	}()
	if task == nil {
		return nil
	}
	return task()
}

// Guard runs a serial step of a filter, such as a transpose, under the
// same panic capture as executor tasks. stage names the step in the error.
func Guard(stage string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %s: %v\n%s", ErrWorkerPanic, stage, r, debug.Stack())
		}
	}()
	return fn()
}

func firstError(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
