package imfilter

import (
	"fmt"

	"github.com/gogpu/imfilter/internal/parallel"
)

// Scheduler selects how worker partitions are executed. Both schedulers
// produce identical output.
type Scheduler int

const (
	// SchedulerThreads runs one goroutine per partition and joins them.
	SchedulerThreads Scheduler = iota

	// SchedulerTasks queues partitions as tasks on a fixed goroutine pool.
	SchedulerTasks
)

// String returns the scheduler name accepted by ParseScheduler.
func (s Scheduler) String() string {
	switch s {
	case SchedulerThreads:
		return "threads"
	case SchedulerTasks:
		return "tasks"
	default:
		return fmt.Sprintf("Scheduler(%d)", int(s))
	}
}

// ParseScheduler returns the scheduler with the given name.
func ParseScheduler(name string) (Scheduler, error) {
	switch name {
	case "threads":
		return SchedulerThreads, nil
	case "tasks":
		return SchedulerTasks, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownScheduler, name)
	}
}

// Option configures a filter call.
//
// Example:
//
//	dst, err := imfilter.GaussianBlur(src, 5, 16,
//	    imfilter.WithScheduler(imfilter.SchedulerTasks),
//	    imfilter.WithPoolSize(4))
type Option func(*options)

// options holds optional configuration for a filter call.
type options struct {
	scheduler Scheduler
	poolSize  int
}

// defaultOptions returns the default filter options.
func defaultOptions() options {
	return options{
		scheduler: SchedulerThreads,
		poolSize:  0, // GOMAXPROCS
	}
}

// WithScheduler selects the scheduler. The default is SchedulerThreads.
func WithScheduler(s Scheduler) Option {
	return func(o *options) {
		o.scheduler = s
	}
}

// WithPoolSize sets the number of pool goroutines used by SchedulerTasks.
// Zero or negative means GOMAXPROCS. Ignored by SchedulerThreads.
func WithPoolSize(n int) Option {
	return func(o *options) {
		o.poolSize = n
	}
}

// newOptions applies opts over the defaults.
func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// executor returns the executor for o and a function releasing it.
func (o options) executor() (parallel.Executor, func(), error) {
	switch o.scheduler {
	case SchedulerThreads:
		return parallel.Threads{}, func() {}, nil
	case SchedulerTasks:
		pool := parallel.NewPool(o.poolSize)
		return pool, pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %v", ErrUnknownScheduler, o.scheduler)
	}
}
