// Package resource bounds the work a Kit may do at once: concurrent
// pairwise computations, bytes of scratch memory, and storage throughput.
//
// A nil *Controller imposes no limits.
package resource

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"

	"github.com/hupe1980/meshkit/errs"
)

// Config holds resource limits.
type Config struct {
	// MaxConcurrentJobs is the number of pairwise computations that may run
	// at the same time. If 0, defaults to 1.
	MaxConcurrentJobs int64

	// MemoryLimitBytes caps scratch memory such as pair-distance buffers.
	// If 0, usage is only tracked.
	MemoryLimitBytes int64

	// IOLimitBytesPerSec throttles table reads and writes.
	// If 0, unlimited.
	IOLimitBytesPerSec int64
}

// Controller manages shared limits.
type Controller struct {
	jobs *semaphore.Weighted

	memSem   *semaphore.Weighted // nil if unlimited
	memLimit int64
	memUsed  atomic.Int64

	ioLimiter *rate.Limiter
	ioBurst   int
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	if cfg.MaxConcurrentJobs <= 0 {
		cfg.MaxConcurrentJobs = 1
	}

	c := &Controller{
		jobs: semaphore.NewWeighted(cfg.MaxConcurrentJobs),
	}
	if cfg.MemoryLimitBytes > 0 {
		c.memSem = semaphore.NewWeighted(cfg.MemoryLimitBytes)
		c.memLimit = cfg.MemoryLimitBytes
	}
	if cfg.IOLimitBytesPerSec > 0 {
		c.ioBurst = int(cfg.IOLimitBytesPerSec)
		c.ioLimiter = rate.NewLimiter(rate.Limit(cfg.IOLimitBytesPerSec), c.ioBurst)
	}
	return c
}

// AcquireJob reserves a job slot, blocking until one is free or ctx is done.
func (c *Controller) AcquireJob(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.jobs.Acquire(ctx, 1)
}

// TryAcquireJob reserves a job slot without blocking.
func (c *Controller) TryAcquireJob() bool {
	if c == nil {
		return true
	}
	return c.jobs.TryAcquire(1)
}

// ReleaseJob releases a job slot.
func (c *Controller) ReleaseJob() {
	if c == nil {
		return
	}
	c.jobs.Release(1)
}

// AcquireMemory reserves bytes of scratch memory. With a hard limit it
// blocks until enough memory is released or ctx is canceled. A request
// larger than the limit itself can never be granted and fails at once with
// an error satisfying errors.Is(err, errs.ErrInvalidArgument).
func (c *Controller) AcquireMemory(ctx context.Context, bytes int64) error {
	if c == nil || bytes <= 0 {
		return nil
	}
	if err := c.checkMemory(bytes); err != nil {
		return err
	}
	if c.memSem != nil {
		if err := c.memSem.Acquire(ctx, bytes); err != nil {
			return err
		}
	}
	c.memUsed.Add(bytes)
	return nil
}

func (c *Controller) checkMemory(bytes int64) error {
	if c.memSem != nil && bytes > c.memLimit {
		return &errs.InvalidValueError{
			Name:   "memory request",
			Value:  bytes,
			Reason: fmt.Sprintf("exceeds limit of %d bytes", c.memLimit),
		}
	}
	return nil
}

// TryAcquireMemory reserves memory without blocking.
func (c *Controller) TryAcquireMemory(bytes int64) bool {
	if c == nil || bytes <= 0 {
		return true
	}
	if c.memSem != nil && !c.memSem.TryAcquire(bytes) {
		return false
	}
	c.memUsed.Add(bytes)
	return true
}

// ReleaseMemory releases reserved memory.
func (c *Controller) ReleaseMemory(bytes int64) {
	if c == nil || bytes <= 0 {
		return
	}
	if c.memSem != nil {
		c.memSem.Release(bytes)
	}
	c.memUsed.Add(-bytes)
}

// MemoryUsage returns the reserved memory in bytes.
func (c *Controller) MemoryUsage() int64 {
	if c == nil {
		return 0
	}
	return c.memUsed.Load()
}

// AcquireIO waits until the IO limit allows n bytes. Requests larger than
// one second of budget are admitted in chunks.
func (c *Controller) AcquireIO(ctx context.Context, n int) error {
	if c == nil || c.ioLimiter == nil {
		return nil
	}
	for n > 0 {
		chunk := min(n, c.ioBurst)
		if err := c.ioLimiter.WaitN(ctx, chunk); err != nil {
			return err
		}
		n -= chunk
	}
	return nil
}
