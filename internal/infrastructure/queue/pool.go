package queue

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
)

// ErrPoolStopped is returned by Submit once the pool's context is done.
var ErrPoolStopped = errors.New("worker pool stopped")

type job struct {
	fn   func()
	done chan struct{}
}

// Pool runs CPU-bound jobs (bcrypt) on a fixed set of workers so a burst of
// logins cannot occupy every request goroutine at once. Submit blocks until
// the job has run, so callers see an ordinary synchronous call.
type Pool struct {
	jobs    chan job
	stopped chan struct{}
	size    int
	once    sync.Once
	log     zerolog.Logger
}

// NewPool creates a Pool with numWorkers workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewPool(numWorkers int, log zerolog.Logger) *Pool {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	return &Pool{
		jobs:    make(chan job, channelBuffer),
		stopped: make(chan struct{}),
		size:    numWorkers,
		log:     log,
	}
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (p *Pool) Start(ctx context.Context) {
	p.once.Do(func() {
		for i := 0; i < p.size; i++ {
			go p.runWorker(ctx, i)
		}
		go func() {
			<-ctx.Done()
			close(p.stopped)
		}()
		p.log.Debug().Int("workers", p.size).Msg("worker pool started")
	})
}

// Submit queues fn and waits for it to finish. It returns early with the
// context error if ctx ends first, or ErrPoolStopped after shutdown.
func (p *Pool) Submit(ctx context.Context, fn func()) error {
	select {
	case <-p.stopped:
		return ErrPoolStopped
	default:
	}

	j := job{fn: fn, done: make(chan struct{})}

	select {
	case p.jobs <- j:
	case <-ctx.Done():
		return ctx.Err()
	case <-p.stopped:
		return ErrPoolStopped
	}

	select {
	case <-j.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-p.stopped:
		return ErrPoolStopped
	}
}

func (p *Pool) runWorker(ctx context.Context, id int) {
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-p.jobs:
			p.run(id, j)
		}
	}
}

func (p *Pool) run(id int, j job) {
	defer close(j.done)
	defer func() {
		if r := recover(); r != nil {
			p.log.Error().Interface("panic", r).Int("worker_id", id).Msg("job panicked")
		}
	}()
	j.fn()
}
