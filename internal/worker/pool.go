package worker

import (
	"context"
	"sync"
)

// Task is a unit of detection work: one detector pass or one bias
// analysis over the shared, read-only claim snapshot
type Task interface {
	Run(ctx context.Context) Outcome
}

// Outcome is the result of a task run
type Outcome interface {
	Err() error
}

// Pool runs tasks on a fixed number of workers. Detection runs are pure
// functions of their inputs, so tasks need no ordering between them;
// cancellation just stops submitting new work and partial results remain
// valid.
type Pool struct {
	workers    int
	queue      chan Task
	outcomes   chan Outcome
	wg         sync.WaitGroup
	ctx        context.Context
	cancelFunc context.CancelFunc
	closeOnce  sync.Once
}

// NewPool creates a pool with the given number of workers
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Pool{
		workers:    workers,
		queue:      make(chan Task, workers*2),
		outcomes:   make(chan Outcome, workers*2),
		ctx:        ctx,
		cancelFunc: cancel,
	}
}

// Start launches the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case task, ok := <-p.queue:
			if !ok {
				return
			}
			outcome := task.Run(p.ctx)
			select {
			case p.outcomes <- outcome:
			case <-p.ctx.Done():
				return
			}
		}
	}
}

// Submit queues a task for execution
func (p *Pool) Submit(task Task) {
	select {
	case <-p.ctx.Done():
		return
	case p.queue <- task:
	}
}

// Close marks submission complete. Call from the submitting goroutine
// once every task is queued; no Submit may follow.
func (p *Pool) Close() {
	close(p.queue)
}

// Wait drains outcomes until every submitted task has finished. The
// queue and outcome buffers are bounded, so submission and draining must
// run concurrently: submit (and Close) from one goroutine, Wait from
// another.
func (p *Pool) Wait() []Outcome {
	go func() {
		p.wg.Wait()
		p.closeOutcomes()
	}()

	var outcomes []Outcome
	for outcome := range p.outcomes {
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

// Shutdown stops the pool immediately
func (p *Pool) Shutdown() {
	p.cancelFunc()
	p.wg.Wait()
	p.closeOutcomes()
}

func (p *Pool) closeOutcomes() {
	p.closeOnce.Do(func() {
		close(p.outcomes)
	})
}
