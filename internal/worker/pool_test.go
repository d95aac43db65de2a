package worker

import (
	"context"
	"sync/atomic"
	"testing"
)

type countOutcome struct {
	value int
}

func (o *countOutcome) Err() error { return nil }

type countTask struct {
	value   int
	counter *int64
}

func (t *countTask) Run(_ context.Context) Outcome {
	atomic.AddInt64(t.counter, 1)
	return &countOutcome{value: t.value}
}

func TestPool_RunsAllTasks(t *testing.T) {
	pool := NewPool(4)
	pool.Start()

	var counter int64
	go func() {
		for i := 0; i < 20; i++ {
			pool.Submit(&countTask{value: i, counter: &counter})
		}
		pool.Close()
	}()

	outcomes := pool.Wait()

	if counter != 20 {
		t.Errorf("Expected 20 tasks run, got %d", counter)
	}
	if len(outcomes) != 20 {
		t.Errorf("Expected 20 outcomes, got %d", len(outcomes))
	}

	seen := make(map[int]bool)
	for _, outcome := range outcomes {
		co, ok := outcome.(*countOutcome)
		if !ok {
			t.Fatal("Expected countOutcome")
		}
		seen[co.value] = true
	}
	if len(seen) != 20 {
		t.Errorf("Expected 20 distinct outcomes, got %d", len(seen))
	}
}

func TestPool_ZeroWorkersDefaultsToOne(t *testing.T) {
	pool := NewPool(0)
	pool.Start()

	var counter int64
	pool.Submit(&countTask{value: 1, counter: &counter})
	pool.Close()

	outcomes := pool.Wait()
	if len(outcomes) != 1 {
		t.Errorf("Expected 1 outcome, got %d", len(outcomes))
	}
}

func TestPool_SingleWorkerManyTasks(t *testing.T) {
	// more tasks than the bounded buffers hold: draining and submitting
	// must proceed concurrently without stalling
	pool := NewPool(1)
	pool.Start()

	var counter int64
	go func() {
		for i := 0; i < 16; i++ {
			pool.Submit(&countTask{value: i, counter: &counter})
		}
		pool.Close()
	}()

	outcomes := pool.Wait()
	if len(outcomes) != 16 {
		t.Errorf("Expected 16 outcomes, got %d", len(outcomes))
	}
}

func TestPool_SubmitAfterShutdownIsNoop(t *testing.T) {
	pool := NewPool(2)
	pool.Start()
	pool.Shutdown()

	var counter int64
	pool.Submit(&countTask{value: 1, counter: &counter})

	if counter != 0 {
		t.Errorf("Expected no task run after shutdown, got %d", counter)
	}
}
