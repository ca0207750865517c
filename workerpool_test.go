package raster

import (
	"sync/atomic"
	"testing"
)

func TestWorkerPoolDrainsEveryItemExactlyOnce(t *testing.T) {
	p := newWorkerPool(3)
	defer p.destroy()

	const n = 10000
	var hits [n]int32
	p.runStage(stageVertex, n, func(i int) {
		atomic.AddInt32(&hits[i], 1)
	})

	for i, h := range hits {
		if h != 1 {
			t.Fatalf("item %d processed %d times, want 1", i, h)
		}
	}
}

func TestWorkerPoolBarrierBlocksUntilStageDone(t *testing.T) {
	p := newWorkerPool(4)
	defer p.destroy()

	var total int64
	p.runStage(stageVertex, 1000, func(i int) {
		atomic.AddInt64(&total, 1)
	})
	if total != 1000 {
		t.Fatalf("runStage returned before all work finished: total=%d", total)
	}

	p.mu.Lock()
	active := p.activeWorkers
	p.mu.Unlock()
	if active != 0 {
		t.Fatalf("pool should be fully parked between stages, activeWorkers=%d", active)
	}
}

func TestWorkerPoolRunsConsecutiveStages(t *testing.T) {
	p := newWorkerPool(2)
	defer p.destroy()

	for round := 0; round < 5; round++ {
		var count int64
		p.runStage(stageAssemble, 500, func(i int) {
			atomic.AddInt64(&count, 1)
		})
		if count != 500 {
			t.Fatalf("round %d: got %d, want 500", round, count)
		}
	}
}

func TestWorkerPoolZeroHelpersRunsOnCaller(t *testing.T) {
	p := newWorkerPool(0)
	defer p.destroy()

	var count int64
	p.runStage(stageRaster, 100, func(i int) {
		atomic.AddInt64(&count, 1)
	})
	if count != 100 {
		t.Fatalf("got %d, want 100", count)
	}
}
