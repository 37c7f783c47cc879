package scene

import (
	"runtime"

	"github.com/df07/go-raytracing-kernel/pkg/geometry"
	"golang.org/x/sync/errgroup"
	"golang.org/x/xerrors"
)

// ProbeTask is a probe queued for tracing
type ProbeTask struct {
	TaskID int // Index of the probe, used to restore ordering
	Probe  Probe
}

// ProbeResult is the outcome of tracing one probe
type ProbeResult struct {
	TaskID int
	Probe  Probe
	Record geometry.HitRecord
	Hit    bool
}

// WorkerPool traces probe rays against a scene in parallel. The scene is
// only read, so every worker shares it.
type WorkerPool struct {
	scene       *Scene
	taskQueue   chan ProbeTask
	resultQueue chan ProbeResult
	numWorkers  int
	group       errgroup.Group
}

// NewWorkerPool creates a pool with numWorkers workers; zero or less means one per CPU
func NewWorkerPool(scene *Scene, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		scene:       scene,
		taskQueue:   make(chan ProbeTask, len(scene.Probes)),
		resultQueue: make(chan ProbeResult, len(scene.Probes)),
		numWorkers:  numWorkers,
	}
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.group.Go(wp.run)
	}
}

// Stop waits for the workers to finish, closes the result queue and returns
// the first worker error
func (wp *WorkerPool) Stop() error {
	close(wp.taskQueue)
	err := wp.group.Wait()
	close(wp.resultQueue)
	return err
}

// SubmitTask queues a probe for tracing
func (wp *WorkerPool) SubmitTask(task ProbeTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed result; ok is false once the pool is stopped and drained
func (wp *WorkerPool) GetResult() (ProbeResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

func (wp *WorkerPool) run() error {
	if wp.scene.BVH == nil {
		return ErrNotPreprocessed
	}

	for task := range wp.taskQueue {
		rec, hit := wp.scene.Trace(task.Probe)
		wp.resultQueue <- ProbeResult{TaskID: task.TaskID, Probe: task.Probe, Record: rec, Hit: hit}
	}
	return nil
}

// TraceAll traces every probe of the scene using numWorkers workers and
// returns the results in probe order.
func (s *Scene) TraceAll(numWorkers int) ([]ProbeResult, error) {
	pool := NewWorkerPool(s, numWorkers)
	pool.Start()

	for i, probe := range s.Probes {
		pool.SubmitTask(ProbeTask{TaskID: i, Probe: probe})
	}
	if err := pool.Stop(); err != nil {
		return nil, xerrors.Errorf("tracing probes: %w", err)
	}

	results := make([]ProbeResult, len(s.Probes))
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		results[result.TaskID] = result
	}

	logger.Debugf("traced %d probes with %d workers", len(results), pool.GetNumWorkers())
	return results, nil
}
