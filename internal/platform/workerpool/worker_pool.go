// internal/platform/workerpool/worker_pool.go
package workerpool

import (
	"context"
	"sync"
	"time"

	"urlfeat/internal/platform/logx"
)

// Task representa una tarea a ejecutar en el worker pool.
type Task interface {
	// Execute ejecuta la tarea; debe retornar pronto cuando ctx termina
	Execute(ctx context.Context) error

	// Weight retorna el costo estimado de la tarea (en chunks, su número de filas)
	Weight() int

	// Name retorna el nombre de la tarea
	Name() string
}

// Scheduler define la estrategia de scheduling.
type Scheduler interface {
	Schedule(tasks []Task) []int
	Name() string
}

// TaskResult representa el resultado de una tarea.
type TaskResult struct {
	// Index is the task's position in the slice passed to Submit.
	Index    int
	Task     Task
	Error    error
	Duration time.Duration
}

// WorkerPoolConfig configura el worker pool.
type WorkerPoolConfig struct {
	Workers   int
	Scheduler Scheduler
	Logger    logx.Logger
}

// WorkerPool gestiona la ejecución concurrente de tareas con scheduling.
type WorkerPool struct {
	workers   int
	scheduler Scheduler
	logger    logx.Logger

	queue chan job

	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
	once   sync.Once
}

type job struct {
	ctx   context.Context
	index int
	task  Task
	out   chan<- TaskResult
}

// NewWorkerPool crea un nuevo worker pool. Llamar Start antes de Submit.
func NewWorkerPool(cfg WorkerPoolConfig) *WorkerPool {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.Scheduler == nil {
		cfg.Scheduler = NewFIFOScheduler()
	}
	if cfg.Logger == nil {
		cfg.Logger = logx.New()
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &WorkerPool{
		workers:   cfg.Workers,
		scheduler: cfg.Scheduler,
		logger:    cfg.Logger.With("component", "worker-pool"),
		queue:     make(chan job, cfg.Workers*2),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Start inicia el worker pool.
func (wp *WorkerPool) Start() {
	wp.logger.Debug("starting worker pool", "workers", wp.workers, "scheduler", wp.scheduler.Name())

	for i := 0; i < wp.workers; i++ {
		wp.wg.Add(1)
		go wp.worker(i)
	}
}

func (wp *WorkerPool) worker(id int) {
	defer wp.wg.Done()

	for {
		select {
		case <-wp.ctx.Done():
			return
		case j := <-wp.queue:
			wp.execute(id, j)
		}
	}
}

func (wp *WorkerPool) execute(workerID int, j job) {
	start := time.Now()
	err := j.task.Execute(j.ctx)
	duration := time.Since(start)

	wp.logger.Debug("task completed",
		"worker_id", workerID,
		"task", j.task.Name(),
		"duration_ms", duration.Milliseconds(),
		"error", err != nil,
	)

	// out is buffered for every task of the submission, so this never blocks.
	j.out <- TaskResult{Index: j.index, Task: j.task, Error: err, Duration: duration}
}

// Submit queues tasks in scheduler order and blocks until every task has
// finished. Results are returned in submission order regardless of the order
// in which tasks ran. A cancelled ctx is handed to the remaining tasks, which
// are expected to return ctx.Err() promptly. Submit must not be called after Stop.
func (wp *WorkerPool) Submit(ctx context.Context, tasks []Task) []TaskResult {
	if len(tasks) == 0 {
		return []TaskResult{}
	}

	order := wp.scheduler.Schedule(tasks)
	out := make(chan TaskResult, len(tasks))

	wp.logger.Debug("submitting tasks", "total", len(tasks), "scheduler", wp.scheduler.Name())

	go func() {
		for _, idx := range order {
			select {
			case wp.queue <- job{ctx: ctx, index: idx, task: tasks[idx], out: out}:
			case <-wp.ctx.Done():
				return
			}
		}
	}()

	results := make([]TaskResult, len(tasks))
	for received := 0; received < len(tasks); received++ {
		select {
		case r := <-out:
			results[r.Index] = r
		case <-wp.ctx.Done():
			wp.logger.Warn("pool stopped while waiting for results", "received", received, "total", len(tasks))
			return results[:0]
		}
	}
	return results
}

// Stop detiene el worker pool. Se puede llamar más de una vez.
func (wp *WorkerPool) Stop() {
	wp.once.Do(func() {
		wp.cancel()
		wp.wg.Wait()
		wp.logger.Debug("worker pool stopped")
	})
}

// Stats retorna estadísticas del worker pool.
func (wp *WorkerPool) Stats() WorkerPoolStats {
	return WorkerPoolStats{
		Workers:       wp.workers,
		SchedulerName: wp.scheduler.Name(),
		QueueSize:     len(wp.queue),
	}
}

// WorkerPoolStats describes a pool.
type WorkerPoolStats struct {
	Workers       int
	SchedulerName string
	QueueSize     int
}
