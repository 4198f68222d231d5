// internal/platform/workerpool/schedulers.go
package workerpool

import (
	"sort"
)

// FIFOScheduler encola las tareas en el orden en que llegan.
type FIFOScheduler struct{}

// NewFIFOScheduler crea un scheduler FIFO.
func NewFIFOScheduler() *FIFOScheduler {
	return &FIFOScheduler{}
}

// Schedule retorna tasks en el orden original.
func (s *FIFOScheduler) Schedule(tasks []Task) []int {
	order := make([]int, len(tasks))
	for i := range order {
		order[i] = i
	}
	return order
}

// Name retorna el nombre del scheduler.
func (s *FIFOScheduler) Name() string {
	return "fifo"
}

// WeightedScheduler encola primero las tareas más pesadas.
// Estrategia: que una tarea corta al final no deje workers ociosos.
type WeightedScheduler struct{}

// NewWeightedScheduler crea un scheduler basado en peso.
func NewWeightedScheduler() *WeightedScheduler {
	return &WeightedScheduler{}
}

// Schedule ordena por peso descendente; los empates conservan el orden original.
func (s *WeightedScheduler) Schedule(tasks []Task) []int {
	order := NewFIFOScheduler().Schedule(tasks)
	sort.SliceStable(order, func(i, j int) bool {
		return tasks[order[i]].Weight() > tasks[order[j]].Weight()
	})
	return order
}

// Name retorna el nombre del scheduler.
func (s *WeightedScheduler) Name() string {
	return "weighted"
}

// SchedulerByName maps a config value to a scheduler. Unknown names fall back to FIFO.
func SchedulerByName(name string) Scheduler {
	switch name {
	case "weighted":
		return NewWeightedScheduler()
	default:
		return NewFIFOScheduler()
	}
}
