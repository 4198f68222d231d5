// internal/platform/ui/noop_presenter.go
package ui

import "time"

// NoopPresenter produces no output. Used in quiet mode and in tests.
type NoopPresenter struct{}

// NewNoopPresenter creates a silent presenter.
func NewNoopPresenter() *NoopPresenter {
	return &NoopPresenter{}
}

func (n *NoopPresenter) Start(info RunInfo)                             {}
func (n *NoopPresenter) StartStage(stage StageInfo)                     {}
func (n *NoopPresenter) ChunkDone(stage string, done, total int)        {}
func (n *NoopPresenter) FinishStage(name string, duration time.Duration) {}
func (n *NoopPresenter) Info(msg string)                                {}
func (n *NoopPresenter) Warning(msg string)                             {}
func (n *NoopPresenter) Error(msg string)                               {}
func (n *NoopPresenter) Finish(stats RunStats)                          {}
func (n *NoopPresenter) Close() error                                   { return nil }
