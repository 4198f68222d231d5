// internal/core/usecases/stage.go
package usecases

import (
	"time"

	"urlfeat/internal/platform/ui"
)

// Stage names reported to the presenter.
const (
	StageLoad    = "load"
	StageExtract = "extract"
	StageFilter  = "filter"
	StageEncode  = "encode"
	StageWrite   = "write"
)

// stageRunner numbers stages and reports their timing to a presenter.
type stageRunner struct {
	presenter ui.Presenter
	total     int
	current   int
	durations map[string]time.Duration
}

func newStageRunner(presenter ui.Presenter, total int) *stageRunner {
	return &stageRunner{
		presenter: presenter,
		total:     total,
		durations: make(map[string]time.Duration),
	}
}

// run executes fn as the next stage. chunks > 0 announces a progress bar.
func (s *stageRunner) run(name string, chunks int, fn func() error) error {
	s.current++
	s.presenter.StartStage(ui.StageInfo{
		Number:      s.current,
		TotalStages: s.total,
		Name:        name,
		Chunks:      chunks,
	})

	start := time.Now()
	err := fn()
	d := time.Since(start)
	s.durations[name] = d

	if err != nil {
		s.presenter.Error(name + ": " + err.Error())
		return err
	}
	s.presenter.FinishStage(name, d)
	return nil
}
