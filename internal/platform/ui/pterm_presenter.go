// internal/platform/ui/pterm_presenter.go
package ui

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/pterm/pterm"
)

// PTermPresenter renders headers, per-stage progress bars and a final
// statistics box with pterm.
type PTermPresenter struct {
	mu sync.Mutex

	info      RunInfo
	startTime time.Time

	// bars holds the progress bar of each chunked stage still running.
	bars map[string]*pterm.ProgressbarPrinter
	done map[string]int
}

// NewPTermPresenter creates a pterm presenter.
func NewPTermPresenter() *PTermPresenter {
	return &PTermPresenter{
		bars: make(map[string]*pterm.ProgressbarPrinter),
		done: make(map[string]int),
	}
}

// Start prints the header and the run configuration box.
func (p *PTermPresenter) Start(info RunInfo) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.info = info
	p.startTime = time.Now()

	pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgCyan)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Println("urlfeat - URL Feature Extraction")

	pterm.Println()
	pterm.DefaultSection.Println("Run Configuration")

	infoPanel := pterm.DefaultBox.
		WithTitle("Run").
		WithTitleTopCenter().
		WithRightPadding(4).
		WithLeftPadding(4).
		WithBoxStyle(pterm.NewStyle(pterm.FgCyan))

	content := fmt.Sprintf("%s Input: %s\n", IconInput, pterm.Cyan(info.Input))
	content += fmt.Sprintf("   Mode: %s\n", pterm.Yellow(info.Mode))
	if info.Output != "" {
		content += fmt.Sprintf("   Output: %s\n", info.Output)
	}
	content += fmt.Sprintf("%s Artifacts: %s\n", IconArtifacts, info.ArtifactsDir)
	content += fmt.Sprintf("   Chunk size: %d\n", info.ChunkSize)
	content += fmt.Sprintf("%s Workers: %d\n", IconWorkers, info.Workers)
	content += fmt.Sprintf("   Run ID: %s", StyleSecondary.Sprint(info.RunID))

	infoPanel.Println(content)

	pterm.Println()
	pterm.Println(pterm.LightBlue(SeparatorHeavy))
	pterm.Println()
}

// StartStage prints the stage title and, for chunked stages, starts a progress bar.
func (p *PTermPresenter) StartStage(stage StageInfo) {
	p.mu.Lock()
	defer p.mu.Unlock()

	title := fmt.Sprintf("%s Stage %d/%d: %s", IconStage, stage.Number, stage.TotalStages, pterm.Cyan(stage.Name))
	pterm.DefaultSection.WithLevel(2).Println(title)

	if stage.Chunks > 0 {
		bar, err := pterm.DefaultProgressbar.
			WithTotal(stage.Chunks).
			WithTitle(fmt.Sprintf("  %s chunks", stage.Name)).
			WithRemoveWhenDone(true).
			Start()
		if err == nil {
			p.bars[stage.Name] = bar
			p.done[stage.Name] = 0
		}
	}
}

// ChunkDone advances the stage's progress bar to done.
func (p *PTermPresenter) ChunkDone(stage string, done, total int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	bar, ok := p.bars[stage]
	if !ok {
		return
	}
	if delta := done - p.done[stage]; delta > 0 {
		bar.Add(delta)
		p.done[stage] = done
	}
}

// FinishStage stops the stage's progress bar and prints a completion line.
func (p *PTermPresenter) FinishStage(name string, duration time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if bar, ok := p.bars[name]; ok {
		_, _ = bar.Stop()
		delete(p.bars, name)
		delete(p.done, name)
	}

	StatusSuccess.Style().Printf("  %s %s (%s)\n", StatusSuccess.Symbol(), name, formatDuration(duration))
	pterm.Println(pterm.Gray(SeparatorLight))
	pterm.Println()
}

// Info prints an informational message.
func (p *PTermPresenter) Info(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pterm.Info.Println(msg)
}

// Warning prints a warning.
func (p *PTermPresenter) Warning(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pterm.Warning.Println(msg)
}

// Error prints an error.
func (p *PTermPresenter) Error(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pterm.Error.Println(msg)
}

// Finish prints the statistics box and the encoded-columns table.
func (p *PTermPresenter) Finish(stats RunStats) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopBars()

	pterm.Println()
	pterm.Println(pterm.LightBlue(SeparatorHeavy))
	pterm.Println()

	pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgGreen)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Println("Run Completed")

	pterm.Println()

	statsPanel := pterm.DefaultBox.
		WithTitle("Run Statistics").
		WithTitleTopCenter().
		WithRightPadding(4).
		WithLeftPadding(4).
		WithBoxStyle(pterm.NewStyle(pterm.FgGreen))

	content := fmt.Sprintf("%s Total Duration: %s\n", IconTime, pterm.Green(formatDuration(stats.TotalDuration)))
	content += fmt.Sprintf("%s Rows In: %s\n", IconRows, pterm.Cyan(fmt.Sprintf("%d", stats.RowsIn)))
	content += fmt.Sprintf("   Rows Out: %s\n", pterm.Green(fmt.Sprintf("%d", stats.RowsOut)))
	if stats.RowsDropped > 0 {
		content += fmt.Sprintf("%s Rows Dropped: %s\n", IconWarning, pterm.Yellow(fmt.Sprintf("%d", stats.RowsDropped)))
	}
	if failures := stats.LexicalFailures + stats.DescriptiveFailures; failures > 0 {
		content += fmt.Sprintf("%s Extraction Failures: %s\n", IconError,
			pterm.Red(fmt.Sprintf("%d lexical, %d descriptive", stats.LexicalFailures, stats.DescriptiveFailures)))
	}
	content += fmt.Sprintf("   Columns: %d\n", stats.Columns)
	content += fmt.Sprintf("   Distinct Domains: %s", pterm.Magenta(fmt.Sprintf("%d", stats.DistinctDomains)))
	if stats.ManifestPath != "" {
		content += fmt.Sprintf("\n%s Manifest: %s", IconArtifacts, stats.ManifestPath)
	}

	statsPanel.Println(content)

	if len(stats.EncodedColumns) > 0 {
		pterm.Println()
		pterm.DefaultSection.WithLevel(2).Println("Encoded Columns")

		names := make([]string, 0, len(stats.EncodedColumns))
		for name := range stats.EncodedColumns {
			names = append(names, name)
		}
		sort.Strings(names)

		tableData := pterm.TableData{{"Column", "Classes"}}
		for _, name := range names {
			tableData = append(tableData, []string{name, fmt.Sprintf("%d", stats.EncodedColumns[name])})
		}

		_ = pterm.DefaultTable.
			WithHasHeader().
			WithBoxed().
			WithData(tableData).
			Render()
	}

	pterm.Println()
}

// Close stops any progress bar left running.
func (p *PTermPresenter) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopBars()
	return nil
}

func (p *PTermPresenter) stopBars() {
	for name, bar := range p.bars {
		_, _ = bar.Stop()
		delete(p.bars, name)
	}
	p.done = make(map[string]int)
}
