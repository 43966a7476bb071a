// Package progress wraps schollz/progressbar for CLI feedback during a
// scan, adapted from panbanda-omen's internal/progress package.
package progress

import (
	"os"

	"github.com/schollz/progressbar/v3"
)

// Spinner is an indeterminate progress indicator for a scan (the engine
// exposes no per-file tick from fileproc, so nothing is available to drive
// a determinate bar).
type Spinner struct {
	bar *progressbar.ProgressBar
}

// NewSpinner creates a spinner labeled with the scan root.
func NewSpinner(label string) *Spinner {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(20),
		progressbar.OptionSetDescription(label),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
	return &Spinner{bar: bar}
}

// Tick advances the spinner one animation frame. Safe for concurrent use.
func (s *Spinner) Tick() {
	s.bar.Add(1)
}

// Finish clears the spinner.
func (s *Spinner) Finish() {
	s.bar.Finish()
	s.bar.Clear()
}
