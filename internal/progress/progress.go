// Package progress renders the drafting pause in the terminal.
package progress

import (
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Drafting blocks for the given pause while showing a progress bar. In
// CI environments it prints a single line and sleeps instead. The pause
// is cosmetic and not cancellable.
func Drafting(pause time.Duration) {
	if pause <= 0 {
		return
	}

	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		fmt.Fprintln(os.Stderr, "Drafting SOP...")
		time.Sleep(pause)
		return
	}

	const ticks = 50
	bar := progressbar.NewOptions(ticks,
		progressbar.OptionSetDescription("Drafting SOP"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionClearOnFinish(),
	)
	step := pause / ticks
	for i := 0; i < ticks; i++ {
		time.Sleep(step)
		_ = bar.Add(1)
	}
	_ = bar.Finish()
}
