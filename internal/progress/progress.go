package progress

import (
	"io"
	"sync"

	"github.com/pterm/pterm"
)

// Tracker is a single pterm progress bar that is safe to advance from
// several goroutines.
type Tracker struct {
	mu   sync.Mutex
	bar  *pterm.ProgressbarPrinter
	done int
}

// New starts a bar for total steps written to w. A zero total yields a
// tracker that only counts.
func New(title string, total int, w io.Writer) (*Tracker, error) {
	t := &Tracker{}
	if total <= 0 {
		return t, nil
	}

	bar, err := pterm.DefaultProgressbar.
		WithTotal(total).
		WithTitle(title).
		WithWriter(w).
		WithMaxWidth(100).
		Start()
	if err != nil {
		return nil, err
	}
	t.bar = bar
	return t, nil
}

// Step advances the bar by one and shows name as its title.
func (t *Tracker) Step(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.done++
	if t.bar != nil {
		t.bar.UpdateTitle(name)
		t.bar.Increment()
	}
}

func (t *Tracker) Done() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.done
}

func (t *Tracker) Stop() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.bar == nil {
		return nil
	}
	_, err := t.bar.Stop()
	return err
}
