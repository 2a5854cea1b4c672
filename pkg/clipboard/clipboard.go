package clipboard

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
)

// Read returns the current clipboard contents.
func Read() (string, error) {
	return clipboard.ReadAll()
}

// Write replaces the clipboard contents.
func Write(text string) error {
	return clipboard.WriteAll(text)
}

// Available reports whether a clipboard backend exists on this system.
func Available() bool {
	return !clipboard.Unsupported
}

// Watcher polls the clipboard and reports distinct changes in order.
type Watcher struct {
	interval time.Duration
	read     func() (string, error)
}

func NewWatcher(interval time.Duration) *Watcher {
	return &Watcher{interval: interval, read: Read}
}

// Watch emits every new clipboard value until ctx is done. The value
// already present when watching starts is not emitted.
func (w *Watcher) Watch(ctx context.Context) <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		last, _ := w.read()
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				current, err := w.read()
				if err != nil || current == last {
					continue
				}
				last = current
				select {
				case ch <- current:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return ch
}
