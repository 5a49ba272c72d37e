package watch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

const DefaultDebounce = 250 * time.Millisecond

// File calls onChange every time path is written, created or renamed into
// place, until ctx is cancelled. Bursts of events inside debounce collapse
// into one call, and calls never overlap. File does not return while a call
// is still running.
func File(ctx context.Context, path string, debounce time.Duration, logger zerolog.Logger, onChange func()) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	path = filepath.Clean(path)
	dir := filepath.Dir(path)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// editors often replace the file, so watch the directory
	if err := w.Add(dir); err != nil {
		return err
	}

	var (
		timerMu  sync.Mutex
		timer    *time.Timer
		runMu    sync.Mutex
		inflight sync.WaitGroup
	)
	// a pending timer holds one inflight slot until it fires or is stopped
	trigger := func() {
		timerMu.Lock()
		defer timerMu.Unlock()
		if timer != nil && timer.Stop() {
			inflight.Done()
		}
		inflight.Add(1)
		timer = time.AfterFunc(debounce, func() {
			defer inflight.Done()
			if ctx.Err() != nil {
				return
			}
			runMu.Lock()
			defer runMu.Unlock()
			onChange()
		})
	}
	defer func() {
		timerMu.Lock()
		if timer != nil && timer.Stop() {
			inflight.Done()
		}
		timerMu.Unlock()
		inflight.Wait()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				logger.Debug().Str("file", ev.Name).Str("op", ev.Op.String()).Msg("workload changed")
				trigger()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Msg("watch error")
		}
	}
}
