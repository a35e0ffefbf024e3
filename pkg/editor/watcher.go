package editor

import (
	"context"
	"log/slog"

	"github.com/fsnotify/fsnotify"
)

// watchSaves logs writes to the scratch file while the editor is running.
// Edit sessions can stay open for a long time; the debug trail confirms the
// buffer is actually being saved. Returns a stop function; any watcher
// setup failure just disables the trail.
func (s *Surface) watchSaves(path string) func() {
	if s.logger == nil || !s.logger.Enabled(context.Background(), slog.LevelDebug) {
		return func() {}
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		s.logger.Debug("save watcher unavailable", "error", err)
		return func() {}
	}
	if err := w.Add(path); err != nil {
		s.logger.Debug("save watcher unavailable", "error", err)
		_ = w.Close()
		return func() {}
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if event.Has(fsnotify.Write) {
					s.logger.Debug("scratch buffer saved", "path", event.Name)
				}
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return func() {
		_ = w.Close()
		<-done
	}
}
