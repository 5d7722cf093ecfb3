package toml

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultWatchDebounce = 200 * time.Millisecond

// ManifestWatcher calls onChange after another commit lands in the manifest.
// It watches the parent directory because commits land through a rename,
// which drops watches placed on the file itself. Writes that leave the
// generation unchanged are ignored.
type ManifestWatcher struct {
	repo     *ManifestRepository
	path     string
	onChange func(context.Context) error
	debounce time.Duration
	logger   *slog.Logger

	seen int64
}

func NewManifestWatcher(repo *ManifestRepository, onChange func(context.Context) error, logger *slog.Logger) *ManifestWatcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &ManifestWatcher{
		repo:     repo,
		path:     filepath.Clean(repo.Path()),
		onChange: onChange,
		debounce: defaultWatchDebounce,
		logger:   logger,
	}
}

// Run blocks until ctx is cancelled.
func (w *ManifestWatcher) Run(ctx context.Context) error {
	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, manifestDirMode); err != nil {
		return fmt.Errorf("create manifest directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create manifest watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch manifest directory: %w", err)
	}

	seen, err := w.repo.Generation(ctx)
	if err != nil {
		return fmt.Errorf("read manifest generation: %w", err)
	}
	w.seen = seen

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.logger.Debug("manifest event", "op", event.Op.String())
			timer.Reset(w.debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("manifest watcher", "error", err)
		case <-timer.C:
			w.reload(ctx)
		}
	}
}

func (w *ManifestWatcher) reload(ctx context.Context) {
	generation, err := w.repo.Generation(ctx)
	if err != nil {
		w.logger.Error("read manifest generation", "error", err)
		return
	}
	if generation == w.seen {
		w.logger.Debug("manifest unchanged", "generation", generation)
		return
	}
	w.seen = generation

	if err := w.onChange(ctx); err != nil {
		w.logger.Error("reload feature manifest", "error", err, "generation", generation)
		return
	}
	w.logger.Info("feature manifest reloaded", "generation", generation)
}
