package source

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DatasetWatcher watches a CSV dataset file and re-loads it when it changes on
// disk, so a refreshed export shows up without restarting the dashboard.
// Events are debounced because editors and download tools write in bursts.
type DatasetWatcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	csv      *CSVFile
	onReload func(*Result)
	logger   *zap.Logger

	debounce time.Duration
	lastSeen time.Time
	running  bool
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewDatasetWatcher creates a watcher for the CSV source. onReload runs on the
// watcher goroutine with each successfully re-loaded dataset.
func NewDatasetWatcher(csv *CSVFile, onReload func(*Result), logger *zap.Logger) (*DatasetWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DatasetWatcher{
		watcher:  w,
		csv:      csv,
		onReload: onReload,
		logger:   logger,
		debounce: 500 * time.Millisecond,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start begins watching the dataset's directory. Non-blocking; events are
// handled on a goroutine until Stop or context cancellation.
func (dw *DatasetWatcher) Start(ctx context.Context) error {
	dw.mu.Lock()
	if dw.running {
		dw.mu.Unlock()
		return nil
	}
	dw.running = true
	dw.mu.Unlock()

	// Watch the directory, not the file: most writers replace the file and
	// a direct file watch dies with the old inode.
	dir := filepath.Dir(dw.csv.Path)
	if err := dw.watcher.Add(dir); err != nil {
		return err
	}
	dw.logger.Info("watching dataset", zap.String("path", dw.csv.Path))

	go dw.run(ctx)
	return nil
}

// Stop shuts the watcher down and waits for the event loop to exit.
func (dw *DatasetWatcher) Stop() {
	dw.mu.Lock()
	if !dw.running {
		dw.mu.Unlock()
		return
	}
	dw.running = false
	dw.mu.Unlock()

	close(dw.stopCh)
	<-dw.doneCh
	dw.watcher.Close()
}

func (dw *DatasetWatcher) run(ctx context.Context) {
	defer close(dw.doneCh)

	target := filepath.Clean(dw.csv.Path)
	for {
		select {
		case <-ctx.Done():
			return
		case <-dw.stopCh:
			return
		case event, ok := <-dw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			now := time.Now()
			if now.Sub(dw.lastSeen) < dw.debounce {
				continue
			}
			dw.lastSeen = now
			dw.reload(ctx)
		case err, ok := <-dw.watcher.Errors:
			if !ok {
				return
			}
			dw.logger.Warn("dataset watcher error", zap.Error(err))
		}
	}
}

func (dw *DatasetWatcher) reload(ctx context.Context) {
	res, err := dw.csv.Load(ctx)
	if err != nil {
		// A half-written file fails to parse; the next write event retries.
		dw.logger.Warn("dataset reload failed", zap.Error(err))
		return
	}
	dw.logger.Info("dataset reloaded", zap.Int("records", len(res.Records)))
	if dw.onReload != nil {
		dw.onReload(res)
	}
}
