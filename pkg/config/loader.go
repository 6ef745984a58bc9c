package config

import (
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/tracestep/tracestep/pkg/logging"
)

// Loader reads a YAML config file and watches it for changes.
type Loader struct {
	path     string
	mu       sync.RWMutex
	current  *Server
	onChange []func(*Server)
	logger   logging.Logger
}

// NewLoader creates a Loader and performs the initial load.
func NewLoader(path string, logger logging.Logger) (*Loader, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Loader{path: path, current: cfg, logger: logger}, nil
}

// Config returns the current (latest) configuration.
func (l *Loader) Config() *Server {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current
}

// OnChange registers a callback invoked whenever the config reloads.
func (l *Loader) OnChange(fn func(*Server)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onChange = append(l.onChange, fn)
}

// Reload re-reads the config file and notifies callbacks. On error the
// previous config stays in effect.
func (l *Loader) Reload() error {
	cfg, err := Load(l.path)
	if err != nil {
		return fmt.Errorf("reload %s: %w", l.path, err)
	}
	l.mu.Lock()
	l.current = cfg
	callbacks := make([]func(*Server), len(l.onChange))
	copy(callbacks, l.onChange)
	l.mu.Unlock()
	for _, fn := range callbacks {
		fn(cfg)
	}
	return nil
}

// Watch starts a background goroutine that hot-reloads the config on file
// changes. Call the returned stop function to clean up. A file that fails
// to load keeps the previous config in effect.
func (l *Loader) Watch() (stop func(), err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config watcher: %w", err)
	}
	if err := w.Add(l.path); err != nil {
		w.Close()
		return nil, fmt.Errorf("config watcher add %s: %w", l.path, err)
	}

	done := make(chan struct{})
	go func() {
		defer w.Close()
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
					if err := l.Reload(); err != nil {
						l.logger.Warn("config reload failed, keeping previous",
							logging.Path(l.path), logging.Error(err))
						continue
					}
					l.logger.Info("config reloaded", logging.Path(l.path))
				}
			case <-w.Errors:
				// Watcher errors are not actionable here.
			case <-done:
				return
			}
		}
	}()

	return func() { close(done) }, nil
}
