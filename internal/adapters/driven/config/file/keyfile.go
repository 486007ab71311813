package file

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/GareevaAlice/yt-playlists-app/internal/logger"
)

// KeyFile serves the current contents of an API key file. The file is
// watched with fsnotify so a rotated key is picked up without restarting
// the process.
type KeyFile struct {
	path string

	mu    sync.RWMutex
	value string

	watcher *fsnotify.Watcher
	done    chan struct{}
}

// OpenKeyFile reads the key file and starts watching it for changes.
func OpenKeyFile(path string) (*KeyFile, error) {
	k := &KeyFile{path: path, done: make(chan struct{})}
	if err := k.reload(); err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("keyfile: create watcher: %w", err)
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("keyfile: watch %s: %w", path, err)
	}
	k.watcher = watcher

	go k.watch()
	return k, nil
}

// Value returns the current key, trimmed of surrounding whitespace.
func (k *KeyFile) Value() string {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.value
}

// Close stops watching the file.
func (k *KeyFile) Close() error {
	close(k.done)
	return k.watcher.Close()
}

func (k *KeyFile) reload() error {
	data, err := os.ReadFile(k.path)
	if err != nil {
		return fmt.Errorf("keyfile: read %s: %w", k.path, err)
	}

	k.mu.Lock()
	k.value = strings.TrimSpace(string(data))
	k.mu.Unlock()
	return nil
}

func (k *KeyFile) watch() {
	for {
		select {
		case <-k.done:
			return
		case event, ok := <-k.watcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				if err := k.reload(); err != nil {
					logger.Warn("Key file reload failed: %v", err)
				} else {
					logger.Info("Key file %s reloaded", k.path)
				}
			}
		case err, ok := <-k.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("Key file watcher error: %v", err)
		}
	}
}
