package config

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
)

// Watcher reloads a config file whenever it is written or created. Editors
// often replace the file rather than write it, so the parent directory is
// watched.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// Watch calls onChange from a background goroutine with the freshly loaded
// config, or the error from loading it.
func Watch(path string, onChange func(*Config, error)) (*Watcher, error) {
	expandedPath, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	expandedPath, err = filepath.Abs(expandedPath)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(expandedPath)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("unable to watch %s: %w", dir, err)
	}

	w := &Watcher{
		path:    expandedPath,
		watcher: watcher,
		done:    make(chan struct{}),
	}

	go func() {
		defer close(w.done)
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !w.relevant(event) {
					continue
				}
				log.Printf("config %s changed (%s), reloading", w.path, event.Op)
				onChange(Load(w.path))
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("config watcher error: %v", err)
			}
		}
	}()

	return w, nil
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

// Close stops watching and waits for the event loop to exit
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}
