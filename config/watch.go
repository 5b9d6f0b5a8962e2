package config

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// Watch reloads the configuration whenever the file at path is written
// to and delivers each valid new version on the returned channel. The
// frame loop owns the game state, so it consumes the channel itself
// instead of the watcher mutating anything.
//
// The returned stop function releases the watcher and closes the
// channel.
func Watch(path string) (<-chan *Config, func() error, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, fmt.Errorf("init config watcher: %v", err)
	}

	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, nil, fmt.Errorf("watch %q: %v", path, err)
	}

	updates := make(chan *Config, 1)
	go func() {
		defer close(updates)
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&fsnotify.Write != fsnotify.Write &&
					event.Op&fsnotify.Create != fsnotify.Create {
					continue
				}

				cfg, err := Load(path)
				if err != nil {
					log.Err(err).Str("path", path).Msg("Reload config")
					continue
				}

				// Drop a pending update the loop did not get to yet.
				select {
				case <-updates:
				default:
				}
				updates <- cfg
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Err(err).Msg("Config watcher")
			}
		}
	}()

	return updates, watcher.Close, nil
}
