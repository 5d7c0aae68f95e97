// File: watch.go
// Title: Configuration File Watching
// Description: Hot reload of the backing file through fsnotify. The parent
//              directory is watched so editors that replace the file on save
//              are picked up as well.
// Author: ersinkoc
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: fsnotify events replace the one-second polling loop

package config

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	tkerror "github.com/ersinkoc/TimeKit/foundation/core/error"
	tklog "github.com/ersinkoc/TimeKit/foundation/core/log"
)

// Watch reloads the settings whenever the backing file changes, until ctx
// is cancelled. Reload failures are logged and the previous settings stay
// in effect.
func (s *Store) Watch(ctx context.Context) error {
	filePath := s.FilePath()
	if filePath == "" {
		return tkerror.New("file path required for watching").
			WithCode(tkerror.CodeConfigWatch).
			WithOperation("config.Store.Watch")
	}
	target, err := filepath.Abs(filePath)
	if err != nil {
		return tkerror.Wrap(err, "cannot resolve config path").
			WithCode(tkerror.CodeConfigWatch).
			WithOperation("config.Store.Watch").
			WithDetail("filePath", filePath)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return tkerror.Wrap(err, "cannot create file watcher").
			WithCode(tkerror.CodeConfigWatch).
			WithOperation("config.Store.Watch")
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return tkerror.Wrap(err, "cannot watch config directory").
			WithCode(tkerror.CodeConfigWatch).
			WithOperation("config.Store.Watch").
			WithDetail("directory", filepath.Dir(target))
	}

	s.mu.RLock()
	logger := s.logger
	s.mu.RUnlock()
	logger.Debug("watching config file", tklog.String("path", target))

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				continue
			}
			if err := s.Reload(); err != nil {
				logger.WarnWithErr("config reload failed, keeping previous settings", err, tklog.String("path", target))
				continue
			}
			logger.Info("config reloaded", tklog.String("path", target))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.WarnWithErr("config watcher error", err)
		}
	}
}
