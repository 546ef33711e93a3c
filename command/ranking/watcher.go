// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/orderedmap/fault"
)

const (
	watcherLoggerPrefix = "watcher"
)

// WatcherChannel - events delivered to the main loop
type WatcherChannel struct {
	change chan struct{}
	remove chan struct{}
}

// FileWatcher - watches the configuration file for changes
type FileWatcher struct {
	log      *logger.L
	channels WatcherChannel
	watcher  *fsnotify.Watcher
	filePath string
}

func newFileWatcher(targetFile string, log *logger.L, channels WatcherChannel) (*FileWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		return nil, err
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fault.ErrNotFoundConfigFile
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	return &FileWatcher{
		log:      log,
		channels: channels,
		watcher:  watcher,
		filePath: filePath,
	}, nil
}

// Start - begin delivering events, editors that replace the file
// are handled by watching the directory and filtering on the name
func (w *FileWatcher) Start() error {
	err := w.watcher.Add(filepath.Dir(w.filePath))
	if nil != err {
		w.log.Errorf("watcher add error: %s, abort", err)
		return err
	}

	go w.loop()
	return nil
}

// Stop - release the underlying watcher
func (w *FileWatcher) Stop() {
	w.watcher.Close()
}

func (w *FileWatcher) loop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.filePath {
				continue
			}
			w.log.Debugf("file event: %v", event)

			switch {
			case watcherEventFileChange(event):
				w.sendEvent(w.channels.change, "change")

			case watcherEventFileRemove(event), watcherEventFileRename(event):
				// editors save by moving the original aside and
				// writing a new file; a later create reports it
				if w.fileExists() {
					w.sendEvent(w.channels.change, "change")
					continue
				}
				if watcherEventFileRename(event) {
					w.log.Debugf("file: %s renamed, wait for replacement", w.filePath)
					continue
				}
				w.log.Warnf("file: %s removed", w.filePath)
				w.sendEvent(w.channels.remove, "remove")
				return
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Errorf("watcher error: %s", err)
		}
	}
}

// never block the watcher: a pending event already covers this one
func (w *FileWatcher) sendEvent(ch chan<- struct{}, name string) {
	select {
	case ch <- struct{}{}:
	default:
		w.log.Debugf("event channel: %s full, discard event", name)
	}
}

func (w *FileWatcher) fileExists() bool {
	_, err := os.Stat(w.filePath)
	return nil == err
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove
}

func watcherEventFileRename(event fsnotify.Event) bool {
	return event.Op&fsnotify.Rename == fsnotify.Rename
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create
}
