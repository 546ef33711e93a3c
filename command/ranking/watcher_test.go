// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/orderedmap/fault"
)

func TestWatcherEvents(t *testing.T) {
	dir, fileName := writeConfiguration(t, testConfiguration)
	defer os.RemoveAll(dir)

	channels := WatcherChannel{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
	w, err := newFileWatcher(fileName, logger.New("test"), channels)
	if nil != err {
		t.Fatalf("new watcher error: %s", err)
	}
	defer w.Stop()

	if err := w.Start(); nil != err {
		t.Fatalf("start error: %s", err)
	}

	if err := ioutil.WriteFile(fileName, []byte(testConfiguration+"\n-- edited\n"), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	select {
	case <-channels.change:
	case <-time.After(5 * time.Second):
		t.Fatal("no change event")
	}

	if err := os.Remove(fileName); nil != err {
		t.Fatalf("remove error: %s", err)
	}
	select {
	case <-channels.remove:
	case <-time.After(5 * time.Second):
		t.Fatal("no remove event")
	}
}

// saving by moving the old file aside then writing a new one is a
// change, the watch must continue
func TestWatcherRenameThenWrite(t *testing.T) {
	dir, fileName := writeConfiguration(t, testConfiguration)
	defer os.RemoveAll(dir)

	channels := WatcherChannel{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
	w, err := newFileWatcher(fileName, logger.New("test"), channels)
	if nil != err {
		t.Fatalf("new watcher error: %s", err)
	}
	defer w.Stop()

	if err := w.Start(); nil != err {
		t.Fatalf("start error: %s", err)
	}

	if err := os.Rename(fileName, fileName+"~"); nil != err {
		t.Fatalf("rename error: %s", err)
	}
	if err := ioutil.WriteFile(fileName, []byte(testConfiguration+"\n-- saved\n"), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}

	select {
	case <-channels.change:
	case <-channels.remove:
		t.Fatal("rename reported as remove")
	case <-time.After(5 * time.Second):
		t.Fatal("no change event")
	}

	// let any remaining events of the save drain
	select {
	case <-channels.remove:
		t.Fatal("rename reported as remove")
	case <-time.After(200 * time.Millisecond):
	}

	// the watch is still running
	if err := os.Remove(fileName); nil != err {
		t.Fatalf("remove error: %s", err)
	}
	select {
	case <-channels.remove:
	case <-time.After(5 * time.Second):
		t.Fatal("no remove event")
	}
}

func TestWatcherMissingFile(t *testing.T) {
	_, err := newFileWatcher("/no/such/ranking.conf", logger.New("test"), WatcherChannel{})
	assert.Equal(t, fault.ErrNotFoundConfigFile, err)
}

func TestWatcherEventClasses(t *testing.T) {
	assert.True(t, watcherEventFileChange(fsnotify.Event{Name: "x", Op: fsnotify.Write}))
	assert.True(t, watcherEventFileChange(fsnotify.Event{Name: "x", Op: fsnotify.Create}))
	assert.False(t, watcherEventFileChange(fsnotify.Event{Name: "x", Op: fsnotify.Chmod}))
	assert.True(t, watcherEventFileRemove(fsnotify.Event{Name: "x", Op: fsnotify.Remove}))
	assert.False(t, watcherEventFileRemove(fsnotify.Event{Name: "x", Op: fsnotify.Rename}))
	assert.False(t, watcherEventFileRemove(fsnotify.Event{Name: "x", Op: fsnotify.Write}))
	assert.True(t, watcherEventFileRename(fsnotify.Event{Name: "x", Op: fsnotify.Rename}))
	assert.False(t, watcherEventFileRename(fsnotify.Event{Name: "x", Op: fsnotify.Remove}))
}
