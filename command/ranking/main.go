// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/orderedmap/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "watch", HasArg: getoptions.NO_ARGUMENT, Short: 'w'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || 0 == len(arguments) {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--watch] --config-file=FILE command [arguments...]\n"+
			"  list                - all entries in ascending key order\n"+
			"  min | max           - lowest or highest entry\n"+
			"  range FIRST LAST    - entries at rank positions FIRST..LAST\n"+
			"  search KEY...       - entries for keys\n"+
			"  remove KEY...       - remove entries then list the remainder\n"+
			"  print               - picture of the tree\n"+
			"  check               - verify the tree invariants", program)
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	verbose := len(options["verbose"]) > 0
	watch := len(options["watch"]) > 0

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	if err := os.MkdirAll(theConfiguration.Logging.Directory, 0700); nil != err {
		exitwithstatus.Message("%s: log directory: %q  error: %s", program, theConfiguration.Logging.Directory, err)
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	rankingLog := logger.New(rankingLoggerPrefix)

	ranking := newRanking(theConfiguration.Title, theConfiguration.Entries, rankingLog)
	err = runCommand(ranking, os.Stdout, os.Stderr, arguments, verbose)
	if !watch {
		if nil != err {
			exitwithstatus.Message("%s: %s error: %s", program, arguments[0], err)
		}
		return
	}

	channels := WatcherChannel{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
	watcher, err := newFileWatcher(configurationFile, logger.New(watcherLoggerPrefix), channels)
	if nil != err {
		exitwithstatus.Message("%s: file watcher setup failed with error: %s", program, err)
	}
	defer watcher.Stop()

	if err := watcher.Start(); nil != err {
		exitwithstatus.Message("%s: file watcher start failed with error: %s", program, err)
	}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	log.Infof("watching: %q", configurationFile)

	w := &watchLoop{
		log:               log,
		rankingLog:        rankingLog,
		configurationFile: configurationFile,
		arguments:         arguments,
		verbose:           verbose,
		stdout:            os.Stdout,
		stderr:            os.Stderr,
	}
	w.run(channels, ch)
}

// watchLoop - rebuild the ranking and rerun the command on every
// change of the configuration file
type watchLoop struct {
	log               *logger.L
	rankingLog        *logger.L
	configurationFile string
	arguments         []string
	verbose           bool
	stdout            io.Writer
	stderr            io.Writer
}

// run until the configuration is removed or a signal arrives
// returns the number of successful reloads
func (w *watchLoop) run(channels WatcherChannel, signals <-chan os.Signal) int {
	reloads := 0
loop:
	for {
		select {
		case <-channels.change:
			c, err := getConfiguration(w.configurationFile)
			if nil != err {
				w.log.Errorf("reload: %q  error: %s", w.configurationFile, err)
				fmt.Fprintf(w.stderr, "reload error: %s\n", err)
				continue loop
			}
			reloads += 1
			ranking := newRanking(c.Title, c.Entries, w.rankingLog)
			_ = runCommand(ranking, w.stdout, w.stderr, w.arguments, w.verbose)

		case <-channels.remove:
			w.log.Warn("configuration removed")
			break loop

		case sig := <-signals:
			w.log.Infof("received signal: %v", sig)
			break loop
		}
	}
	return reloads
}

// run the command against the current ranking, reporting any error
func runCommand(ranking *Ranking, stdout io.Writer, stderr io.Writer, arguments []string, verbose bool) error {
	err := ranking.run(stdout, arguments, verbose)
	switch {
	case nil == err:
	case fault.IsErrInvalid(err) && "check" == arguments[0]:
		fault.Criticalf("ranking: %q inconsistent: %s", ranking.title, err)
		fmt.Fprintf(stderr, "inconsistent: %s\n", err)
	default:
		ranking.log.Errorf("command: %v  error: %s", arguments, err)
		fmt.Fprintf(stderr, "error: %s\n", err)
	}
	return err
}
