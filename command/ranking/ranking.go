// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/orderedmap/avl"
	"github.com/bitmark-inc/orderedmap/fault"
)

const (
	rankingLoggerPrefix = "ranking"
)

// rankKey - integer ordering key for the tree
type rankKey int

// Compare - key comparison for AVL interface
func (k rankKey) Compare(x interface{}) int {
	j := x.(rankKey)
	switch {
	case k < j:
		return -1
	case k > j:
		return +1
	default:
		return 0
	}
}

// Ranking - the tree of entries built from one configuration
type Ranking struct {
	log      *logger.L
	title    string
	tree     *avl.Tree
	accepted int
	rejected int
}

// build a new ranking, entries with a key already present are
// reported and skipped
func newRanking(title string, entries []Entry, log *logger.L) *Ranking {
	r := &Ranking{
		log:   log,
		title: title,
		tree:  avl.New(),
	}

	for i := range entries {
		e := entries[i]
		err := r.tree.Insert(rankKey(e.Key), &e)
		if fault.IsErrExists(err) {
			existing, _ := r.tree.Search(rankKey(e.Key))
			r.log.Warnf("entry: %q key: %d duplicates: %q, skipped", e.Name, e.Key, existing.(*Entry).Name)
			r.rejected += 1
			continue
		}
		if nil != err {
			// only duplicates can fail an insert
			r.log.Criticalf("entry: %q key: %d insert error: %s", e.Name, e.Key, err)
			r.rejected += 1
			continue
		}
		r.accepted += 1
	}

	r.log.Infof("%s: accepted: %d  rejected: %d  height: %d", title, r.accepted, r.rejected, r.tree.Root().Height())
	return r
}

// run a single command writing its result to w
func (r *Ranking) run(w io.Writer, arguments []string, verbose bool) error {
	if 0 == len(arguments) {
		return fault.ErrMissingCommand
	}

	command := arguments[0]
	arguments = arguments[1:]

	r.log.Debugf("command: %s  arguments: %v", command, arguments)

	switch command {
	case "list", "ls":
		fmt.Fprintf(w, "%s (%d entries)\n", r.title, r.tree.Count())
		it := r.tree.Iterator()
		rank := 0
		for p := it.Next(); nil != p; p = it.Next() {
			writeEntry(w, rank, p.Value().(*Entry))
			rank += 1
		}

	case "min", "minimum", "lowest":
		p, err := r.tree.Minimum()
		if nil != err {
			return err
		}
		writeEntry(w, 0, p.Value().(*Entry))

	case "max", "maximum", "highest":
		p, err := r.tree.Maximum()
		if nil != err {
			return err
		}
		writeEntry(w, r.tree.Count()-1, p.Value().(*Entry))

	case "range":
		if 2 != len(arguments) {
			return fault.ErrInvalidRange
		}
		i, err := strconv.Atoi(arguments[0])
		if nil != err {
			return fault.ErrInvalidRange
		}
		j, err := strconv.Atoi(arguments[1])
		if nil != err {
			return fault.ErrInvalidRange
		}
		values := r.tree.RangeBetween(i, j)
		if 0 == len(values) {
			r.log.Infof("range: [%d, %d] outside: [0, %d)", i, j, r.tree.Count())
		}
		for n, v := range values {
			writeEntry(w, i+n, v.(*Entry))
		}

	case "search", "find":
		for _, a := range arguments {
			k, err := strconv.Atoi(a)
			if nil != err {
				return fault.ErrInvalidKey
			}
			v, err := r.tree.Search(rankKey(k))
			if nil != err {
				fmt.Fprintf(w, "key: %d  error: %s\n", k, err)
				continue
			}
			e := v.(*Entry)
			fmt.Fprintf(w, "key: %d  name: %s  detail: %s\n", e.Key, e.Name, e.Detail)
		}

	case "remove", "delete", "rm":
		for _, a := range arguments {
			k, err := strconv.Atoi(a)
			if nil != err {
				return fault.ErrInvalidKey
			}
			v, err := r.tree.Delete(rankKey(k))
			if nil != err {
				r.log.Warnf("remove key: %d  error: %s", k, err)
				fmt.Fprintf(w, "key: %d  error: %s\n", k, err)
				continue
			}
			r.accepted -= 1
			fmt.Fprintf(w, "removed: %d  name: %s\n", k, v.(*Entry).Name)
		}
		return r.run(w, []string{"list"}, verbose)

	case "print", "tree":
		h := r.tree.Print(w, verbose)
		fmt.Fprintf(w, "height: %d\n", h)

	case "check":
		if err := r.tree.Check(); nil != err {
			return err
		}
		fmt.Fprintf(w, "consistent: %d entries  height: %d\n", r.tree.Count(), r.tree.Root().Height())

	default:
		return fault.ErrUnknownCommand
	}
	return nil
}

func writeEntry(w io.Writer, rank int, e *Entry) {
	fmt.Fprintf(w, "%4d: %8d  %s\n", rank, e.Key, e.Name)
}
