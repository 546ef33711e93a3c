// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Ranking program for ordered entries
//
// This program reads a list of keyed entries from a Lua configuration
// file into a balanced tree and answers rank queries: lowest and
// highest entry, entries by rank position, key lookup and removal.
// With --watch it rebuilds the tree whenever the file changes.
package main
