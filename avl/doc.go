// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL height balanced tree used as an ordered map
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node keeps the height of its sub-tree and insert/delete
// recompute the height and rebalance on every level on the way back
// to the root.  There are no parent pointers, the recursive routines
// return the (possibly rotated) sub-tree root to the caller.
//
// Keys are unique, inserting an existing key fails with
// fault.ErrDuplicateKey rather than overwriting.  Deleting a node
// with two children copies its in-order successor into it, so a
// *Node obtained before a mutation may afterwards hold a different
// key or be recycled.  Released nodes go to a pool shared by all
// trees, so a stale *Node may even show a key of another tree; the
// pool holds at most a fixed number of nodes and the rest are
// returned to the garbage collector.
package avl
