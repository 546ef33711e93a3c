// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"sync"
)

// Item - a key item must implement the Compare function
type Item interface {
	Compare(interface{}) int // -1, 0, +1 for left/right ordering of items
}

// Node - a node in the tree
type Node struct {
	left   *Node       // left sub-tree
	right  *Node       // right sub-tree
	key    Item        // key part for ordering
	value  interface{} // value part for data storage
	height int         // leaf = 1, empty sub-tree = 0
}

// reclaimed nodes beyond this are left to the garbage collector
const maxFreeNodes = 1024

// global data for allocator
var m sync.Mutex   // the pool is shared by all trees
var pool *Node     // linked list of reclaimed nodes
var totalNodes int // total nodes created
var freeNodes int  // number of nodes in the pool

// allocate a new leaf node, reuses reclaimed nodes if any are available
func newNode(key Item, value interface{}) *Node {
	m.Lock()
	if nil == pool {
		if 0 != freeNodes {
			m.Unlock()
			panic("pool corrupt")
		}
		totalNodes += 1
		m.Unlock()
		return &Node{
			key:    key,
			value:  value,
			height: 1,
		}
	}
	p := pool
	pool = p.right
	p.key = key
	p.value = value
	p.height = 1
	p.left = nil
	p.right = nil // clear the freelist pointer
	freeNodes -= 1
	m.Unlock()
	return p
}

// reclaim a node that is no longer reachable from any tree
func freeNode(node *Node) {
	m.Lock()
	if freeNodes >= maxFreeNodes {
		totalNodes -= 1
		m.Unlock()
		node.left = nil
		node.right = nil
		node.key = nil
		node.value = nil
		node.height = 0
		return
	}
	node.left = nil
	node.right = pool // use as free list pointer
	node.key = nil
	node.value = nil
	node.height = 0
	freeNodes += 1

	pool = node
	m.Unlock()
}

// allocator counters, for testing
func allocatorStats() (int, int) {
	m.Lock()
	defer m.Unlock()
	return totalNodes, freeNodes
}
