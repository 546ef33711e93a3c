// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/orderedmap/fault"
)

// Minimum - return the node with the lowest key value
func (tree *Tree) Minimum() (*Node, error) {
	if nil == tree.root {
		return nil, fault.ErrEmptyTree
	}
	return tree.root.Minimum(), nil
}

// Maximum - return the node with the highest key value
func (tree *Tree) Maximum() (*Node, error) {
	if nil == tree.root {
		return nil, fault.ErrEmptyTree
	}
	return tree.root.Maximum(), nil
}

// Minimum - lowest node in a sub-tree
func (p *Node) Minimum() *Node {
	if p == nil {
		return nil
	}
	for p.left != nil {
		p = p.left
	}
	return p
}

// Maximum - highest node in a sub-tree
func (p *Node) Maximum() *Node {
	if p == nil {
		return nil
	}
	for p.right != nil {
		p = p.right
	}
	return p
}

// internal: in-order successor within the sub-tree rooted at p,
// nil if p has no right sub-tree
func successor(p *Node) *Node {
	if nil == p.right {
		return nil
	}
	return p.right.Minimum()
}

// Iterator - ascending in-order walk over a tree
//
// the iterator holds the pending ancestors on an explicit stack so
// the walk does not recurse; any mutation of the tree invalidates it
type Iterator struct {
	stack   []*Node
	current *Node
}

// Iterator - create a new iterator positioned before the lowest key
func (tree *Tree) Iterator() *Iterator {
	return &Iterator{
		stack:   make([]*Node, 0, height(tree.root)),
		current: tree.root,
	}
}

// Next - return the node with the next highest key value or nil if
// no more nodes
func (it *Iterator) Next() *Node {
	for nil != it.current {
		it.stack = append(it.stack, it.current)
		it.current = it.current.left
	}

	n := len(it.stack)
	if 0 == n {
		return nil
	}

	p := it.stack[n-1]
	it.stack = it.stack[:n-1]
	it.current = p.right
	return p
}

// Keys - all keys in ascending order
func (tree *Tree) Keys() []Item {
	keys := make([]Item, 0, tree.count)
	it := tree.Iterator()
	for p := it.Next(); nil != p; p = it.Next() {
		keys = append(keys, p.key)
	}
	return keys
}

// Values - all values in ascending key order
func (tree *Tree) Values() []interface{} {
	values := make([]interface{}, 0, tree.count)
	it := tree.Iterator()
	for p := it.Next(); nil != p; p = it.Next() {
		values = append(values, p.value)
	}
	return values
}
