// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/orderedmap/fault"
)

// Delete - removes a specific item from the tree
// returns the value that was stored with the key
func (tree *Tree) Delete(key Item) (interface{}, error) {
	root, value, err := delete(key, tree.root)
	if nil != err {
		return nil, err
	}
	tree.root = root
	tree.count -= 1
	return value, nil
}

// internal delete routine
// returns the possibly rotated sub-tree root and the removed value
func delete(key Item, p *Node) (*Node, interface{}, error) {
	if nil == p { // key not in tree
		return nil, nil, fault.ErrKeyNotFound
	}

	value := interface{}(nil)
	switch c := p.key.Compare(key); {
	case c > 0: // p.key > key
		left, v, err := delete(key, p.left)
		if nil != err {
			return p, nil, err
		}
		p.left = left
		value = v

	case c < 0: // p.key < key
		right, v, err := delete(key, p.right)
		if nil != err {
			return p, nil, err
		}
		p.right = right
		value = v

	default: // found: delete p
		if nil == p.left || nil == p.right {
			// zero or one child replaces p
			q := p.left
			if nil == q {
				q = p.right
			}
			value = p.value
			freeNode(p)
			return q, value, nil
		}

		// two children: splice in the successor, then remove the
		// successor's original node from the right sub-tree
		value = p.value
		s := successor(p)
		p.key = s.key
		p.value = s.value
		right, _, err := delete(s.key, p.right)
		if nil != err {
			panic("avl: successor missing from right sub-tree")
		}
		p.right = right
	}

	fixHeight(p)
	return rebalance(p), value, nil
}
