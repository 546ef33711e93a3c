// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/orderedmap/fault"
)

// Insert - insert a new node into the tree
//
// an existing key is never overwritten, instead ErrDuplicateKey is
// returned and the tree is unchanged
func (tree *Tree) Insert(key Item, value interface{}) error {
	root, err := insert(key, value, tree.root)
	if nil != err {
		return err
	}
	tree.root = root
	tree.count += 1
	return nil
}

// internal routine for insert
// returns the possibly rotated sub-tree root
func insert(key Item, value interface{}, p *Node) (*Node, error) {
	if nil == p { // insert new node
		return newNode(key, value), nil
	}

	switch c := p.key.Compare(key); {
	case c > 0: // p.key > key
		left, err := insert(key, value, p.left)
		if nil != err {
			return p, err
		}
		p.left = left
	case c < 0: // p.key < key
		right, err := insert(key, value, p.right)
		if nil != err {
			return p, err
		}
		p.right = right
	default:
		return p, fault.ErrDuplicateKey
	}

	fixHeight(p)
	return rebalance(p), nil
}
