// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/orderedmap/fault"
)

// Search - find the value stored for a specific key
func (tree *Tree) Search(key Item) (interface{}, error) {
	p := search(key, tree.root)
	if nil == p {
		return nil, fault.ErrKeyNotFound
	}
	return p.value, nil
}

// Contains - true if Search would succeed
func (tree *Tree) Contains(key Item) bool {
	return nil != search(key, tree.root)
}

func search(key Item, tree *Node) *Node {
	if nil == tree {
		return nil
	}

	switch c := tree.key.Compare(key); {
	case c > 0: // tree.key > key
		return search(key, tree.left)
	case c < 0: // tree.key < key
		return search(key, tree.right)
	default:
		return tree
	}
}
