// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// RangeBetween - values at in-order positions i..j inclusive (zero based)
//
// if j is not below Count() the result is empty rather than a partial
// range, likewise for a negative i or i > j
//
// costs O(j + log n)
func (tree *Tree) RangeBetween(i int, j int) []interface{} {
	if i < 0 || i > j || j >= tree.count {
		return []interface{}{}
	}

	values := make([]interface{}, 0, j-i+1)
	it := tree.Iterator()
	for n := 0; n <= j; n += 1 {
		p := it.Next()
		if n >= i {
			values = append(values, p.value)
		}
	}
	return values
}

// Get - node at a specific in-order position, nil if out of range
//
// nodes carry no sub-tree counts so this walks the tree in order and
// costs O(index + log n); use an Iterator to visit consecutive positions
func (tree *Tree) Get(index int) *Node {
	if index < 0 || index >= tree.count {
		return nil
	}
	it := tree.Iterator()
	p := it.Next()
	for n := 0; n < index; n += 1 {
		p = it.Next()
	}
	return p
}
