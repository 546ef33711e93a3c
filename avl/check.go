// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/orderedmap/fault"
)

// Check - verify the ordering, height, balance and count of the tree
// returns nil if consistent
func (tree *Tree) Check() error {
	n, _, err := check(tree.root, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fault.ErrCountMismatch
	}
	return nil
}

// internal: consistency checker
// all keys of p must lie strictly between low and high (nil = unbounded)
// returns the number of nodes and the computed height
func check(p *Node, low Item, high Item) (int, int, error) {
	if nil == p {
		return 0, 0, nil
	}
	if nil != low && low.Compare(p.key) >= 0 {
		return 0, 0, fault.ErrOrderViolation
	}
	if nil != high && high.Compare(p.key) <= 0 {
		return 0, 0, fault.ErrOrderViolation
	}

	nl, hl, err := check(p.left, low, p.key)
	if nil != err {
		return 0, 0, err
	}
	nr, hr, err := check(p.right, p.key, high)
	if nil != err {
		return 0, 0, err
	}

	h := 1 + hl
	if hr > hl {
		h = 1 + hr
	}
	if h != p.height {
		return 0, 0, fault.ErrHeightMismatch
	}
	if hr-hl > 1 || hl-hr > 1 {
		return 0, 0, fault.ErrUnbalancedNode
	}
	return 1 + nl + nr, h, nil
}
