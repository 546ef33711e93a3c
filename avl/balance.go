// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// height of a sub-tree, an empty sub-tree has height zero
func height(p *Node) int {
	if nil == p {
		return 0
	}
	return p.height
}

// recompute the height from the children
func fixHeight(p *Node) {
	hl := height(p.left)
	hr := height(p.right)
	if hl > hr {
		p.height = 1 + hl
	} else {
		p.height = 1 + hr
	}
}

// right height minus left height
func balanceFactor(p *Node) int {
	if nil == p {
		return 0
	}
	return height(p.right) - height(p.left)
}

// single left rotation
//
//	    p                  r
//	   / \                / \
//	  a   r      →       p   c
//	     / \            / \
//	    b   c          a   b
func rotateLeft(p *Node) *Node {
	r := p.right
	p.right = r.left
	r.left = p

	// child first, the new root depends on it
	fixHeight(p)
	fixHeight(r)
	return r
}

// single right rotation
//
//	      p              l
//	     / \            / \
//	    l   c    →     a   p
//	   / \                / \
//	  a   b              b   c
func rotateRight(p *Node) *Node {
	l := p.left
	p.left = l.right
	l.right = p

	fixHeight(p)
	fixHeight(l)
	return l
}

// restore the balance at p, assumes both sub-trees are already
// balanced and p.height is current; returns the new sub-tree root
func rebalance(p *Node) *Node {
	bf := balanceFactor(p)

	if bf >= 2 { // right heavy
		if height(p.right.left) > height(p.right.right) {
			// double RL rotation
			p.right = rotateRight(p.right)
		}
		return rotateLeft(p)
	}

	if bf <= -2 { // left heavy
		if height(p.left.right) > height(p.left.left) {
			// double LR rotation
			p.left = rotateLeft(p.left)
		}
		return rotateRight(p)
	}

	return p
}
