// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"

	"github.com/xlab/treeprint"
)

// Print - write an ASCII graphic representation of the tree
// returns the height of the tree
func (tree *Tree) Print(w io.Writer, printData bool) int {
	if nil == tree.root {
		fmt.Fprintln(w, "<empty>")
		return 0
	}
	t := treeprint.NewWithRoot(label(tree.root, printData))
	printTree(t, tree.root, printData)
	fmt.Fprint(w, t.String())
	return tree.root.height
}

// internal print, left sub-tree is listed before right
func printTree(t treeprint.Tree, p *Node, printData bool) {
	branches := []struct {
		mark  string
		child *Node
	}{
		{"L ", p.left},
		{"R ", p.right},
	}
	for _, b := range branches {
		if nil == b.child {
			continue
		}
		text := b.mark + label(b.child, printData)
		if nil == b.child.left && nil == b.child.right {
			t.AddNode(text)
			continue
		}
		printTree(t.AddBranch(text), b.child, printData)
	}
}

func label(p *Node, printData bool) string {
	if printData {
		return fmt.Sprintf("%v → %v h:%d %+d", p.key, p.value, p.height, balanceFactor(p))
	}
	return fmt.Sprintf("%v", p.key)
}
