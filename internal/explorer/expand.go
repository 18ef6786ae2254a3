// Copyright (c) 2025 qbsview
// Licensed under the MIT License. See LICENSE file in the project root for details.

package explorer

import (
	"fmt"

	qerrors "qbsview/cli/internal/errors"
)

// Tree is an eagerly expanded branch.
type Tree struct {
	Node     Node
	Children []Tree
	// Err is set when this branch could not be expanded. Siblings are unaffected.
	Err error
	// Truncated is set when the depth limit stopped expansion of a node that
	// has children.
	Truncated bool
}

// ChildrenFunc computes a node's children, e.g. Node.Children or Cache.Children.
type ChildrenFunc func(Node) []Node

// Expand expands n down to maxDepth levels below it (unlimited when maxDepth
// is zero or negative) using each node's own Children.
func Expand(n Node, maxDepth int) Tree {
	return ExpandWith(n, maxDepth, func(n Node) []Node { return n.Children() })
}

// ExpandWith is Expand with a custom children function.
func ExpandWith(n Node, maxDepth int, children ChildrenFunc) Tree {
	e := expander{children: children, maxDepth: maxDepth, onPath: make(map[any]bool)}
	return e.expand(n, 0)
}

type expander struct {
	children ChildrenFunc
	maxDepth int
	onPath   map[any]bool
}

func (e *expander) expand(n Node, depth int) Tree {
	t := Tree{Node: n}
	key := n.dataKey()
	if key != nil {
		if e.onPath[key] {
			t.Err = qerrors.New(qerrors.CycleDetected, fmt.Sprintf("%s %q already appears above this branch", n.Kind(), n.DisplayLabel()))
			return t
		}
		e.onPath[key] = true
		defer delete(e.onPath, key)
	}

	kids := e.children(n)
	if e.maxDepth > 0 && depth >= e.maxDepth {
		t.Truncated = len(kids) > 0
		return t
	}
	t.Children = make([]Tree, 0, len(kids))
	for _, k := range kids {
		t.Children = append(t.Children, e.expand(k, depth+1))
	}
	return t
}

// Errors returns every branch failure in t, in pre-order.
func (t Tree) Errors() []error {
	var errs []error
	var walk func(Tree)
	walk = func(t Tree) {
		if t.Err != nil {
			errs = append(errs, t.Err)
		}
		for _, c := range t.Children {
			walk(c)
		}
	}
	walk(t)
	return errs
}
