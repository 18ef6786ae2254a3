// Copyright (c) 2025 qbsview
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package explorer materializes a resolved project as a tree of nodes for a
// project-explorer view.
//
// The node set is closed: Project, Product, Group, Location and SourceArtifact.
// Children are computed on every call and never cached by the nodes themselves;
// Cache layers memoization on top, and Expand walks a branch eagerly for
// rendering while isolating failures to the branch that caused them.
package explorer

import (
	"strconv"

	"qbsview/cli/internal/project"
)

// Kind identifies one of the five node variants.
type Kind int

const (
	KindProject Kind = iota + 1
	KindProduct
	KindGroup
	KindLocation
	KindSourceArtifact
)

func (k Kind) String() string {
	switch k {
	case KindProject:
		return "project"
	case KindProduct:
		return "product"
	case KindGroup:
		return "group"
	case KindLocation:
		return "location"
	case KindSourceArtifact:
		return "source-artifact"
	default:
		return "unknown"
	}
}

// CollapsibleState tells a tree view how to present a node initially.
type CollapsibleState int

const (
	StateNone CollapsibleState = iota
	StateCollapsed
	StateExpanded
)

// Item describes how a node should be presented.
type Item struct {
	Label        string
	State        CollapsibleState
	ContextValue string
	// ResourcePath is the file a view should open when the node is activated.
	ResourcePath string
}

// Node is implemented only by the node types of this package.
type Node interface {
	ID() string
	Kind() Kind
	DisplayLabel() string
	Children() []Node
	Item() Item

	// dataKey returns the identity of the wrapped data for cycle detection,
	// or nil for data that cannot recur.
	dataKey() any
}

// scopedID derives a node ID from its parent, its kind and its position among
// its siblings, so the same data under two parents (e.g. a file listed by two
// groups) and two siblings with identical data yield distinct nodes.
func scopedID(parentID string, kind Kind, index int, dataID string) string {
	if parentID == "" {
		return dataID
	}
	return project.Digest(parentID, kind.String(), strconv.Itoa(index), dataID)
}
