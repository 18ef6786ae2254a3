// Copyright (c) 2025 qbsview
// Licensed under the MIT License. See LICENSE file in the project root for details.

package explorer

import (
	"fmt"
	"strconv"

	qerrors "qbsview/cli/internal/errors"
	"qbsview/cli/internal/project"
)

// SourceArtifactNode is a leaf for a single source file.
type SourceArtifactNode struct {
	id       string
	artifact project.SourceArtifact
}

func newSourceArtifactNode(parentID string, index int, a project.SourceArtifact) *SourceArtifactNode {
	return &SourceArtifactNode{id: scopedID(parentID, KindSourceArtifact, index, a.ID()), artifact: a}
}

func (n *SourceArtifactNode) ID() string           { return n.id }
func (n *SourceArtifactNode) Kind() Kind           { return KindSourceArtifact }
func (n *SourceArtifactNode) DisplayLabel() string { return n.artifact.FileName() }
func (n *SourceArtifactNode) Children() []Node     { return nil }
func (n *SourceArtifactNode) dataKey() any         { return nil }

// Artifact returns the wrapped source artifact.
func (n *SourceArtifactNode) Artifact() project.SourceArtifact { return n.artifact }

func (n *SourceArtifactNode) Item() Item {
	return Item{Label: n.DisplayLabel(), State: StateNone, ResourcePath: n.artifact.FilePath}
}

// LocationNode is a leaf pointing at the file that declares its parent.
type LocationNode struct {
	id       string
	location project.Location
	// showLine appends the declaration line to the label.
	showLine bool
}

func newLocationNode(parentID string, loc project.Location, showLine bool) *LocationNode {
	return &LocationNode{id: scopedID(parentID, KindLocation, 0, loc.ID()), location: loc, showLine: showLine}
}

func (n *LocationNode) ID() string       { return n.id }
func (n *LocationNode) Kind() Kind       { return KindLocation }
func (n *LocationNode) Children() []Node { return nil }
func (n *LocationNode) dataKey() any     { return nil }

// Location returns the wrapped location.
func (n *LocationNode) Location() project.Location { return n.location }

func (n *LocationNode) DisplayLabel() string {
	label := n.location.FileName()
	if n.showLine {
		label += ":" + strconv.Itoa(n.location.Line)
	}
	return label
}

func (n *LocationNode) Item() Item {
	return Item{Label: n.DisplayLabel(), State: StateNone, ResourcePath: n.location.FilePath}
}

// GroupNode lists a group's declaration and files.
type GroupNode struct {
	id    string
	group project.Group
}

func newGroupNode(parentID string, index int, g project.Group) *GroupNode {
	return &GroupNode{id: scopedID(parentID, KindGroup, index, g.ID()), group: g}
}

func (n *GroupNode) ID() string           { return n.id }
func (n *GroupNode) Kind() Kind           { return KindGroup }
func (n *GroupNode) DisplayLabel() string { return n.group.Name }
func (n *GroupNode) dataKey() any         { return nil }

// Group returns the wrapped group.
func (n *GroupNode) Group() project.Group { return n.group }

func (n *GroupNode) Item() Item {
	return Item{Label: n.DisplayLabel(), State: StateCollapsed}
}

// Children returns the group's location, then explicitly listed files, then
// wildcard-matched files, each in declaration order.
func (n *GroupNode) Children() []Node {
	nodes := make([]Node, 0, 1+len(n.group.SourceArtifacts)+len(n.group.WildcardArtifacts))
	nodes = append(nodes, newLocationNode(n.id, n.group.Location, true))
	for _, a := range n.group.SourceArtifacts {
		nodes = append(nodes, newSourceArtifactNode(n.id, len(nodes), a))
	}
	for _, a := range n.group.WildcardArtifacts {
		nodes = append(nodes, newSourceArtifactNode(n.id, len(nodes), a))
	}
	return nodes
}

// ProductNode lists a product's declaration and non-empty groups.
type ProductNode struct {
	id      string
	product project.Product
}

func newProductNode(parentID string, index int, p project.Product) *ProductNode {
	return &ProductNode{id: scopedID(parentID, KindProduct, index, p.ID()), product: p}
}

func (n *ProductNode) ID() string           { return n.id }
func (n *ProductNode) Kind() Kind           { return KindProduct }
func (n *ProductNode) DisplayLabel() string { return n.product.Name }
func (n *ProductNode) dataKey() any         { return nil }

// Name returns the product's fully qualified display name.
func (n *ProductNode) Name() string { return n.product.DisplayName() }

// Product returns the wrapped product.
func (n *ProductNode) Product() project.Product { return n.product }

func (n *ProductNode) Item() Item {
	return Item{Label: n.DisplayLabel(), State: StateCollapsed, ContextValue: "product-node"}
}

// Children returns the product's location followed by its groups. Groups
// without any files are left out.
func (n *ProductNode) Children() []Node {
	nodes := make([]Node, 0, 1+len(n.product.Groups))
	nodes = append(nodes, newLocationNode(n.id, n.product.Location, true))
	for i, g := range n.product.Groups {
		if g.IsEmpty() {
			continue
		}
		nodes = append(nodes, newGroupNode(n.id, i, g))
	}
	return nodes
}

// ProjectNode lists a project's declaration, products and sub-projects.
type ProjectNode struct {
	id      string
	project *project.Project
	root    bool
}

// NewProjectNode returns the node for p. Root nodes are presented expanded.
func NewProjectNode(p *project.Project, root bool) *ProjectNode {
	return newProjectNode("", 0, p, root)
}

func newProjectNode(parentID string, index int, p *project.Project, root bool) *ProjectNode {
	return &ProjectNode{id: scopedID(parentID, KindProject, index, p.ID()), project: p, root: root}
}

func (n *ProjectNode) ID() string           { return n.id }
func (n *ProjectNode) Kind() Kind           { return KindProject }
func (n *ProjectNode) DisplayLabel() string { return n.project.Name }
func (n *ProjectNode) dataKey() any         { return n.project }

// IsRoot reports whether n is the top of the tree.
func (n *ProjectNode) IsRoot() bool { return n.root }

// Project returns the wrapped project.
func (n *ProjectNode) Project() *project.Project { return n.project }

func (n *ProjectNode) Item() Item {
	if n.root {
		return Item{Label: n.DisplayLabel(), State: StateExpanded, ContextValue: "root-project-node"}
	}
	return Item{Label: n.DisplayLabel(), State: StateCollapsed, ContextValue: "sub-project-node"}
}

// Children returns the project's location, its products, then its
// sub-projects.
func (n *ProjectNode) Children() []Node {
	nodes := make([]Node, 0, 1+len(n.project.Products)+len(n.project.SubProjects))
	nodes = append(nodes, newLocationNode(n.id, n.project.Location, true))
	for i, p := range n.project.Products {
		nodes = append(nodes, newProductNode(n.id, i, p))
	}
	for i, sub := range n.project.SubProjects {
		nodes = append(nodes, newProjectNode(n.id, i, sub, false))
	}
	return nodes
}

// DependentProductNames returns the display names of every product in the
// project hierarchy, depth first: a project's own products come before those
// of its sub-projects. It fails with a cycle_detected error if a project is
// reachable from itself.
func (n *ProjectNode) DependentProductNames() ([]string, error) {
	var names []string
	onPath := make(map[*project.Project]bool)

	var visit func(p *project.Project) error
	visit = func(p *project.Project) error {
		if onPath[p] {
			return qerrors.New(qerrors.CycleDetected, fmt.Sprintf("project %q is its own sub-project", p.Name))
		}
		onPath[p] = true
		defer delete(onPath, p)

		for _, product := range p.Products {
			names = append(names, product.DisplayName())
		}
		for _, sub := range p.SubProjects {
			if err := visit(sub); err != nil {
				return err
			}
		}
		return nil
	}

	if err := visit(n.project); err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}
