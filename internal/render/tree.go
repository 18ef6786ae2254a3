// Copyright (c) 2025 qbsview
// Licensed under the MIT License. See LICENSE file in the project root for details.

package render

import (
	"fmt"

	"qbsview/cli/internal/explorer"
	"qbsview/cli/internal/terminal"

	"github.com/pterm/pterm"
)

// TreeNode converts an expanded tree to pterm's tree model. Labels longer than
// width runes are truncated; a width of zero keeps them whole.
func TreeNode(t explorer.Tree, width int) pterm.TreeNode {
	n := pterm.TreeNode{Text: terminal.Truncate(label(t), width)}
	for _, c := range t.Children {
		n.Children = append(n.Children, TreeNode(c, width))
	}
	return n
}

func label(t explorer.Tree) string {
	text := t.Node.DisplayLabel()
	switch n := t.Node.(type) {
	case *explorer.ProductNode:
		if !n.Product().IsEnabled {
			text += " (disabled)"
		}
	case *explorer.GroupNode:
		if !n.Group().IsEnabled {
			text += " (disabled)"
		}
	case *explorer.SourceArtifactNode:
		if n.Artifact().IsExecutable {
			text += "*"
		}
	}
	if t.Err != nil {
		return fmt.Sprintf("⚠ %s: %v", text, t.Err)
	}
	if t.Truncated {
		text += " …"
	}
	return text
}

// Tree renders t as an indented tree.
func Tree(t explorer.Tree, width int) (string, error) {
	return pterm.DefaultTree.WithRoot(TreeNode(t, width)).Srender()
}
