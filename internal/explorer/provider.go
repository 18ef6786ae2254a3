// Copyright (c) 2025 qbsview
// Licensed under the MIT License. See LICENSE file in the project root for details.

package explorer

import (
	"sync"

	"qbsview/cli/internal/project"
)

// Source supplies the most recently resolved project, or nil before the first
// resolution.
type Source interface {
	Project() *project.Project
}

// Provider feeds a tree view from a Source.
type Provider struct {
	src Source

	mu        sync.Mutex
	listeners []func()
}

// NewProvider returns a Provider reading from src.
func NewProvider(src Source) *Provider {
	return &Provider{src: src}
}

// Roots returns the root project node, or nothing when no project is resolved.
func (p *Provider) Roots() []Node {
	data := p.src.Project()
	if data == nil {
		return nil
	}
	return []Node{NewProjectNode(data, true)}
}

// Children returns the roots for a nil node and n's children otherwise.
func (p *Provider) Children(n Node) []Node {
	if n == nil {
		return p.Roots()
	}
	return n.Children()
}

// OnChange registers fn to run on every Refresh.
func (p *Provider) OnChange(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listeners = append(p.listeners, fn)
}

// Refresh notifies listeners that the project data changed.
func (p *Provider) Refresh() {
	p.mu.Lock()
	listeners := append([]func(){}, p.listeners...)
	p.mu.Unlock()
	for _, fn := range listeners {
		fn()
	}
}
