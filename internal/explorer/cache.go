// Copyright (c) 2025 qbsview
// Licensed under the MIT License. See LICENSE file in the project root for details.

package explorer

import (
	"fmt"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of memoized child lists kept when no size is
// configured.
const DefaultCacheSize = 1024

// Cache memoizes child lists by node ID. It is purged whenever the provider
// refreshes, so a new project resolution never serves stale nodes.
type Cache struct {
	provider *Provider
	children *lru.Cache[string, []Node]
}

// NewCache wraps p with an LRU of the given size.
func NewCache(p *Provider, size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	children, err := lru.New[string, []Node](size)
	if err != nil {
		return nil, fmt.Errorf("create children cache: %w", err)
	}
	c := &Cache{provider: p, children: children}
	p.OnChange(c.Invalidate)
	return c, nil
}

// Roots returns the provider's roots. They are not memoized.
func (c *Cache) Roots() []Node { return c.provider.Roots() }

// Children returns n's children, computing them on the first request.
func (c *Cache) Children(n Node) []Node {
	if n == nil {
		return c.provider.Roots()
	}
	if nodes, ok := c.children.Get(n.ID()); ok {
		return slices.Clone(nodes)
	}
	nodes := c.provider.Children(n)
	c.children.Add(n.ID(), nodes)
	return slices.Clone(nodes)
}

// Invalidate drops every memoized entry.
func (c *Cache) Invalidate() { c.children.Purge() }

// Len returns the number of memoized entries.
func (c *Cache) Len() int { return c.children.Len() }
