// Copyright (c) 2025 qbsview
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package project models a resolved build project: projects contain products
// (build targets) and sub-projects, products contain groups, and groups contain
// source artifacts that were either listed explicitly or matched by wildcards.
//
// Values are built once by Parse or LoadFile and treated as read-only afterwards.
package project

import (
	"path/filepath"
	"strconv"
)

// Location identifies where an entity is declared.
type Location struct {
	FilePath string
	Line     int
	Column   int
}

// ID returns a stable identifier for l.
func (l Location) ID() string {
	return digest("location", l.FilePath, strconv.Itoa(l.Line), strconv.Itoa(l.Column))
}

// FileName returns the last element of the file path.
func (l Location) FileName() string {
	if l.FilePath == "" {
		return ""
	}
	return filepath.Base(l.FilePath)
}

// SourceArtifact is a single file belonging to a group.
type SourceArtifact struct {
	FilePath     string
	FileTags     []string
	IsExecutable bool
}

// ID returns a stable identifier for a.
func (a SourceArtifact) ID() string { return digest("artifact", a.FilePath) }

// FileName returns the last element of the file path.
func (a SourceArtifact) FileName() string { return filepath.Base(a.FilePath) }

// Group classifies a product's files.
type Group struct {
	Name              string
	Prefix            string
	Location          Location
	IsEnabled         bool
	SourceArtifacts   []SourceArtifact
	WildcardArtifacts []SourceArtifact
}

// ID returns a stable identifier for g.
func (g Group) ID() string { return digest("group", g.Name, g.Location.ID()) }

// IsEmpty reports whether g has neither explicit nor wildcard-matched files.
func (g Group) IsEmpty() bool {
	return len(g.SourceArtifacts) == 0 && len(g.WildcardArtifacts) == 0
}

// Product is a build target.
type Product struct {
	Name                     string
	FullDisplayName          string
	Location                 Location
	Groups                   []Group
	IsEnabled                bool
	IsRunnable               bool
	TargetExecutable         string
	Type                     []string
	BuildDirectory           string
	MultiplexConfigurationID string
	Dependencies             []string
}

// DisplayName returns the fully qualified name, e.g. "app [release]", falling
// back to the plain name when the build tool did not provide one.
func (p Product) DisplayName() string {
	if p.FullDisplayName != "" {
		return p.FullDisplayName
	}
	return p.Name
}

// ID returns a stable identifier for p.
func (p Product) ID() string { return digest("product", p.DisplayName(), p.Location.ID()) }

// Project is a node of the project hierarchy.
type Project struct {
	Name           string
	Location       Location
	BuildDirectory string
	Products       []Product
	SubProjects    []*Project
}

// ID returns a stable identifier for p.
func (p *Project) ID() string { return digest("project", p.Name, p.Location.ID()) }
