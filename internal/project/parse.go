// Copyright (c) 2025 qbsview
// Licensed under the MIT License. See LICENSE file in the project root for details.

package project

import (
	"fmt"

	"qbsview/cli/internal/bridge/wire"
	qerrors "qbsview/cli/internal/errors"
)

// dataType tags decode errors raised while parsing project data.
const dataType = "project-data"

// maxNesting bounds sub-project recursion while parsing.
const maxNesting = 256

// Parse builds a Project from the "project-data" object of a project-resolved
// message.
func Parse(raw wire.Raw) (*Project, error) {
	return parseProject(raw, 0)
}

func parseProject(raw wire.Raw, depth int) (*Project, error) {
	if depth > maxNesting {
		return nil, qerrors.Malformed(dataType, "sub-projects", fmt.Sprintf("nested deeper than %d levels", maxNesting), nil)
	}
	name, err := wire.String(raw, dataType, "name")
	if err != nil {
		return nil, err
	}
	p := &Project{Name: name}
	if p.Location, err = parseLocation(raw); err != nil {
		return nil, fmt.Errorf("project %q: %w", name, err)
	}
	if p.BuildDirectory, err = wire.OptionalString(raw, dataType, "build-directory", ""); err != nil {
		return nil, fmt.Errorf("project %q: %w", name, err)
	}

	products, err := wire.Objects(raw, dataType, "products")
	if err != nil {
		return nil, fmt.Errorf("project %q: %w", name, err)
	}
	p.Products = make([]Product, 0, len(products))
	for _, pr := range products {
		product, err := parseProduct(pr)
		if err != nil {
			return nil, fmt.Errorf("project %q: %w", name, err)
		}
		p.Products = append(p.Products, product)
	}

	subs, err := wire.Objects(raw, dataType, "sub-projects")
	if err != nil {
		return nil, fmt.Errorf("project %q: %w", name, err)
	}
	p.SubProjects = make([]*Project, 0, len(subs))
	for _, s := range subs {
		sub, err := parseProject(s, depth+1)
		if err != nil {
			return nil, fmt.Errorf("project %q: %w", name, err)
		}
		p.SubProjects = append(p.SubProjects, sub)
	}
	return p, nil
}

func parseProduct(raw wire.Raw) (Product, error) {
	name, err := wire.String(raw, dataType, "name")
	if err != nil {
		return Product{}, fmt.Errorf("product: %w", err)
	}
	p := Product{Name: name}
	wrap := func(err error) (Product, error) { return Product{}, fmt.Errorf("product %q: %w", name, err) }

	if p.FullDisplayName, err = wire.OptionalString(raw, dataType, "full-display-name", ""); err != nil {
		return wrap(err)
	}
	if p.Location, err = parseLocation(raw); err != nil {
		return wrap(err)
	}
	if p.IsEnabled, err = wire.OptionalBool(raw, dataType, "is-enabled", true); err != nil {
		return wrap(err)
	}
	if p.IsRunnable, err = wire.OptionalBool(raw, dataType, "is-runnable", false); err != nil {
		return wrap(err)
	}
	if p.TargetExecutable, err = wire.OptionalString(raw, dataType, "target-executable", ""); err != nil {
		return wrap(err)
	}
	if p.BuildDirectory, err = wire.OptionalString(raw, dataType, "build-directory", ""); err != nil {
		return wrap(err)
	}
	if p.MultiplexConfigurationID, err = wire.OptionalString(raw, dataType, "multiplex-configuration-id", ""); err != nil {
		return wrap(err)
	}
	if p.Type, err = wire.Strings(raw, dataType, "type"); err != nil {
		return wrap(err)
	}
	if p.Dependencies, err = wire.Strings(raw, dataType, "dependencies"); err != nil {
		return wrap(err)
	}

	groups, err := wire.Objects(raw, dataType, "groups")
	if err != nil {
		return wrap(err)
	}
	p.Groups = make([]Group, 0, len(groups))
	for _, g := range groups {
		group, err := parseGroup(g)
		if err != nil {
			return wrap(err)
		}
		p.Groups = append(p.Groups, group)
	}
	return p, nil
}

func parseGroup(raw wire.Raw) (Group, error) {
	name, err := wire.String(raw, dataType, "name")
	if err != nil {
		return Group{}, fmt.Errorf("group: %w", err)
	}
	g := Group{Name: name}
	wrap := func(err error) (Group, error) { return Group{}, fmt.Errorf("group %q: %w", name, err) }

	if g.Location, err = parseLocation(raw); err != nil {
		return wrap(err)
	}
	if g.Prefix, err = wire.OptionalString(raw, dataType, "prefix", ""); err != nil {
		return wrap(err)
	}
	if g.IsEnabled, err = wire.OptionalBool(raw, dataType, "is-enabled", true); err != nil {
		return wrap(err)
	}
	if g.SourceArtifacts, err = parseArtifacts(raw, "source-artifacts"); err != nil {
		return wrap(err)
	}
	if g.WildcardArtifacts, err = parseArtifacts(raw, "source-artifacts-from-wildcards"); err != nil {
		return wrap(err)
	}
	return g, nil
}

func parseArtifacts(raw wire.Raw, key string) ([]SourceArtifact, error) {
	list, err := wire.Objects(raw, dataType, key)
	if err != nil {
		return nil, err
	}
	out := make([]SourceArtifact, 0, len(list))
	for _, a := range list {
		var (
			art SourceArtifact
			err error
		)
		if art.FilePath, err = wire.String(a, dataType, "file-path"); err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		if art.FileTags, err = wire.Strings(a, dataType, "file-tags"); err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		if art.IsExecutable, err = wire.OptionalBool(a, dataType, "is-executable", false); err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		out = append(out, art)
	}
	return out, nil
}

func parseLocation(raw wire.Raw) (Location, error) {
	obj, ok, err := wire.Object(raw, dataType, "location")
	if err != nil || !ok {
		return Location{}, err
	}
	var loc Location
	if loc.FilePath, err = wire.OptionalString(obj, dataType, "file-path", ""); err != nil {
		return Location{}, err
	}
	if loc.Line, err = wire.OptionalInt(obj, dataType, "line", 0); err != nil {
		return Location{}, err
	}
	if loc.Column, err = wire.OptionalInt(obj, dataType, "column", 0); err != nil {
		return Location{}, err
	}
	return loc, nil
}
