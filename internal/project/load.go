// Copyright (c) 2025 qbsview
// Licensed under the MIT License. See LICENSE file in the project root for details.

package project

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"qbsview/cli/internal/bridge/wire"
	qerrors "qbsview/cli/internal/errors"
)

// LoadFile reads project data from disk. JSON files may contain comments and
// trailing commas; files ending in .yaml or .yml are read as YAML. The file
// may hold either the project-data object itself or a whole project-resolved
// message that carries it under "project-data".
func LoadFile(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, qerrors.Wrap(qerrors.LoadFailed, fmt.Sprintf("reading %s", path), err)
	}

	var raw wire.Raw
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		raw, err = decodeYAML(data)
	default:
		raw, err = decodeJSONC(data)
	}
	if err != nil {
		return nil, qerrors.Wrap(qerrors.LoadFailed, fmt.Sprintf("decoding %s", path), err)
	}

	if inner, ok, err := wire.Object(raw, dataType, "project-data"); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	} else if ok {
		raw = inner
	}

	p, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

func decodeJSONC(data []byte) (wire.Raw, error) {
	stripped := jsonc.ToJSON(data)
	dec := json.NewDecoder(bytes.NewReader(stripped))
	dec.UseNumber()
	var raw wire.Raw
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, fmt.Errorf("document is not an object")
	}
	return raw, nil
}

func decodeYAML(data []byte) (wire.Raw, error) {
	var raw wire.Raw
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, fmt.Errorf("document is not a mapping")
	}
	return raw, nil
}
