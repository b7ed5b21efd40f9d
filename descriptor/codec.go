// SPDX-License-Identifier: MIT

package descriptor

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadYAML decodes and validates one Network document. Unknown keys are
// rejected.
func LoadYAML(r io.Reader) (Network, error) {
	var n Network
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&n); err != nil {
		return Network{}, fmt.Errorf("descriptor: decode yaml: %w", err)
	}
	if err := n.Validate(); err != nil {
		return Network{}, err
	}

	return n, nil
}

// SaveYAML validates n and writes it as YAML with two-space indentation.
func SaveYAML(w io.Writer, n Network) error {
	if err := n.Validate(); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(n); err != nil {
		return fmt.Errorf("descriptor: encode yaml: %w", err)
	}

	return enc.Close()
}

// LoadJSON decodes and validates one Network object. Unknown keys are
// rejected.
func LoadJSON(r io.Reader) (Network, error) {
	var n Network
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&n); err != nil {
		return Network{}, fmt.Errorf("descriptor: decode json: %w", err)
	}
	if err := n.Validate(); err != nil {
		return Network{}, err
	}

	return n, nil
}

// SaveJSON validates n and writes it as indented JSON.
func SaveJSON(w io.Writer, n Network) error {
	if err := n.Validate(); err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(n); err != nil {
		return fmt.Errorf("descriptor: encode json: %w", err)
	}

	return nil
}

// LoadFile picks the decoder from the file extension:
// .yaml and .yml decode YAML, .json decodes JSON.
func LoadFile(path string) (Network, error) {
	var load func(io.Reader) (Network, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		load = LoadYAML
	case ".json":
		load = LoadJSON
	default:
		return Network{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return Network{}, fmt.Errorf("descriptor: %w", err)
	}
	defer f.Close()

	return load(f)
}
