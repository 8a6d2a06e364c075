// Package fileblock loads render specifications declared in JSON or YAML
// documents and exposes each one as a render.Builder.
//
// A document maps block names to specifications:
//
//	blocks:
//	  cart:
//	    "#lazy_builder": ["shop:cartSummary", ["eur"]]
//	    "#create_placeholder": true
//	    "#markup": Loading cart
package fileblock

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-rendercache/pkg/render"
)

type document struct {
	Blocks map[string]render.Spec `json:"blocks" yaml:"blocks"`
}

// Block is a builder backed by a declared specification.
type Block struct {
	name   string
	source string
	spec   render.Spec
}

var _ render.Builder = (*Block)(nil)

// Name implements render.Builder.
func (b *Block) Name() string { return b.name }

// Source returns the path of the document that declared the block.
func (b *Block) Source() string { return b.source }

// Build returns a copy of the declared specification.
func (b *Block) Build() render.Spec { return b.spec.Clone() }

// LoadFS walks fsys and parses every JSON/YAML document. Blocks are returned
// sorted by name. A nil fsys yields no blocks.
func LoadFS(fsys fs.FS) ([]*Block, error) {
	if fsys == nil {
		return nil, nil
	}

	seen := make(map[string]string)
	var blocks []*Block

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isBlockFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("fileblock: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for rawName, spec := range doc.Blocks {
			name := strings.TrimSpace(rawName)
			if name == "" {
				return fmt.Errorf("fileblock: file %s defines an empty block name", path)
			}
			if prev, exists := seen[name]; exists {
				return fmt.Errorf("fileblock: duplicate block %q (files %s and %s)", name, prev, path)
			}
			if err := spec.Validate(); err != nil {
				return fmt.Errorf("fileblock: block %q (file %s): %w", name, path, err)
			}
			if spec.LazyBuilder.Args == nil {
				spec.LazyBuilder.Args = []any{}
			}
			seen[name] = path
			blocks = append(blocks, &Block{name: name, source: path, spec: spec})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(blocks, func(i, j int) bool { return blocks[i].name < blocks[j].name })
	return blocks, nil
}

// RegisterFS loads fsys and registers every block with reg.
func RegisterFS(reg *render.Registry, fsys fs.FS) ([]*Block, error) {
	blocks, err := LoadFS(fsys)
	if err != nil {
		return nil, err
	}
	for _, block := range blocks {
		if err := reg.Register(block); err != nil {
			return nil, fmt.Errorf("fileblock: %s: %w", block.source, err)
		}
	}
	return blocks, nil
}

func parseDocument(data []byte, path string) (document, error) {
	var doc document
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return document{}, fmt.Errorf("fileblock: parse %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return document{}, fmt.Errorf("fileblock: parse %s: %w", path, err)
		}
	}
	return doc, nil
}

func isBlockFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
