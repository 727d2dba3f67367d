package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// preset is a filter configuration stored in a YAML or TOML file:
//
//	filter: convolution
//	kernel:
//	  - [0, -1, 0]
//	  - [-1, 5, -1]
//	  - [0, -1, 0]
//	fixed_edges: true
//
// Unset fields leave the command line values alone.
type preset struct {
	Filter     string   `yaml:"filter" toml:"filter"`
	Sigma      *float64 `yaml:"sigma" toml:"sigma"`
	Size       *int     `yaml:"size" toml:"size"`
	Kernel     [][]int  `yaml:"kernel" toml:"kernel"`
	Divisor    int      `yaml:"divisor" toml:"divisor"`
	FixedEdges *bool    `yaml:"fixed_edges" toml:"fixed_edges"`
	Region     string   `yaml:"region" toml:"region"`
	Gray       *bool    `yaml:"gray" toml:"gray"`
}

// decoder is implemented by the YAML and TOML decoders.
type decoder interface {
	Decode(v any) error
}

// decoders maps preset file extensions to strict decoders.
var decoders = map[string]func(r io.Reader) decoder{
	".yaml": newYAMLDecoder,
	".yml":  newYAMLDecoder,
	".toml": newTOMLDecoder,
}

func newYAMLDecoder(r io.Reader) decoder {
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	return d
}

func newTOMLDecoder(r io.Reader) decoder {
	d := toml.NewDecoder(r)
	d.DisallowUnknownFields()
	return d
}

// loadPreset reads a preset, picking the decoder from the file extension.
func loadPreset(path string) (preset, error) {
	newDecoder, ok := decoders[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return preset{}, fmt.Errorf("preset %s: want .yaml, .yml or .toml", path)
	}

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return preset{}, fmt.Errorf("open preset: %w", err)
	}
	defer func() { _ = f.Close() }()

	var p preset
	if err := newDecoder(bufio.NewReader(f)).Decode(&p); err != nil {
		return preset{}, fmt.Errorf("preset %s: %w", path, err)
	}
	return p, nil
}

// applyPreset loads cfg.preset, if any, into cfg.
func applyPreset(cfg *config, set map[string]bool) error {
	if cfg.preset == "" {
		return nil
	}
	p, err := loadPreset(cfg.preset)
	if err != nil {
		return err
	}
	p.apply(cfg, set)
	return nil
}

// apply copies the preset into cfg. Fields whose flag was given explicitly
// (named in set) keep the command line value.
func (p preset) apply(cfg *config, set map[string]bool) {
	if p.Filter != "" && !set["filter"] {
		cfg.filter = p.Filter
	}
	if p.Sigma != nil && !set["sigma"] {
		cfg.sigma = *p.Sigma
	}
	if p.Size != nil && !set["size"] {
		cfg.size = *p.Size
	}
	if len(p.Kernel) > 0 && !set["kernel"] {
		cfg.rows = p.Kernel
	}
	if p.Divisor != 0 && !set["divisor"] {
		cfg.divisor = p.Divisor
	}
	if p.FixedEdges != nil && !set["fixed-edges"] {
		cfg.fixedEdges = *p.FixedEdges
	}
	if p.Region != "" && !set["region"] {
		cfg.region = p.Region
	}
	if p.Gray != nil && !set["gray"] {
		cfg.gray = *p.Gray
	}
}
