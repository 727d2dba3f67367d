package main

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/gogpu/convolve"
)

// config holds the parsed command line.
type config struct {
	in         string
	out        string
	outDir     string
	jobs       int
	extra      []string
	filter     string
	sigma      float64
	size       int
	kernel     string
	rows       [][]int
	divisor    int
	fixedEdges bool
	region     string
	gray       bool
	quality    int
	verbose    bool
	preset     string
	resize     string
}

var (
	errNoKernel = errors.New("-kernel is required for this filter")
	errNoInput  = errors.New("-in or input file arguments are required")
	errNoOutDir = errors.New("-out-dir is required for more than one input")
)

// builders maps folded filter names to constructors.
var builders = map[string]func(cfg config) (convolve.Filter, error){
	"mean":    func(cfg config) (convolve.Filter, error) { return withEdges(convolve.NewMean(), cfg), nil },
	"blur":    func(cfg config) (convolve.Filter, error) { return withEdges(convolve.NewBlur(), cfg), nil },
	"sharpen": func(cfg config) (convolve.Filter, error) { return withEdges(convolve.NewSharpen(), cfg), nil },
	"edges":   func(cfg config) (convolve.Filter, error) { return withEdges(convolve.NewEdges(), cfg), nil },
	"gaussian-blur": func(cfg config) (convolve.Filter, error) {
		return convolve.NewGaussianBlur(cfg.sigma, cfg.size), nil
	},
	"sharpen-ex": func(cfg config) (convolve.Filter, error) {
		return convolve.NewSharpenEx(cfg.sigma, cfg.size), nil
	},
	"convolution": func(cfg config) (convolve.Filter, error) {
		rows, err := cfg.kernelRows()
		if err != nil {
			return nil, err
		}
		return convolve.NewConvolution(rows, kernelOptions(cfg)...)
	},
	"correlation": func(cfg config) (convolve.Filter, error) {
		rows, err := cfg.kernelRows()
		if err != nil {
			return nil, err
		}
		return convolve.NewCorrelation(rows, kernelOptions(cfg)...)
	},
}

// inputs returns -in followed by the positional arguments.
func (cfg config) inputs() []string {
	var in []string
	if cfg.in != "" {
		in = append(in, cfg.in)
	}
	return append(in, cfg.extra...)
}

// filterNames lists the accepted -filter values.
func filterNames() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// buildFilter looks up a filter by name. Matching ignores case, and
// underscores or spaces stand in for dashes.
func buildFilter(cfg config) (convolve.Filter, error) {
	key := cases.Fold().String(strings.TrimSpace(cfg.filter))
	key = strings.NewReplacer("_", "-", " ", "-").Replace(key)

	build, ok := builders[key]
	if !ok {
		return nil, fmt.Errorf("unknown filter %q (want one of %s)", cfg.filter, strings.Join(filterNames(), ", "))
	}
	return build(cfg)
}

func withEdges(c *convolve.Convolution, cfg config) *convolve.Convolution {
	c.SetDynamicDivisorForEdges(!cfg.fixedEdges)
	return c
}

func kernelOptions(cfg config) []convolve.Option {
	opts := []convolve.Option{convolve.WithDynamicDivisorForEdges(!cfg.fixedEdges)}
	if cfg.divisor != 0 {
		opts = append(opts, convolve.WithDivisor(cfg.divisor))
	}
	return opts
}

// kernelRows returns the kernel from -kernel, or from a preset when the
// flag is empty.
func (cfg config) kernelRows() ([][]int, error) {
	if strings.TrimSpace(cfg.kernel) == "" && len(cfg.rows) > 0 {
		return cfg.rows, nil
	}
	return parseKernel(cfg.kernel)
}

// parseKernel parses rows separated by ';' with weights separated by ','.
func parseKernel(s string) ([][]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errNoKernel
	}

	var rows [][]int
	for _, line := range strings.Split(s, ";") {
		var row []int
		for _, field := range strings.Split(line, ",") {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("parse kernel weight %q: %w", field, err)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// parseRegion parses "x,y,w,h". An empty string selects the whole image.
func parseRegion(s string, width, height int) (convolve.Region, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return convolve.FullRegion(width, height), nil
	}

	fields := strings.Split(s, ",")
	if len(fields) != 4 {
		return convolve.Region{}, fmt.Errorf("region %q: want x,y,w,h", s)
	}
	var v [4]int
	for i, field := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return convolve.Region{}, fmt.Errorf("region %q: %w", s, err)
		}
		v[i] = n
	}
	return convolve.Region{X: v[0], Y: v[1], Width: v[2], Height: v[3]}, nil
}
