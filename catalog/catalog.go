// Package catalog loads body blueprints from JSON files and the built-in set,
// and instantiates bodies from them.
package catalog

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/go-pkgz/expirable-cache/v3"
	goccy "github.com/goccy/go-json"
	"github.com/pkg/errors"

	seaofstars "github.com/tenth-speed-writer/sea-of-stars-tech-demo"
	"github.com/tenth-speed-writer/sea-of-stars-tech-demo/anatomy"
)

const (
	extension = ".json"

	DefaultTTL     = 5 * time.Minute
	DefaultMaxKeys = 256
)

// Catalog serves blueprints by name. Files in Dir named <name>.json take
// precedence over built-in blueprints of the same name. Parsed files are
// cached, so edits show up once the entry expires or is invalidated.
//
// A Catalog is safe for concurrent use.
type Catalog struct {
	dir     string
	builtin map[string]*Blueprint
	cache   cache.Cache[string, *Blueprint]
}

// New returns a catalog reading from dir, which may be empty to serve only
// the built-in blueprints.
func New(dir string, ttl time.Duration, maxKeys int) *Catalog {
	return &Catalog{
		dir:     dir,
		builtin: DefaultBlueprints(),
		cache:   cache.NewCache[string, *Blueprint]().WithTTL(ttl).WithMaxKeys(maxKeys).WithLRU(),
	}
}

// Parse decodes and validates a blueprint. If the data names no blueprint, name is used.
func Parse(name string, data []byte) (*Blueprint, error) {
	bp := &Blueprint{}
	if err := goccy.Unmarshal(data, bp); err != nil {
		return nil, seaofstars.Validationf("blueprint %q: %v", name, err)
	}
	if bp.Name == "" {
		bp.Name = name
	}
	if err := bp.Validate(); err != nil {
		return nil, err
	}
	return bp, nil
}

func validName(name string) error {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return seaofstars.Validationf("invalid blueprint name %q", name)
	}
	return nil
}

// Get returns the named blueprint, or an ErrNotFound if neither a file nor a built-in has that name.
func (c *Catalog) Get(name string) (*Blueprint, error) {
	if err := validName(name); err != nil {
		return nil, err
	}
	if bp, found := c.cache.Get(name); found {
		return bp, nil
	}
	if c.dir != "" {
		data, err := os.ReadFile(filepath.Join(c.dir, name+extension))
		if err == nil {
			bp, err := Parse(name, data)
			if err != nil {
				return nil, err
			}
			c.cache.Set(name, bp, 0)
			return bp, nil
		} else if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "reading blueprint %q", name)
		}
	}
	if bp, found := c.builtin[name]; found {
		return bp, nil
	}
	return nil, seaofstars.NotFoundf("blueprint %q", name)
}

// Instantiate builds a fresh body from the named blueprint.
func (c *Catalog) Instantiate(name string) (*anatomy.Body, error) {
	bp, err := c.Get(name)
	if err != nil {
		return nil, err
	}
	return bp.Build()
}

// Invalidate drops any cached copy of the named blueprint.
func (c *Catalog) Invalidate(name string) {
	c.cache.Invalidate(name)
}

// Names lists every blueprint the catalog can serve, sorted.
func (c *Catalog) Names() ([]string, error) {
	seen := map[string]bool{}
	for name := range c.builtin {
		seen[name] = true
	}
	if c.dir != "" {
		matches, err := filepath.Glob(filepath.Join(c.dir, "*"+extension))
		if err != nil {
			return nil, errors.WithStack(err)
		}
		for _, m := range matches {
			seen[strings.TrimSuffix(filepath.Base(m), extension)] = true
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}
