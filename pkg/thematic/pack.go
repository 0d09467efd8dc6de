package thematic

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Pack is a set of custom categories loaded from a YAML document.
type Pack struct {
	Categories []PackCategory `yaml:"categories"`
}

// PackCategory describes one category of a pack. Exactly one shape must be
// set: Words (flat), Prefixes/Suffixes (composite) or Keyed.
type PackCategory struct {
	Name     string              `yaml:"name"`
	Words    []string            `yaml:"words,omitempty"`
	Prefixes []string            `yaml:"prefixes,omitempty"`
	Suffixes []string            `yaml:"suffixes,omitempty"`
	Keyed    map[string][]string `yaml:"keyed,omitempty"`
}

// Kind reports which shape the entry uses.
func (pc PackCategory) Kind() (Kind, error) {
	shapes := 0
	kind := Flat
	if len(pc.Words) > 0 {
		shapes++
	}
	if len(pc.Prefixes) > 0 || len(pc.Suffixes) > 0 {
		shapes++
		kind = Composite
	}
	if len(pc.Keyed) > 0 {
		shapes++
		kind = Keyed
	}
	switch shapes {
	case 0:
		return 0, fmt.Errorf("%w: category %q has no words", ErrInvalidPack, pc.Name)
	case 1:
		return kind, nil
	default:
		return 0, fmt.Errorf("%w: category %q mixes shapes", ErrInvalidPack, pc.Name)
	}
}

func (pc PackCategory) build() (*category, error) {
	kind, err := pc.Kind()
	if err != nil {
		return nil, err
	}
	switch kind {
	case Composite:
		return newComposite(pc.Prefixes, pc.Suffixes), nil
	case Keyed:
		return newKeyed(slices.Sorted(maps.Keys(pc.Keyed)), pc.Keyed), nil
	default:
		return newFlat(pc.Words), nil
	}
}

// LoadPack decodes and validates a category pack. Unknown fields are rejected.
func LoadPack(r io.Reader) (*Pack, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Pack
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidPack)
		}
		return nil, errors.Join(ErrInvalidPack, err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// LoadPackFile reads a category pack from path.
func LoadPackFile(path string) (*Pack, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open category pack: %w", err)
	}
	defer f.Close()

	p, err := LoadPack(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Validate checks names and shapes without touching any generator.
func (p *Pack) Validate() error {
	seen := make(map[string]struct{}, len(p.Categories))
	for i, pc := range p.Categories {
		name := strings.TrimSpace(pc.Name)
		if name == "" {
			return fmt.Errorf("%w: category #%d has no name", ErrInvalidPack, i+1)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: category %q declared twice", ErrInvalidPack, name)
		}
		seen[name] = struct{}{}
		if _, err := pc.Kind(); err != nil {
			return err
		}
		for key, words := range pc.Keyed {
			if len(words) == 0 {
				return fmt.Errorf("%w: category %q key %q has no words", ErrInvalidPack, name, key)
			}
		}
		if a, b, ok := foldCollision(slices.Collect(maps.Keys(pc.Keyed))); ok {
			return fmt.Errorf("%w: category %q keys %q and %q differ only by case", ErrInvalidPack, name, a, b)
		}
	}
	return nil
}

// Install registers every category of the pack. Either all of them are added
// or none is.
func (g *Generator) Install(p *Pack) error {
	if p == nil {
		return fmt.Errorf("%w: nil pack", ErrInvalidPack)
	}
	if err := p.Validate(); err != nil {
		return err
	}

	batch := make(map[string]*category, len(p.Categories))
	for _, pc := range p.Categories {
		c, err := pc.build()
		if err != nil {
			return err
		}
		batch[strings.TrimSpace(pc.Name)] = c
	}
	return g.register(batch)
}
