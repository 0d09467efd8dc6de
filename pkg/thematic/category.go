package thematic

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// Kind identifies the selection strategy behind a category.
type Kind int

// Category kinds.
const (
	Flat      Kind = iota // single word list
	Composite             // prefix list + suffix list
	Keyed                 // secondary key -> word list
)

func (k Kind) String() string {
	switch k {
	case Flat:
		return "flat"
	case Composite:
		return "composite"
	case Keyed:
		return "keyed"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// category is a single entry of the selection table. Built-in and custom
// categories share this representation; the slices are owned by the category
// and never mutated after construction.
type category struct {
	kind     Kind
	words    []string
	prefixes []string
	suffixes []string

	// keys is the ordered key universe of a keyed category. A draw without an
	// explicit key picks from it, so its order is part of the seeded output.
	keys    []string
	entries map[string][]string
	folded  map[string]string
}

func newFlat(words []string) *category {
	return &category{kind: Flat, words: slices.Clone(words)}
}

func newComposite(prefixes, suffixes []string) *category {
	return &category{
		kind:     Composite,
		prefixes: slices.Clone(prefixes),
		suffixes: slices.Clone(suffixes),
	}
}

// newKeyed builds a keyed category. keys fixes the draw order; every key must
// have an entry.
func newKeyed(keys []string, entries map[string][]string) *category {
	c := &category{
		kind:    Keyed,
		keys:    slices.Clone(keys),
		entries: make(map[string][]string, len(entries)),
		folded:  make(map[string]string, len(entries)),
	}
	for k, words := range entries {
		c.entries[k] = slices.Clone(words)
	}
	// First key in draw order wins a folding tie.
	for _, k := range c.keys {
		if f := foldKey(k); c.folded[f] == "" {
			c.folded[f] = k
		}
	}
	return c
}

// empty reports whether a draw from the category could never succeed.
func (c *category) empty() bool {
	switch c.kind {
	case Flat:
		return len(c.words) == 0
	case Composite:
		return len(c.prefixes) == 0 && len(c.suffixes) == 0
	case Keyed:
		if len(c.keys) == 0 {
			return true
		}
		for _, k := range c.keys {
			if len(c.entries[k]) == 0 {
				return true
			}
		}
		return false
	}
	return true
}

// pick draws one result from r. key only applies to keyed categories; an
// empty key is drawn from the key universe first.
func (c *category) pick(r *rand.Rand, key string) (string, error) {
	switch c.kind {
	case Flat:
		return choice(r, c.words)
	case Composite:
		switch {
		case len(c.prefixes) > 0 && len(c.suffixes) > 0:
			prefix := c.prefixes[r.IntN(len(c.prefixes))]
			suffix := c.suffixes[r.IntN(len(c.suffixes))]
			return strings.TrimSpace(prefix + " " + suffix), nil
		case len(c.prefixes) > 0:
			return choice(r, c.prefixes)
		default:
			return choice(r, c.suffixes)
		}
	case Keyed:
		if key == "" {
			k, err := choice(r, c.keys)
			if err != nil {
				return "", err
			}
			key = k
		}
		canonical, ok := c.resolve(key)
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrUnknownKey, key)
		}
		return choice(r, c.entries[canonical])
	}
	return "", fmt.Errorf("%w: unsupported kind %s", ErrUnknownCategory, c.kind)
}

// resolve maps a caller supplied key onto the stored key, ignoring case.
func (c *category) resolve(key string) (string, bool) {
	if _, ok := c.entries[key]; ok {
		return key, true
	}
	canonical, ok := c.folded[foldKey(key)]
	return canonical, ok
}

func choice(r *rand.Rand, words []string) (string, error) {
	if len(words) == 0 {
		return "", ErrEmptyCategory
	}
	return words[r.IntN(len(words))], nil
}

// foldCollision reports two keys that differ only by case, if any.
func foldCollision(keys []string) (string, string, bool) {
	seen := make(map[string]string, len(keys))
	for _, k := range slices.Sorted(slices.Values(keys)) {
		f := foldKey(k)
		if prev, ok := seen[f]; ok {
			return prev, k, true
		}
		seen[f] = k
	}
	return "", "", false
}

// foldKey returns the case-folded form of a key. A Caser keeps internal state,
// so a fresh one is built per call.
func foldKey(key string) string {
	return cases.Fold().String(strings.TrimSpace(key))
}
