package thematic

import (
	"fmt"
	"maps"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
)

// Built-in category names.
const (
	AbstractArtistic = "abstract_artistic"
	BerryDessert     = "berry_dessert"
	Personality      = "personality"
	Ethnicity        = "ethnicity"
	ActorNameColor   = "actor_name_color"
	Color            = "color"
	StateOfMatter    = "state_of_matter"
	ScifiTrope       = "scifi_trope"
	HumanNameFemale  = "human_name_female"
	HumanNameMale    = "human_name_male"
)

// Delimiter joins the per-category results of a multi-category Generate call.
const Delimiter = ", "

// builtins is the process-wide category table. It is filled once at package
// initialization and only read afterwards.
var builtins = map[string]*category{
	AbstractArtistic: newComposite(abstractArtisticPrefixes, abstractArtisticSuffixes),
	BerryDessert:     newComposite(berryPrefixes, dessertSuffixes),
	Personality:      newFlat(personalities),
	Ethnicity:        newFlat(ethnicities),
	ActorNameColor:   newFlat(actorNameColors),
	Color:            newFlat(colors),
	StateOfMatter:    newFlat(statesOfMatter),
	ScifiTrope:       newFlat(scifiTropes),
	HumanNameFemale:  newKeyed(ethnicities, humanNamesFemale),
	HumanNameMale:    newKeyed(ethnicities, humanNamesMale),
}

// reserved holds operation names that custom categories may not shadow.
var reserved = map[string]struct{}{
	"generate":         {},
	"add":              {},
	"add_composite":    {},
	"add_keyed":        {},
	"seed":             {},
	"select":           {},
	"select_composite": {},
	"select_keyed":     {},
	"categories":       {},
	"install":          {},
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed makes every operation of the generator reproducible: each call
// starts a fresh random stream from seed.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
		g.seeded = true
	}
}

// Generator selects random values from named categories.
// It is safe for concurrent use.
type Generator struct {
	seed   int64
	seeded bool

	mu     sync.RWMutex
	custom map[string]*category
}

// New creates a generator. Without WithSeed every call draws from fresh entropy.
func New(opts ...Option) *Generator {
	g := &Generator{custom: make(map[string]*category)}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Seed returns the configured seed and whether one was set.
func (g *Generator) Seed() (int64, bool) {
	return g.seed, g.seeded
}

// Generate draws one value from each named category, in order, and joins the
// results with Delimiter. The random stream is seeded once for the whole call,
// so a seeded generator returns the same string for the same names every time.
func (g *Generator) Generate(names ...string) (string, error) {
	cats := make([]*category, 0, len(names))
	for _, name := range names {
		c, err := g.lookup(name)
		if err != nil {
			return "", err
		}
		cats = append(cats, c)
	}

	r := g.stream()
	results := make([]string, 0, len(cats))
	for i, c := range cats {
		v, err := c.pick(r, "")
		if err != nil {
			return "", fmt.Errorf("%s: %w", names[i], err)
		}
		results = append(results, v)
	}
	return strings.Join(results, Delimiter), nil
}

// Select draws one value from the named category using its own strategy.
func (g *Generator) Select(name string) (string, error) {
	return g.Generate(name)
}

// SelectComposite draws a "prefix suffix" pair from a composite category.
// When only one of the lists has words, a single word from it is returned.
func (g *Generator) SelectComposite(name string) (string, error) {
	c, err := g.lookupKind(name, Composite)
	if err != nil {
		return "", err
	}
	return g.draw(name, c, "")
}

// SelectKeyed draws from the list stored under key in a keyed category.
// An empty key is drawn from the category's key universe first.
func (g *Generator) SelectKeyed(name, key string) (string, error) {
	c, err := g.lookupKind(name, Keyed)
	if err != nil {
		return "", err
	}
	return g.draw(name, c, key)
}

// Add registers a flat custom category.
func (g *Generator) Add(name string, words []string) error {
	return g.register(map[string]*category{name: newFlat(words)})
}

// AddComposite registers a custom category drawing one prefix and one suffix.
func (g *Generator) AddComposite(name string, prefixes, suffixes []string) error {
	return g.register(map[string]*category{name: newComposite(prefixes, suffixes)})
}

// AddKeyed registers a custom keyed category. Its key universe is the sorted
// set of entry keys; keys that differ only by case are rejected with
// ErrNameConflict.
func (g *Generator) AddKeyed(name string, entries map[string][]string) error {
	keys := slices.Sorted(maps.Keys(entries))
	if a, b, ok := foldCollision(keys); ok {
		return fmt.Errorf("%w: %q keys %q and %q differ only by case", ErrNameConflict, name, a, b)
	}
	return g.register(map[string]*category{name: newKeyed(keys, entries)})
}

// Categories returns every selectable category name, sorted.
func (g *Generator) Categories() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	names := make([]string, 0, len(builtins)+len(g.custom))
	for name := range builtins {
		names = append(names, name)
	}
	for name := range g.custom {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Kind reports the selection strategy of a category.
func (g *Generator) Kind(name string) (Kind, error) {
	c, err := g.lookup(name)
	if err != nil {
		return 0, err
	}
	return c.kind, nil
}

// AbstractArtistic returns an evocative two-word title such as "Twilight Sonata".
func (g *Generator) AbstractArtistic() string { return g.builtin(AbstractArtistic) }

// BerryDessert returns a dessert name such as "Cloudberry Tart".
func (g *Generator) BerryDessert() string { return g.builtin(BerryDessert) }

// Personality returns a personality trait such as "Curious".
func (g *Generator) Personality() string { return g.builtin(Personality) }

// Ethnicity returns one of the ethnicities keying the human name tables.
func (g *Generator) Ethnicity() string { return g.builtin(Ethnicity) }

// Color returns a color name.
func (g *Generator) Color() string { return g.builtin(Color) }

// StateOfMatter returns a state of matter.
func (g *Generator) StateOfMatter() string { return g.builtin(StateOfMatter) }

// ScifiTrope returns a science fiction trope.
func (g *Generator) ScifiTrope() string { return g.builtin(ScifiTrope) }

// ActorNameColor returns a color used to tint actor names.
func (g *Generator) ActorNameColor() string { return g.builtin(ActorNameColor) }

// HumanNameFemale returns a female given name for ethnicity, or for a random
// ethnicity when it is empty.
func (g *Generator) HumanNameFemale(ethnicity string) (string, error) {
	return g.draw(HumanNameFemale, builtins[HumanNameFemale], ethnicity)
}

// HumanNameMale returns a male given name for ethnicity, or for a random
// ethnicity when it is empty.
func (g *Generator) HumanNameMale(ethnicity string) (string, error) {
	return g.draw(HumanNameMale, builtins[HumanNameMale], ethnicity)
}

// builtin draws from a built-in table. Those tables are never empty, so the
// error can only be nil.
func (g *Generator) builtin(name string) string {
	v, _ := builtins[name].pick(g.stream(), "")
	return v
}

func (g *Generator) draw(name string, c *category, key string) (string, error) {
	v, err := c.pick(g.stream(), key)
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}

// stream returns a private random source for one logical operation.
func (g *Generator) stream() *rand.Rand {
	if g.seeded {
		return seededRand(g.seed)
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// seededRand derives both PCG words from seed so that nearby seeds still
// produce unrelated streams.
func seededRand(seed int64) *rand.Rand {
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

func (g *Generator) lookup(name string) (*category, error) {
	if c, ok := builtins[name]; ok {
		return c, nil
	}
	g.mu.RLock()
	c, ok := g.custom[name]
	g.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}
	return c, nil
}

func (g *Generator) lookupKind(name string, kind Kind) (*category, error) {
	c, err := g.lookup(name)
	if err != nil {
		return nil, err
	}
	if c.kind != kind {
		return nil, fmt.Errorf("%w: %q is %s, not %s", ErrCategoryKind, name, c.kind, kind)
	}
	return c, nil
}

// register validates every candidate before installing any of them, so a
// failed batch leaves the registry untouched.
func (g *Generator) register(batch map[string]*category) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, name := range slices.Sorted(maps.Keys(batch)) {
		if err := g.checkName(name); err != nil {
			return err
		}
		if batch[name].empty() {
			return fmt.Errorf("%w: %q", ErrEmptyCategory, name)
		}
	}
	maps.Copy(g.custom, batch)
	return nil
}

// checkName must be called with g.mu held.
func (g *Generator) checkName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrInvalidName
	}
	if _, ok := builtins[name]; ok {
		return fmt.Errorf("%w: %q is a built-in category", ErrNameConflict, name)
	}
	if _, ok := reserved[name]; ok {
		return fmt.Errorf("%w: %q is reserved", ErrNameConflict, name)
	}
	if _, ok := g.custom[name]; ok {
		return fmt.Errorf("%w: %q", ErrNameConflict, name)
	}
	return nil
}
