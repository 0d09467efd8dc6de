// Package thematic generates random flavour attributes for characters and
// scenes: personality adjectives, colors, sci-fi tropes, evocative two-word
// titles, dessert names and given names keyed by ethnicity.
//
// Every value comes from a named category. A category is backed by one of
// three strategies:
//
//   - Flat: a single word list ("color", "personality", ...).
//   - Composite: a prefix list and a suffix list, drawn independently and
//     joined with a space ("abstract_artistic", "berry_dessert").
//   - Keyed: a list per secondary key; without an explicit key, the key is
//     drawn first ("human_name_female", "human_name_male" keyed by ethnicity).
//
// Built-in categories are compiled in and immutable. A Generator can register
// additional categories at run time with Add, AddComposite, AddKeyed or by
// installing a YAML Pack; custom names may not shadow built-in ones.
//
// # Determinism
//
// A Generator created with WithSeed starts a fresh random stream from that
// seed for each operation. Generate seeds once per call, so
//
//	thematic.New(thematic.WithSeed(42)).Generate("color", "personality")
//
// returns the same "<color>, <personality>" string on every call and on every
// instance with the same seed. Streams are private to the call: no global
// random state is read or reset, and seeded generators can be used from many
// goroutines at once.
//
// Without a seed every call draws from fresh entropy.
//
// # Usage
//
//	g := thematic.New()
//	if err := g.Add("fantasy_race", []string{"Elf", "Dwarf", "Orc"}); err != nil {
//	    return err
//	}
//	flavour, err := g.Generate(thematic.Personality, "fantasy_race", thematic.Color)
//
// # Category packs
//
// Packs describe custom categories in YAML:
//
//	categories:
//	  - name: tavern_name
//	    prefixes: [Prancing, Drunken]
//	    suffixes: [Pony, Dragon]
//	  - name: elf_name
//	    keyed:
//	      High: [Aerendil, Faelar]
//	      Wood: [Thalion]
//
// Load one with LoadPack or LoadPackFile and register it with Install.
//
// # Error Handling
//
// Failures are reported with sentinel errors that can be matched with
// errors.Is: ErrNameConflict, ErrInvalidName, ErrUnknownCategory,
// ErrCategoryKind, ErrUnknownKey, ErrEmptyCategory and ErrInvalidPack.
package thematic
