package thematic

import "errors"

var (
	// ErrNameConflict is returned when a custom category name is already taken
	// by a built-in category, a reserved operation name or an earlier custom category.
	ErrNameConflict = errors.New("category name already in use")

	// ErrInvalidName is returned when a category name is empty.
	ErrInvalidName = errors.New("category name cannot be empty")

	// ErrUnknownCategory is returned when selecting a category that does not exist.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrCategoryKind is returned when a kind-specific selection targets a
	// category of another kind.
	ErrCategoryKind = errors.New("category kind mismatch")

	// ErrUnknownKey is returned when a keyed category has no entry for the key.
	ErrUnknownKey = errors.New("unknown category key")

	// ErrEmptyCategory is returned when a category has nothing to select from.
	ErrEmptyCategory = errors.New("category has no words")

	// ErrInvalidPack is returned when a category pack document is malformed.
	ErrInvalidPack = errors.New("invalid category pack")
)
