package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// cache keeps one parsed copy per configuration type.
type cache struct {
	mu     sync.RWMutex
	values map[reflect.Type]any
}

var (
	globalCache = &cache{values: make(map[reflect.Type]any)}

	defaultEnvOnce sync.Once
)

// LoadEnv loads variables from the given .env files, or from ./.env when no
// path is given. Later files override earlier ones; variables already present
// in the process environment are overridden as well, so an explicit file
// always wins over ambient state.
func LoadEnv(paths ...string) error {
	// An explicit load replaces the implicit ./.env load done by Load.
	defaultEnvOnce.Do(func() {})
	if len(paths) == 0 {
		if err := godotenv.Overload(); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
		return nil
	}
	if err := godotenv.Overload(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv is LoadEnv that panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}
}

// Load parses environment variables into v according to its `env` tags.
// The first successful parse of a type is cached and returned by later calls;
// a failed parse is not cached.
//
// Before the first parse the default ./.env file is loaded if present,
// without overriding variables that are already set.
//
//	type GeneratorConfig struct {
//		Seed int64  `env:"THEMATIC_SEED"`
//		Pack string `env:"THEMATIC_PACK"`
//	}
//
//	var cfg GeneratorConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	defaultEnvOnce.Do(func() {
		// A missing .env file is fine.
		_ = godotenv.Load()
	})

	key := typeKey[T]()
	if key.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %s", ErrInvalidConfigType, key)
	}

	globalCache.mu.RLock()
	cached, ok := globalCache.values[key]
	globalCache.mu.RUnlock()
	if ok {
		*v = cached.(T)
		return nil
	}

	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()

	// Another goroutine may have parsed it while we waited for the lock.
	if cached, ok := globalCache.values[key]; ok {
		*v = cached.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	globalCache.values[key] = parsed
	*v = parsed
	return nil
}

// MustLoad is Load that panics on failure.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// ForceReload drops the cached copy of T and parses it again.
func ForceReload[T any](v *T) error {
	globalCache.mu.Lock()
	delete(globalCache.values, typeKey[T]())
	globalCache.mu.Unlock()
	return Load(v)
}

// ResetCache forgets every cached configuration. Intended for tests.
func ResetCache() {
	globalCache.mu.Lock()
	globalCache.values = make(map[reflect.Type]any)
	globalCache.mu.Unlock()
}

func typeKey[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}
