// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` for `.env` files and
// `github.com/caarlos0/env/v11` for struct-tag parsing:
//
//   - LoadEnv / MustLoadEnv read one or more `.env` files into the process
//     environment (default `./.env`).
//   - Load / MustLoad parse the environment into any struct type and cache the
//     result per type, so repeated loads are map lookups.
//   - ForceReload and ResetCache drop cached values after the environment
//     changes, mostly in tests.
//
// # Usage
//
//	type GeneratorConfig struct {
//	    Seed     int64  `env:"THEMATIC_SEED"`
//	    Pack     string `env:"THEMATIC_PACK"`
//	    LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg GeneratorConfig
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// # Error Handling
//
// Sentinel errors are matched with errors.Is:
//
//   - ErrParsingConfig: the environment does not satisfy the struct tags.
//   - ErrInvalidConfigType: the target is not a struct.
//   - ErrNilPointer: nil passed to Load or MustLoad.
//   - ErrLoadingEnvFile: a `.env` file is missing or malformed.
package config
