// Package logger builds *slog.Logger values from functional options and
// keeps attribute names consistent across talekit.
//
// New picks a JSON or text handler, applies static attributes and, when
// context extractors are registered, wraps the handler so each record also
// carries values pulled from its context (a CLI run id, for instance).
//
// # Runtime level
//
// WithLevelVar binds the handler to a *slog.LevelVar. Changing the variable
// later changes what the logger emits without rebuilding it; the console
// commands debug_on and debug_off rely on this.
//
//	level := new(slog.LevelVar)
//	log := logger.New(
//	    logger.WithLevelVar(level),
//	    logger.WithEnvironment("development", "thematic"),
//	    logger.WithContextValue("run_id", runIDKey{}),
//	)
//	level.Set(slog.LevelInfo)
//
// # Attributes
//
// Helpers such as Error, Scene, Command, Category and Seed return slog.Attr
// values. Error and Errors return an empty Attr for nil errors, so
//
//	log.Info("pack installed", logger.Error(err))
//
// needs no nil check.
package logger
