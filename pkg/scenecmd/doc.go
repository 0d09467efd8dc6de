// Package scenecmd implements the developer commands of the storytelling
// console: log level toggles, long term memory stats and reset, history and
// scene dumps, and summarizer triggers.
//
// Each command is a thin delegation to a collaborator supplied through Env
// (the scene, the agents, the prompt system, the console emitter). The
// console owns input parsing, alias resolution and dispatch; All lists the
// commands so it can register them.
//
//	level := new(slog.LevelVar)
//	env := &scenecmd.Env{
//	    Scene:   scene,
//	    Agents:  agents,
//	    Emitter: console,
//	    Logger:  logger.New(logger.WithLevelVar(level)),
//	    Level:   level,
//	}
//	err := scenecmd.DebugOn.Run(ctx, env, nil)
//
// Commands that need an argument emit a system message and return
// ErrMissingArgument when it is absent.
package scenecmd
