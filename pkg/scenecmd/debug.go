package scenecmd

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// defaultAutomaticTurns is used by run_automatic when no turn count is given.
const defaultAutomaticTurns = 10

// DebugOn lowers the runtime log level to debug.
var DebugOn Command = &command{
	name:        "debug_on",
	description: "Turn on debug mode",
	run: func(_ context.Context, env *Env, _ []string) error {
		return setLevel(env, slog.LevelDebug)
	},
}

// DebugOff restores the runtime log level to info.
var DebugOff Command = &command{
	name:        "debug_off",
	description: "Turn off debug mode",
	run: func(_ context.Context, env *Env, _ []string) error {
		return setLevel(env, slog.LevelInfo)
	},
}

// PromptChangeSectioning sets the default sectioning handler of the prompt system.
var PromptChangeSectioning Command = &command{
	name:        "_prompt_change_sectioning",
	description: "Change the sectioning handler for the prompt system",
	run: func(ctx context.Context, env *Env, args []string) error {
		if len(args) == 0 {
			env.emit(ctx, "You must specify a sectioning handler")
			return fmt.Errorf("%w: sectioning handler", ErrMissingArgument)
		}
		if env.Prompts == nil {
			return fmt.Errorf("%w: prompts", ErrMissingCollaborator)
		}
		handler := args[0]
		if err := env.Prompts.SetDefaultSectioningHandler(handler); err != nil {
			return fmt.Errorf("set sectioning handler %q: %w", handler, err)
		}
		env.emit(ctx, "Sectioning handler set to %s", handler)
		return nil
	},
}

// RunAutomatic hands the player character to the AI for n turns, 10 by default.
var RunAutomatic Command = &command{
	name:        "run_automatic",
	aliases:     []string{"auto"},
	description: "Will make the player character AI controlled for n turns",
	run: func(ctx context.Context, env *Env, args []string) error {
		turns := defaultAutomaticTurns
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return fmt.Errorf("%w: turns must be a positive integer, got %q", ErrInvalidArgument, args[0])
			}
			turns = n
		}
		scene, err := env.scene()
		if err != nil {
			return err
		}
		env.emit(ctx, "Making player character AI controlled for %d turns", turns)
		return scene.SetPlayerAIControlled(turns)
	},
}

// SetContentContext sets the content context of the scene from its arguments.
var SetContentContext Command = &command{
	name:        "set_content_context",
	aliases:     []string{"set_context"},
	description: "Set the content context for the scene",
	run: func(ctx context.Context, env *Env, args []string) error {
		value := strings.TrimSpace(strings.Join(args, " "))
		if value == "" {
			env.emit(ctx, "You must specify a context")
			return fmt.Errorf("%w: context", ErrMissingArgument)
		}
		scene, err := env.scene()
		if err != nil {
			return err
		}
		scene.SetContentContext(value)
		env.emit(ctx, "Content context set to %s", value)
		return nil
	},
}

func setLevel(env *Env, level slog.Level) error {
	if env.Level == nil {
		return fmt.Errorf("%w: log level", ErrMissingCollaborator)
	}
	env.Level.Set(level)
	return nil
}
