package scenecmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"

	"github.com/dmitrymomot/talekit/pkg/logger"
)

type (
	// Command is one console command. Parsing the input line, resolving
	// aliases and dispatching belong to the console.
	Command interface {
		Name() string
		Aliases() []string
		Description() string
		Run(ctx context.Context, env *Env, args []string) error
	}

	// Scene is the running scene the commands act upon.
	Scene interface {
		Name() string
		// Memory returns the long term memory agent attached to the scene.
		Memory() (MemoryAgent, error)
		CommitToMemory(ctx context.Context) error
		SetContentContext(value string)
		// SetPlayerAIControlled hands the player character to the AI for the
		// given number of turns.
		SetPlayerAIControlled(turns int) error
		History() []any
		ResetLayeredHistory()
		Serialize() (json.RawMessage, error)
	}

	// MemoryAgent is the long term memory store of a scene.
	MemoryAgent interface {
		Count(ctx context.Context) (int, error)
		DBName() string
	}

	// Summarizer condenses scene history into timelines and a layered archive.
	Summarizer interface {
		GenerateTimeline(ctx context.Context) error
		SummarizeToLayeredHistory(ctx context.Context) error
		DigLayeredHistory(ctx context.Context, query string) error
	}

	// Agents looks up the process-wide agents.
	Agents interface {
		Summarizer(ctx context.Context) (Summarizer, error)
	}

	// Prompts controls the prompt rendering system.
	Prompts interface {
		SetDefaultSectioningHandler(name string) error
	}

	// Emitter delivers messages to the player's console.
	Emitter interface {
		Emit(ctx context.Context, kind MessageKind, text string)
	}
)

// MessageKind classifies emitted console messages.
type MessageKind string

// System marks messages produced by the application itself.
const System MessageKind = "system"

// Env carries the collaborators a command may need. Commands only touch the
// fields they use; a missing one fails with ErrMissingCollaborator.
type Env struct {
	Scene   Scene
	Agents  Agents
	Prompts Prompts
	Emitter Emitter
	Logger  *slog.Logger
	// Level is the runtime log level toggled by debug_on and debug_off.
	Level *slog.LevelVar
}

func (e *Env) log() *slog.Logger {
	if e.Logger == nil {
		return logger.Discard()
	}
	return e.Logger
}

func (e *Env) emit(ctx context.Context, format string, args ...any) {
	text := fmt.Sprintf(format, args...)
	if e.Emitter == nil {
		e.log().InfoContext(ctx, text, slog.String("kind", string(System)))
		return
	}
	e.Emitter.Emit(ctx, System, text)
}

func (e *Env) scene() (Scene, error) {
	if e.Scene == nil {
		return nil, fmt.Errorf("%w: scene", ErrMissingCollaborator)
	}
	return e.Scene, nil
}

func (e *Env) summarizer(ctx context.Context) (Summarizer, error) {
	if e.Agents == nil {
		return nil, fmt.Errorf("%w: agents", ErrMissingCollaborator)
	}
	s, err := e.Agents.Summarizer(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: summarizer: %w", ErrAgentUnavailable, err)
	}
	if s == nil {
		return nil, fmt.Errorf("%w: summarizer", ErrAgentUnavailable)
	}
	return s, nil
}

// command is the shared Command implementation.
type command struct {
	name        string
	aliases     []string
	description string
	run         func(ctx context.Context, env *Env, args []string) error
}

func (c *command) Name() string        { return c.name }
func (c *command) Aliases() []string   { return slices.Clone(c.aliases) }
func (c *command) Description() string { return c.description }

func (c *command) Run(ctx context.Context, env *Env, args []string) error {
	if env == nil {
		return fmt.Errorf("%s: %w: env", c.name, ErrMissingCollaborator)
	}
	log := env.log().With(logger.Component("scenecmd"), logger.Command(c.name))
	if s := env.Scene; s != nil {
		log = log.With(logger.Scene(s.Name()))
	}

	if err := c.run(ctx, env, args); err != nil {
		log.DebugContext(ctx, "command failed", logger.Error(err))
		return fmt.Errorf("%s: %w", c.name, err)
	}
	log.DebugContext(ctx, "command finished")
	return nil
}

// All returns the built-in commands in a stable order.
func All() []Command {
	return []Command{
		DebugOn,
		DebugOff,
		PromptChangeSectioning,
		RunAutomatic,
		LongTermMemoryStats,
		LongTermMemoryReset,
		SetContentContext,
		DumpHistory,
		DumpSceneSerialization,
		SummarizerGenerateTimeline,
		SummarizerUpdateLayeredHistory,
		SummarizerResetLayeredHistory,
		SummarizerDigLayeredHistory,
	}
}
