package scenecmd

import (
	"context"
	"fmt"
	"strings"
)

// SummarizerGenerateTimeline asks the summarizer to rebuild the timeline.
var SummarizerGenerateTimeline Command = &command{
	name:        "summarizer_generate_timeline",
	aliases:     []string{"generate_timeline"},
	description: "Generate a timeline from the scene",
	run: func(ctx context.Context, env *Env, _ []string) error {
		s, err := env.summarizer(ctx)
		if err != nil {
			return err
		}
		return s.GenerateTimeline(ctx)
	},
}

// SummarizerUpdateLayeredHistory summarizes new history into the layered archive.
var SummarizerUpdateLayeredHistory Command = &command{
	name:        "summarizer_updated_layered_history",
	aliases:     []string{"update_layered_history"},
	description: "Update the stepped archive for the summarizer",
	run: func(ctx context.Context, env *Env, _ []string) error {
		s, err := env.summarizer(ctx)
		if err != nil {
			return err
		}
		return s.SummarizeToLayeredHistory(ctx)
	},
}

// SummarizerResetLayeredHistory clears the layered archive and summarizes it again.
var SummarizerResetLayeredHistory Command = &command{
	name:        "summarizer_reset_layered_history",
	aliases:     []string{"reset_layered_history"},
	description: "Reset the stepped archive for the summarizer",
	run: func(ctx context.Context, env *Env, _ []string) error {
		scene, err := env.scene()
		if err != nil {
			return err
		}
		// Resolve the agent first so a missing summarizer leaves the archive intact.
		s, err := env.summarizer(ctx)
		if err != nil {
			return err
		}
		scene.ResetLayeredHistory()
		return s.SummarizeToLayeredHistory(ctx)
	},
}

// SummarizerDigLayeredHistory queries the layered archive with the joined arguments.
var SummarizerDigLayeredHistory Command = &command{
	name:        "summarizer_dig_layered_history",
	aliases:     []string{"dig_layered_history"},
	description: "Dig into the layered history",
	run: func(ctx context.Context, env *Env, args []string) error {
		query := strings.TrimSpace(strings.Join(args, " "))
		if query == "" {
			env.emit(ctx, "You must specify a query")
			return fmt.Errorf("%w: query", ErrMissingArgument)
		}
		s, err := env.summarizer(ctx)
		if err != nil {
			return err
		}
		return s.DigLayeredHistory(ctx, query)
	},
}
