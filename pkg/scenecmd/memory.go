package scenecmd

import (
	"context"
	"fmt"
)

// LongTermMemoryStats reports the entry count of the scene's long term memory.
var LongTermMemoryStats Command = &command{
	name:        "long_term_memory_stats",
	aliases:     []string{"ltm_stats"},
	description: "Show stats for the long term memory",
	run: func(ctx context.Context, env *Env, _ []string) error {
		scene, err := env.scene()
		if err != nil {
			return err
		}
		memory, err := scene.Memory()
		if err != nil {
			return fmt.Errorf("%w: memory: %w", ErrAgentUnavailable, err)
		}
		if memory == nil {
			return fmt.Errorf("%w: memory", ErrAgentUnavailable)
		}
		count, err := memory.Count(ctx)
		if err != nil {
			return fmt.Errorf("count memory entries: %w", err)
		}
		env.emit(ctx, "Long term memory for %s has %d entries in the %s database",
			scene.Name(), count, memory.DBName())
		return nil
	},
}

// LongTermMemoryReset commits the scene to long term memory.
var LongTermMemoryReset Command = &command{
	name:        "long_term_memory_reset",
	aliases:     []string{"ltm_reset"},
	description: "Reset the long term memory",
	run: func(ctx context.Context, env *Env, _ []string) error {
		scene, err := env.scene()
		if err != nil {
			return err
		}
		if err := scene.CommitToMemory(ctx); err != nil {
			return fmt.Errorf("commit scene to memory: %w", err)
		}
		env.emit(ctx, "Long term memory for %s has been reset", scene.Name())
		return nil
	},
}
