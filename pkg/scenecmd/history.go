package scenecmd

import (
	"context"
	"fmt"
	"log/slog"
)

// DumpHistory logs every scene history entry at debug level.
var DumpHistory Command = &command{
	name:        "dump_history",
	description: "Dump the history of the scene",
	run: func(ctx context.Context, env *Env, _ []string) error {
		scene, err := env.scene()
		if err != nil {
			return err
		}
		log := env.log()
		for i, entry := range scene.History() {
			log.DebugContext(ctx, "dump_history", slog.Int("index", i), slog.Any("entry", entry))
		}
		return nil
	},
}

// DumpSceneSerialization logs the serialized scene at debug level.
var DumpSceneSerialization Command = &command{
	name:        "dump_scene_serialization",
	description: "Dump the scene serialization",
	run: func(ctx context.Context, env *Env, _ []string) error {
		scene, err := env.scene()
		if err != nil {
			return err
		}
		data, err := scene.Serialize()
		if err != nil {
			return fmt.Errorf("serialize scene: %w", err)
		}
		env.log().DebugContext(ctx, "dump_scene_serialization", slog.Any("serialization", data))
		return nil
	},
}
