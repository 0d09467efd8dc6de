package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups the non-nil errors under "errors", keyed by argument position.
// It returns an empty Attr when every error is nil.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under "error". A nil error yields an empty Attr, so it
// can be passed unconditionally.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the package or subsystem emitting the record.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Command records a console command name.
func Command(name string) slog.Attr {
	return slog.String("command", name)
}

// Scene records the scene name. Empty names yield an empty Attr.
func Scene(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("scene", name)
}

// Category records the generator categories involved in a draw.
func Category(name string) slog.Attr {
	return slog.String("category", name)
}

// Seed records a generator seed; ok=false means the generator is unseeded.
func Seed(seed int64, ok bool) slog.Attr {
	if !ok {
		return slog.String("seed", "none")
	}
	return slog.Int64("seed", seed)
}

// RunID records the identifier of one CLI invocation.
func RunID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("run_id", id)
}

// Duration records how long an operation took.
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}
