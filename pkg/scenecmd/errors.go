package scenecmd

import "errors"

var (
	// ErrMissingArgument is returned when a command requires an argument that was not given.
	ErrMissingArgument = errors.New("missing command argument")

	// ErrInvalidArgument is returned when an argument cannot be interpreted.
	ErrInvalidArgument = errors.New("invalid command argument")

	// ErrMissingCollaborator is returned when Env lacks a dependency the command needs.
	ErrMissingCollaborator = errors.New("command environment is missing a collaborator")

	// ErrAgentUnavailable is returned when an agent lookup fails.
	ErrAgentUnavailable = errors.New("agent unavailable")
)
