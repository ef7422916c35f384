package types

import "github.com/m-mizutani/goerr/v2"

// Fatal error kinds of version calculation. Callers match them with errors.Is.
var (
	// ErrInvalidVersion indicates a proposed version string that does not parse
	// as semantic versioning 2.0.0
	ErrInvalidVersion = goerr.New("invalid version")

	// ErrUnsupportedEvent indicates an event name the calculator does not handle
	ErrUnsupportedEvent = goerr.New("unsupported event")

	// ErrInvalidCommitDate indicates a commit timestamp that could not be parsed
	ErrInvalidCommitDate = goerr.New("invalid commit date")

	// ErrInvalidMajorVersion indicates a non-integer explicit major version input
	ErrInvalidMajorVersion = goerr.New("invalid major version input")
)
