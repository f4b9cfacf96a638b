package config

import "errors"

// Failure classes returned by configuration resolution. Every error produced
// by this package wraps exactly one of them, so callers can tell bootstrap-time
// failures from merge-time failures with [errors.Is] while the underlying
// cause stays available in the message.
var (
	// ErrIOFailure indicates a filesystem failure: resolving or creating the
	// default directories, checking for the config file, creating its parent
	// directory, or reading or writing it.
	ErrIOFailure = errors.New("config i/o failure")

	// ErrEncodeFailure indicates the default configuration could not be
	// serialized while bootstrapping a new config file.
	ErrEncodeFailure = errors.New("config encode failure")

	// ErrDecodeFailure indicates the config file has invalid YAML syntax or
	// holds a field of an incompatible type.
	ErrDecodeFailure = errors.New("config decode failure")

	// ErrInvalidOverride indicates a command-line flag or environment
	// variable carried a value that cannot be converted to its field type.
	ErrInvalidOverride = errors.New("invalid config override")
)
