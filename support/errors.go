package support

import "errors"

// Sentinel errors returned by support operations.
//
// "Not found" conditions are never errors in this package: lookups return
// the zero value (and false), and text searches return the receiver.
var (
	// ErrMacroNotFound is returned when an unregistered macro name is called.
	ErrMacroNotFound = errors.New("support: macro not found")

	// ErrInvalidPattern wraps the compiler diagnostic of a string that is not
	// a usable pattern. It is only ever visible through [Pattern.Err];
	// [IsRegex] reports such strings as false.
	ErrInvalidPattern = errors.New("support: invalid pattern")

	// ErrUnknownHashAlgorithm is returned by [Text.Hash] for an algorithm
	// name that has not been registered.
	ErrUnknownHashAlgorithm = errors.New("support: unknown hash algorithm")

	// ErrEmptyAlgorithmName is returned by [RegisterHashAlgorithm] when the
	// supplied name is an empty string.
	ErrEmptyAlgorithmName = errors.New("support: hash algorithm name must not be empty")

	// ErrNilHashFactory is returned by [RegisterHashAlgorithm] when a nil
	// constructor is supplied.
	ErrNilHashFactory = errors.New("support: hash constructor must not be nil")
)
