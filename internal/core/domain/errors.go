package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown backend type.
	ErrUnsupportedType = errors.New("unsupported type")

	// Prefix Errors.

	// ErrPrefixEmpty indicates no prefix was supplied.
	ErrPrefixEmpty = errors.New("prefix cannot be empty")

	// ErrPrefixInvalid indicates the prefix contains a character that is
	// not legal in a layer name.
	ErrPrefixInvalid = errors.New("prefix contains an illegal character")

	// File Errors.

	// ErrFileNotSpecified indicates a required file path was not supplied.
	ErrFileNotSpecified = errors.New("file not specified")

	// ErrFileNotFound indicates the input file does not exist.
	ErrFileNotFound = errors.New("input file not found")

	// ErrFormatIncompatible indicates the file extension is not compatible
	// with the selected backend.
	ErrFormatIncompatible = errors.New("file format not compatible with selected backend")

	// Backend Errors.

	// ErrBackendUnavailable indicates the backend cannot run on this
	// platform or the application it drives is not installed.
	ErrBackendUnavailable = errors.New("backend unavailable")

	// ErrLayersRequired indicates the backend cannot enumerate layers and
	// needs an explicit layer list on the job.
	ErrLayersRequired = errors.New("backend requires an explicit layer list")

	// ErrApplicationBusy indicates the automated application rejected the
	// call because it is busy. Reported verbatim; the user retries manually.
	ErrApplicationBusy = errors.New("application rejected the call: busy")

	// ErrFileLocked indicates the drawing file is open in another process.
	ErrFileLocked = errors.New("file is locked by another process")
)
