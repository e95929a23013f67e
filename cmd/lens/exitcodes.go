package main

// Exit codes used across all lens commands.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (bad config file, invalid dataset)
	ExitDataError   = 3 // Data error (malformed input file)
	ExitLookupError = 4 // Fallback lookup failed
)
