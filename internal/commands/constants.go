package commands

// Common constants used across command implementations
const (
	// AppName is the binary name shown in usage and examples
	AppName = "ue-setup"

	// DefaultCommand runs when the arguments start with a flag
	DefaultCommand = "setup"

	// Command usage patterns
	OptionsUsage = "[OPTIONS]"

	// Exit statuses
	ExitSuccess = 0
	ExitFailure = 1
)
