package list

// Version information for the list module.
const (
	// Version is the current version of the list module.
	Version = "1.0.0"

	// MinCompatibleVersion is the minimum version that is compatible with this version.
	MinCompatibleVersion = "1.0.0"
)
