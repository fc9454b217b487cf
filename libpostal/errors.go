package libpostal

import "fmt"

// SetupError reports that a native subsystem either failed to initialize
// (typically because the libpostal data files are missing or the binary was
// built without the library) or was used before a lifecycle token covering it
// was acquired. It is always returned as a value; the library never exits the
// process on setup failure.
type SetupError struct {
	// Stage is "base", "parser" or "classifier".
	Stage string
	// Reason distinguishes "native setup failed" from "not initialized".
	Reason string
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("libpostal: %s setup: %s", e.Stage, e.Reason)
}

// InvalidInputError reports an input string that cannot cross the
// null-terminated C string boundary because it contains an embedded NUL
// byte. It is raised before any native call is made; the caller may retry
// with sanitized input.
type InvalidInputError struct {
	// Field names the offending input: "address", "language" or "country".
	Field string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("libpostal: %s contains an embedded null byte", e.Field)
}
