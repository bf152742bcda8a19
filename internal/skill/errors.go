package skill

import (
	"fmt"

	"github.com/agentx-labs/skillcheck/internal/platform"
)

// Root roles used in RootError messages.
const (
	RoleSource = "source"
	RoleImport = "import"
)

// RootError reports a root path that does not exist or is not a directory.
type RootError struct {
	Role string // "source", "import", or empty for a plain scan root
	Path string
}

func (e *RootError) Error() string {
	if e.Role == "" {
		return fmt.Sprintf("root does not exist: %s", e.Path)
	}
	return fmt.Sprintf("%s root does not exist: %s", e.Role, e.Path)
}

// RequireDir returns a *RootError unless path is an existing directory.
func RequireDir(role, path string) error {
	if !platform.IsDir(path) {
		return &RootError{Role: role, Path: path}
	}
	return nil
}
