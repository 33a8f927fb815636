package source

import "os"

// Loader is the filesystem collaborator used by AddIncludeFile. The registry
// only ever asks it for a direct filename or an include-dir candidate; any
// other path logic lives with the implementation.
type Loader interface {
	Load(path string) ([]byte, error)
}

type osLoader struct{}

func (osLoader) Load(path string) ([]byte, error) {
	// #nosec G304 -- path is provided by the caller
	return os.ReadFile(path)
}
