package export

import (
	"fmt"
	"path"

	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/zprofile/internal/identity"
)

// Save writes p to name inside fsys and returns the path written. An empty
// name uses DefaultFilename. Missing parent directories are created.
func Save(fsys zfilesystem.ReadWriteFileFS, name string, f Format, p identity.Profile) (string, error) {
	data, err := Encode(f, p)
	if err != nil {
		return "", fmt.Errorf("save profile: %w", err)
	}

	if name == "" {
		name = DefaultFilename(f)
	}
	if dir := path.Dir(name); dir != "." {
		if err := fsys.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("save profile: create %s: %w", dir, err)
		}
	}

	if err := fsys.WriteFile(name, data, 0o644); err != nil {
		return "", fmt.Errorf("save profile: write %s: %w", name, err)
	}
	return name, nil
}
