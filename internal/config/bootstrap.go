package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Bootstrap guarantees a config file exists at path. If nothing exists there,
// defaults is serialized to YAML and written, creating parent directories as
// needed. An existing file is never touched, so repeated calls are no-ops.
//
// Reports whether a new file was written. Filesystem failures wrap
// [ErrIOFailure]; serialization failures wrap [ErrEncodeFailure].
func Bootstrap(path string, defaults Configuration) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("%w: check config file: %w", ErrIOFailure, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("%w: create config dir: %w", ErrIOFailure, err)
	}

	data, err := yaml.Marshal(defaults)
	if err != nil {
		return false, fmt.Errorf("%w: marshal default config: %w", ErrEncodeFailure, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("%w: write config file: %w", ErrIOFailure, err)
	}

	return true, nil
}
