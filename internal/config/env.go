// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every `env` tag of [Overrides].
const EnvPrefix = "KARAOKE_"

// parseEnv populates o from KARAOKE_* environment variables using the
// caarlos0/env library. Unset variables leave their field nil.
//
// Returns an error wrapping [ErrInvalidOverride] if a value cannot be
// converted to the target type (e.g. KARAOKE_PORT=70000).
func parseEnv(o *Overrides) error {
	err := env.ParseWithOptions(o, env.Options{Prefix: EnvPrefix})
	if err != nil {
		return fmt.Errorf("%w: error getting env overrides: %w", ErrInvalidOverride, err)
	}

	return nil
}
