package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// overridesBuilder collects [Overrides] from several sources. Sources added
// first take precedence: a later source only fills overrides that are still
// absent.
type overridesBuilder struct {
	sources []*Overrides
	err     error
}

func newOverridesBuilder() *overridesBuilder {
	return &overridesBuilder{
		sources: make([]*Overrides, 0, 2),
	}
}

func (b *overridesBuilder) build() (*Overrides, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building overrides: %w", b.err)
	}

	overrides := new(Overrides)
	for _, src := range b.sources {
		// WithoutDereference keeps an override that is already set, even to
		// false or 0, from being replaced by a later source.
		if err := mergo.Merge(overrides, src, mergo.WithoutDereference); err != nil {
			return nil, fmt.Errorf("%w: error merging overrides: %w", ErrInvalidOverride, err)
		}
	}

	return overrides, nil
}

func (b *overridesBuilder) withFlags(args []string) *overridesBuilder {
	flagOverrides, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.sources = append(b.sources, flagOverrides)
	return b
}

func (b *overridesBuilder) withEnv() *overridesBuilder {
	envOverrides := &Overrides{}
	if err := parseEnv(envOverrides); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.sources = append(b.sources, envOverrides)
	return b
}
