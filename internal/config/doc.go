// Package config resolves the runtime configuration of the karaoke player.
//
// A [Configuration] is assembled from three precedence layers, applied in
// this fixed order (later layers win):
//  1. Built-in defaults ([Default])
//  2. The YAML config file, created from the defaults on first run
//     ([Bootstrap], [Merge])
//  3. Runtime overrides from command-line flags and KARAOKE_* environment
//     variables ([Overrides])
//
// The main entry points are [GetConfig] for application startup and
// [Resolve] for callers that already hold a [Paths] context and an
// [Overrides] set.
package config
