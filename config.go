package routecheck

import (
	"os"

	"gopkg.in/yaml.v2"
)

// DefaultFrameworkCacheSize bounds the framework-hint cache used by
// extraction layers; the engine only carries the knob through.
const DefaultFrameworkCacheSize = 500

// Config carries every option the engine recognizes. Zero values are
// replaced by defaults in normalize, so a partially populated Config
// (e.g. from YAML) is always usable.
type Config struct {
	// NormalizationLevel controls canonicalization strictness: 0 keeps
	// paths as written, 1+ replaces dynamic segments with canonical
	// tokens before comparison.
	NormalizationLevel int `yaml:"normalization_level"`
	// PreserveConstraints is threaded through to normalization cache
	// keys; constraint text never appears in canonical output.
	PreserveConstraints bool `yaml:"preserve_constraints"`
	// WarnOnStaticVsDynamic surfaces non-exact conflict kinds. Nil
	// means the default (true).
	WarnOnStaticVsDynamic *bool `yaml:"warn_on_static_vs_dynamic"`
	// MaxRouterDepth caps mount-chain nesting, clamped to 1..10.
	MaxRouterDepth int `yaml:"max_router_depth"`

	NormalizeCacheSize int `yaml:"normalize_cache_size"`
	FrameworkCacheSize int `yaml:"framework_cache_size"`
	PrefixCacheSize    int `yaml:"prefix_cache_size"`

	// Include and Exclude are glob patterns matched against file paths
	// before a file's events are processed.
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`
}

// DefaultConfig returns a fully populated configuration.
func DefaultConfig() Config {
	warn := true
	return Config{
		NormalizationLevel:    1,
		WarnOnStaticVsDynamic: &warn,
		MaxRouterDepth:        DefaultMaxRouterDepth,
		NormalizeCacheSize:    DefaultNormalizeCacheSize,
		FrameworkCacheSize:    DefaultFrameworkCacheSize,
		PrefixCacheSize:       DefaultPrefixCacheSize,
	}
}

// LoadConfig reads a YAML configuration file. The file is decoded
// over a fully populated default, so explicit keys always win —
// including explicit zeros like normalization_level: 0 — and unset
// keys keep their defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), err
	}

	return cfg.normalize(), nil
}

// WarnNonExact reports whether non-exact conflict kinds should be
// surfaced.
func (c Config) WarnNonExact() bool {
	if c.WarnOnStaticVsDynamic == nil {
		return true
	}
	return *c.WarnOnStaticVsDynamic
}

func (c Config) normalize() Config {
	if c.NormalizationLevel < 0 {
		c.NormalizationLevel = 0
	}
	if c.NormalizationLevel > 2 {
		c.NormalizationLevel = 2
	}
	if c.MaxRouterDepth < minRouterDepth || c.MaxRouterDepth > maxRouterDepth {
		c.MaxRouterDepth = DefaultMaxRouterDepth
	}
	if c.NormalizeCacheSize <= 0 {
		c.NormalizeCacheSize = DefaultNormalizeCacheSize
	}
	if c.FrameworkCacheSize <= 0 {
		c.FrameworkCacheSize = DefaultFrameworkCacheSize
	}
	if c.PrefixCacheSize <= 0 {
		c.PrefixCacheSize = DefaultPrefixCacheSize
	}
	return c
}
