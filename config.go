package physics

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// EngineConfig bundles the defaults an application otherwise has to
// hand-assemble: the tolerance profile new rules start from, the clock's
// cycle-limit safety valve, and the log level for the engine's logger.
//
// Grounded on the sibling networked-simulation lineage's internal/core/npc
// loader.Config, which decodes a YAML document into a struct consumed by
// the rest of the package via LoadYAML; simplified here to the flat set
// of knobs this engine actually exposes.
type EngineConfig struct {
	DefaultTolerance ToleranceProfile `yaml:"defaultTolerance"`
	RunToCycleLimit  int              `yaml:"runToCycleLimit"`
	LogLevel         string           `yaml:"logLevel"`
}

// DefaultEngineConfig matches the defaults spec.md assigns inline
// (RunToCycleLimit of 10,000, plus a permissive tolerance profile).
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		DefaultTolerance: ToleranceProfile{
			CloseCollisionThreshold: 1e-6,
			DirectionalTolerance:    1e-3,
		},
		RunToCycleLimit: DefaultRunToCycleLimit,
		LogLevel:        "info",
	}
}

// LoadConfig decodes an EngineConfig from YAML, filling any field the
// document omits from DefaultEngineConfig.
func LoadConfig(r io.Reader) (EngineConfig, error) {
	cfg := DefaultEngineConfig()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return EngineConfig{}, errors.Wrap(err, "physics: decode engine config")
	}
	if cfg.RunToCycleLimit <= 0 {
		cfg.RunToCycleLimit = DefaultRunToCycleLimit
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return cfg, nil
}

// NewClock builds a Clock configured from cfg, with logging wired to
// cfg.LogLevel.
func (cfg EngineConfig) NewClock() *Clock {
	return NewClock(NewLogger(cfg.LogLevel), cfg.RunToCycleLimit)
}
