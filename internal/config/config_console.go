package config

import (
	"fmt"
)

// ConsoleConfig is the configuration view used by the terminal console.
// The console talks to the upstream APIs directly and keeps its audit log
// in a local SQLite file.
type ConsoleConfig struct {
	// Adapter contains the upstream addresses and timeout.
	Adapter Adapter
	// Storage contains the SQLite file path.
	Storage Storage
	// DefaultLocale selects the console language.
	DefaultLocale string
}

// GetConsoleConfig builds and validates a console config from the merged
// structured configuration. Server-only groups are not required.
func GetConsoleConfig() (*ConsoleConfig, error) {
	cfg, err := loadStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	consoleCfg := &ConsoleConfig{
		Adapter:       cfg.Adapter,
		Storage:       cfg.Storage,
		DefaultLocale: cfg.App.DefaultLocale,
	}

	return consoleCfg, consoleCfg.validate()
}
