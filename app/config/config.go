package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MatcherCfg controls how export rows are joined with the roster.
type MatcherCfg struct {
	// FilterToRoster keeps only rows matching a roster entry. When false the
	// whole export is billed and the match flag is informational.
	FilterToRoster bool `yaml:"filter_to_roster"`
	// Synonyms maps roster building keys to accepted dataset keys. Empty
	// means the built-in production table.
	Synonyms map[string][]string `yaml:"synonyms"`
}

// AllowanceCfg is the two-table allowance configuration: an exact-address
// special-limit table consulted first, then an address→room-count table
// resolved through per-room-count limits. It is keyed by address strings,
// never by parsed keys.
type AllowanceCfg struct {
	Default    float64            `yaml:"default"`
	RoomLimits map[int]float64    `yaml:"room_limits"`
	Rooms      map[string]int     `yaml:"rooms"`
	Special    map[string]float64 `yaml:"special"`
}

// Config is the full processing-run configuration. It is passed explicitly
// into the services that need it; nothing here is package-level state.
type Config struct {
	Roster    []string     `yaml:"roster"`
	Matcher   MatcherCfg   `yaml:"matcher"`
	Allowance AllowanceCfg `yaml:"allowance"`
}

// Load reads a YAML config file over the built-in defaults. Absent keys keep
// their default values, so a config file only has to name what it changes.
func Load(path string) (*Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	// ENV override, useful when re-running a month without editing the file.
	switch os.Getenv("FILTER_TO_ROSTER") {
	case "0":
		cfg.Matcher.FilterToRoster = false
	case "1":
		cfg.Matcher.FilterToRoster = true
	}
	return cfg, nil
}

// Default returns the production configuration for the managed portfolio.
func Default() *Config {
	return &Config{
		Roster:  defaultRoster(),
		Matcher: MatcherCfg{FilterToRoster: true},
		Allowance: AllowanceCfg{
			Default: 50,
			RoomLimits: map[int]float64{
				1: 50,
				2: 70,
				3: 100,
				4: 130,
			},
			Rooms:   defaultRooms(),
			Special: map[string]float64{"Padilla 1º 3ª": 150},
		},
	}
}
