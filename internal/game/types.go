// types.go
package game

// RawConfig is the catalog file games/default.yaml.
type RawConfig struct {
	Version  string       `yaml:"version"`
	Profiles []RawProfile `yaml:"profiles"`
	Notes    string       `yaml:"notes,omitempty"`
}

// RawProfile mirrors one profile entry; games/<id>.yaml holds a single one.
// Nil pointers mean "not set here" so that layers can be merged.
type RawProfile struct {
	ID              string      `yaml:"id"`
	Name            string      `yaml:"name,omitempty"`
	Aliases         []string    `yaml:"aliases,omitempty"`
	Main            *PoolConfig `yaml:"main,omitempty"`
	Secondary       *PoolConfig `yaml:"secondary,omitempty"`
	DefaultStrategy string      `yaml:"default_strategy,omitempty"`
}

type PoolConfig struct {
	Range *int `yaml:"range"`
	Count *int `yaml:"count"`
}
