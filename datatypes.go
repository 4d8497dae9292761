package menace

import (
	"os"

	"github.com/gorgonia/menace/game"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config configures how MENACE fills its matchboxes and how it is rewarded.
type Config struct {
	InitialBeads int `yaml:"initial_beads"` // beads per legal move in a new matchbox
	TieReward    int `yaml:"tie_reward"`    // beads added to every drawn move after a tie
	WinReward    int `yaml:"win_reward"`    // beads added to every drawn move after a win
}

// DefaultConfig is the configuration of the original matchbox machine: three beads per move, one bead for a tie
// and three for a win.
func DefaultConfig() Config {
	return Config{
		InitialBeads: 3,
		TieReward:    1,
		WinReward:    3,
	}
}

func (c Config) IsValid() bool {
	return c.InitialBeads >= 1 &&
		c.TieReward >= 0 &&
		c.WinReward >= 0
}

// LoadConfig reads a YAML config. Fields that are not in the file keep their default values.
func LoadConfig(filename string) (Config, error) {
	conf := DefaultConfig()
	bs, err := os.ReadFile(filename)
	if err != nil {
		return conf, errors.WithStack(err)
	}
	if err = yaml.Unmarshal(bs, &conf); err != nil {
		return conf, errors.Wrapf(err, "Unable to parse %s", filename)
	}
	if !conf.IsValid() {
		return conf, errors.Errorf("Config in %s is not valid: %+v", filename, conf)
	}
	return conf, nil
}

// OutputEncoder encodes the entire meta state as whatever.
//
// An example OutputEncoder is the GifEncoder. Another example would be a logger.
type OutputEncoder interface {
	Encode(ms game.MetaState) error
	Flush() error
}
