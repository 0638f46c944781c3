package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultConfigFile = "config.yaml"

// parseYAML overlays cfg with values from a YAML file. The file is named by
// TWEETX_CONFIG, falling back to config.yaml; a missing file is not an error.
func parseYAML(cfg *Config) error {
	name := os.Getenv("TWEETX_CONFIG")
	if name == "" {
		name = defaultConfigFile
	}

	data, err := os.ReadFile(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}

	return yaml.Unmarshal(data, cfg)
}
