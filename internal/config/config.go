// Package config handles runtime configuration for the TweetX server,
// including defaults, an optional YAML overlay, and environment variables.
package config

import "time"

// Config holds runtime settings for the TweetX server.
//
// Fields:
//   - Addr: bind address for the HTTP endpoint.
//   - MongoURI: MongoDB connection string.
//   - Database: name of the database holding the users and posts collections.
//   - SessionTTL: lifetime of the session cookie.
type Config struct {
	Addr       string        `yaml:"addr"`
	MongoURI   string        `yaml:"mongo_uri"`
	Database   string        `yaml:"database"`
	SessionTTL time.Duration `yaml:"session_ttl"`
}

// LoadDefaults populates Config with development defaults.
// NOTE: override these for any real deployment.
func (c *Config) LoadDefaults() {
	c.Addr = ":8080"
	c.MongoURI = "mongodb://localhost:27017"
	c.Database = "tweetx"
	c.SessionTTL = 7 * 24 * time.Hour
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional YAML file and finally from environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseYAML(cfg); err != nil {
		return nil, err
	}
	parseEnv(cfg)
	return cfg, nil
}
