// Package config loads the runtime settings from the environment.
package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// ViewerUser makes the run resolve the user from the GitHub token.
const ViewerUser = "@me"

const (
	defaultUser    = "0x2b3bfa0"
	defaultOrg     = "iterative"
	defaultChannel = "U01NS7060QJ"
)

// ErrMissingSlackToken is returned when a post is requested without SLACK_TOKEN.
var ErrMissingSlackToken = errors.New("SLACK_TOKEN environment variable is not set")

// Config holds the settings of one run.
type Config struct {
	GitHubToken string
	SlackToken  string
	User        string
	Org         string
	Channel     string
	LogLevel    string
	LogFormat   string
}

// Load reads the configuration. A .env file in the working directory is
// loaded first without overriding variables that are already set.
func Load() *Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads the configuration from the process environment only.
// STANDUP_ORG set to an empty value disables the organization filter.
func FromEnv() *Config {
	return &Config{
		GitHubToken: strings.TrimSpace(os.Getenv("GITHUB_TOKEN")),
		SlackToken:  strings.TrimSpace(os.Getenv("SLACK_TOKEN")),
		User:        getEnvOrDefault("STANDUP_USER", defaultUser),
		Org:         lookupEnvOrDefault("STANDUP_ORG", defaultOrg),
		Channel:     getEnvOrDefault("STANDUP_CHANNEL", defaultChannel),
		LogLevel:    getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:   getEnvOrDefault("LOG_FORMAT", "console"),
	}
}

// ValidateForPost checks the settings needed to publish a digest.
func (c *Config) ValidateForPost() error {
	if c.SlackToken == "" {
		return ErrMissingSlackToken
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func lookupEnvOrDefault(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(value)
	}
	return defaultValue
}
