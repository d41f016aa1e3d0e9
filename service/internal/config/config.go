// Package config loads process settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Environment variable names.
const (
	EnvPlayers     = "HANABAI_PLAYERS"
	EnvSeed        = "HANABAI_SEED"
	EnvAgentConfig = "HANABAI_AGENT_CONFIG"
	EnvLogLevel    = "HANABAI_LOG_LEVEL"
)

// Settings configures one table.
type Settings struct {
	Players     uint8
	Seed        uint64
	AgentConfig string // path to an agent YAML config; empty means defaults
	LogLevel    logrus.Level
}

// Defaults returns the settings used when nothing is set.
func Defaults() Settings {
	return Settings{
		Players:  3,
		Seed:     1,
		LogLevel: logrus.InfoLevel,
	}
}

// Load reads envFile (if it exists) into the environment without overriding
// variables already set, then builds Settings from the environment.
func Load(envFile string) (Settings, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(errors.Cause(err)) {
			return Settings{}, errors.Wrapf(err, "loading env file [%s]", envFile)
		}
	}
	return FromEnv()
}

// FromEnv builds Settings from the process environment.
func FromEnv() (Settings, error) {
	s := Defaults()

	if v := os.Getenv(EnvPlayers); v != "" {
		n, err := strconv.ParseUint(v, 10, 8)
		if err != nil {
			return Settings{}, errors.Wrapf(err, "%s=%q", EnvPlayers, v)
		}
		s.Players = uint8(n)
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Settings{}, errors.Wrapf(err, "%s=%q", EnvSeed, v)
		}
		s.Seed = seed
	}
	s.AgentConfig = os.Getenv(EnvAgentConfig)
	if v := os.Getenv(EnvLogLevel); v != "" {
		lvl, err := logrus.ParseLevel(v)
		if err != nil {
			return Settings{}, errors.Wrapf(err, "%s=%q", EnvLogLevel, v)
		}
		s.LogLevel = lvl
	}
	return s, nil
}

// ConfigureLogger applies the settings' level to the standard logrus logger
// and returns it.
func (s Settings) ConfigureLogger() *logrus.Logger {
	l := logrus.StandardLogger()
	l.SetLevel(s.LogLevel)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}
