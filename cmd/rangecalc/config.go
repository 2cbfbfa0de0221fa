package main

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
)

const (
	typeInt   = "int"
	typeFloat = "float"
	typeTime  = "time"
	typeIP    = "ip"
)

// config holds the defaults of rangecalc. Command line flags take precedence
// over the values read from the config file.
type config struct {
	// Type is the element type of the ranges: int, float, time or ip.
	Type string `toml:"type"`
	// Delta is the step between adjacent values. A number for int and float
	// ranges, a duration (e.g. "1s") for time ranges. It is ignored for ip
	// ranges, which step one address at a time.
	Delta string `toml:"delta"`
	// Layout is the time layout used to parse and print time ranges.
	Layout   string `toml:"layout"`
	LogLevel string `toml:"log_level"`
}

func defaultConfig() *config {
	return &config{
		Type:     typeInt,
		Layout:   time.RFC3339,
		LogLevel: logrus.InfoLevel.String(),
	}
}

// loadConfig reads the rangecalc config file on top of the defaults.
func loadConfig(path string) (*config, error) {
	c := defaultConfig()
	if path == "" {
		return c, nil
	}
	if _, err := toml.DecodeFile(path, c); err != nil {
		return c, fmt.Errorf("cannot load config %q: %w", path, err)
	}
	return c, nil
}

func (c *config) validate() error {
	switch c.Type {
	case typeInt, typeFloat, typeTime, typeIP:
	default:
		return fmt.Errorf("unknown range type %q", c.Type)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}
