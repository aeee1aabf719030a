package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateProbe(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.StateDir == "" {
		return errors.New("paths.state_dir must be set")
	}
	if c.Paths.LogDir == "" {
		return errors.New("paths.log_dir must be set")
	}
	return nil
}

func (c *Config) validateProbe() error {
	if c.Probe.TimeoutMS <= 0 || c.Probe.TimeoutMS > maxProbeTimeoutMS {
		return fmt.Errorf("probe.timeout_ms must be between 1 and %d, got %d", maxProbeTimeoutMS, c.Probe.TimeoutMS)
	}
	for _, port := range c.Probe.Ports {
		if port <= 0 || port > 65535 {
			return fmt.Errorf("probe.ports contains invalid port %d", port)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
		return nil
	}
	return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
}
