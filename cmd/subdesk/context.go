package main

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"subdesk/internal/config"
	"subdesk/internal/health"
	"subdesk/internal/language"
	"subdesk/internal/logging"
	"subdesk/internal/probe"
	"subdesk/internal/settings"
	"subdesk/internal/subsettings"
)

type commandContext struct {
	configFlag *string
	jsonFlag   *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string, jsonFlag *bool) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		jsonFlag:   jsonFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// JSONMode reports whether --json was passed.
func (c *commandContext) JSONMode() bool {
	return c.jsonFlag != nil && *c.jsonFlag
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg)
	})
	return c.logger, c.loggerErr
}

// requestContext tags the command's context with a fresh request ID so every
// log line of one invocation shares a correlation_id.
func (c *commandContext) requestContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return logging.WithRequestID(ctx, uuid.NewString())
}

func (c *commandContext) newClassifier(cfg *config.Config, logger *slog.Logger) *health.Classifier {
	ports := make([]string, 0, len(cfg.Probe.Ports))
	for _, port := range cfg.Probe.Ports {
		ports = append(ports, strconv.Itoa(port))
	}
	system := probe.NewSystem(cfg.ProbeTimeout(), probe.WithPorts(ports...), probe.WithLogger(logger))
	return health.NewClassifier(system, health.WithLogger(logger))
}

// withStore opens the settings database for the duration of fn.
func (c *commandContext) withStore(fn func(*settings.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := settings.Open(cfg)
	if err != nil {
		return fmt.Errorf("open settings: %w", err)
	}
	defer store.Close()
	return fn(store)
}

// withService wires the settings service against the configured host and
// runs fn with a request-scoped context.
func (c *commandContext) withService(cmd *cobra.Command, fn func(context.Context, *subsettings.Service) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return err
	}
	return c.withStore(func(store *settings.Store) error {
		catalog := language.NewCatalog()
		svc := subsettings.NewService(
			store,
			cfg.HostEnvironment(catalog),
			catalog,
			subsettings.WithLogger(logger),
			subsettings.WithClassifier(c.newClassifier(cfg, logger)),
		)
		return fn(c.requestContext(cmd), svc)
	})
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
