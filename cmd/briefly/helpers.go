package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/at-ishikawa/briefly/internal/bootstrap"
	"github.com/at-ishikawa/briefly/internal/clock"
	"github.com/at-ishikawa/briefly/internal/config"
)

// StorageDriverFlag overrides storage.driver of the config file.
type StorageDriverFlag string

// Set implements pflag.Value.
func (s *StorageDriverFlag) Set(v string) error {
	switch v {
	case config.StorageDriverMemory, config.StorageDriverFile, config.StorageDriverSQLite, config.StorageDriverMySQL:
		*s = StorageDriverFlag(v)
	default:
		return fmt.Errorf("invalid value %q, valid values are %q, %q, %q or %q", v,
			config.StorageDriverMemory,
			config.StorageDriverFile,
			config.StorageDriverSQLite,
			config.StorageDriverMySQL,
		)
	}
	return nil
}

// String implements pflag.Value.
func (s *StorageDriverFlag) String() string {
	if s == nil {
		return ""
	}
	return string(*s)
}

// Type implements pflag.Value.
func (s *StorageDriverFlag) Type() string {
	return "StorageDriverFlag"
}

var (
	_ pflag.Value = (*StorageDriverFlag)(nil)
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}
	if storageDriver != "" {
		cfg.Storage.Driver = string(storageDriver)
	}
	return cfg, nil
}

// withServices builds the services for one command and closes them when run returns.
func withServices(cmd *cobra.Command, run func(ctx context.Context, services *bootstrap.Services) error) (err error) {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	app := bootstrap.New()
	defer func() {
		err = errors.Join(err, app.Shutdown(context.Background()))
	}()

	ctx := cmd.Context()
	services, err := bootstrap.NewServices(ctx, app, cfg, clock.System{}, cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("bootstrap.NewServices() > %w", err)
	}
	return run(ctx, services)
}
