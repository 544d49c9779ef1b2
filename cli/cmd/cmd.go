package cmd

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	rates "github.com/malusev998/tariff-rates"
)

const envPrefix = "TARIFF_RATES"

type (
	// ServiceFactory builds the service once flags and config are loaded.
	ServiceFactory func(ctx context.Context, logger logrus.FieldLogger) (rates.Service, error)

	Config struct {
		Ctx        context.Context
		NewService ServiceFactory
		debug      *bool
	}
)

func (c *Config) debugging() bool {
	return c.debug != nil && *c.debug
}

func (c *Config) context() context.Context {
	if c.Ctx == nil {
		return context.Background()
	}

	return c.Ctx
}

func newLogger(out io.Writer, debug bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: !debug,
	})

	if debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	return logger
}

// loadConfig reads the config file when there is one. Every key can also be
// given through TARIFF_RATES_* variables.
func loadConfig(configFile string) error {
	absolutePath, err := filepath.Abs(configFile)
	if err != nil {
		return err
	}

	viper.SetConfigFile(absolutePath)
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return nil
}

func newRootCommand(config *Config) *cobra.Command {
	var debug bool
	var configFile string

	rootCmd := &cobra.Command{
		Use:           "tariff-rates",
		Short:         "Monthly HMRC exchange rates from the UK Trade Tariff service",
		Version:       "v1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(configFile)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Debug flag")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "./config.yml", "Path to config file")

	config.debug = &debug

	rootCmd.AddCommand(fetch(config))

	return rootCmd
}

// execute runs rootCmd and reports a failure through the logger, once.
func execute(rootCmd *cobra.Command, config *Config) error {
	if err := rootCmd.Execute(); err != nil {
		newLogger(rootCmd.ErrOrStderr(), config.debugging()).
			WithError(err).
			Error("exchange rates were not written")

		return err
	}

	return nil
}

func Execute(config *Config) error {
	return execute(newRootCommand(config), config)
}
