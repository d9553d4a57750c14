// Package commands implements the openklant CLI.
package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/open-inwoner/openklant/internal/constants"
	"github.com/open-inwoner/openklant/pkg/klantclient"
	"github.com/open-inwoner/openklant/pkg/openklant"
)

// Configuration keys.
const (
	keyAPI     = "api"
	keyToken   = "token"
	keyOutput  = "output"
	keyVerbose = "verbose"
	keyConfig  = "config"
)

// app carries the state shared by every command of one root.
type app struct {
	v *viper.Viper
	// newClient builds the API client; tests replace it.
	newClient func(*openklant.Config) (openklant.Client, error)
}

// NewRootCommand builds the openklant command tree with its own configuration.
func NewRootCommand(version, commit, date string) *cobra.Command {
	a := &app{v: viper.New(), newClient: klantclient.New}

	rootCmd := &cobra.Command{
		Use:   "openklant",
		Short: "Open Klant klantinteracties CLI",
		Long: `A command-line interface for the Open Klant klantinteracties API.

It lists, retrieves and creates actoren, klantcontacten, partijen and the
other klantinteracties resources, and can run a local fake API and a
notification relay.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initConfig()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP(keyConfig, "c", "", "config file (default is $HOME/.openklant/config.yml)")
	flags.StringP(keyAPI, "a", "", "klantinteracties API base URL")
	flags.StringP(keyToken, "t", "", "API token")
	flags.StringP(keyOutput, "o", constants.FormatTable, "output format (table, json, yaml)")
	flags.BoolP(keyVerbose, "v", false, "log HTTP requests and responses")

	for _, key := range []string{keyConfig, keyAPI, keyToken, keyOutput, keyVerbose} {
		_ = a.v.BindPFlag(key, flags.Lookup(key))
	}

	a.v.SetDefault(keyOutput, constants.FormatTable)
	a.v.SetEnvPrefix(constants.EnvPrefix)
	a.v.AutomaticEnv()

	rootCmd.AddCommand(newVersionCommand(a, version, commit, date))
	rootCmd.AddCommand(newConfigCommand(a))
	rootCmd.AddCommand(newResourceCommands(a)...)
	rootCmd.AddCommand(newFakeServerCommand(a))
	rootCmd.AddCommand(newNotificationsCommand(a))

	return rootCmd
}

// initConfig reads the config file. A missing default file is not an error.
func (a *app) initConfig() error {
	if cfgFile := a.v.GetString(keyConfig); cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
	} else {
		configDir, err := defaultConfigDir()
		if err != nil {
			return err
		}

		a.v.AddConfigPath(configDir)
		a.v.SetConfigName("config")
		a.v.SetConfigType("yml")
	}

	err := a.v.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || (a.v.GetString(keyConfig) != "" && errors.Is(err, os.ErrNotExist)) {
		return nil
	}

	return fmt.Errorf("reading config: %w", err)
}

func defaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}

	return filepath.Join(home, ".openklant"), nil
}

// configFile is the file config changes are written to.
func (a *app) configFile() (string, error) {
	if used := a.v.ConfigFileUsed(); used != "" {
		return used, nil
	}

	if cfgFile := a.v.GetString(keyConfig); cfgFile != "" {
		return cfgFile, nil
	}

	configDir, err := defaultConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, "config.yml"), nil
}

func (a *app) logger(cmd *cobra.Command) openklant.Logger {
	level := slog.LevelInfo
	if a.v.GetBool(keyVerbose) {
		level = slog.LevelDebug
	}

	return openklant.NewSlogLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
}

// client builds an API client from the configured URL and token.
func (a *app) client(cmd *cobra.Command) (openklant.Client, error) {
	api := a.v.GetString(keyAPI)
	if api == "" {
		return nil, constants.ErrNoAPIConfigured
	}

	return a.newClient(&openklant.Config{
		BaseURL: api,
		Token:   a.v.GetString(keyToken),
		Debug:   a.v.GetBool(keyVerbose),
		Logger:  a.logger(cmd),
	})
}
