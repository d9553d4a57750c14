package commands

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/open-inwoner/openklant/internal/constants"
)

// Config is the persisted CLI configuration.
type Config struct {
	API    string `json:"api,omitempty"    yaml:"api,omitempty"`
	Token  string `json:"token,omitempty"  yaml:"token,omitempty"`
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
}

func newConfigCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the settings stored in $HOME/.openklant/config.yml",
	}

	cmd.AddCommand(newConfigShowCommand(a))
	cmd.AddCommand(newConfigSetCommand(a))
	cmd.AddCommand(newConfigSetTokenCommand(a))

	return cmd
}

func newConfigShowCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration. The token is masked.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			config := a.loadConfig()
			if config.Token != "" {
				config.Token = constants.MaskedSecret
			}

			return a.render(cmd, config, func() tableView {
				return propertyTable(
					"API", orNA(config.API),
					"Token", orNA(config.Token),
					"Output", orNA(config.Output),
					"Config file", orNA(a.v.ConfigFileUsed()),
				)
			})
		},
	}
}

func newConfigSetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set api or output. Use set-token for the token.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			config := a.storedConfig()

			switch key {
			case keyAPI:
				config.API = strings.TrimSuffix(value, "/")
			case keyOutput:
				switch value {
				case constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
				default:
					return fmt.Errorf("%w: %s", constants.ErrInvalidOutput, value)
				}

				config.Output = value
			default:
				return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
			}

			err := a.saveConfig(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s to %s\n", key, value)

			return nil
		},
	}
}

func newConfigSetTokenCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set-token",
		Short: "Store the API token",
		Long:  "Read the API token from the terminal without echoing it, or from standard input when it is not a terminal.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, err := readToken(cmd)
			if err != nil {
				return err
			}

			config := a.storedConfig()
			config.Token = token

			err = a.saveConfig(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Token saved")

			return nil
		},
	}
}

func readToken(cmd *cobra.Command) (string, error) {
	var token string

	if file, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		_, _ = fmt.Fprint(cmd.ErrOrStderr(), "Token: ")

		raw, err := term.ReadPassword(int(file.Fd()))
		_, _ = fmt.Fprintln(cmd.ErrOrStderr())

		if err != nil {
			return "", fmt.Errorf("reading token: %w", err)
		}

		token = string(raw)
	} else {
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && line == "" {
			return "", constants.ErrEmptyToken
		}

		token = line
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", constants.ErrEmptyToken
	}

	return token, nil
}

// loadConfig returns the effective configuration: file, environment and flags.
func (a *app) loadConfig() *Config {
	return &Config{
		API:    a.v.GetString(keyAPI),
		Token:  a.v.GetString(keyToken),
		Output: a.v.GetString(keyOutput),
	}
}

// storedConfig returns only what the config file holds, so flags and
// environment variables are never written back.
func (a *app) storedConfig() *Config {
	config := &Config{}

	path, err := a.configFile()
	if err != nil {
		return config
	}

	// #nosec G304 -- path is the CLI's own config file
	raw, err := os.ReadFile(path)
	if err != nil {
		return config
	}

	_ = yaml.Unmarshal(raw, config)

	return config
}

func (a *app) saveConfig(config *Config) error {
	path, err := a.configFile()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	raw, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	err = os.WriteFile(path, raw, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
