package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/miretskiy/dtypes/internal/config"
	"github.com/miretskiy/dtypes/internal/log"
)

// app carries the state shared by the subcommands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
	cleanup func()
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:           "dtype_inspector",
		Short:         "Inspect tensor element data types",
		Long:          `List the registered element data types with their stable codes, bit widths and numeric families, and compute storage sizes.`,
		Version:       version,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd, true)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			log.Debug(log.CatCLI, "Command finished", "command", cmd.Name())
			if a.cleanup != nil {
				a.cleanup()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "",
		"config file (default: ~/.config/dtypes/config.yaml)")
	root.PersistentFlags().StringP("format", "f", "", "output format: text, json or yaml")
	root.PersistentFlags().Bool("debug", false, "enable debug logging")
	root.PersistentFlags().String("log-file", "", "write debug log to this file instead of stderr")

	_ = a.v.BindPFlag("format", root.PersistentFlags().Lookup("format"))
	_ = a.v.BindPFlag("debug", root.PersistentFlags().Lookup("debug"))
	_ = a.v.BindPFlag("log_file", root.PersistentFlags().Lookup("log-file"))

	root.AddCommand(
		newListCmd(a),
		newInspectCmd(a),
		newSizeCmd(a),
		newConfigInitCmd(a),
	)
	return root
}

// load resolves configuration from defaults, config file, DTYPES_* env and
// flags (in increasing precedence), then starts logging if requested.
// With readFile false the config file is skipped and only defaults, env
// and flags apply.
func (a *app) load(cmd *cobra.Command, readFile bool) error {
	defaults := config.Defaults()
	a.v.SetDefault("format", defaults.Format)
	a.v.SetDefault("debug", defaults.Debug)
	a.v.SetDefault("log_file", defaults.LogFile)
	a.v.SetDefault("log_level", defaults.LogLevel)

	a.v.SetEnvPrefix("DTYPES")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if err := a.readConfig(readFile); err != nil {
		return err
	}

	if err := a.v.Unmarshal(&a.cfg); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}
	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if a.cfg.Debug {
		if err := a.startLogging(cmd); err != nil {
			return err
		}
	}
	log.Debug(log.CatConfig, "Configuration loaded",
		"file", a.v.ConfigFileUsed(), "format", a.cfg.Format, "command", cmd.Name())
	return nil
}

func (a *app) readConfig(readFile bool) error {
	if !readFile {
		return nil
	}
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", a.cfgFile, err)
		}
	} else if path, err := config.DefaultConfigPath(); err == nil {
		a.v.SetConfigFile(path)
		// A missing default config is fine; a broken one is not.
		if err := a.v.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("reading config %s: %w", path, err)
		}
	}
	return nil
}

func (a *app) startLogging(cmd *cobra.Command) error {
	if a.cfg.LogFile != "" {
		cleanup, err := log.Init(a.cfg.LogFile)
		if err != nil {
			return err
		}
		a.cleanup = cleanup
	} else {
		log.InitWriter(cmd.ErrOrStderr())
	}
	level, err := log.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return err
	}
	log.SetMinLevel(level)
	return nil
}
