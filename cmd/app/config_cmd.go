package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/akyairhashvil/timeflow/internal/config"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or create the configuration file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if settings, err = overrides.apply(settings); err != nil {
			return err
		}
		printSettings(cmd.OutOrStdout(), configPath, settings)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write config.yaml with the current settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(configPath); err == nil && !configForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", configPath)
		} else if err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		settings, err := config.Load(configPath)
		if err != nil && !configForce {
			return err
		}
		if settings, err = overrides.apply(settings); err != nil {
			return err
		}
		if err := config.Save(configPath, settings); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configPath)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configShowCmd, configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func printSettings(w io.Writer, path string, s config.Settings) {
	fmt.Fprintf(w, "config file:        %s\n", path)
	fmt.Fprintf(w, "work:               %s\n", s.Work)
	fmt.Fprintf(w, "short break:        %s\n", s.ShortBreak)
	fmt.Fprintf(w, "long break:         %s\n", s.LongBreak)
	fmt.Fprintf(w, "long break every:   %d rounds\n", s.RoundsBeforeLongBreak)
	fmt.Fprintf(w, "default rounds:     %d\n", s.DefaultRounds)
	fmt.Fprintf(w, "http address:       %s\n", s.HTTPAddr)
}
