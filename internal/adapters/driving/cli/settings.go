package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prelayn/prelayn/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure defaults: the backend, the prefix, keystroke pacing.

Settings live in a TOML file; 'prelayn settings path' shows where.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsBackendCmd = &cobra.Command{
	Use:   "backend [id]",
	Short: "Set the default backend",
	Long: `Set the backend used when 'prelayn run' is given no --backend flag.

Run 'prelayn backends' to see the valid IDs.`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsBackend,
}

var settingsPrefixCmd = &cobra.Command{
	Use:   "prefix [prefix]",
	Short: "Set the default prefix",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsPrefix,
}

var settingsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file location",
	RunE:  runSettingsPath,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsBackendCmd)
	settingsCmd.AddCommand(settingsPrefixCmd)
	settingsCmd.AddCommand(settingsPathCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Defaults]")
	cmd.Printf("  Backend: %s\n", settings.DefaultBackend)
	if settings.DefaultPrefix != "" {
		cmd.Printf("  Prefix: %q\n", settings.DefaultPrefix)
	} else {
		cmd.Printf("  Prefix: (not set)\n")
	}
	cmd.Println()

	cmd.Println("[Keystrokes]")
	cmd.Printf("  Key delay: %d ms\n", settings.KeyDelayMillis)
	cmd.Println()

	cmd.Println("[Watch]")
	cmd.Printf("  Backend: %s\n", settings.WatchBackend)
	if settings.WatchOutDir != "" {
		cmd.Printf("  Output directory: %s\n", settings.WatchOutDir)
	} else {
		cmd.Printf("  Output directory: (next to the input)\n")
	}
	cmd.Println()

	cmd.Printf("Config file: %s\n", settingsService.ConfigPath())
	return nil
}

func runSettingsBackend(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	if err := settingsService.SetDefaultBackend(args[0]); err != nil {
		return err
	}
	cmd.Printf("Default backend set to %s.\n", args[0])
	return nil
}

func runSettingsPrefix(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if _, err := domain.ParsePrefix(args[0]); err != nil {
		return err
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	settings.DefaultPrefix = args[0]
	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	cmd.Printf("Default prefix set to %q.\n", args[0])
	return nil
}

func runSettingsPath(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	cmd.Println(settingsService.ConfigPath())
	return nil
}
