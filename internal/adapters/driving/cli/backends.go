package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List the rename backends",
	Long:  `List the available rename backends and whether each can run on this machine.`,
	RunE:  runBackends,
}

func init() {
	rootCmd.AddCommand(backendsCmd)
}

func runBackends(cmd *cobra.Command, _ []string) error {
	if backendRegistry == nil {
		return errors.New("backend registry not configured")
	}

	defaultBackend := ""
	if settingsService != nil {
		if settings, err := settingsService.Get(); err == nil {
			defaultBackend = settings.DefaultBackend
		}
	}

	cmd.Println("Backends:")
	cmd.Println()
	for _, bt := range backendRegistry.List() {
		marker := " "
		if bt.ID == defaultBackend {
			marker = "*"
		}

		status := "available"
		if err := backendRegistry.Available(cmd.Context(), bt.ID); err != nil {
			status = "unavailable on this platform"
		}

		cmd.Printf("%s %-9s %s\n", marker, bt.ID, bt.Name)
		cmd.Printf("            %s\n", bt.Description)
		if len(bt.Formats) > 0 {
			formats := make([]string, 0, len(bt.Formats))
			for _, f := range bt.Formats {
				formats = append(formats, f.String())
			}
			cmd.Printf("            Formats: %s\n", strings.Join(formats, ", "))
		}
		cmd.Printf("            Status: %s\n", status)
		cmd.Println()
	}
	if defaultBackend != "" {
		cmd.Printf("* default backend\n")
	}
	return nil
}
