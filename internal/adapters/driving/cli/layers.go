package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prelayn/prelayn/internal/core/domain"
	"github.com/prelayn/prelayn/internal/core/ports/driving"
)

var (
	layersBackend string
	layersJSON    bool
)

var layersCmd = &cobra.Command{
	Use:   "layers [drawing]",
	Short: "List the layers of a drawing",
	Long: `List the layer names of a drawing using a backend that can read them.

The dxf backend reads the file directly. The com backend asks a running
AutoCAD. The autocad backend lists the active document and needs no path.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLayers,
}

func init() {
	layersCmd.Flags().StringVarP(&layersBackend, "backend", "b", "", "backend to use (default from settings)")
	layersCmd.Flags().BoolVar(&layersJSON, "json", false, "output layer names as JSON")
	rootCmd.AddCommand(layersCmd)
}

func runLayers(cmd *cobra.Command, args []string) error {
	if renameService == nil {
		return errors.New("rename service not configured")
	}

	req := driving.RenameRequest{Backend: layersBackend}
	if len(args) == 1 {
		req.InFile = args[0]
	}
	if req.Backend == "" && settingsService != nil {
		if settings, err := settingsService.Get(); err == nil {
			req.Backend = settings.DefaultBackend
		}
	}

	layers, err := renameService.ListLayers(cmd.Context(), req)
	if err != nil {
		return err
	}

	if layersJSON {
		names := make([]string, 0, len(layers))
		for _, layer := range layers {
			names = append(names, layer.Name)
		}
		data, err := json.MarshalIndent(names, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal layers: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	for _, layer := range layers {
		if domain.IsReservedLayer(layer.Name) {
			cmd.Printf("  %s (reserved)\n", layer.Name)
			continue
		}
		cmd.Printf("  %s\n", layer.Name)
	}
	cmd.Printf("%d layers.\n", len(layers))
	return nil
}
