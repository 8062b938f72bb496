package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/prelayn/prelayn/internal/core/domain"
	"github.com/prelayn/prelayn/internal/core/ports/driving"
)

var (
	runBackend string
	runPrefix  string
	runInFile  string
	runOutFile string
	runLayerNames []string
	runDryRun  bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Prefix the layers of a drawing",
	Long: `Prefix every non-reserved layer of a drawing using the selected backend.

The prefix may not contain a character that is illegal in layer names:
  < > \ / " : ; * ? | , = ` + "`" + `

Examples:
  # Rewrite a DXF file directly
  prelayn run -p "P-" -b dxf -i site.dxf -o site-prefixed.dxf

  # Drive AutoCAD over COM
  prelayn run -p "P-" -b com -i site.dwg -o site-prefixed.dwg

  # Rename the document currently open in AutoCAD
  prelayn run -p "P-" -b autocad

  # Keystroke injection needs the layer names up front
  prelayn run -p "P-" -b sendkeys -i site.dwg -o out.dwg -l Walls -l Doors`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVarP(&runBackend, "backend", "b", "", "backend to use (default from settings)")
	runCmd.Flags().StringVarP(&runPrefix, "prefix", "p", "", "prefix to prepend to every layer name")
	runCmd.Flags().StringVarP(&runInFile, "in", "i", "", "input drawing path")
	runCmd.Flags().StringVarP(&runOutFile, "out", "o", "", "output drawing path")
	runCmd.Flags().StringSliceVarP(&runLayerNames, "layers", "l", nil, "explicit layer names (required by sendkeys)")
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "show what would be renamed without touching the drawing")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, _ []string) error {
	if renameService == nil {
		return errors.New("rename service not configured")
	}

	req := driving.RenameRequest{
		Backend: runBackend,
		Prefix:  runPrefix,
		InFile:  runInFile,
		OutFile: runOutFile,
		Layers:  runLayerNames,
	}
	applyDefaults(&req)

	if runDryRun {
		report, err := renameService.Preview(cmd.Context(), req)
		if err != nil {
			return err
		}
		cmd.Println("Dry run; nothing was changed.")
		printReport(cmd, report)
		return nil
	}

	report, err := renameService.Run(cmd.Context(), req)
	if err != nil {
		return err
	}

	printReport(cmd, report)
	if req.OutFile != "" {
		cmd.Printf("Saved %s\n", req.OutFile)
	}
	return nil
}

// applyDefaults fills the backend and prefix from settings when flags
// left them empty.
func applyDefaults(req *driving.RenameRequest) {
	if settingsService == nil {
		return
	}
	settings, err := settingsService.Get()
	if err != nil {
		return
	}
	if req.Backend == "" {
		req.Backend = settings.DefaultBackend
	}
	if req.Prefix == "" {
		req.Prefix = settings.DefaultPrefix
	}
}

func printReport(cmd *cobra.Command, report *domain.RenameReport) {
	for _, r := range report.Renamed {
		cmd.Printf("  %s -> %s\n", r.Old, r.New)
	}
	for _, name := range report.Skipped {
		cmd.Printf("  %s (reserved, skipped)\n", name)
	}
	cmd.Printf("Renamed %d layers, skipped %d.\n", len(report.Renamed), len(report.Skipped))
}
