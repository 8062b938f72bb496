// Package cli implements the command-line interface.
// Commands are thin: they parse flags, call the driving services and
// format the result. All business rules live in the services.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/prelayn/prelayn/internal/core/ports/driving"
	"github.com/prelayn/prelayn/internal/logger"
)

// version is set via Execute.
var version = "dev"

// verbose enables debug logging on stderr.
var verbose bool

// Services used by the commands. Set through SetServices; tests swap in
// mocks.
var (
	renameService   driving.RenameService
	backendRegistry driving.BackendRegistry
	settingsService driving.SettingsService
	historyService  driving.HistoryService
	helpService     driving.HelpService
)

// Services bundles the driving ports the CLI needs.
type Services struct {
	Rename   driving.RenameService
	Backends driving.BackendRegistry
	Settings driving.SettingsService
	History  driving.HistoryService
	Help     driving.HelpService
}

// SetServices wires the driving services into the commands.
func SetServices(s Services) {
	renameService = s.Rename
	backendRegistry = s.Backends
	settingsService = s.Settings
	historyService = s.History
	helpService = s.Help
}

var rootCmd = &cobra.Command{
	Use:   "prelayn",
	Short: "Prefix the layer names of AutoCAD drawings",
	Long: `Prelayn prepends a prefix to every layer name in an AutoCAD drawing.

Reserved layers (0 and Defpoints) are never renamed. References to the
renamed layers, including the current layer, follow the rename.

Four backends are available: the dxf backend rewrites the file directly
and runs anywhere; the com, autocad and sendkeys backends drive a running
AutoCAD on Windows. Run 'prelayn backends' to see which can run here.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute(v string) error {
	version = v
	return rootCmd.Execute()
}
