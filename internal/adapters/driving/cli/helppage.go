package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var helpPagePathOnly bool

var helpPageCmd = &cobra.Command{
	Use:   "help-page",
	Short: "Open the help page in the browser",
	Long:  `Open the bundled HTML help page in the default browser.`,
	RunE:  runHelpPage,
}

func init() {
	helpPageCmd.Flags().BoolVar(&helpPagePathOnly, "path", false, "print the page location instead of opening it")
	rootCmd.AddCommand(helpPageCmd)
}

func runHelpPage(cmd *cobra.Command, _ []string) error {
	if helpService == nil {
		return errors.New("help service not configured")
	}

	if helpPagePathOnly {
		path, err := helpService.Path()
		if err != nil {
			return err
		}
		cmd.Println(path)
		return nil
	}

	path, err := helpService.Open()
	if err != nil {
		return err
	}
	cmd.Printf("Opened %s\n", path)
	return nil
}
