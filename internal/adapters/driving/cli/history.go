package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prelayn/prelayn/internal/core/domain"
)

var (
	historyLimit int
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past rename runs",
	Long:  `Show recorded rename runs, newest first.`,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show one recorded run",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded runs",
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of runs to show (0 = all)")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output runs as JSON")
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	records, err := historyService.List(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("listing history: %w", err)
	}

	if historyJSON {
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal history: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(records) == 0 {
		cmd.Println("No runs recorded.")
		return nil
	}

	for _, rec := range records {
		printRecord(cmd, rec)
	}
	return nil
}

func printRecord(cmd *cobra.Command, rec domain.JobRecord) {
	cmd.Printf("%s  %-8s %-9s prefix=%q",
		rec.FinishedAt.Local().Format("2006-01-02 15:04:05"),
		rec.Status,
		rec.Job.Backend,
		rec.Job.Prefix.String(),
	)
	if rec.Job.InFile != "" {
		cmd.Printf(" in=%s", rec.Job.InFile)
	}
	cmd.Println()

	if rec.Status == domain.JobFailed {
		cmd.Printf("    error: %s\n", rec.Error)
		return
	}
	cmd.Printf("    renamed %d, skipped %d\n", rec.LayersRenamed, rec.LayersSkipped)
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	rec, err := historyService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("getting run %s: %w", args[0], err)
	}

	printRecord(cmd, *rec)
	cmd.Printf("    id: %s\n", rec.Job.ID)
	if rec.Job.OutFile != "" {
		cmd.Printf("    out: %s\n", rec.Job.OutFile)
	}
	if len(rec.Job.Layers) > 0 {
		cmd.Printf("    layers: %v\n", rec.Job.Layers)
	}
	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}
	if err := historyService.Clear(cmd.Context()); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	cmd.Println("History cleared.")
	return nil
}
