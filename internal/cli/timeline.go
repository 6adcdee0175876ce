package cli

import (
	"encoding/json"
	"fmt"

	"quotelock/internal/adapter/persistence"
	"quotelock/internal/usecase"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(timelineCmd)
	timelineCmd.Flags().IntP("limit", "n", 0, "Show only the most recent N events (0 shows all)")
}

var timelineCmd = &cobra.Command{
	Use:   "timeline AGREEMENT_ID",
	Short: "Print an agreement's audit timeline, oldest first",
	Args:  cobra.ExactArgs(1),
	RunE:  runTimeline,
}

func runTimeline(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	driver, _ := cmd.Flags().GetString("driver")
	limit, _ := cmd.Flags().GetInt("limit")

	repos, err := persistence.NewRepositories(ctx, driver)
	if err != nil {
		return err
	}
	events, err := usecase.NewAuditLogUseCase(repos.AuditEvents).ListForAgreement(ctx, args[0], limit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, e := range events {
		meta := ""
		if len(e.Metadata) > 0 {
			b, err := json.Marshal(e.Metadata)
			if err != nil {
				return fmt.Errorf("encode metadata for event %s: %w", e.ID, err)
			}
			meta = string(b)
		}
		fmt.Fprintf(out, "%s  %-10s  %-16s  %s\n", e.CreatedAt.Format("2006-01-02T15:04:05.000Z07:00"), e.Actor, e.Type, meta)
	}
	if len(events) == 0 {
		fmt.Fprintln(out, "no events")
	}
	return nil
}
