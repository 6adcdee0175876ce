package cli

import (
	"fmt"
	"strings"

	"quotelock/internal/domain/entities"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(transitionsCmd)
}

var transitionsCmd = &cobra.Command{
	Use:   "transitions [STATUS]",
	Short: "Print the agreement status transition table",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTransitions,
}

func runTransitions(cmd *cobra.Command, args []string) error {
	statuses := entities.AgreementStatuses
	if len(args) == 1 {
		s, ok := entities.ParseAgreementStatus(args[0])
		if !ok {
			return fmt.Errorf("unknown status %q", args[0])
		}
		statuses = []entities.AgreementStatus{s}
	}

	out := cmd.OutOrStdout()
	for _, s := range statuses {
		allowed := entities.AllowedTransitions(s)
		names := make([]string, len(allowed))
		for i, a := range allowed {
			names[i] = string(a)
		}
		target := strings.Join(names, ", ")
		if target == "" {
			target = "(terminal)"
		}
		fmt.Fprintf(out, "%-17s -> %s\n", s, target)
	}
	return nil
}
