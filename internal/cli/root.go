// Package cli implements quotelockctl, the operator tool for provisioning storage and
// inspecting agreements without going through the HTTP API.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "quotelockctl",
	Short:         "Operate a QuoteLock deployment",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().String("driver", envOr("STORAGE_DRIVER", "dynamodb"), "Storage driver: dynamodb or postgres")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
