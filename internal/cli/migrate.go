package cli

import (
	"fmt"

	"quotelock/internal/adapter/persistence"
	"quotelock/internal/adapter/persistence/postgres"
	"quotelock/internal/adapter/persistence/repository"
	"quotelock/internal/infrastructure/database"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(migrateCmd)
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the tables and indexes the service needs",
	Long: `Create the agreements, audit event and rate limit tables for the selected driver.
Existing tables are left untouched, so the command is safe to re-run.`,
	Args: cobra.NoArgs,
	RunE: runMigrate,
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	driver, _ := cmd.Flags().GetString("driver")

	switch driver {
	case persistence.DriverDynamoDB:
		client, err := database.NewDynamoDBClient(ctx)
		if err != nil {
			return fmt.Errorf("dynamodb client: %w", err)
		}
		tables := database.DynamoDBTables{
			Agreements:  repository.AgreementsTableName(),
			AuditEvents: repository.AuditEventsTableName(),
			RateLimits:  repository.RateLimitsTableName(),
		}
		if err := database.EnsureDynamoDBTables(ctx, client, tables); err != nil {
			return err
		}
	case persistence.DriverPostgres:
		pool, err := database.NewPostgresPool(ctx, envOr("DATABASE_URL", ""))
		if err != nil {
			return fmt.Errorf("postgres pool: %w", err)
		}
		defer pool.Close()
		if err := postgres.Migrate(ctx, pool); err != nil {
			return fmt.Errorf("postgres migrate: %w", err)
		}
	default:
		return fmt.Errorf("migrate: unsupported driver %q", driver)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "storage ready (driver=%s)\n", driver)
	return nil
}
