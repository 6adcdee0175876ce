package persistence

import (
	"context"
	"fmt"
	"os"

	"quotelock/internal/adapter/persistence/memory"
	"quotelock/internal/adapter/persistence/postgres"
	"quotelock/internal/adapter/persistence/repository"
	"quotelock/internal/infrastructure/database"
	"quotelock/internal/usecase/interfaces"
)

const (
	DriverDynamoDB = "dynamodb"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Repositories groups the storage ports for one backend.
type Repositories struct {
	Agreements   interfaces.IAgreementRepository
	AuditEvents  interfaces.IAuditEventRepository
	RateCounters interfaces.IRateCounterRepository
	Usage        interfaces.IUsageCounterRepository
}

// NewRepositories connects the selected backend. The memory driver keeps nothing across
// restarts and is meant for local runs and tests.
func NewRepositories(ctx context.Context, driver string) (Repositories, error) {
	switch driver {
	case DriverDynamoDB:
		ddb, err := database.NewDynamoDBClient(ctx)
		if err != nil {
			return Repositories{}, fmt.Errorf("dynamodb client: %w", err)
		}
		return Repositories{
			Agreements:   repository.NewAgreementDynamoRepository(ddb),
			AuditEvents:  repository.NewAuditEventDynamoRepository(ddb),
			RateCounters: repository.NewRateCounterDynamoRepository(ddb),
			Usage:        repository.NewUsageCounterDynamoRepository(ddb),
		}, nil
	case DriverPostgres:
		pool, err := database.NewPostgresPool(ctx, os.Getenv("DATABASE_URL"))
		if err != nil {
			return Repositories{}, fmt.Errorf("postgres pool: %w", err)
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return Repositories{}, fmt.Errorf("postgres migrate: %w", err)
		}
		return Repositories{
			Agreements:   postgres.NewAgreementRepository(pool),
			AuditEvents:  postgres.NewAuditEventRepository(pool),
			RateCounters: postgres.NewRateCounterRepository(pool),
			Usage:        postgres.NewUsageCounterRepository(pool),
		}, nil
	case DriverMemory:
		return NewMemoryRepositories(), nil
	default:
		return Repositories{}, fmt.Errorf("unknown storage driver %q", driver)
	}
}

func NewMemoryRepositories() Repositories {
	store := memory.NewStore()
	return Repositories{
		Agreements:   memory.NewAgreementRepository(store),
		AuditEvents:  memory.NewAuditEventRepository(store),
		RateCounters: memory.NewRateCounterRepository(store),
		Usage:        memory.NewUsageCounterRepository(store),
	}
}
