package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"quotelock/internal/domain/entities"
	"quotelock/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// foreignKeyViolation is the SQLSTATE raised when audit_events.agreement_id has no agreement.
const foreignKeyViolation = "23503"

// AuditEventRepository is insert-only: it exposes no UPDATE or DELETE statements.
type AuditEventRepository struct {
	db *pgxpool.Pool
}

var _ interfaces.IAuditEventRepository = (*AuditEventRepository)(nil)

func NewAuditEventRepository(db *pgxpool.Pool) *AuditEventRepository {
	return &AuditEventRepository{db: db}
}

func (r *AuditEventRepository) Append(ctx context.Context, e entities.AuditEvent) error {
	err := insertEvent(ctx, r.db, e)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		return interfaces.ErrNotFound
	}
	return err
}

func (r *AuditEventRepository) ListByAgreementID(ctx context.Context, agreementID string, limit int) ([]entities.AuditEvent, error) {
	q := `SELECT id,agreement_id,actor,type,metadata,ip_address,user_agent,created_at
FROM audit_events WHERE agreement_id=$1 ORDER BY created_at ASC, id ASC`
	args := []any{agreementID}
	if limit > 0 {
		q = `SELECT * FROM (
SELECT id,agreement_id,actor,type,metadata,ip_address,user_agent,created_at
FROM audit_events WHERE agreement_id=$1 ORDER BY created_at DESC, id DESC LIMIT $2
) recent ORDER BY created_at ASC, id ASC`
		args = append(args, limit)
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entities.AuditEvent, 0)
	for rows.Next() {
		var (
			e            entities.AuditEvent
			actor, typ   string
			metadataJSON []byte
		)
		if err := rows.Scan(&e.ID, &e.AgreementID, &actor, &typ, &metadataJSON, &e.IPAddress, &e.UserAgent, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Actor = entities.AuditActor(actor)
		e.Type = entities.AuditEventType(typ)
		e.CreatedAt = e.CreatedAt.UTC()
		if len(metadataJSON) > 0 {
			if err := json.Unmarshal(metadataJSON, &e.Metadata); err != nil {
				return nil, fmt.Errorf("decode metadata of event %s: %w", e.ID, err)
			}
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

var (
	_ execer = (*pgxpool.Pool)(nil)
	_ execer = (pgx.Tx)(nil)
)

func insertEvent(ctx context.Context, db execer, e entities.AuditEvent) error {
	var metadata []byte
	if len(e.Metadata) > 0 {
		raw, err := json.Marshal(e.Metadata)
		if err != nil {
			return fmt.Errorf("encode metadata: %w", err)
		}
		metadata = raw
	}
	_, err := db.Exec(ctx, `INSERT INTO audit_events(id,agreement_id,actor,type,metadata,ip_address,user_agent,created_at)
VALUES($1,$2,$3,$4,$5,$6,$7,$8)`,
		e.ID, e.AgreementID, string(e.Actor), string(e.Type), metadata, e.IPAddress, e.UserAgent, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert audit event %s: %w", e.ID, err)
	}
	return nil
}
