package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"quotelock/internal/domain/entities"
	"quotelock/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const agreementColumns = `id,user_id,public_slug,title,client_name,client_email,work_included,work_excluded,
total_price::text,deposit_amount::text,balance_due::text,currency,expires_at,payment_instructions,
external_payment_link,cancellation_terms,governing_country,status,locked_at,created_at,updated_at`

// AgreementRepository stores agreements in PostgreSQL. Each mutation runs in one
// transaction together with the audit_events insert.
type AgreementRepository struct {
	db *pgxpool.Pool
}

var _ interfaces.IAgreementRepository = (*AgreementRepository)(nil)

func NewAgreementRepository(db *pgxpool.Pool) *AgreementRepository {
	return &AgreementRepository{db: db}
}

func (r *AgreementRepository) Create(ctx context.Context, a entities.Agreement, created entities.AuditEvent) (entities.Agreement, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return entities.Agreement{}, err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `INSERT INTO agreements(id,user_id,public_slug,title,client_name,client_email,work_included,work_excluded,
total_price,deposit_amount,balance_due,currency,expires_at,payment_instructions,external_payment_link,cancellation_terms,
governing_country,status,locked_at,created_at,updated_at)
VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9::text::numeric,$10::text::numeric,$11::text::numeric,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21)`,
		a.ID, a.UserID, a.PublicSlug, a.Title, a.ClientName, a.ClientEmail, a.WorkIncluded, a.WorkExcluded,
		a.TotalPrice.String(), a.DepositAmount.String(), a.BalanceDue.String(), a.Currency, a.ExpiresAt,
		a.PaymentInstructions, a.ExternalPaymentLink, a.CancellationTerms, a.GoverningCountry, string(a.Status),
		a.LockedAt, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return entities.Agreement{}, fmt.Errorf("insert agreement %s: %w", a.ID, err)
	}
	if err := insertEvent(ctx, tx, created); err != nil {
		return entities.Agreement{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return entities.Agreement{}, err
	}
	return a, nil
}

func (r *AgreementRepository) GetByID(ctx context.Context, id string) (entities.Agreement, error) {
	return r.getOne(ctx, `SELECT `+agreementColumns+` FROM agreements WHERE id=$1`, id)
}

func (r *AgreementRepository) GetByPublicSlug(ctx context.Context, slug string) (entities.Agreement, error) {
	return r.getOne(ctx, `SELECT `+agreementColumns+` FROM agreements WHERE public_slug=$1`, slug)
}

func (r *AgreementRepository) getOne(ctx context.Context, q string, arg string) (entities.Agreement, error) {
	a, err := scanAgreement(r.db.QueryRow(ctx, q, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Agreement{}, nil
	}
	return a, err
}

func (r *AgreementRepository) ListByUserID(ctx context.Context, userID string, status entities.AgreementStatus) ([]entities.Agreement, error) {
	q := `SELECT ` + agreementColumns + ` FROM agreements WHERE user_id=$1`
	args := []any{userID}
	if status != "" {
		q += ` AND status=$2`
		args = append(args, string(status))
	}
	q += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entities.Agreement, 0)
	for rows.Next() {
		a, err := scanAgreement(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AgreementRepository) ApplyTransition(ctx context.Context, cmd interfaces.TransitionCommand) (entities.Agreement, error) {
	q := `UPDATE agreements SET status=$3, updated_at=$4,
locked_at=COALESCE(locked_at, $5),
client_name=COALESCE($6, client_name),
client_email=COALESCE($7, client_email)
WHERE id=$1 AND status=$2
RETURNING ` + agreementColumns
	args := []any{cmd.AgreementID, string(cmd.From), string(cmd.To), cmd.Now, cmd.LockAt, cmd.ClientName, cmd.ClientEmail}
	return r.writeWithEvent(ctx, cmd.AgreementID, q, args, cmd.Event)
}

func (r *AgreementRepository) ApplyUpdate(ctx context.Context, cmd interfaces.UpdateCommand) (entities.Agreement, error) {
	q, args := buildUpdate(cmd)
	return r.writeWithEvent(ctx, cmd.AgreementID, q, args, cmd.Event)
}

// writeWithEvent runs a guarded UPDATE ... RETURNING and the event insert in one transaction.
// No returned row means the guard failed: the agreement is missing or has moved on.
func (r *AgreementRepository) writeWithEvent(ctx context.Context, id, q string, args []any, e entities.AuditEvent) (entities.Agreement, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return entities.Agreement{}, err
	}
	defer tx.Rollback(ctx)

	a, err := scanAgreement(tx.QueryRow(ctx, q, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM agreements WHERE id=$1)`, id).Scan(&exists); err != nil {
			return entities.Agreement{}, err
		}
		if !exists {
			return entities.Agreement{}, interfaces.ErrNotFound
		}
		return entities.Agreement{}, interfaces.ErrConflict
	}
	if err != nil {
		return entities.Agreement{}, fmt.Errorf("update agreement %s: %w", id, err)
	}

	if err := insertEvent(ctx, tx, e); err != nil {
		return entities.Agreement{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return entities.Agreement{}, err
	}
	return a, nil
}

// buildUpdate renders the guarded partial UPDATE for cmd. $1..$3 are always the id,
// expected status and update time.
func buildUpdate(cmd interfaces.UpdateCommand) (string, []any) {
	args := []any{cmd.AgreementID, string(cmd.ExpectedStatus), cmd.Now}
	sets := []string{"updated_at=$3"}
	add := func(column string, v any, cast string) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s=$%d%s", column, len(args), cast))
	}
	str := func(column string, v *string) {
		if v != nil {
			add(column, *v, "")
		}
	}
	optional := func(column string, v *string) {
		if v == nil {
			return
		}
		if *v == "" {
			sets = append(sets, column+"=NULL")
			return
		}
		add(column, *v, "")
	}
	money := func(column string, v *decimal.Decimal) {
		if v != nil {
			add(column, v.String(), "::text::numeric")
		}
	}

	c := cmd.Changes
	str("title", c.Title)
	optional("client_name", c.ClientName)
	optional("client_email", c.ClientEmail)
	str("work_included", c.WorkIncluded)
	str("work_excluded", c.WorkExcluded)
	money("total_price", c.TotalPrice)
	money("deposit_amount", c.DepositAmount)
	money("balance_due", c.BalanceDue)
	str("currency", c.Currency)
	if c.ExpiresAt != nil {
		if c.ExpiresAt.IsZero() {
			sets = append(sets, "expires_at=NULL")
		} else {
			add("expires_at", c.ExpiresAt.UTC(), "")
		}
	}
	str("payment_instructions", c.PaymentInstructions)
	optional("external_payment_link", c.ExternalPaymentLink)
	str("cancellation_terms", c.CancellationTerms)
	str("governing_country", c.GoverningCountry)

	lockCond := "locked_at IS NULL"
	if cmd.ExpectedLocked {
		lockCond = "locked_at IS NOT NULL"
	}
	q := `UPDATE agreements SET ` + strings.Join(sets, ", ") +
		` WHERE id=$1 AND status=$2 AND ` + lockCond +
		` RETURNING ` + agreementColumns
	return q, args
}

func scanAgreement(row pgx.Row) (entities.Agreement, error) {
	var (
		a                       entities.Agreement
		total, deposit, balance string
		status                  string
		expiresAt, lockedAt     *time.Time
	)
	err := row.Scan(&a.ID, &a.UserID, &a.PublicSlug, &a.Title, &a.ClientName, &a.ClientEmail,
		&a.WorkIncluded, &a.WorkExcluded, &total, &deposit, &balance, &a.Currency, &expiresAt,
		&a.PaymentInstructions, &a.ExternalPaymentLink, &a.CancellationTerms, &a.GoverningCountry,
		&status, &lockedAt, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return entities.Agreement{}, err
	}

	if a.TotalPrice, err = decimal.NewFromString(total); err != nil {
		return entities.Agreement{}, err
	}
	if a.DepositAmount, err = decimal.NewFromString(deposit); err != nil {
		return entities.Agreement{}, err
	}
	if a.BalanceDue, err = decimal.NewFromString(balance); err != nil {
		return entities.Agreement{}, err
	}
	a.Status = entities.AgreementStatus(status)
	a.ExpiresAt = utcPtr(expiresAt)
	a.LockedAt = utcPtr(lockedAt)
	a.CreatedAt = a.CreatedAt.UTC()
	a.UpdatedAt = a.UpdatedAt.UTC()
	return a, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
