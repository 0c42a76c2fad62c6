// Package history records computed bill runs in Postgres so every generated
// bill stays auditable after the fact. The computation core never depends on
// it; a caller without a database simply does not construct a Service.
package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"bill-generator/internal/core"
)

// Run is one recorded bill computation.
type Run struct {
	ID             int             `json:"id"`
	SourceFile     string          `json:"source_file"`
	AgreementNo    string          `json:"agreement_no"`
	NameOfWork     string          `json:"name_of_work"`
	NameOfFirm     string          `json:"name_of_firm"`
	PremiumPercent decimal.Decimal `json:"premium_percent"`
	PremiumDir     string          `json:"premium_direction"`
	GrandTotal     decimal.Decimal `json:"grand_total"`
	PayableAmount  decimal.Decimal `json:"payable_amount"`
	NetDeviation   decimal.Decimal `json:"net_deviation"`
	Diagnostics    int             `json:"diagnostics"`
	CreatedAt      time.Time       `json:"created_at"`
}

// ErrRunNotFound is returned by GetRun for an unknown id.
var ErrRunNotFound = errors.New("bill run not found")

// Service persists and lists bill runs.
type Service interface {
	RecordRun(ctx context.Context, sourceFile string, policy core.PremiumPolicy, res *core.BillResult) (int, error)
	ListRuns(ctx context.Context, limit int) ([]Run, error)
	GetRun(ctx context.Context, id int) (*Run, error)
}

type service struct {
	pool *pgxpool.Pool
}

func NewService(pool *pgxpool.Pool) Service {
	return &service{pool: pool}
}

func (s *service) RecordRun(ctx context.Context, sourceFile string, policy core.PremiumPolicy, res *core.BillResult) (int, error) {
	var id int
	err := s.pool.QueryRow(ctx, `
		INSERT INTO bill_runs (
			source_file, agreement_no, name_of_work, name_of_firm,
			premium_percent, premium_direction,
			grand_total, payable_amount, net_deviation, diagnostics, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		RETURNING id
	`,
		sourceFile, res.Meta.AgreementNo, res.Meta.NameOfWork, res.Meta.NameOfFirm,
		policy.Percent, string(policy.Direction),
		res.Totals.GrandTotal, res.Totals.PayableAmount, res.Summary.NetDifference,
		len(res.Diagnostics),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("record bill run: %w", err)
	}
	return id, nil
}

func (s *service) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.pool.Query(ctx, `
		SELECT id, source_file, agreement_no, name_of_work, name_of_firm,
		       premium_percent, premium_direction,
		       grand_total, payable_amount, net_deviation, diagnostics, created_at
		FROM bill_runs
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list bill runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(
			&r.ID, &r.SourceFile, &r.AgreementNo, &r.NameOfWork, &r.NameOfFirm,
			&r.PremiumPercent, &r.PremiumDir,
			&r.GrandTotal, &r.PayableAmount, &r.NetDeviation, &r.Diagnostics, &r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan bill run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

func (s *service) GetRun(ctx context.Context, id int) (*Run, error) {
	var r Run
	err := s.pool.QueryRow(ctx, `
		SELECT id, source_file, agreement_no, name_of_work, name_of_firm,
		       premium_percent, premium_direction,
		       grand_total, payable_amount, net_deviation, diagnostics, created_at
		FROM bill_runs
		WHERE id = $1
	`, id).Scan(
		&r.ID, &r.SourceFile, &r.AgreementNo, &r.NameOfWork, &r.NameOfFirm,
		&r.PremiumPercent, &r.PremiumDir,
		&r.GrandTotal, &r.PayableAmount, &r.NetDeviation, &r.Diagnostics, &r.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRunNotFound
		}
		return nil, fmt.Errorf("get bill run %d: %w", id, err)
	}
	return &r, nil
}
