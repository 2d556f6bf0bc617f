package postgresrepo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kinoops/backoffice/internal/domain"
	"github.com/shopspring/decimal"
)

// periodCond matches rows of one half-month period. Period 1 starts on the
// first of the month, period 2 on any later day.
const periodCond = `year = $1 AND month = $2
	 AND (CASE WHEN EXTRACT(DAY FROM period_start) = 1 THEN 1 ELSE 2 END) = $3`

type InvoiceRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *InvoiceRepo) With(db DB) *InvoiceRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *InvoiceRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// ListByYear returns every invoice version of a settlement year, in stable
// period order. Grouping into periods happens in the service layer.
func (r *InvoiceRepo) ListByYear(ctx context.Context, year int) ([]domain.Invoice, error) {
	const op = "postgresrepo.InvoiceRepo.ListByYear"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, year, month, period_start, version,
		        gross, customer_share, payout, active, created_at
		 FROM invoices
		 WHERE year = $1
		 ORDER BY month, period_start, version`,
		year,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.Invoice
	for rows.Next() {
		var inv domain.Invoice
		if err := rows.Scan(
			&inv.ID,
			&inv.Year,
			&inv.Month,
			&inv.PeriodStart,
			&inv.Version,
			&inv.Gross,
			&inv.CustomerShare,
			&inv.Payout,
			&inv.Active,
			&inv.CreatedAt,
		); err != nil {
			return nil, wrapDBErr(op, err)
		}

		out = append(out, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

// LatestVersion returns the highest version number issued for a period,
// or 0 when no version exists yet.
func (r *InvoiceRepo) LatestVersion(ctx context.Context, year, month, period int) (int, error) {
	const op = "postgresrepo.InvoiceRepo.LatestVersion"

	db := r.handle()

	var latest int
	err := db.QueryRow(ctx,
		`SELECT COALESCE(MAX(version), 0) FROM invoices WHERE `+periodCond,
		year, month, period,
	).Scan(&latest)
	if err != nil {
		return 0, wrapDBErr(op, err)
	}

	return latest, nil
}

// DeactivatePeriod clears the active flag on every version of a period so
// the next inserted version becomes the only authoritative one.
func (r *InvoiceRepo) DeactivatePeriod(ctx context.Context, year, month, period int) error {
	const op = "postgresrepo.InvoiceRepo.DeactivatePeriod"

	db := r.handle()

	if _, err := db.Exec(ctx,
		`UPDATE invoices SET active = FALSE WHERE active AND `+periodCond,
		year, month, period,
	); err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}

// InsertVersion stores a new immutable invoice version. A duplicate
// (year, month, period_start, version) violates a unique constraint and
// surfaces as repository.ErrConflict.
func (r *InvoiceRepo) InsertVersion(ctx context.Context, inv domain.Invoice) error {
	const op = "postgresrepo.InvoiceRepo.InsertVersion"

	db := r.handle()

	if _, err := db.Exec(ctx,
		`INSERT INTO invoices
		   (id, year, month, period_start, version,
		    gross, customer_share, payout, active, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		inv.ID,
		inv.Year,
		inv.Month,
		inv.PeriodStart,
		inv.Version,
		inv.Gross,
		inv.CustomerShare,
		inv.Payout,
		inv.Active,
		inv.CreatedAt,
	); err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}

// ActiveTotals sums the gross, customer-share and payout amounts of the
// active versions of a year, for the dashboard's yearly summary row.
func (r *InvoiceRepo) ActiveTotals(ctx context.Context, year int) (gross, customerShare, payout decimal.Decimal, err error) {
	const op = "postgresrepo.InvoiceRepo.ActiveTotals"

	db := r.handle()

	err = db.QueryRow(ctx,
		`SELECT COALESCE(SUM(gross), 0),
		        COALESCE(SUM(customer_share), 0),
		        COALESCE(SUM(payout), 0)
		 FROM invoices
		 WHERE year = $1 AND active`,
		year,
	).Scan(&gross, &customerShare, &payout)
	if err != nil {
		return decimal.Zero, decimal.Zero, decimal.Zero, wrapDBErr(op, err)
	}

	return gross, customerShare, payout, nil
}
