package invoices

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kinoops/backoffice/internal/domain"
	"github.com/kinoops/backoffice/internal/pagination"
	"github.com/kinoops/backoffice/internal/repository"
	postgresrepo "github.com/kinoops/backoffice/internal/repository/postgres"
	redisrepo "github.com/kinoops/backoffice/internal/repository/redis"
	"github.com/kinoops/backoffice/internal/uow"
	"github.com/shopspring/decimal"
)

type Config struct {
	GroupsTTL       time.Duration
	DefaultPageSize int
	MaxPageSize     int
}

type Service struct {
	store   *postgresrepo.Store
	cache   *redisrepo.Cache
	pubsub  *redisrepo.InvoicesPubSub
	limiter *redisrepo.SlidingWindowLimiter
	uow     *uow.UoW
	cfg     Config
}

func New(
	store *postgresrepo.Store,
	cache *redisrepo.Cache,
	pubsub *redisrepo.InvoicesPubSub,
	limiter *redisrepo.SlidingWindowLimiter,
	cfg Config,
) *Service {
	if cfg.GroupsTTL <= 0 {
		cfg.GroupsTTL = 60 * time.Second
	}

	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = 10
	}

	if cfg.MaxPageSize <= 0 {
		cfg.MaxPageSize = 100
	}

	return &Service{
		store:   store,
		cache:   cache,
		pubsub:  pubsub,
		limiter: limiter,
		uow:     uow.NewUoW(store),
		cfg:     cfg,
	}
}

// PeriodsResult is one display page of a year's settlement periods.
type PeriodsResult struct {
	Groups     []domain.PeriodGroup
	Page       int
	TotalPages int
}

// ListPeriods returns the period groups of a settlement year, newest first,
// sliced to one display page. The grouped listing is cached per year and
// invalidated when a correction is issued.
func (s *Service) ListPeriods(ctx context.Context, year, page, pageSize int) (*PeriodsResult, error) {
	const op = "service.invoices.ListPeriods"

	if pageSize <= 0 {
		pageSize = s.cfg.DefaultPageSize
	}

	if pageSize > s.cfg.MaxPageSize {
		pageSize = s.cfg.MaxPageSize
	}

	key := redisrepo.KeyInvoiceGroups(year)

	groups, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		key,
		s.cfg.GroupsTTL,
		func(ctx context.Context) ([]domain.PeriodGroup, error) {
			list, err := s.store.Invoices().ListByYear(ctx, year)
			if err != nil {
				return nil, err
			}

			return GroupPeriods(list), nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	page = pagination.Clamp(page, pagination.TotalPages(len(groups), pageSize))
	pageGroups, totalPages := pagination.Page(groups, pageSize, page)

	return &PeriodsResult{
		Groups:     pageGroups,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

// YearTotals sums the active versions of a year for the summary row.
func (s *Service) YearTotals(ctx context.Context, year int) (gross, customerShare, payout decimal.Decimal, err error) {
	const op = "service.invoices.YearTotals"

	gross, customerShare, payout, err = s.store.Invoices().ActiveTotals(ctx, year)
	if err != nil {
		return decimal.Zero, decimal.Zero, decimal.Zero, fmt.Errorf("%s: %w", op, err)
	}

	return gross, customerShare, payout, nil
}

// IssueCorrection creates the next invoice version for a period and marks it
// active, deactivating all earlier versions in the same transaction. After
// commit the year's cached grouping is dropped and the change is broadcast.
func (s *Service) IssueCorrection(
	ctx context.Context,
	year, month, period int,
	gross, customerShare, payout decimal.Decimal,
	rlKey string,
) (*domain.Invoice, error) {
	const op = "service.invoices.IssueCorrection"

	if month < 1 || month > 12 || (period != 1 && period != 2) {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidPeriod)
	}

	if s.limiter != nil && rlKey != "" {
		ok, _, retry, err := s.limiter.Allow(ctx, rlKey)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if !ok {
			return nil, fmt.Errorf("%s: %w, retry in %s", op, ErrRateLimited, retry)
		}
	}

	inv := domain.Invoice{
		ID:            uuid.New(),
		Year:          year,
		Month:         month,
		PeriodStart:   periodStart(year, month, period),
		Gross:         gross,
		CustomerShare: customerShare,
		Payout:        payout,
		Active:        true,
		CreatedAt:     time.Now().UTC(),
	}

	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		repo := s.store.Invoices().With(tx)

		latest, err := repo.LatestVersion(ctx, year, month, period)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		inv.Version = latest + 1

		if err := repo.DeactivatePeriod(ctx, year, month, period); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		if err := repo.InsertVersion(ctx, inv); err != nil {
			if errors.Is(err, repository.ErrConflict) {
				return fmt.Errorf("%s: %w", op, ErrVersionConflict)
			}
			return fmt.Errorf("%s: %w", op, err)
		}

		after(func(ctx context.Context) {
			_ = s.cache.InvalidateInvoiceYear(ctx, year)
			_ = s.pubsub.PublishInvoicesChanged(ctx, year)
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &inv, nil
}

// periodStart places period 1 on the first and period 2 on the 16th.
func periodStart(year, month, period int) time.Time {
	day := 1
	if period == 2 {
		day = 16
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
