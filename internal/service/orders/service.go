package orders

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kinoops/backoffice/internal/domain"
	"github.com/kinoops/backoffice/internal/pagination"
	redisrepo "github.com/kinoops/backoffice/internal/repository/redis"
	"github.com/kinoops/backoffice/internal/ticketing"
)

// Source lists transactions for a date range, most recent booking first.
// The ticketing API client implements it; tests substitute their own.
type Source interface {
	ListTransactions(ctx context.Context, from, to time.Time, site string) ([]domain.Transaction, error)
}

type Config struct {
	TransactionsTTL time.Duration
	DefaultPageSize int
	MaxPageSize     int
}

type Service struct {
	source Source
	cache  *redisrepo.Cache
	logger *slog.Logger
	cfg    Config
}

func New(source Source, cache *redisrepo.Cache, logger *slog.Logger, cfg Config) *Service {
	if cfg.TransactionsTTL <= 0 {
		cfg.TransactionsTTL = 30 * time.Second
	}

	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = 10
	}

	if cfg.MaxPageSize <= 0 {
		cfg.MaxPageSize = 100
	}

	return &Service{
		source: source,
		cache:  cache,
		logger: logger,
		cfg:    cfg,
	}
}

// ListResult is one display page of the filtered order list.
type ListResult struct {
	Orders     []domain.OrderView
	Page       int
	TotalPages int
}

// List fetches the transactions of a date range (through the cache), applies
// the client-side filters and slices out one display page.
//
// When the ticketing API is unreachable the service falls back to a locally
// generated placeholder dataset instead of failing the listing. The fallback
// is never written to the cache.
func (s *Service) List(
	ctx context.Context,
	from, to time.Time,
	site string,
	filter domain.TransactionFilter,
	page, pageSize int,
) (*ListResult, error) {
	const op = "service.orders.List"

	if to.Before(from) {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidRange)
	}

	if pageSize <= 0 {
		pageSize = s.cfg.DefaultPageSize
	}

	if pageSize > s.cfg.MaxPageSize {
		pageSize = s.cfg.MaxPageSize
	}

	key := redisrepo.KeyTransactions(from, to, site)

	txs, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		key,
		s.cfg.TransactionsTTL,
		func(ctx context.Context) ([]domain.Transaction, error) {
			return s.source.ListTransactions(ctx, from, to, site)
		},
	)
	if err != nil {
		s.logger.Warn("ticketing API unavailable, serving placeholder data",
			"error", err,
			"from", from.Format("2006-01-02"),
			"to", to.Format("2006-01-02"),
			"site", site,
		)
		txs = ticketing.PlaceholderTransactions(from, to, site)
	}

	views := Process(txs, filter)

	page = pagination.Clamp(page, pagination.TotalPages(len(views), pageSize))
	pageViews, totalPages := pagination.Page(views, pageSize, page)

	return &ListResult{
		Orders:     pageViews,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}
