package service

import (
	"log/slog"

	postgres "github.com/kinoops/backoffice/internal/repository/postgres"
	redis "github.com/kinoops/backoffice/internal/repository/redis"
	"github.com/kinoops/backoffice/internal/service/invoices"
	"github.com/kinoops/backoffice/internal/service/orders"
)

type Services struct {
	Orders   *orders.Service
	Invoices *invoices.Service
}

type Config struct {
	Orders   orders.Config
	Invoices invoices.Config
}

func NewServices(
	source orders.Source,
	store *postgres.Store,
	cache *redis.Cache,
	pubsub *redis.InvoicesPubSub,
	limiter *redis.SlidingWindowLimiter,
	logger *slog.Logger,
	cfg Config,
) *Services {
	return &Services{
		Orders:   orders.New(source, cache, logger, cfg.Orders),
		Invoices: invoices.New(store, cache, pubsub, limiter, cfg.Invoices),
	}
}
