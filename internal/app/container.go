package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"orderdesk/internal/config"
	"orderdesk/internal/gateway/courier"
	"orderdesk/internal/gateway/whatsapp"
	"orderdesk/internal/http/handlers"
	"orderdesk/internal/http/router"
	"orderdesk/internal/logx"
	"orderdesk/internal/metrics"
	"orderdesk/internal/repository"
	"orderdesk/internal/service/leads"
	"orderdesk/internal/service/orders"
	"orderdesk/internal/service/status"
	"orderdesk/internal/waybill"
)

// courierChannel names the courier the service submits orders to. Written
// back onto orders on dispatch.
type courierChannel string

// leadSource labels prospects captured through the chat relay.
const leadSource = "whatsapp-relay"

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error)
	logFatalf func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder.
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect: connectDbWithRetry,
		logFatalf: log.Fatalf,
	}
}

// WithDBConnect sets the database connection function.
func (b *ContainerBuilder) WithDBConnect(
	fn func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function.
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns the HTTP service container.
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerGateways(container); err != nil {
		return nil, fmt.Errorf("gateways: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerRateLimit(container); err != nil {
		return nil, fmt.Errorf("ratelimit: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns the HTTP service container.
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		config.Load,
		NewLogger,
	)
}

func registerDb(
	container *dig.Container,
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) error {
	providerDB := func(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
		return dbConnect(ctx, cfg.DB.DSN(), 10, time.Second)
	}
	return provideAll(container,
		providerDB,
		repository.NewOrderRepo,
		repository.NewTokenRepo,
		repository.NewProspectRepo,
		repository.NewDeviceRepo,
		repository.NewWebhookLogRepo,
		repository.NewCourierConfigRepo,
	)
}

func registerGateways(container *dig.Container) error {
	return provideAll(container,
		func() *http.Client { return &http.Client{Timeout: 30 * time.Second} },
		func(httpc *http.Client, cfg *config.Config) *courier.Exchanger {
			exchanges := metrics.NewTokenExchangesTotal()
			prometheus.MustRegister(exchanges)
			return courier.NewExchanger(httpc, cfg.Courier.BaseURL, exchanges)
		},
		func(cfg *config.Config, repo *repository.CourierConfigRepo) func(context.Context) (courier.Credentials, error) {
			env := courier.Credentials{
				ClientID:     cfg.Courier.ClientID,
				ClientSecret: cfg.Courier.ClientSecret,
			}
			return courier.NewCredentialsResolver(env, repo)
		},
		func(store *repository.TokenRepo, ex *courier.Exchanger, creds func(context.Context) (courier.Credentials, error)) *courier.CachedTokenSource {
			return courier.NewCachedTokenSource(store, ex, creds)
		},
		func(ex *courier.Exchanger, creds func(context.Context) (courier.Credentials, error)) *courier.FreshTokenSource {
			return courier.NewFreshTokenSource(ex, creds)
		},
		func(
			httpc *http.Client,
			cfg *config.Config,
			cached *courier.CachedTokenSource,
			fresh *courier.FreshTokenSource,
			sender *repository.CourierConfigRepo,
			logger logx.Logger,
		) *courier.Client {
			requests := metrics.NewCourierRequestsTotal()
			prometheus.MustRegister(requests)
			return courier.NewClient(httpc, cfg.Courier.BaseURL, cached, fresh, sender, courier.ShipmentOptions{
				PickupDaysAhead:   cfg.Courier.PickupDaysAhead,
				DeliveryDaysAhead: cfg.Courier.DeliveryDaysAhead,
			}, logger, requests)
		},
		func(httpc *http.Client, cfg *config.Config, logger logx.Logger) *whatsapp.Client {
			return whatsapp.NewClient(httpc, cfg.WhatsApp.BaseURL, cfg.WhatsApp.CountryCode, logger)
		},
		func(cli *courier.Client, httpc *http.Client, logger logx.Logger) *waybill.Merger {
			fallbacks := metrics.NewWaybillMergeFallbacksTotal()
			prometheus.MustRegister(fallbacks)
			return waybill.NewMerger(cli, httpc, logger, fallbacks)
		},
	)
}

func registerService(container *dig.Container) error {
	return provideAll(container,
		func(ctx context.Context, repo *repository.CourierConfigRepo, logger logx.Logger) courierChannel {
			lookupCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			defer cancel()
			cfg, err := repo.Get(lookupCtx)
			if err != nil || cfg == nil || cfg.CourierChannel == "" {
				logger.Warn("courier channel not configured, using default")
				return courierChannel("courier")
			}
			return courierChannel(cfg.CourierChannel)
		},
		func(repo *repository.OrderRepo, cli *courier.Client, merger *waybill.Merger, channel courierChannel, logger logx.Logger) *orders.Service {
			return orders.NewService(repo, cli, merger, string(channel), 30*time.Second, logger)
		},
		func(ordersRepo *repository.OrderRepo, devices *repository.DeviceRepo, notify *whatsapp.Client, logger logx.Logger) *status.Adapter {
			sendFailures := metrics.NewWhatsAppSendFailuresTotal()
			prometheus.MustRegister(sendFailures)
			return status.NewAdapter(ordersRepo, devices, notify, logger, sendFailures)
		},
		func(prospects *repository.ProspectRepo, svc *orders.Service, repo *repository.OrderRepo, logger logx.Logger) *leads.Service {
			return leads.NewService(prospects, svc, repo, leadSource, logger)
		},
	)
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	return provideAll(container,
		handlers.New,
		handlers.NewOrderUsecase,
		handlers.NewOrderHandler,
		handlers.NewProspectUsecase,
		handlers.NewProspectHandler,
		handlers.NewStatusUsecase,
		handlers.NewLeadUsecase,
		handlers.NewWebhookAuditor,
		handlers.NewWebhookHandler,
		router.New,
		serverProvider,
	)
}
