package main

import (
	"context"
	"log/slog"
	"os"

	"souq/config"
	"souq/internal/delivery"
	"souq/internal/delivery/http"
	"souq/internal/delivery/http/router/handler"
	"souq/internal/domain/lifecycle"
	"souq/internal/infra/gateway/httpapi"
	logs "souq/internal/infra/log"
	"souq/internal/usecase"
	"souq/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
			warmBrowsers,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		httpapi.NewClient,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			newBrowserRegistry,
		),
	)
}

// newBrowserRegistry builds one catalog browser per configured kind, all
// backed by the shared HTTP gateway client.
func newBrowserRegistry(lc fx.Lifecycle, cfg *config.Config, client *httpapi.Client, logger *slog.Logger) usecase.BrowserRegistry {
	browsers := make(map[string]usecase.CatalogBrowserUsecase, len(cfg.Catalog.Kinds))
	for _, kind := range cfg.Catalog.Kinds {
		gateway := client.KindGateway(kind.Path)
		browsers[kind.Name] = impl.NewCatalogBrowser(
			kind.Name,
			usecase.OrderPolicy(kind.Order),
			gateway,
			gateway,
			logger,
		)
	}

	registry := impl.NewBrowserRegistry(browsers)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			registry.Close()
			return nil
		},
	})

	return registry
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCatalogHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}

// warmBrowsers kicks off the initial load of every configured kind so the
// first snapshot request is not served from an idle browser. A load failure
// here is not fatal: the browser records the error and a reload can retry.
func warmBrowsers(registry usecase.BrowserRegistry, logger *slog.Logger) {
	for _, kind := range registry.Kinds() {
		browser, ok := registry.Browser(kind)
		if !ok {
			continue
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
			defer cancel()
			if err := browser.Load(ctx); err != nil {
				logger.Warn("initial catalog load failed",
					slog.String("kind", kind),
					slog.String("error", err.Error()),
				)
			}
		}()
	}
}
