// Package app provides application-level wiring and dependency injection
// for the shop-demo server.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"shop-demo/internal/api"
	"shop-demo/internal/auth"
	"shop-demo/internal/config"
	"shop-demo/internal/db/repository"
	"shop-demo/internal/middleware"
	"shop-demo/internal/service/order"
)

// Deps holds the external dependencies that main() must provide.
type Deps struct {
	Cfg     *config.Config
	WriteDB *sql.DB
	ReadDB  *sql.DB
	Logger  *slog.Logger
	// AccessLog enables chi's request logger on the router.
	AccessLog bool
}

// App holds the fully-wired application.
type App struct {
	Placement *order.PlacementService
	Retrieval *order.RetrievalService
	Resolver  *auth.PrincipalResolver
	// Issuer is non-nil when HS256 tokens are accepted.
	Issuer *auth.HS256Codec
	Router http.Handler
}

// New wires repositories, services and the router from the provided deps.
// It seeds demo data when Cfg.SeedDemo is set.
func New(ctx context.Context, deps Deps) (*App, error) {
	cfg := deps.Cfg
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	// === Repositories (write-pool) ===
	auditRepo := repository.NewAuditRepo(deps.WriteDB)
	txManager := repository.NewTxManager(deps.WriteDB)

	// === Repositories (read-pool) ===
	customerRepo := repository.NewCustomerRepo(deps.ReadDB)
	orderRepo := repository.NewOrderRepo(deps.ReadDB)

	if cfg.SeedDemo {
		if err := seedDemo(ctx, deps.WriteDB); err != nil {
			logger.Warn("seed demo data failed", "error", err)
		}
	}

	codec, issuer, err := newTokenCodec(ctx, cfg.Auth)
	if err != nil {
		return nil, err
	}
	resolver := auth.NewPrincipalResolver(codec)

	placement := order.NewPlacementService(customerRepo, txManager, auditRepo, logger)
	retrieval := order.NewRetrievalService(customerRepo, orderRepo, auditRepo, logger)

	handler := api.NewHandler(placement, retrieval, logger.With("component", "api"))
	router := api.NewRouter(handler, api.RouterConfig{
		Resolver: resolver,
		RateLimit: middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimitRPS,
			Burst:             cfg.RateLimitBurst,
		},
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Logger:         logger.With("component", "auth"),
		AccessLog:      deps.AccessLog,
	})

	return &App{
		Placement: placement,
		Retrieval: retrieval,
		Resolver:  resolver,
		Issuer:    issuer,
		Router:    router,
	}, nil
}

// newTokenCodec picks OIDC verification when an identity provider is
// configured and HS256 otherwise.
func newTokenCodec(ctx context.Context, a config.AuthConfig) (auth.TokenCodec, *auth.HS256Codec, error) {
	switch {
	case a.IssuerURL != "" && a.JWKSURL == "":
		c, err := auth.NewOIDCCodec(ctx, a.IssuerURL, a.Audience, a.AllowedIssuers)
		if err != nil {
			return nil, nil, fmt.Errorf("oidc discovery: %w", err)
		}
		return c, nil, nil
	case a.JWKSURL != "":
		return auth.NewOIDCCodecFromJWKS(ctx, a.JWKSURL, a.IssuerURL, a.Audience, a.AllowedIssuers), nil, nil
	default:
		c, err := auth.NewHS256Codec(a.JWTSecret, a.JWTIssuer, a.JWTTTL)
		if err != nil {
			return nil, nil, fmt.Errorf("hs256 codec: %w", err)
		}
		return c, c, nil
	}
}
