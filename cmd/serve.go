// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/canonical/community-service/internal/authorization"
	"github.com/canonical/community-service/internal/db"
	"github.com/canonical/community-service/internal/identity"
	"github.com/canonical/community-service/internal/logging"
	"github.com/canonical/community-service/internal/monitoring/prometheus"
	"github.com/canonical/community-service/internal/password"
	"github.com/canonical/community-service/internal/revocation"
	"github.com/canonical/community-service/internal/storage"
	"github.com/canonical/community-service/internal/tracing"
	"github.com/canonical/community-service/pkg/authentication"
	"github.com/canonical/community-service/pkg/community"
	"github.com/canonical/community-service/pkg/metrics"
	"github.com/canonical/community-service/pkg/provisioning"
	"github.com/canonical/community-service/pkg/registration"
	"github.com/canonical/community-service/pkg/status"
	"github.com/canonical/community-service/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		main()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs, err := loadSpecs()
	if err != nil {
		return err
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("community-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	defaults := provisioning.NewDefaults(specs.DefaultLocale, specs.DefaultCurrency, specs.DefaultCountry)
	if err := defaults.Validate(); err != nil {
		return fmt.Errorf("invalid community defaults: %w", err)
	}

	dbClient, err := db.NewDBClient(dbConfig(specs.DatabaseSpec, specs.TracingEnabled), tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	denylist, err := revocation.NewDenylist(
		revocation.Config{
			Driver:        specs.DenylistDriver,
			RedisAddr:     specs.RedisAddr,
			RedisPassword: specs.RedisPassword,
			RedisDB:       specs.RedisDB,
		},
		s,
		dbClient,
		tracer,
		monitor,
		logger,
	)
	if err != nil {
		return fmt.Errorf("failed to create token denylist: %v", err)
	}
	defer denylist.Close()

	hasher := password.NewHasher(specs.BcryptCost)
	resolver := community.NewResolver(s, tracer, monitor, logger)
	authorizer := authorization.NewAuthorizer(resolver, s, tracer, monitor, logger)

	issuer := authentication.NewIssuer(specs.TokenSecret, specs.TokenIssuer, specs.TokenLifetime)
	verifier := authentication.NewJWTVerifier(specs.TokenSecret, specs.TokenIssuer, denylist, tracer, monitor, logger)
	authenticator := authentication.NewAuthenticator(s, hasher, issuer, verifier, denylist, authorizer, tracer, monitor, logger)
	authnMiddleware := authentication.NewMiddleware(verifier, tracer, monitor, logger)
	authzMiddleware := authorization.NewMiddleware(authorizer, tracer, logger)

	provisioner := provisioning.NewProvisioner(s, dbClient, defaults, tracer, monitor, logger)
	registrationService := registration.NewService(
		s,
		hasher,
		provisioner,
		authorizer,
		authenticator,
		dbClient,
		specs.RedirectURLTemplate,
		tracer,
		monitor,
		logger,
	)
	communityService := community.NewService(s, tracer, monitor, logger)

	systemAPIs := []web.API{
		status.NewAPI(
			map[string]status.PingerInterface{
				"database": dbClient,
				"denylist": denylist,
			},
			tracer,
			monitor,
			logger,
		),
		metrics.NewAPI(logger),
	}

	apis := []web.API{
		authentication.NewAPI(authenticator, authnMiddleware, tracer, monitor, logger),
		registration.NewAPI(registrationService, tracer, monitor, logger),
		community.NewAPI(communityService, authnMiddleware, authzMiddleware, dbClient, tracer, monitor, logger),
	}

	router := web.NewRouter(
		specs.CORSAllowedOrigins,
		identity.NewMiddleware(specs.TrustForwardedHost, tracer, monitor, logger).HTTPMiddleware,
		resolver.HTTPMiddleware,
		systemAPIs,
		apis,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		purgeRevocations(gCtx, denylist, specs.DenylistPurgeInterval, logger)
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		// Create a deadline to wait for.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		logger.Security().SystemShutdown()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// purgeRevocations drops expired denylist entries until ctx is cancelled.
func purgeRevocations(ctx context.Context, denylist revocation.DenylistInterface, interval time.Duration, logger logging.LoggerInterface) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := denylist.Purge(ctx)
			if err != nil {
				logger.Errorf("failed to purge revoked tokens: %v", err)
				continue
			}
			logger.Debugf("purged %d expired revocations", n)
		}
	}
}

func main() {
	if err := serve(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}
