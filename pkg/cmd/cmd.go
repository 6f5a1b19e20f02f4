package cmd

import (
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"strconv"
	"time"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"go.uber.org/zap"

	duneview "github.com/duneview/duneview/pkg"
	"github.com/duneview/duneview/pkg/audit"
	"github.com/duneview/duneview/pkg/dune"
	"github.com/duneview/duneview/pkg/env/api"
	"github.com/duneview/duneview/pkg/env/server"
	"github.com/duneview/duneview/pkg/handlers"
	"github.com/duneview/duneview/pkg/middleware"
	"github.com/duneview/duneview/pkg/render"
	"github.com/duneview/duneview/pkg/version"
)

const (
	readTimeout       = 1 * time.Minute
	readHeaderTimeout = 20 * time.Second
	writeTimeout      = 2 * time.Minute
)

func Run(logger *zap.SugaredLogger) error {
	production := duneview.Production()
	logger.Infof("Starting duneview version: %s", version.Version())

	apie := api.NewAPIEnv()
	if err := apie.Populate(); err != nil {
		return fmt.Errorf("unable to configure Dune API access: %w", err)
	}

	upstreamTimeout := duneview.UpstreamTimeout()
	logger.Infof("Production: %t, Dune API endpoint: %s (default API key configured: %t, timeout: %s)",
		production, apie.BaseURL, apie.HasDefaultAPIKey(), upstreamTimeout)

	srve := server.NewServerEnv()
	if err := srve.Populate(); err != nil {
		return fmt.Errorf("unable to configure HTTP server: %w", err)
	}

	client := dune.NewClient(apie.BaseURL, dune.WithTimeout(upstreamTimeout))

	renderer, err := render.NewHTML()
	if err != nil {
		return fmt.Errorf("unable to configure page rendering: %w", err)
	}

	la := audit.NewLoggerAudit(logger)

	cfg := &duneview.Config{
		Client:      client,
		APIEnv:      apie,
		ServerEnv:   srve,
		Renderer:    renderer,
		LoggerAudit: la,
		Logger:      logger,
	}

	defaultLogOutput := log.Default().Writer()

	healthLogOutput := io.Discard
	if !production {
		healthLogOutput = defaultLogOutput
	}
	logHandler := gorillaHandlers.LoggingHandler

	formChain := alice.New(
		alice.Constructor(middleware.Recovery(cfg)),
		alice.Constructor(middleware.RequestID()),
	)

	// Fetching handlers get a little headroom over the upstream timeout so
	// the upstream error, not the outer cut-off, reaches the user.
	fetchChain := alice.New(
		alice.Constructor(middleware.Recovery(cfg)),
		alice.Constructor(middleware.Timeout(upstreamTimeout+30*time.Second)),
		alice.Constructor(middleware.RequestID()),
		alice.Constructor(middleware.Audit(cfg)),
	)

	r := mux.NewRouter()
	r.Handle("/healthcheck", logHandler(healthLogOutput, handlers.Healthcheck(cfg))).Methods("GET")
	r.Handle("/", logHandler(defaultLogOutput, formChain.Then(handlers.Form(cfg)))).Methods("GET")
	r.Handle("/fetch", logHandler(defaultLogOutput, fetchChain.Then(handlers.Preview(cfg)))).Methods("POST")
	r.Handle("/download", logHandler(defaultLogOutput, fetchChain.Then(handlers.Download(cfg)))).Methods("POST")

	logger.Infof("HTTP server starting on port: %d", srve.Port)

	srv := &http.Server{
		Addr:              net.JoinHostPort(srve.Address, strconv.Itoa(srve.Port)),
		Handler:           r,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
	}
	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("unable to start HTTP server: %w", err)
	}

	return nil
}
