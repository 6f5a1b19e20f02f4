package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/etherlabsio/healthcheck/v2"

	duneview "github.com/duneview/duneview/pkg"
)

func Healthcheck(cfg *duneview.Config) http.Handler {
	return healthcheck.Handler(
		healthcheck.WithTimeout(5*time.Second),
		healthcheck.WithChecker(
			"upstream", healthcheck.CheckerFunc(
				func(ctx context.Context) error {
					// Any HTTP response counts as reachable; without a
					// credential the API answers 401, which is fine here.
					if err := cfg.Client.Ping(ctx); err != nil {
						cfg.Logger.Errorf("Healthcheck unable to reach the Dune API: %s", err)
						return errors.New("unable to reach the Dune API")
					}
					return nil
				},
			),
		),
	)
}
