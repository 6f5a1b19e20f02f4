package duneview

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/duneview/duneview/pkg/audit"
	"github.com/duneview/duneview/pkg/dune"
	"github.com/duneview/duneview/pkg/env/api"
	"github.com/duneview/duneview/pkg/env/server"
	"github.com/duneview/duneview/pkg/render"
)

const defaultUpstreamTimeout = 1 * time.Minute

// Config carries the process-wide collaborators shared by handlers and
// middleware. Everything here is immutable after start-up.
type Config struct {
	Client      *dune.Client
	APIEnv      *api.Env
	ServerEnv   *server.Env
	Renderer    render.Renderer
	LoggerAudit *audit.LoggerAudit
	Logger      *zap.SugaredLogger
}

func Production() bool {
	return os.Getenv("ENVIRONMENT") == "production"
}

// UpstreamTimeout bounds a single fetch against the Dune API.
func UpstreamTimeout() time.Duration {
	timeout := defaultUpstreamTimeout

	if s := os.Getenv("UPSTREAM_TIMEOUT"); s != "" {
		d, err := parseDuration(s)
		if err == nil {
			timeout = d
		}
	}

	return timeout
}

// parseDuration accepts the usual Go duration syntax, with a bare integer
// treated as seconds. Negative durations are folded to positive.
func parseDuration(s string) (time.Duration, error) {
	if _, err := strconv.Atoi(s); err == nil {
		s += "s"
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("unable to parse duration: %w", err)
	}
	if d < 0 {
		d = -d
	}

	return d, nil
}
