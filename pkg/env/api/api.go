package api

import (
	"os"
	"strings"
)

const defaultBaseURL = "https://api.dune.com"

// Env describes access to the upstream Dune API. Both variables are
// optional: DUNE_API_KEY pre-fills the form with a default credential and
// DUNE_API_URL overrides the endpoint, which is only useful in tests.
type Env struct {
	DefaultAPIKey string
	BaseURL       string
}

func NewAPIEnv() *Env {
	return &Env{}
}

func (e *Env) Populate() error {
	e.DefaultAPIKey = strings.TrimSpace(os.Getenv("DUNE_API_KEY"))

	e.BaseURL = defaultBaseURL
	if url := strings.TrimRight(strings.TrimSpace(os.Getenv("DUNE_API_URL")), "/"); url != "" {
		e.BaseURL = url
	}

	return nil
}

func (e *Env) HasDefaultAPIKey() bool {
	return e.DefaultAPIKey != ""
}
