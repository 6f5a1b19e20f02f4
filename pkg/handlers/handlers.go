package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	duneview "github.com/duneview/duneview/pkg"
	"github.com/duneview/duneview/pkg/dune"
	"github.com/duneview/duneview/pkg/models"
)

// The preview page only ever shows the first page of results; downloads
// always carry every row.
const previewRowLimit = 100

// parseFetchForm validates the credential and query identifier shared by
// the preview and download handlers. A nil flash means the input is usable
// and an upstream fetch may proceed.
func parseFetchForm(r *http.Request) (string, int, *models.Flash) {
	apiKey := strings.TrimSpace(r.FormValue("api_key"))
	if apiKey == "" {
		return "", 0, &models.Flash{
			Category: models.FlashWarning,
			Message:  "Please enter your Dune API key.",
		}
	}

	queryID, err := strconv.Atoi(strings.TrimSpace(r.FormValue("query_id")))
	if err != nil || queryID <= 0 {
		return "", 0, &models.Flash{
			Category: models.FlashWarning,
			Message:  "Query ID must be a positive integer.",
		}
	}

	return apiKey, queryID, nil
}

func renderForm(cfg *duneview.Config, w http.ResponseWriter, flash *models.Flash) {
	view := &models.FormView{
		DefaultAPIKey: cfg.APIEnv.DefaultAPIKey,
		Flash:         flash,
	}
	if err := cfg.Renderer.Form(w, view); err != nil {
		cfg.Logger.Errorf("Unable to render form page: %s", err)
	}
}

// fetchFlash classifies an upstream fetch failure into the user-facing
// message shown on the form page.
func fetchFlash(err error) *models.Flash {
	var statusErr *dune.StatusError
	if errors.As(err, &statusErr) {
		return &models.Flash{
			Category: models.FlashDanger,
			Message:  fmt.Sprintf("HTTP error: %s", statusErr.Status),
		}
	}

	var transportErr *dune.TransportError
	if errors.As(err, &transportErr) {
		return &models.Flash{
			Category: models.FlashDanger,
			Message:  fmt.Sprintf("Network error: %s", transportErr.Err),
		}
	}

	return &models.Flash{
		Category: models.FlashDanger,
		Message:  fmt.Sprintf("Unexpected error: %s", err),
	}
}
