package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	duneview "github.com/duneview/duneview/pkg"
	"github.com/duneview/duneview/pkg/filename"
	"github.com/duneview/duneview/pkg/models"
	"github.com/duneview/duneview/pkg/table"
)

// Preview fetches the query results and renders the first page. The fetch
// is not kept anywhere; a later download re-fetches on its own.
func Preview(cfg *duneview.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey, queryID, flash := parseFetchForm(r)
		if flash != nil {
			renderForm(cfg, w, flash)
			return
		}

		raw, err := cfg.Client.FetchResults(r.Context(), apiKey, queryID)
		if err != nil {
			cfg.Logger.Errorf("Unable to fetch results for query %d: %s", queryID, err)
			renderForm(cfg, w, fetchFlash(err))
			return
		}

		view := &models.ResultsView{
			QueryID:           queryID,
			APIKey:            apiKey,
			SuggestedFilename: filename.Default(queryID, time.Now()),
		}

		t, err := table.Tabulate(raw)
		if err != nil {
			var malformed *table.MalformedError
			if !errors.As(err, &malformed) {
				renderForm(cfg, w, fetchFlash(err))
				return
			}

			cfg.Logger.Warnf("Malformed results payload for query %d", queryID)
			view.RawPayload = prettyJSON(malformed.Raw)

			if err := cfg.Renderer.Results(w, view); err != nil {
				cfg.Logger.Errorf("Unable to render results page: %s", err)
			}
			return
		}

		view.Columns = t.Columns
		view.Rows = t.Records(previewRowLimit)
		view.TotalRows = t.TotalRows()
		view.DisplayedRows = len(view.Rows)

		if err := cfg.Renderer.Results(w, view); err != nil {
			cfg.Logger.Errorf("Unable to render results page: %s", err)
		}
	})
}

func prettyJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}
