package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	duneview "github.com/duneview/duneview/pkg"
	"github.com/duneview/duneview/pkg/filename"
	"github.com/duneview/duneview/pkg/models"
	"github.com/duneview/duneview/pkg/table"
)

// Download re-fetches the query results and streams them back as a CSV
// attachment. Nothing from a previous preview is reused.
func Download(cfg *duneview.Config) http.Handler {
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

		t, err := table.Tabulate(raw)
		if err != nil {
			renderForm(cfg, w, &models.Flash{
				Category: models.FlashDanger,
				Message:  fmt.Sprintf("Download failed: %s", err),
			})
			return
		}

		content, err := t.CSVBytes()
		if err != nil {
			renderForm(cfg, w, &models.Flash{
				Category: models.FlashDanger,
				Message:  fmt.Sprintf("Download failed: %s", err),
			})
			return
		}

		name := filename.Sanitize(r.FormValue("filename"), filename.Default(queryID, time.Now()))

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
		w.Header().Set("Content-Length", strconv.Itoa(len(content)))

		if _, err := w.Write(content); err != nil {
			cfg.Logger.Errorf("Unable to write CSV attachment: %s", err)
		}
	})
}
