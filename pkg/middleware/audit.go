package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	duneview "github.com/duneview/duneview/pkg"
	"github.com/duneview/duneview/pkg/audit"
)

// Audit records every fetch and download attempt before it reaches the
// handler. The body is copied and restored so the handler can still parse
// the form. Only the query identifier is taken from the form; the API key
// never enters the audit trail.
func Audit(cfg *duneview.Config) Middleware {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			now := time.Now()

			var b bytes.Buffer
			if _, err := io.Copy(&b, r.Body); err != nil {
				cfg.Logger.Errorf("Unable to copy request body: %s", err)
				http.Error(w, "An internal error has occurred", http.StatusInternalServerError)
				return
			}
			_ = r.Body.Close()

			r.Body = io.NopCloser(bytes.NewReader(b.Bytes()))

			form, err := url.ParseQuery(b.String())
			if err != nil {
				cfg.Logger.Debugf("Unable to parse request form: %s", err)
				h.ServeHTTP(w, r)
				return
			}

			queryID, _ := strconv.Atoi(form.Get("query_id"))

			var requestID string
			if id, ok := ctx.Value(ContextKeyRequestID).(string); ok {
				requestID = id
			}

			_ = cfg.LoggerAudit.Write(&audit.FetchData{
				QueryID:    queryID,
				RemoteAddr: r.RemoteAddr,
				RequestID:  requestID,
				Timestamp:  now.Unix(),
			})
			h.ServeHTTP(w, r)
		})
	}
}
