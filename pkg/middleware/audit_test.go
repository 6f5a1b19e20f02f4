package middleware

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/duneview/duneview/internal/test"
	duneview "github.com/duneview/duneview/pkg"
	"github.com/duneview/duneview/pkg/audit"
)

func TestAudit(t *testing.T) {
	t.Parallel()

	cases := []struct {
		description string
		body        string
		requestID   string
		handlerBody string
		output      *regexp.Regexp
	}{
		{
			"fetch form with query identifier is audited",
			"api_key=test123&query_id=42",
			"test-request-id",
			"api_key=test123&query_id=42",
			regexp.MustCompile(`AUDIT\s{"QueryID": 42, "RemoteAddr": ".*", "RequestID": "test-request-id", "Timestamp": \d{10}}`),
		},
		{
			"fetch form without a request identifier is audited",
			"api_key=test123&query_id=42",
			"",
			"api_key=test123&query_id=42",
			regexp.MustCompile(`AUDIT\s{"QueryID": 42, "RemoteAddr": ".*", "RequestID": "", "Timestamp": \d{10}}`),
		},
		{
			"fetch form with an unparseable query identifier is audited",
			"api_key=test123&query_id=abc",
			"",
			"api_key=test123&query_id=abc",
			regexp.MustCompile(`AUDIT\s{"QueryID": 0, "RemoteAddr": ".*", "RequestID": "", "Timestamp": \d{10}}`),
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.description, func(t *testing.T) {
			t.Parallel()

			var handlerBody, output bytes.Buffer

			given := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.Copy(&handlerBody, r.Body)
			})

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/fetch", strings.NewReader(tc.body))
			r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			if tc.requestID != "" {
				ctx := context.WithValue(r.Context(), ContextKeyRequestID, tc.requestID)
				r = r.WithContext(ctx)
			}

			logger := test.DummyLogger(&output).Sugar()

			cfg := &duneview.Config{
				LoggerAudit: audit.NewLoggerAudit(logger),
				Logger:      logger,
			}
			Audit(cfg)(given).ServeHTTP(w, r)

			actual := w.Result()
			defer func() { _ = actual.Body.Close() }()

			assert.Equal(t, 200, actual.StatusCode)
			assert.Equal(t, tc.handlerBody, handlerBody.String())
			assert.Regexp(t, tc.output, output.String())
		})
	}
}
