// Package filename produces safe attachment names for CSV downloads.
package filename

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	maxLength = 100

	suffix          = ".csv"
	timestampLayout = "20060102_150405"
)

var unsafeRuns = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Sanitize rewrites a user-supplied attachment name so it is safe to put
// in a Content-Disposition header: every run of characters outside
// [A-Za-z0-9._-] collapses to a single underscore, the result is capped at
// 100 characters and always carries the .csv suffix. The fallback must
// already be safe and suffixed. Sanitize never fails.
func Sanitize(candidate, fallback string) string {
	name := strings.TrimSpace(candidate)
	name = unsafeRuns.ReplaceAllString(name, "_")

	if len(name) > maxLength {
		name = name[:maxLength]
	}
	if name == "" || name == "." || name == ".." {
		name = fallback
	}
	if !strings.HasSuffix(strings.ToLower(name), suffix) {
		name += suffix
	}

	return name
}

// Default names a download after its query and fetch time (UTC).
func Default(queryID int, now time.Time) string {
	return fmt.Sprintf("dune_query_%d_%s%s", queryID, now.UTC().Format(timestampLayout), suffix)
}
