package models

// Flash is a one-shot user-facing message shown on the form page.
type Flash struct {
	Category string
	Message  string
}

const (
	FlashWarning = "warning"
	FlashDanger  = "danger"
)

type FormView struct {
	DefaultAPIKey string
	Flash         *Flash
}

// ResultsView feeds the results page. Either Columns/Rows are set, or
// RawPayload carries the pretty-printed payload of a malformed response.
type ResultsView struct {
	QueryID           int
	APIKey            string
	Columns           []string
	Rows              [][]string
	TotalRows         int
	DisplayedRows     int
	SuggestedFilename string
	RawPayload        string
}
