package audit

// FetchData captures one upstream fetch attempt. The credential is
// deliberately absent: it must never land in the audit trail.
type FetchData struct {
	QueryID    int
	RemoteAddr string
	RequestID  string
	Timestamp  int64
}

type Audit interface {
	Write(*FetchData) error
}
