package audit

import (
	"go.uber.org/zap"
)

type LoggerAudit struct {
	Logger *zap.SugaredLogger
}

var _ Audit = (*LoggerAudit)(nil)

func NewLoggerAudit(logger *zap.SugaredLogger) *LoggerAudit {
	return &LoggerAudit{Logger: logger}
}

func (d *LoggerAudit) Write(f *FetchData) error {
	d.Logger.Infow("AUDIT",
		"QueryID", f.QueryID,
		"RemoteAddr", f.RemoteAddr,
		"RequestID", f.RequestID,
		"Timestamp", f.Timestamp,
	)
	return nil
}
