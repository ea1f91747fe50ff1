package postgres_adapter

import (
	"listing-service/internal/core/port"
)

// discardLogger satisfies LoggerPort for repository tests.
type discardLogger struct{}

func (discardLogger) Info(msg string, fields port.Fields)             {}
func (discardLogger) Warn(msg string, fields port.Fields)             {}
func (discardLogger) Error(msg string, err error, fields port.Fields) {}
func (discardLogger) Debug(msg string, fields port.Fields)            {}
func (discardLogger) WithFields(fields port.Fields) port.LoggerPort {
	return discardLogger{}
}
