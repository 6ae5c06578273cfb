package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	FieldJobID    = "job_id"
	FieldTalentID = "talent_id"
	FieldBackend  = "backend"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields safely attaches the provided fields to the logger.
// A nil logger becomes a no-op logger.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// BoardFields describes a job/talent pair. Empty ids are left out.
func BoardFields(jobID, talentID string) []zap.Field {
	return StringFields(
		StringField{Key: FieldJobID, Value: jobID},
		StringField{Key: FieldTalentID, Value: talentID},
	)
}

// WithBackend tags every entry of the logger with the active backend.
func WithBackend(logger *zap.Logger, backend string) *zap.Logger {
	return WithFields(logger, StringFields(StringField{Key: FieldBackend, Value: backend})...)
}
