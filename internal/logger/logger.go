package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the CLI logger writing to stderr, so stdout stays free for command output.
// Console output by default, json on request.
func New(json bool, debug bool) (*zap.Logger, error) {
	sink, _, err := zap.Open("stderr")
	if err != nil {
		return nil, err
	}

	return NewWithOutput(json, debug, sink), nil
}

// NewWithOutput builds the same logger as New on top of an arbitrary sink.
func NewWithOutput(json bool, debug bool, out zapcore.WriteSyncer) *zap.Logger {
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	cfg := encoderConfig()
	encoder := zapcore.NewConsoleEncoder(cfg)
	if json {
		encoder = zapcore.NewJSONEncoder(cfg)
	}

	core := zapcore.NewCore(encoder, out, zap.NewAtomicLevelAt(level))

	return zap.New(core, zap.AddCaller())
}

// Messages are logged under "step": every line reads as a step of the command.
func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		MessageKey: "step",

		LevelKey:    "level",
		EncodeLevel: zapcore.LowercaseLevelEncoder,

		TimeKey:    "time",
		EncodeTime: zapcore.RFC3339TimeEncoder,

		CallerKey:    "caller",
		EncodeCaller: zapcore.ShortCallerEncoder,

		EncodeDuration: zapcore.StringDurationEncoder,
	}
}
