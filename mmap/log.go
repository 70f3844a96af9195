package mmap

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logging bool
var logWriters = []zapcore.WriteSyncer{os.Stdout}
var logger *zap.Logger
var zapEncoderConfig = zapcore.EncoderConfig{
	TimeKey:        "ts",
	LevelKey:       "level",
	NameKey:        "logger",
	CallerKey:      "caller",
	MessageKey:     "msg",
	StacktraceKey:  "stacktrace",
	EncodeLevel:    zapcore.LowercaseLevelEncoder,
	EncodeTime:     zapcore.ISO8601TimeEncoder,
	EncodeDuration: zapcore.SecondsDurationEncoder,
}

// EnableLogging enables logging of mapping lifecycle events if true is passed
// and disables it if false is passed
func EnableLogging(enable bool) {
	logging = enable
}

// AddLogWriter adds a new io.Writer as a target for writing logs
func AddLogWriter(writer io.Writer) {
	logWriters = append(logWriters, zapcore.AddSync(writer))
	initializeLogger()
}

// SetLogWriters will set the passed io.Writer instances as targets for
// writing logs
func SetLogWriters(writers ...io.Writer) {
	writesyncers := make([]zapcore.WriteSyncer, 0, len(writers))
	for _, w := range writers {
		writesyncers = append(writesyncers, zapcore.AddSync(w))
	}

	logWriters = writesyncers
	initializeLogger()
}

func initializeLogger() {
	ws := zap.CombineWriteSyncers(logWriters...)
	logger = zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(zapEncoderConfig),
		ws, zapcore.InfoLevel,
	))
}

func init() {
	logging = false
	initializeLogger()
}
