// Package binview implements typed, bounds-checked views over raw byte
// buffers.
//
// A View is an immutable window (byte offset, byte length) into a backing
// buffer, through which fixed-width numeric values are read and written at
// arbitrary byte offsets, in either byte order. Validation and conversion
// follow the ECMAScript DataView semantics: every access re-checks the
// buffer for detachment, offsets pass a ToIndex-style range check, a
// failing validation step never reads or writes a single byte, and the
// byte order defaults to big-endian when omitted.
//
// Buffers live in the buffer subpackage. The library ships an in-memory
// implementation and a memory-mapped one; anything satisfying
// buffer.Buffer can back a view.
//
// Some examples on using the API are implemented as executable go programs
// in the `examples` subdirectory.
package binview

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Version is the last tagged version of the package
const Version = "1.0.0"

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

// EnableLogging enables logging if true is passed and disables it if false
// is passed. Logging is off by default and never touches the accessor hot
// path, only view construction and buffer lifecycle events.
func EnableLogging(enable bool) {
	logging = enable
}

// AddLogWriter adds a new io.Writer as a target for writing
// logs.
func AddLogWriter(writer io.Writer) {
	logWriters = append(logWriters, zapcore.AddSync(writer))
	initializeLogger()
}

// SetLogWriters will set the passed io.Writer instances as targets for
// writing logs.
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
