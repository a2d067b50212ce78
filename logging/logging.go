// Package logging builds the zap logger shared by the command and its
// components.
package logging

import (
	"io"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects where log entries go.
type Options struct {
	// Debug lowers the console level from warn to debug
	Debug bool
	// File, when non-empty, additionally receives JSON entries through a rotating writer
	File string
	// Console is where human readable entries are written; defaults to stderr
	Console io.Writer
}

// New builds a logger that writes warnings (or everything with Debug) to
// the console, and info and above to Options.File when set.
func New(opts Options) *zap.Logger {
	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	level := zap.WarnLevel
	if opts.Debug {
		level = zap.DebugLevel
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.CallerKey = ""
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(console), level),
	}

	if opts.File != "" {
		fileCfg := zap.NewProductionEncoderConfig()
		fileCfg.TimeKey = "timestamp"
		fileCfg.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(strconv.FormatInt(t.Unix(), 10))
		}
		fileWriter := zapcore.AddSync(&lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    1, // megabytes
			MaxBackups: 3,
			MaxAge:     30, // days
			Compress:   true,
		})
		fileLevel := zap.InfoLevel
		if opts.Debug {
			fileLevel = zap.DebugLevel
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(fileCfg), fileWriter, fileLevel))
	}

	return zap.New(zapcore.NewTee(cores...))
}
