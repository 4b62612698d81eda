package debug

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/hdanswers/answerset/ans"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger atomic.Pointer[zap.SugaredLogger]

func init() {
	logger.Store(NewLogger("debug").Sugar())
}

// NewLogger returns a console logger writing to stderr at the given level
// (debug, info, warn or error; anything else is info).
func NewLogger(level string) *zap.Logger {
	var lvl zapcore.Level
	switch level {
	case "debug":
		lvl = zap.DebugLevel
	case "warn":
		lvl = zap.WarnLevel
	case "error":
		lvl = zap.ErrorLevel
	default:
		lvl = zap.InfoLevel
	}
	encCfg := zapcore.EncoderConfig{
		TimeKey:        "",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(lvl),
		Encoding:         "console",
		EncoderConfig:    encCfg,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

// SetLogger replaces the logger used by Logf.
func SetLogger(l *zap.Logger) {
	logger.Store(l.Sugar())
}

func Logger() *zap.SugaredLogger {
	return logger.Load()
}

// Logf logs at debug level. Answers and collections in args are summarized.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ans.Answer:
			args[i] = summary(x)
		case *ans.Collection:
			names := x.Names()
			args[i] = fmt.Sprintf("[%d answers: %s]", len(names), strings.Join(names, ", "))
		case *ans.Node:
			if x == nil {
				args[i] = "[no node]"
				continue
			}
			args[i] = fmt.Sprintf("[node repeat=%v len=%d value=%v]", x.IsRepeat(), x.Len(), x.Value())
		}
	}
	Logger().Debugf(strings.TrimRight(msg, "\n"), args...)
}

func summary(a *ans.Answer) string {
	n, _ := a.GetChildCount()
	return fmt.Sprintf("[%s %s repeated=%v answered=%v count=%d]", a.Name(), a.Type(), a.IsRepeated(), a.Answered(), n)
}

func traceResolve() {
	ans.SetResolveTrace(func(mode ans.ResolveMode, indices []int, leaf *ans.Node) {
		Logf("resolve %s %v: %v", mode, indices, leaf)
	})
}
