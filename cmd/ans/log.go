package main

import (
	"github.com/hdanswers/answerset/debug"

	"go.uber.org/zap"
)

var theLog *zap.SugaredLogger = debug.NewLogger("info").Sugar()

// setLogLevel rebuilds the command logger at level. At debug level the
// ANS_DEBUG_* traces go through it too.
func setLogLevel(level string) {
	l := debug.NewLogger(level)
	theLog = l.Sugar()
	if level == "debug" {
		debug.SetLogger(l.Named("debug"))
	}
}

func syncLog() {
	_ = theLog.Sync()
}
