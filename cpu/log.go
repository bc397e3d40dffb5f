package cpu

import (
	"fmt"
	"log"
)

// Logger is the diagnostic sink. The CPU reports recoverable conditions
// (currently just unrecognized opcode bytes) here and keeps running.
type Logger interface {
	Log(msg string)
}

type stderrLogger struct{}

func (stderrLogger) Log(msg string) { log.Println(msg) }

var logger Logger = stderrLogger{}

// SetLogger replaces the diagnostic sink. Passing nil restores the
// default, which writes to stderr via the standard log package.
func SetLogger(l Logger) {
	if l == nil {
		logger = stderrLogger{}
		return
	}
	logger = l
}

func logf(format string, args ...any) {
	logger.Log(fmt.Sprintf(format, args...))
}
