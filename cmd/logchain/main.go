// Command logchain builds the standard handler chain and feeds it one
// message of each severity, printing every dispatch failure.
package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/philipp01105/logchain/core"
	"github.com/philipp01105/logchain/handler"
	"github.com/philipp01105/logchain/logger"
)

// samples are dispatched in order, one independent call each
var samples = []core.Message{
	core.NewMessage(core.WarningSeverity, "An error may occur"),
	core.NewMessage(core.ErrorSeverity, "Error happened"),
	core.NewMessage(core.FatalSeverity, "Fatal error happened"),
	core.NewMessage(core.UnknownSeverity, "Unknown error happened"),
}

func main() {
	diag := newDiagnostics()
	code := run(os.Stdout, handler.DefaultErrorLog, diag)
	_ = diag.Sync()
	os.Exit(code)
}

// newDiagnostics returns a stderr logger that only reports warnings and
// above, keeping stdout reserved for handler output.
func newDiagnostics() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	cfg.Encoding = "console"
	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

// run returns the process exit status: 0 once the chain is built, even
// if individual dispatches fail.
func run(stdout io.Writer, errorLog string, diag *zap.Logger) int {
	log, err := logger.NewStandard(logger.StandardConfig{
		Stdout:      stdout,
		ErrorLog:    errorLog,
		Diagnostics: diag,
	})
	if err != nil {
		diag.Error("cannot build handler chain", zap.String("error_log", errorLog), zap.Error(err))
		fmt.Fprintln(stdout, err)
		return 1
	}
	defer func() {
		if err := log.Close(); err != nil {
			diag.Warn("closing handler chain", zap.Error(err))
		}
	}()

	for _, msg := range samples {
		if err := log.Log(msg.Severity(), msg.Text()); err != nil {
			fmt.Fprintln(stdout, err)
		}
	}
	return 0
}
