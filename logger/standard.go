package logger

import (
	"io"

	"go.uber.org/zap"

	"github.com/philipp01105/logchain/formatter"
	"github.com/philipp01105/logchain/handler"
)

// StandardConfig holds configuration for the standard chain
type StandardConfig struct {
	// Stdout receives Warning lines (default: os.Stdout)
	Stdout io.Writer
	// ErrorLog is the file Error lines are appended to
	// (default: handler.DefaultErrorLog)
	ErrorLog string
	// Formatter renders Warning and Error lines (default: TextFormatter)
	Formatter formatter.Formatter
	// Diagnostics receives routing records (default: no-op)
	Diagnostics *zap.Logger
}

// NewStandard builds a Logger over the chain Unknown -> Warning -> Error
// -> Fatal. It fails with an error wrapping core.ErrResourceUnavailable
// when the error log cannot be opened.
func NewStandard(cfg StandardConfig) (*Logger, error) {
	errorHandler, err := handler.NewErrorHandler(handler.ErrorConfig{
		Filename:  cfg.ErrorLog,
		Formatter: cfg.Formatter,
	})
	if err != nil {
		return nil, err
	}

	return NewBuilder().
		WithHandlers(
			handler.NewUnknownHandler(),
			handler.NewWarningHandler(handler.WarningConfig{
				Writer:    cfg.Stdout,
				Formatter: cfg.Formatter,
			}),
			errorHandler,
			handler.NewFatalHandler(),
		).
		WithDiagnostics(cfg.Diagnostics).
		Build()
}
