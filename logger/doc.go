// Package logger is the public API of logchain. Most users only need to
// import this package.
//
// NewStandard assembles the canonical chain, Unknown -> Warning -> Error
// -> Fatal, printing warnings to stdout and appending errors to a file:
//
//	log, err := logger.NewStandard(logger.StandardConfig{ErrorLog: "errors.txt"})
//	if err != nil {
//	    return err
//	}
//	defer log.Close()
//
//	if err := log.Fatal("disk gone"); err != nil {
//	    fmt.Println(err) // Fatal Error: disk gone
//	}
//
// Custom chains are built with the Builder, in dispatch order:
//
//	log, err := logger.NewBuilder().
//	    WithHandlers(handler.NewWarningHandler(handler.WarningConfig{}), handler.NewFatalHandler()).
//	    WithDiagnostics(zapLogger).
//	    Build()
//
// Every Logger method returns the chain's dispatch error unchanged, so
// callers decide how to report failures. Fatal never exits the process.
package logger
