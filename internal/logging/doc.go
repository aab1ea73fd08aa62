// Package logger provides structured logging for Agevault CLI commands.
//
// The logger supports multiple verbosity levels controlled by command-line
// flags. Output is formatted with semantic prefixes and colors from the
// ui package.
//
// # Verbosity Levels
//
// Logging behavior is controlled by two flags:
//
//   - --verbose: Shows info and warning messages
//   - --debug: Shows all messages including debug details
//
// Without flags, only user-facing warnings and errors are shown.
//
// # Log Methods
//
//	Logger.Infof()            // Shown with --verbose or --debug
//	Logger.Debugf()           // Shown only with --debug
//	Logger.Warnf()            // Diagnostic warnings
//	Logger.WarnfUser()        // User-facing warnings (not debug info)
//	Logger.Errorf()           // Errors
//	Logger.ErrorfAndReturn()  // Log an error and return it
//
// # Usage
//
// Create a logger with the desired verbosity:
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Stored key %s", record.ID)
//
// Commands typically create a logger in their PersistentPreRun and
// pass it to internal functions.
package logger
