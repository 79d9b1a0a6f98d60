// Package logging configures log/slog for the kitchen binaries.
//
// Both kitchen and kitchend log JSON records to stderr. Every record carries
// the binary name under "module" and its build version under "version":
//
//	{"time":"...","level":"INFO","msg":"catalog reloaded","module":"kitchend","version":"v1.0.0","categories":2}
//
// # Setup
//
// Install the default logger once, before anything else logs:
//
//	logging.SetDefaultStructuredLogger("kitchend", version)
//
// The level comes from LOG_LEVEL (debug, info, warn, error; INFO when unset
// or unrecognized). The CLI passes its --log-level flag explicitly:
//
//	logging.SetDefaultStructuredLoggerWithLevel("kitchen", version, cmd.String("log-level"))
//
// At debug level records also include the source file and line.
//
// # Standard Library Bridge
//
// NewLogLogger adapts the default handler to a *log.Logger for APIs that
// still take one, such as http.Server.ErrorLog:
//
//	srv.ErrorLog = logging.NewLogLogger(slog.LevelError, false)
//
// # Conventions
//
// Messages are short lowercase phrases; details go into key/value attributes
// rather than the message text:
//
//	slog.Warn("catalog reload failed", "path", path, "error", err)
package logging
