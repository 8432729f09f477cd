// Package logging provides structured logging for network-status.
//
// It wraps a package-global zap logger. Logging is silent unless a level is
// requested, either with --log-level or the NETSTATUS_LOG_LEVEL environment
// variable, because stdout usually is the console the dashboard is drawn on.
// Log output goes to stderr or to a file named in the configuration, never
// to stdout.
//
// # Log Levels
//
//   - Debug: per-tick detail (unchanged snapshots, placeholder substitutions)
//   - Info: backend selection, redraws, QR layout changes
//   - Warn: hardware fallbacks, failed flushes, collector failures
//   - Error: startup failures
//
// # Usage
//
//	if err := logging.Initialize("debug", ""); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
//	logging.LogBackend("framebuffer", "/dev/fb0")
//	logging.LogFallback("/dev/fb0", err)
//
// # Thread Safety
//
// All functions are safe for concurrent use.
package logging
