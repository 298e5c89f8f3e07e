// Package logging provides structured logging for routercfg.
//
// It wraps a global zap logger. Logging is silent unless a level is given
// with --log-level or the ROUTERCFG_LOG_LEVEL environment variable, so normal
// CLI and wizard output is never interleaved with log lines.
//
// Router operations are logged with a correlation id:
//
//	logging.LogOperation(routerconfig.OpConnect, id, "started")
//
// Passwords are never passed to the logger.
package logging
