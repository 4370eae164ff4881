package adk

import "go.uber.org/zap"

// DebugEnabled gates agent tracing (tool dispatch, provider round trips).
// Commands set it from --debug.
var DebugEnabled bool

// log drops everything until SetLogger wires in the CLI's logger.
var log = zap.NewNop().Sugar()

// SetLogger routes agent diagnostics through the given zap logger.
func SetLogger(l *zap.Logger) {
	log = l.Sugar()
}

// Debugf logs agent tracing when DebugEnabled is set.
func Debugf(format string, args ...interface{}) {
	if DebugEnabled {
		log.Debugf(format, args...)
	}
}
