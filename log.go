package hawk

import "go.uber.org/zap"

// debugLogger is the narrow logging surface Sender and Receiver
// operations use. It defaults to a no-op logger; callers opt into
// tracing via WithSenderLogger or WithReceiverLogger. Only canonical
// pre-MAC strings are ever
// logged — never the shared key, a computed MAC, or a full
// Authorization header — mirroring the hawk.show_hash-gated debug
// calls in the wmf reference implementation.
type debugLogger struct {
	l *zap.Logger
}

func newDebugLogger(l *zap.Logger) debugLogger {
	if l == nil {
		l = zap.NewNop()
	}
	return debugLogger{l: l}
}

func (d debugLogger) canonical(context, value string) {
	d.l.Debug("hawk canonical string", zap.String("context", context), zap.String("value", value))
}

func (d debugLogger) event(msg string, fields ...zap.Field) {
	d.l.Debug(msg, fields...)
}
