package pricing

// Logger receives the formatter's progress and failure messages.
// *zap.SugaredLogger satisfies it.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards everything; it is the formatter's default.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}

// orNop substitutes NopLogger for a nil logger, including a typed nil.
func orNop(l Logger) Logger {
	if isNil(l) {
		return NopLogger{}
	}
	return l
}
