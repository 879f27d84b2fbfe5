// Package logging is the structured logging abstraction used by every pass. The
// concrete implementation is logrus; tests use MockLogger.
package logging

// Logger is the structured logger handed to every component through its constructor.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// WithError returns a logger that attaches err to every entry
	WithError(err error) Logger

	// WithField returns a logger that attaches one key/value to every entry
	WithField(key string, value interface{}) Logger

	// WithFields returns a logger that attaches several key/values to every entry
	WithFields(fields ...Field) Logger

	// Fatalf logs and exits the program. Only the CLI boundary calls it.
	Fatalf(msg string, args ...interface{})
}

// Field is a key/value pair attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}

// F is shorthand for building a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}
