package core

// Logger is any service that can log messages at different levels.
// args are extra values attached to the entry: errors, maps or the acting Session.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
