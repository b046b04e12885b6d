// Package logger defines the structured logging surface used across the
// application. Every entry names the component it came from so the log
// stream stays filterable.
package logger

// Logger is the logging interface components depend on.
type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component, message string, err error, fields map[string]interface{})
}

// Nop discards every entry. It keeps constructors usable in tests that
// have no interest in log output.
type Nop struct{}

func (Nop) Debug(component, message string, fields map[string]interface{})            {}
func (Nop) Info(component, message string, fields map[string]interface{})             {}
func (Nop) Warning(component, message string, fields map[string]interface{})          {}
func (Nop) Error(component, message string, err error, fields map[string]interface{}) {}
