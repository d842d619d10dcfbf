// Package report provides the error reporting facilities shared by the IR
// constructors, the manifest loader, and the fhdl driver.  IR construction
// errors are raised as panics carrying typed errors and recovered at an API
// boundary; tool-level errors are printed and terminate the process.
package report

import "sync"

// reporter is responsible for displaying errors, warnings, and other kinds of
// messages to the user.  The reporter respects the set log level and is
// synchronized: its methods can be safely called from multiple goroutines.
type reporter struct {
	// The mutex used to synchronize different report method calls.
	m *sync.Mutex

	// The selected log level of the reporter.  This must be one of the
	// enumerated log levels below.
	logLevel int

	// Indicates whether or not an error has been detected.
	isErr bool
}

// Enumeration of the different possible log levels.
const (
	LogLevelSilent  = iota // Displays no output.
	LogLevelError          // Displays only errors to the user.
	LogLevelWarn           // Displays only warnings and errors to the user.
	LogLevelVerbose        // Displays all messages to the user (default).
)

// rep is the global reporter instance.
var rep = reporter{m: &sync.Mutex{}, logLevel: LogLevelVerbose}

// InitReporter initializes the global reporter with the given log level.
func InitReporter(logLevel int) {
	rep = reporter{m: &sync.Mutex{}, logLevel: logLevel}
}

// AnyErrors returns whether or not any errors were detected.
func AnyErrors() bool {
	return rep.isErr
}
