package report

import (
	"fmt"
	"os"
)

// UsageError is an error produced by misuse of an IR constructor: eg. a Case
// built with two default arms or an instance port bound to a value that is
// neither a signal nor a bit-vector type.  Constructors raise usage errors as
// panics so that deeply nested expression building does not need to thread
// error returns; callers that want to handle them recover via CatchUsage.
type UsageError struct {
	// The error message.
	Message string
}

func (ue *UsageError) Error() string {
	return ue.Message
}

// RaiseUsage panics with a new usage error.
func RaiseUsage(msg string, args ...interface{}) {
	panic(&UsageError{Message: fmt.Sprintf(msg, args...)})
}

// CatchUsage catches a usage error raised by a panic during IR construction
// and stores it into *err.  Any other panic continues to propagate.
// NB: This function must ALWAYS be deferred.
func CatchUsage(err *error) {
	if x := recover(); x != nil {
		if uerr, ok := x.(*UsageError); ok {
			*err = uerr
		} else {
			panic(x)
		}
	}
}

// -----------------------------------------------------------------------------

// Assert panics with an assertion failure message unless cond holds.  It is
// used to enforce invariants whose violation indicates a bug in the host
// program rather than a recoverable condition.
func Assert(cond bool, msg string, args ...interface{}) {
	if !cond {
		panic("assertion failed: " + fmt.Sprintf(msg, args...))
	}
}

// -----------------------------------------------------------------------------

// ReportFatal reports a fatal error and exits the program.  These are expected
// errors that generally result from invalid configuration of some form: a
// missing design file, unreadable manifest, etc.
func ReportFatal(msg string, args ...interface{}) {
	if rep.logLevel > LogLevelSilent {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayFatal(fmt.Sprintf(msg, args...))
	}

	os.Exit(1)
}

// ReportDesignError reports a non-fatal error in the contents of a design
// manifest.  The designName is the representative name of the design; if the
// name itself is invalid, the caller passes a placeholder.
func ReportDesignError(designName string, msg string, args ...interface{}) {
	if rep.logLevel > LogLevelSilent {
		rep.m.Lock()
		defer rep.m.Unlock()

		rep.isErr = true

		displayDesignMessage("error", designName, fmt.Sprintf(msg, args...))
	}
}

// ReportDesignWarning reports a warning about the contents of a design
// manifest.
func ReportDesignWarning(designName string, msg string, args ...interface{}) {
	if rep.logLevel > LogLevelWarn {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayDesignMessage("warning", designName, fmt.Sprintf(msg, args...))
	}
}

// ReportInfo reports an informational message.  These only display if the log
// level is verbose.
func ReportInfo(tag string, msg string, args ...interface{}) {
	if rep.logLevel == LogLevelVerbose {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayInfo(tag, fmt.Sprintf(msg, args...))
	}
}
