package main

import (
	"fmt"
	"os"
	"strings"

	"fhdl/common"
	"fhdl/report"
)

const usage = `Usage: fhdl [flags|options] <path to design directory or manifest>

Flags:
------
-h, --help      Displays usage information (ie. this text).
-v, --version   Displays the current fhdl version.

Options:
--------
-ll=<level>, --loglevel=<level>
                  Sets the tool's log-level.  Valid values are:
                    - "verbose" for outputting all messages (default)
                    - "warn" for outputting errors and warnings
                    - "error" for outputting errors only
                    - "silent" for no output
`

// Prints the usage message and exits with the given exit code.
func printUsage(exitCode int) {
	fmt.Print(usage, "\n")
	os.Exit(exitCode)
}

// argumentError displays an argument error and exits the program.
func argumentError(message string, args ...interface{}) {
	fmt.Print("argument error: ", fmt.Sprintf(message, args...), "\n\n")
	printUsage(1)
}

// parseArgs parses the command-line arguments, initializes the reporter, and
// returns the design path to check.
func parseArgs() string {
	logLevel := report.LogLevelVerbose
	designPath := ""

	for _, arg := range os.Args[1:] {
		switch {
		case arg == "-h" || arg == "--help":
			printUsage(0)
		case arg == "-v" || arg == "--version":
			fmt.Println("fhdl v" + common.FHDLVersion)
			os.Exit(0)
		case strings.HasPrefix(arg, "-ll=") || strings.HasPrefix(arg, "--loglevel="):
			value := arg[strings.Index(arg, "=")+1:]
			switch value {
			case "verbose":
				logLevel = report.LogLevelVerbose
			case "warn":
				logLevel = report.LogLevelWarn
			case "error":
				logLevel = report.LogLevelError
			case "silent":
				logLevel = report.LogLevelSilent
			default:
				argumentError("invalid log level: `%s`", value)
			}
		case strings.HasPrefix(arg, "-"):
			argumentError("unknown flag: `%s`", arg)
		default:
			if designPath != "" {
				argumentError("multiple design paths supplied")
			}
			designPath = arg
		}
	}

	if designPath == "" {
		argumentError("missing design path")
	}

	report.InitReporter(logLevel)
	return designPath
}
