package report

import (
	"fmt"

	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// displayFatal displays a fatal error message.
func displayFatal(message string) {
	ErrorStyleBG.Print("Fatal Error")
	ErrorColorFG.Println(" " + message)
}

// displayDesignMessage displays an error or warning about a design manifest.
// The label is the string to prefix the message with: eg. if we want to
// display an error, the label is "error".
func displayDesignMessage(label, designName, message string) {
	if label == "error" {
		ErrorStyleBG.Print("Design Error")
		ErrorColorFG.Println(fmt.Sprintf(" %s: %s", designName, message))
	} else {
		WarnStyleBG.Print("Design Warning")
		WarnColorFG.Println(fmt.Sprintf(" %s: %s", designName, message))
	}
}

// displayInfo displays an informational message with a tag banner.
func displayInfo(tag, message string) {
	InfoStyleBG.Print(tag)
	InfoColorFG.Println(" " + message)
}
