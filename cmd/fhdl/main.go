// The fhdl tool loads a design manifest, builds the clock domains it
// declares, and prints a summary of them.  It is a quick validity check for
// manifests before they are used by a host program.
package main

import (
	"fmt"
	"os"

	"fhdl/manifest"
	"fhdl/report"
)

func main() {
	designPath := parseArgs()

	des, ok := manifest.LoadDesign(designPath)
	if !ok {
		os.Exit(1)
	}

	report.ReportInfo("Design", "%s (%s)", des.Name, des.AbsPath)
	for _, name := range des.DomainOrder {
		cd := des.Domains[name]
		report.ReportInfo("Clock Domain", "%s: clk=%s rst=%s",
			name, cd.Clk.EffectiveName(), cd.Rst.EffectiveName())
	}

	if len(des.DomainOrder) == 0 {
		report.ReportDesignWarning(des.Name, "design declares no clock domains")
	}

	fmt.Println()
}
