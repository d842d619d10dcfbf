// Package manifest loads design manifests: TOML files declaring a design's
// name and the clock domains it is built from.  Loading a manifest produces
// ready-made hdl.ClockDomain definitions for every declared domain, which the
// host program hands to the elaborator alongside the merged fragment.
package manifest

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"unicode"

	"github.com/pelletier/go-toml"

	"fhdl/common"
	"fhdl/hdl"
	"fhdl/report"
)

// tomlDesign represents a design as it is encoded in TOML.
type tomlDesign struct {
	Name        string       `toml:"name"`
	FHDLVersion string       `toml:"fhdl-version"`
	Domains     []tomlDomain `toml:"domains"`
}

// tomlDomain represents one clock-domain declaration.  Either only the domain
// name is given, in which case the clock and reset signal names are derived
// from it, or both explicit signal names are given.
type tomlDomain struct {
	Name string `toml:"name"`
	Clk  string `toml:"clk"`
	Rst  string `toml:"rst"`
}

// Design is a loaded design manifest.
type Design struct {
	// The design name.
	Name string

	// The absolute path to the manifest file.
	AbsPath string

	// The declared domain names, in declaration order.
	DomainOrder []string

	// The clock domains by name.
	Domains map[string]*hdl.ClockDomain
}

// LoadDesign loads and validates the design manifest at the given path.  If
// the path is a directory, the manifest file is looked up inside it.  This
// function returns the loaded design and a success boolean; I/O and syntax
// failures are fatal, while invalid manifest contents are reported as design
// errors.
func LoadDesign(path string) (*Design, bool) {
	if finfo, err := os.Stat(path); err == nil && finfo.IsDir() {
		path = filepath.Join(path, common.DesignFileName)
	}

	if absPath, err := filepath.Abs(path); err == nil {
		path = absPath
	}

	buff, err := ioutil.ReadFile(path)
	if err != nil {
		report.ReportFatal("unable to read design file at `%s`: %s", path, err.Error())
		return nil, false
	}

	tomlDes := &tomlDesign{}
	if err := toml.Unmarshal(buff, tomlDes); err != nil {
		report.ReportFatal("error parsing design file at `%s`: %s", path, err.Error())
		return nil, false
	}

	des := &Design{
		AbsPath: path,
		Domains: make(map[string]*hdl.ClockDomain),
	}

	if !validateDesign(des, tomlDes) {
		return nil, false
	}

	return des, true
}

// validateDesign checks the decoded manifest contents and builds the clock
// domains of the design.
func validateDesign(des *Design, tomlDes *tomlDesign) bool {
	reprName := tomlDes.Name
	if reprName == "" {
		reprName = fmt.Sprintf("<design at `%s`>", des.AbsPath)
	}

	if tomlDes.Name == "" {
		report.ReportDesignError(reprName, "missing design name")
		return false
	}

	if !IsValidIdentifier(tomlDes.Name) {
		report.ReportDesignError(reprName, "design name must be a valid identifier")
		return false
	}

	if tomlDes.FHDLVersion != common.FHDLVersion {
		report.ReportDesignWarning(tomlDes.Name, fmt.Sprintf(
			"version of design `%s` (v%s) does not match current fhdl version (v%s)",
			tomlDes.Name, tomlDes.FHDLVersion, common.FHDLVersion,
		))
	}

	des.Name = tomlDes.Name

	for _, dom := range tomlDes.Domains {
		if !IsValidIdentifier(dom.Name) {
			report.ReportDesignError(des.Name, fmt.Sprintf("`%s` is not a valid clock-domain name", dom.Name))
			return false
		}

		if _, ok := des.Domains[dom.Name]; ok {
			report.ReportDesignError(des.Name, fmt.Sprintf("clock domain `%s` declared twice", dom.Name))
			return false
		}

		if (dom.Clk == "") != (dom.Rst == "") {
			report.ReportDesignError(des.Name, fmt.Sprintf(
				"clock domain `%s` must declare both `clk` and `rst` or neither", dom.Name))
			return false
		}

		if dom.Clk == "" {
			des.Domains[dom.Name] = hdl.NewClockDomain(dom.Name)
		} else {
			des.Domains[dom.Name] = hdl.NewClockDomainCR(dom.Clk, dom.Rst)
		}

		des.DomainOrder = append(des.DomainOrder, dom.Name)
	}

	return true
}

// IsValidIdentifier returns whether the given string is usable as a design or
// clock-domain name: a letter or underscore followed by letters, digits, and
// underscores.
func IsValidIdentifier(idName string) bool {
	if idName == "" {
		return false
	}

	for i, c := range idName {
		if c == '_' || unicode.IsLetter(c) {
			continue
		}

		if i > 0 && unicode.IsDigit(c) {
			continue
		}

		return false
	}

	return true
}
