package common

// FHDLVersion is the current fhdl version as a string.
const FHDLVersion string = "0.1.0"

// DesignFileName is the name for design manifest files.
const DesignFileName string = "design.toml"
