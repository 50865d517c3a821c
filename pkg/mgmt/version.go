// Package mgmt holds shared project metadata.
package mgmt

// Version is the current release version of the mgmt tool.
const Version = "0.1.0"
