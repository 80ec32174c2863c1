// Package version holds the CLI version.
package version

// Version is the CLI version. It can be overridden at build time via
// -ldflags "-X github.com/cloudposse/treegen/pkg/version.Version=x.y.z".
var Version = "0.1.0"
