// Package version holds the build version, set with
// -ldflags "-X github.com/Dicklesworthstone/compactview/pkg/version.Version=v1.2.3".
package version

var Version = "v0.1.0"
