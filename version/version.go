// Package version provides build version information for restkit.
package version

import (
	"fmt"
	"runtime/debug"
)

// Version is set at build time using -ldflags. Defaults to "dev".
var Version = "dev"

// Short returns a short version string, including the VCS revision when the
// binary was built from a module with build info.
func Short() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" && setting.Value != "" {
				rev := setting.Value
				if len(rev) > 7 {
					rev = rev[:7]
				}
				return fmt.Sprintf("%s-%s", Version, rev)
			}
		}
	}
	return Version
}

// UserAgent returns the default User-Agent value sent by restkit clients.
func UserAgent() string {
	return "restkit/" + Version
}
