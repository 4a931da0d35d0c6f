// Package buildinfo exposes version data injected at link time:
//
//	go build -ldflags "-X github.com/dmitrijs2005/krishi/internal/buildinfo.Version=1.2.0"
package buildinfo

import (
	"fmt"
	"io"
	"runtime"
)

var (
	Version = "N/A"
	Date    = "N/A"
	Commit  = "N/A"
)

// PrintBuildData writes the build banner to w.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\nBuild date: %s\nBuild commit: %s\n", Version, Date, Commit)
}

// UserAgent identifies this client in security events, the way a browser
// user agent would.
func UserAgent() string {
	return fmt.Sprintf("krishi-cli/%s (%s/%s)", Version, runtime.GOOS, runtime.GOARCH)
}
