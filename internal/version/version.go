// Package version carries build identity, stamped via -ldflags at
// release time:
//
//	go build -ldflags "-X .../internal/version.Version=v1.2.0"
package version

var (
	Version   = "dev"
	GitSHA    = "unknown"
	BuildTime = "unknown"
)
