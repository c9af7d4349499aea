// Package version holds build metadata injected at link time.
package version

// Set via -ldflags, e.g.
//
//	go build -ldflags "-X github.com/euphoricair7/stockpile/pkg/version.Version=v0.2.0"
var (
	Version = "dev"
	Commit  = "none"
)
