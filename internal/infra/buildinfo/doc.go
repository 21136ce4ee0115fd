// Package buildinfo provides build information for atlascfg.
//
// Version, Commit and BuildTime are injected via ldflags:
//
//	go build -ldflags "-X github.com/yndnr/atlascfg/internal/infra/buildinfo.Version=v1.0.0"
//
// GoVersion defaults to the toolchain that compiled the binary.
package buildinfo
