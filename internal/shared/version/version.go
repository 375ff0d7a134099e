// Package version reports the build version of the service.
package version

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Current is overridden at build time:
//
//	go build -ldflags "-X turnero/internal/shared/version.Current=v1.2.0"
var Current = "dev"

// Normalize ensures a "v" prefix for semver compatibility.
func Normalize(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	if !strings.HasPrefix(v, "v") {
		return "v" + v
	}
	return v
}

// String returns the canonical form of Current, or Current unchanged when it
// is not a release version.
func String() string {
	if v := Normalize(Current); semver.IsValid(v) {
		return semver.Canonical(v)
	}
	return Current
}
