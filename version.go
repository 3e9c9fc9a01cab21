package lottie

import (
	"fmt"
	"strings"

	"gitlab.com/tozd/go/errors"
	"golang.org/x/mod/semver"
)

// Bodymovin versions this package has been tested with.
const (
	MinSupportedVersion = "4.0.0"
	MaxTestedVersion    = "5.12.2"
)

// SupportedRange returns the minimum and maximum bodymovin versions supported.
func SupportedRange() (min, max string) {
	return MinSupportedVersion, MaxTestedVersion
}

var (
	minSupportedSemver string
	maxTestedSemver    string
)

func init() {
	var err error
	minSupportedSemver, err = canonicalVersion(MinSupportedVersion)
	if err != nil {
		panic(fmt.Sprintf("lottie: invalid MinSupportedVersion %q: %v", MinSupportedVersion, err))
	}
	maxTestedSemver, err = canonicalVersion(MaxTestedVersion)
	if err != nil {
		panic(fmt.Sprintf("lottie: invalid MaxTestedVersion %q: %v", MaxTestedVersion, err))
	}
}

// IsSupportedVersion reports whether the document version v is within the
// supported range. v must be MAJOR.MINOR.PATCH.
func IsSupportedVersion(v string) (bool, error) {
	parsed, err := canonicalVersion(v)
	if err != nil {
		return false, err
	}
	return semver.Compare(parsed, minSupportedSemver) >= 0 && semver.Compare(parsed, maxTestedSemver) <= 0, nil
}

// canonicalVersion turns "5.7.4" into the "v5.7.4" form x/mod/semver reads,
// rejecting anything but three numeric components.
func canonicalVersion(v string) (string, error) {
	v = strings.TrimSpace(v)
	sv := "v" + v
	if strings.Count(v, ".") != 2 || !semver.IsValid(sv) || semver.Prerelease(sv) != "" || semver.Build(sv) != "" {
		return "", errors.Errorf("invalid version: %q", v)
	}
	return sv, nil
}
