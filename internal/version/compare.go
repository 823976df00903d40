package version

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/rxtech-lab/argo-logger/pkg/errors"
)

// CheckVersionCompatibility checks whether a host built against hostVersion can
// load a library at libraryVersion. Returns nil if compatible.
//
// Compatibility Rules:
//   - If either version is "main" (development build), the check is skipped
//   - Major versions must match exactly
//   - Minor versions must match exactly (symbols are added in minor releases)
//   - Patch versions can differ
//
// Examples:
//   - Library 0.3.0, Host 0.3.0 -> OK
//   - Library 0.3.2, Host 0.3.0 -> OK (patch differs)
//   - Library 0.4.0, Host 0.3.0 -> ERROR (minor differs)
//   - Library 1.0.0, Host 0.3.0 -> ERROR (major differs)
//   - Library main,  Host 0.3.0 -> OK (dev build)
func CheckVersionCompatibility(libraryVersion, hostVersion string) error {
	libraryVersion = strings.TrimPrefix(libraryVersion, "v")
	hostVersion = strings.TrimPrefix(hostVersion, "v")

	if libraryVersion == "main" || hostVersion == "main" {
		return nil
	}

	librarySemver, err := semver.NewVersion(libraryVersion)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidVersion, err, "invalid library version '%s'", libraryVersion)
	}

	hostSemver, err := semver.NewVersion(hostVersion)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidVersion, err, "invalid host version '%s'", hostVersion)
	}

	if librarySemver.Major() != hostSemver.Major() {
		return errors.Newf(errors.ErrCodeVersionMismatch,
			"major version mismatch: library is %d.x.x but host requires %d.x.x",
			librarySemver.Major(), hostSemver.Major())
	}

	if librarySemver.Minor() != hostSemver.Minor() {
		return errors.Newf(errors.ErrCodeVersionMismatch,
			"minor version mismatch: library is %d.%d.x but host requires %d.%d.x",
			librarySemver.Major(), librarySemver.Minor(),
			hostSemver.Major(), hostSemver.Minor())
	}

	return nil
}
