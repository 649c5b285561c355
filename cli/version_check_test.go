package cli

import (
	"testing"

	"github.com/hashicorp/go-version"
	"github.com/stretchr/testify/assert"

	"github.com/gruntwork-io/cfn-docgen/errors"
)

func TestParseGitVersionNormal(t *testing.T) {
	t.Parallel()
	testParseGitVersion(t, "git version 2.39.2", "2.39.2", nil)
}

func TestParseGitVersionWithVendorSuffix(t *testing.T) {
	t.Parallel()
	testParseGitVersion(t, "git version 2.39.2 (Apple Git-143)", "2.39.2", nil)
}

func TestParseGitVersionTwoPart(t *testing.T) {
	t.Parallel()
	testParseGitVersion(t, "git version 1.9\n", "1.9", nil)
}

func TestParseGitVersionWindowsBuild(t *testing.T) {
	t.Parallel()
	testParseGitVersion(t, "git version 2.42.0.windows.2", "2.42.0", nil)
}

func TestParseGitVersionInvalidSyntax(t *testing.T) {
	t.Parallel()
	testParseGitVersion(t, "invalid-syntax", "", InvalidGitVersionSyntax("invalid-syntax"))
}

func TestCheckGitVersionMeetsConstraintEqual(t *testing.T) {
	t.Parallel()
	testCheckGitVersionMeetsConstraint(t, "1.9.0", GitVersionConstraint, true)
}

func TestCheckGitVersionMeetsConstraintGreaterMajor(t *testing.T) {
	t.Parallel()
	testCheckGitVersionMeetsConstraint(t, "2.39.2", GitVersionConstraint, true)
}

func TestCheckGitVersionMeetsConstraintLessMinor(t *testing.T) {
	t.Parallel()
	testCheckGitVersionMeetsConstraint(t, "1.8.5", GitVersionConstraint, false)
}

func testParseGitVersion(t *testing.T, versionString string, expectedVersion string, expectedErr error) {
	actualVersion, actualErr := parseGitVersion(versionString)
	if expectedErr == nil {
		expected, err := version.NewVersion(expectedVersion)
		if err != nil {
			t.Fatalf("Invalid expected version specified in test: %v", err)
		}

		assert.Nil(t, actualErr)
		assert.Equal(t, expected, actualVersion)
	} else {
		assert.True(t, errors.IsError(actualErr, expectedErr))
	}
}

func testCheckGitVersionMeetsConstraint(t *testing.T, currentVersion string, versionConstraint string, versionMeetsConstraint bool) {
	current, err := version.NewVersion(currentVersion)
	if err != nil {
		t.Fatalf("Invalid current version specified in test: %v", err)
	}

	err = checkGitVersionMeetsConstraint(current, versionConstraint)
	if versionMeetsConstraint {
		assert.Nil(t, err, "Expected git version %s to meet constraint %s, but got error: %v", currentVersion, versionConstraint, err)
	} else {
		assert.NotNil(t, err, "Expected git version %s to NOT meet constraint %s, but got back a nil error", currentVersion, versionConstraint)

		var versionErr InvalidGitVersion
		assert.ErrorAs(t, err, &versionErr)
	}
}
