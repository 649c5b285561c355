package cli

import (
	"context"
	"fmt"
	"os"
	"regexp"

	"github.com/gruntwork-io/go-commons/env"
	"github.com/hashicorp/go-version"

	"github.com/gruntwork-io/cfn-docgen/errors"
	"github.com/gruntwork-io/cfn-docgen/options"
	"github.com/gruntwork-io/cfn-docgen/shell"
)

// GitVersionConstraint is the oldest git whose clone flags we rely on. Shallow clones over smart HTTP need 1.9.
const GitVersionConstraint = ">= 1.9.0"

// The git version output is of the format: git version 2.39.2 (Apple Git-143)
// where the parenthesized suffix only shows up for vendor builds
var gitVersionRegex = regexp.MustCompile(`git version (\d+(\.\d+)*)`)

// CheckGitVersion checks that the installed git meets the version constraint cloning requires. Setting the
// CFN_DOCGEN_SKIP_GIT_VERSION_CHECK environment variable to true turns the check off.
func CheckGitVersion(ctx context.Context, opts *options.DocgenOptions) error {
	if env.GetBool(os.Getenv("CFN_DOCGEN_SKIP_GIT_VERSION_CHECK"), false) {
		opts.Logger.Debugf("Skipping git version check")
		return nil
	}

	gitVersion, err := getGitVersion(ctx, opts)
	if err != nil {
		return err
	}

	return checkGitVersionMeetsConstraint(gitVersion, GitVersionConstraint)
}

// Run `git version` and parse the result
func getGitVersion(ctx context.Context, opts *options.DocgenOptions) (*version.Version, error) {
	output, err := shell.RunCommandWithOutput(ctx, opts, "", opts.GitPath, "version")
	if err != nil {
		return nil, err
	}

	return parseGitVersion(output.Stdout.String())
}

func parseGitVersion(versionCommandOutput string) (*version.Version, error) {
	matches := gitVersionRegex.FindStringSubmatch(versionCommandOutput)

	if len(matches) < 2 {
		return nil, errors.WithStackTrace(InvalidGitVersionSyntax(versionCommandOutput))
	}

	return version.NewVersion(matches[1])
}

// Check that the given version of git meets the specified constraint and return an error if it doesn't
func checkGitVersionMeetsConstraint(currentVersion *version.Version, constraint string) error {
	versionConstraint, err := version.NewConstraint(constraint)
	if err != nil {
		return err
	}

	if !versionConstraint.Check(currentVersion) {
		return errors.WithStackTrace(InvalidGitVersion{CurrentVersion: currentVersion, VersionConstraints: versionConstraint})
	}

	return nil
}

// Custom error types

type InvalidGitVersionSyntax string

func (err InvalidGitVersionSyntax) Error() string {
	return fmt.Sprintf("Unable to parse git version output: %s", string(err))
}

type InvalidGitVersion struct {
	CurrentVersion     *version.Version
	VersionConstraints version.Constraints
}

func (err InvalidGitVersion) Error() string {
	return fmt.Sprintf("The currently installed version of git (%s) is not compatible with the version cfn-docgen requires (%s).", err.CurrentVersion.String(), err.VersionConstraints.String())
}
