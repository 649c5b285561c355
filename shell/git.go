package shell

import (
	"context"

	"github.com/gruntwork-io/cfn-docgen/errors"
	"github.com/gruntwork-io/cfn-docgen/options"
)

// GitClone clones the given repository into dst. The clone is depth-1: the docs repository carries years of history
// that the extraction never looks at.
func GitClone(ctx context.Context, opts *options.DocgenOptions, repoURL string, dst string) error {
	opts.Logger.Infof("Cloning %s into %s", repoURL, dst)

	if _, err := RunCommandWithOutput(ctx, opts, opts.WorkingDir, opts.GitPath, "clone", "--depth", "1", repoURL, dst); err != nil {
		return errors.WithStackTraceAndPrefix(err, "Error cloning repository %s", repoURL)
	}

	return nil
}
