package source

import (
	"context"
	"os"

	"github.com/gruntwork-io/cfn-docgen/errors"
	"github.com/gruntwork-io/cfn-docgen/options"
	"github.com/gruntwork-io/cfn-docgen/shell"
	"github.com/gruntwork-io/cfn-docgen/util"
)

// RemoteSource clones the documentation repository into a temporary
// directory and serves pages from its docs directory. The clone is shallow:
// page extraction only ever needs the tip of the default branch.
type RemoteSource struct {
	opts   *options.DocgenOptions
	tmpDir string
}

func NewRemoteSource(opts *options.DocgenOptions) *RemoteSource {
	return &RemoteSource{opts: opts}
}

func (source *RemoteSource) Files(ctx context.Context) ([]string, error) {
	tmpDir, err := os.MkdirTemp("", "cfn-docgen")
	if err != nil {
		return nil, errors.WithStackTrace(err)
	}

	source.tmpDir = tmpDir

	if err := shell.GitClone(ctx, source.opts, source.opts.RepoURL, tmpDir); err != nil {
		return nil, err
	}

	docsDir := util.JoinPath(tmpDir, source.opts.DocsDir)

	return listPages(docsDir, source.opts.PagePattern, source.opts.ExtraPages)
}

// Close removes the clone. Pages returned by Files are unreadable after
// Close, so only call it once the run is finished with them.
func (source *RemoteSource) Close() error {
	if source.tmpDir == "" {
		return nil
	}

	if err := os.RemoveAll(source.tmpDir); err != nil {
		return errors.WithStackTrace(err)
	}

	source.tmpDir = ""

	return nil
}
