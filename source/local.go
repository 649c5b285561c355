package source

import (
	"context"

	"github.com/gruntwork-io/cfn-docgen/options"
	"github.com/gruntwork-io/cfn-docgen/util"
)

// LocalSource serves documentation pages from a directory that already
// exists on disk, typically a checkout of the documentation repository.
type LocalSource struct {
	opts *options.DocgenOptions
	dir  string
}

func NewLocalSource(opts *options.DocgenOptions) (*LocalSource, error) {
	dir, err := util.CanonicalPath(opts.RootDir, opts.WorkingDir)
	if err != nil {
		return nil, err
	}

	return &LocalSource{opts: opts, dir: dir}, nil
}

func (source *LocalSource) Files(ctx context.Context) ([]string, error) {
	return listPages(source.dir, source.opts.PagePattern, source.opts.ExtraPages)
}

// Close is a no-op: a LocalSource never creates anything on disk.
func (source *LocalSource) Close() error {
	return nil
}
