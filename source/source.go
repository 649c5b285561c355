// Package source locates the documentation pages a docgen run reads. Pages
// can come from a directory already on disk, from any URL go-getter
// understands, or from a fresh shallow clone of the AWS documentation
// repository.
package source

import (
	"context"
	"os"
	"sort"

	"github.com/gruntwork-io/cfn-docgen/errors"
	"github.com/gruntwork-io/cfn-docgen/options"
	"github.com/gruntwork-io/cfn-docgen/util"
	"github.com/mattn/go-zglob"
)

// Source enumerates the documentation pages to extract metadata from. Close
// must be called once the pages have been read so sources that download into
// a temporary directory can remove it again.
type Source interface {
	// Files returns the paths of the pages to process, in the order they
	// should be processed.
	Files(ctx context.Context) ([]string, error)

	// Close releases anything Files created on disk. It is safe to call
	// Close multiple times and before Files.
	Close() error
}

// NewSource picks the page source for the given options. An explicit root
// directory wins, then a source URL, and with neither set the official
// documentation repository is cloned.
func NewSource(opts *options.DocgenOptions) (Source, error) {
	switch {
	case opts.RootDir != "":
		return NewLocalSource(opts)
	case opts.SourceURL != "":
		return NewGetterSource(opts), nil
	default:
		return NewRemoteSource(opts), nil
	}
}

// listPages returns every page under dir that matches pattern, sorted, plus
// the extra pages appended verbatim. Extra pages are not checked for
// existence here: a listed page that turns out to be missing fails later,
// when it is read.
func listPages(dir string, pattern string, extraPages []string) ([]string, error) {
	if !util.IsDir(dir) {
		return nil, errors.WithStackTrace(util.NewPathIsNotDirectory(dir))
	}

	// zglob reports a missing root as os.ErrNotExist rather than returning
	// an empty match list.
	pages, err := zglob.Glob(util.JoinPath(dir, pattern))
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.WithStackTrace(err)
	}

	sort.Strings(pages)

	for _, extraPage := range extraPages {
		pages = append(pages, util.JoinPath(dir, extraPage))
	}

	return pages, nil
}
