package source

import (
	"context"
	"os"

	"github.com/gruntwork-io/cfn-docgen/errors"
	"github.com/gruntwork-io/cfn-docgen/options"
	"github.com/gruntwork-io/cfn-docgen/util"
	"github.com/hashicorp/go-getter"
)

// GetterSource downloads documentation pages with go-getter, so any source
// URL go-getter understands works here: git repositories, archives, S3 or
// GCS buckets, plain HTTP, or local paths. Use go-getter's double-slash
// syntax (e.g. github.com/awsdocs/aws-cloudformation-user-guide//doc_source)
// to point at a subdirectory of the download.
type GetterSource struct {
	opts   *options.DocgenOptions
	url    string
	tmpDir string
}

func NewGetterSource(opts *options.DocgenOptions) *GetterSource {
	return &GetterSource{opts: opts, url: opts.SourceURL}
}

// go-getter symlinks local directories into place by default. Copying keeps
// the downloaded tree independent of the original, so removing it in Close
// can never touch the user's files. We shallow clone the getter map here
// rather than modifying the globally shared getter.Getters map in place.
var copyFiles = func(client *getter.Client) error {
	client.Getters = map[string]getter.Getter{}

	for getterName, getterValue := range getter.Getters {
		if getterName == "file" {
			client.Getters[getterName] = &getter.FileGetter{Copy: true}
		} else {
			client.Getters[getterName] = getterValue
		}
	}

	return nil
}

func (source *GetterSource) Files(ctx context.Context) ([]string, error) {
	tmpDir, err := os.MkdirTemp("", "cfn-docgen")
	if err != nil {
		return nil, errors.WithStackTrace(err)
	}

	source.tmpDir = tmpDir

	// Download into a subdirectory of the temp dir: some getters want to
	// create the destination themselves.
	downloadDir := util.JoinPath(tmpDir, "pages")

	source.opts.Logger.Infof("Downloading documentation pages from %s into %s", source.url, downloadDir)

	client := &getter.Client{
		Ctx:     ctx,
		Src:     source.url,
		Dst:     downloadDir,
		Pwd:     source.opts.WorkingDir,
		Mode:    getter.ClientModeAny,
		Options: []getter.ClientOption{copyFiles},
	}

	if err := client.Get(); err != nil {
		return nil, errors.WithStackTraceAndPrefix(err, "Error downloading documentation pages from %s", source.url)
	}

	return listPages(downloadDir, source.opts.PagePattern, source.opts.ExtraPages)
}

// Close removes the downloaded pages.
func (source *GetterSource) Close() error {
	if source.tmpDir == "" {
		return nil
	}

	if err := os.RemoveAll(source.tmpDir); err != nil {
		return errors.WithStackTrace(err)
	}

	source.tmpDir = ""

	return nil
}
